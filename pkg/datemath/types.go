package datemath

import (
	"regexp"
	"time"
)

// Resolution is a successful match: the instant and the layout that produced it.
type Resolution struct {
	Instant time.Time
	Layout  string
}

type fieldKind int

const (
	fieldDay fieldKind = iota
	fieldMonth
	fieldYear4
	fieldYear2
	fieldHour24
	fieldHour12
	fieldMinute
	fieldAmPm
)

// candidate is one compiled "time date" or "date time" layout.
type candidate struct {
	layout string
	re     *regexp.Regexp
	fields []fieldKind
}
