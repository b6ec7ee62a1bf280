package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Resolver interprets free-text fragments such as "2/12/2023 1800" or "6:30PM 1-1-24"
// against a fixed list of candidate layouts. The first candidate that matches the
// whole fragment wins.
type Resolver struct {
	candidates []candidate
}

// NewResolver compiles every (date, time) layout pair. Candidates are ordered by
// date layout, then time layout, with the time-first form tried before the
// date-first form of each pair.
func NewResolver() *Resolver {
	r := &Resolver{candidates: make([]candidate, 0, len(dateLayouts)*len(timeLayouts)*2)}
	for _, d := range dateLayouts {
		for _, t := range timeLayouts {
			r.candidates = append(r.candidates,
				mustCompile(t+" "+d),
				mustCompile(d+" "+t),
			)
		}
	}
	return r
}

// Resolve returns the instant described by fragment. ok is false when no
// candidate matches; the caller decides how to report that.
func (r *Resolver) Resolve(fragment string) (time.Time, bool) {
	res, ok := r.ResolveDetailed(fragment)
	return res.Instant, ok
}

// ResolveDetailed is Resolve but also reports which layout matched.
func (r *Resolver) ResolveDetailed(fragment string) (Resolution, bool) {
	for _, c := range r.candidates {
		if t, ok := c.parse(fragment); ok {
			return Resolution{Instant: t, Layout: c.layout}, true
		}
	}
	return Resolution{}, false
}

// Layouts lists candidate layouts in the order they are tried.
func (r *Resolver) Layouts() []string {
	out := make([]string, len(r.candidates))
	for i, c := range r.candidates {
		out[i] = c.layout
	}
	return out
}

func (c candidate) parse(s string) (time.Time, bool) {
	m := c.re.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	year, month, day, hour, minute := 0, 0, 0, 0, 0
	hour12, pm, twelveHour := 0, false, false
	for i, f := range c.fields {
		v := m[i+1]
		if f == fieldAmPm {
			pm = v == "PM"
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return time.Time{}, false
		}
		switch f {
		case fieldDay:
			day = n
		case fieldMonth:
			month = n
		case fieldYear4:
			year = n
		case fieldYear2:
			year = twoDigitYearBase + n
		case fieldHour24:
			hour = n
		case fieldHour12:
			hour12, twelveHour = n, true
		case fieldMinute:
			minute = n
		}
	}

	if twelveHour {
		if hour12 < 1 || hour12 > 12 {
			return time.Time{}, false
		}
		hour = hour12 % 12
		if pm {
			hour += 12
		}
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	// A day past the end of the month snaps to its last day.
	if last := daysIn(year, time.Month(month)); day > last {
		day = last
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC), true
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// compile turns a layout such as "d/M/yyyy HHmm" into an anchored regexp with one
// group per field.
func compile(layout string) (candidate, error) {
	var b strings.Builder
	var fields []fieldKind
	b.WriteString("^")

	for i := 0; i < len(layout); {
		ch := layout[i]
		j := i
		for j < len(layout) && layout[j] == ch {
			j++
		}
		run := layout[i:j]

		if !strings.ContainsRune("dMyHhma", rune(ch)) {
			b.WriteString(regexp.QuoteMeta(run))
			i = j
			continue
		}

		expr, kind, err := field(run)
		if err != nil {
			return candidate{}, fmt.Errorf("layout %q: %w", layout, err)
		}
		b.WriteString(expr)
		fields = append(fields, kind)
		i = j
	}
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return candidate{}, fmt.Errorf("layout %q: %w", layout, err)
	}
	return candidate{layout: layout, re: re, fields: fields}, nil
}

func field(run string) (string, fieldKind, error) {
	switch run {
	case "d":
		return `(\d{1,2})`, fieldDay, nil
	case "dd":
		return `(\d{2})`, fieldDay, nil
	case "M":
		return `(\d{1,2})`, fieldMonth, nil
	case "MM":
		return `(\d{2})`, fieldMonth, nil
	case "yyyy":
		return `(\d{4})`, fieldYear4, nil
	case "yy":
		return `(\d{2})`, fieldYear2, nil
	case "HH":
		return `(\d{2})`, fieldHour24, nil
	case "h":
		return `(\d{1,2})`, fieldHour12, nil
	case "mm":
		return `(\d{2})`, fieldMinute, nil
	case "a":
		return `(AM|PM)`, fieldAmPm, nil
	}
	return "", 0, fmt.Errorf("unsupported field %q", run)
}

func mustCompile(layout string) candidate {
	c, err := compile(layout)
	if err != nil {
		panic(err)
	}
	return c
}
