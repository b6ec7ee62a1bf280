package datemath

// Date layouts in priority order. Letters follow the usual pattern convention:
// d/dd day, M/MM month, yy/yyyy year.
var dateLayouts = []string{
	"d/M/yyyy",
	"d-M-yyyy",
	"d/M/yy",
	"d-M-yy",
	"dMMyyyy",
	"dMMyy",

	"dd/MM/yyyy",
	"dd-MM-yyyy",
	"yyyy-MM-dd",

	"dd/MM/yy",
	"dd-MM-yy",
	"ddMMyyyy",
	"ddMMyy",
}

// Time layouts in priority order. HH is a 24-hour clock, h:mma a 12-hour one.
var timeLayouts = []string{
	"HHmm",
	"HH:mm",
	"HH",
	"h:mma",
}

// Two-digit years resolve into this century.
const twoDigitYearBase = 2000

// StorageLayout is the Go layout used when persisting resolved instants.
const StorageLayout = "2006-01-02 1504"
