package time

import (
	"time"
)

const (
	Years            = "Years"
	Quarters         = "Quarters"
	Months           = "Months"
	Weeks            = "Weeks"
	Days             = "Days"
	Hours            = "Hours"
	MinutesRoundTo30 = "MinutesRoundTo30"
	MinutesRoundTo15 = "MinutesRoundTo15"
	Minutes          = "Minutes"
	Seconds          = "Seconds"
)

var defaultDateFormats = map[string]string{
	Years:            "yyyy",
	Quarters:         "'Q'Q yyyy",
	Months:           "MM/yyyy",
	Weeks:            "dd/MM/yyyy",
	Days:             "dd/MM/yyyy",
	Hours:            "dd/MM/yyyy HH:mm",
	MinutesRoundTo30: "HH:mm",
	MinutesRoundTo15: "HH:mm",
	Minutes:          "HH:mm",
	Seconds:          "HH:mm:ss",
}

func IsGranularity(granularity string) bool {
	_, ok := defaultDateFormats[granularity]
	return ok
}

// DefaultDateFormat returns the label format for a granularity, or the Years format when unknown
func DefaultDateFormat(granularity string) string {
	if f, ok := defaultDateFormats[granularity]; ok {
		return f
	}
	return defaultDateFormats[Years]
}

// Truncate returns the start of the bucket t falls into. Weeks start on Sunday.
func Truncate(t time.Time, granularity string) time.Time {
	switch granularity {
	case Years:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	case Quarters:
		month := time.Month((int(t.Month())-1)/3*3 + 1)
		return time.Date(t.Year(), month, 1, 0, 0, 0, 0, t.Location())
	case Months:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case Weeks:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		return day.AddDate(0, 0, -int(day.Weekday()))
	case Days:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	case Hours:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	case MinutesRoundTo30:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute()/30*30, 0, 0, t.Location())
	case MinutesRoundTo15:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute()/15*15, 0, 0, t.Location())
	case Minutes:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	case Seconds:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, t.Location())
	}
	return t
}
