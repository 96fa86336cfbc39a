package calendar

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// DateOf returns the calendar day of t, read in t's own location.
func DateOf(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a strict YYYY-MM-DD string.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}

	return date, nil
}

func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()

	return weekday == time.Saturday || weekday == time.Sunday
}

// ISOWeekday numbers Monday as 1 and Sunday as 7.
func ISOWeekday(date time.Time) int {
	if date.Weekday() == time.Sunday {
		return 7
	}

	return int(date.Weekday())
}
