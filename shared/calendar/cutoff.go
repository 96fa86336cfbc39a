package calendar

import (
	"time"
)

// CutoffClock opens booking for the next working day once the local time in
// Location reaches Hour.
type CutoffClock struct {
	Location *time.Location
	Hour     int
}

func NewCutoffClock(location *time.Location, hour int) CutoffClock {
	if location == nil {
		location = time.UTC
	}

	return CutoffClock{
		Location: location,
		Hour:     hour,
	}
}

// NextBookableDate returns the only date open for booking at now, or false
// before the cutoff. Holidays are not considered here.
func (c CutoffClock) NextBookableDate(now time.Time) (time.Time, bool) {
	local := now.In(c.Location)
	if local.Hour() < c.Hour {
		return time.Time{}, false
	}

	candidate := DateOf(local).AddDate(0, 0, 1)
	for IsWeekend(candidate) {
		candidate = candidate.AddDate(0, 0, 1)
	}

	return candidate, true
}
