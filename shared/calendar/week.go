package calendar

import (
	"fmt"
	"time"
)

type WeekType string

const (
	WeekOne WeekType = "WEEK_1"
	WeekTwo WeekType = "WEEK_2"
)

type Batch string

const (
	BatchA Batch = "A"
	BatchB Batch = "B"
)

const (
	minISOWeek   = 1
	maxISOWeek   = 53
	workWeekDays = 5
)

var (
	firstHalf  = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday}
	secondHalf = []time.Weekday{time.Thursday, time.Friday}
)

func (b Batch) Valid() bool {
	return b == BatchA || b == BatchB
}

// Other returns the opposite batch.
func (b Batch) Other() Batch {
	if b == BatchA {
		return BatchB
	}

	return BatchA
}

// ISOWeek returns the ISO-8601 week number of date.
func ISOWeek(date time.Time) int {
	_, week := date.ISOWeek()

	return week
}

// WeekTypeOf maps odd ISO weeks to WEEK_1 and even ones to WEEK_2.
func WeekTypeOf(date time.Time) WeekType {
	if ISOWeek(date)%2 != 0 {
		return WeekOne
	}

	return WeekTwo
}

// WeekDates returns Monday to Friday of the given ISO week.
func WeekDates(year, week int) ([]time.Time, error) {
	if week < minISOWeek || week > maxISOWeek {
		return nil, fmt.Errorf("week %d out of range %d..%d", week, minISOWeek, maxISOWeek)
	}

	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -(ISOWeekday(jan4)-1)+7*(week-1))

	dates := make([]time.Time, workWeekDays)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}

	return dates, nil
}

// DesignatedDays returns the weekdays on which batch may use designated seats.
func DesignatedDays(batch Batch, weekType WeekType) []time.Weekday {
	batchAFirstHalf := weekType == WeekOne
	if batch != BatchA {
		batchAFirstHalf = !batchAFirstHalf
	}

	if batchAFirstHalf {
		return append([]time.Weekday(nil), firstHalf...)
	}

	return append([]time.Weekday(nil), secondHalf...)
}

// WeekdayNames renders weekdays as three letter names joined by ", ".
func WeekdayNames(days []time.Weekday) string {
	names := ""
	for i, day := range days {
		if i > 0 {
			names += ", "
		}

		names += day.String()[:3]
	}

	return names
}
