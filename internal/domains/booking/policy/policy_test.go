package policy_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"desk/config"
	otelMocks "desk/infras/otel/mocks"
	"desk/internal/domains/booking/policy"
	holidayModel "desk/internal/domains/holiday/model"
	seatModel "desk/internal/domains/seat/model"
	"desk/shared/calendar"
	"desk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ist = time.FixedZone("IST", 5*60*60+30*60)

type holidayFinder struct {
	holidays map[string]string
	err      error
	calls    int
}

func (f *holidayFinder) GetByDate(_ context.Context, date time.Time) (holidayModel.Holiday, bool, error) {
	f.calls++

	if f.err != nil {
		return holidayModel.Holiday{}, false, f.err
	}

	reason, ok := f.holidays[calendar.FormatDate(date)]
	if !ok {
		return holidayModel.Holiday{}, false, nil
	}

	return holidayModel.Holiday{ID: "holiday-1", Date: date, Reason: reason}, true, nil
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, ist)
}

func date(value string) time.Time {
	parsed, _ := calendar.ParseDate(value)

	return parsed
}

func newPolicy(finder policy.HolidayFinder) policy.Policy {
	return policy.New(finder, calendar.NewCutoffClock(ist, 15), otelMocks.NewOtel())
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		holidays map[string]string
		batch    calendar.Batch
		seatType string
		date     string
		now      time.Time
		allowed  bool
		code     string
		reason   string
	}{
		{
			name:     "before cutoff",
			batch:    calendar.BatchA,
			seatType: seatModel.TypeDesignated,
			date:     "2026-03-27",
			now:      at(2026, time.March, 26, 14, 59),
			code:     policy.CodeBeforeCutoff,
			reason:   "Booking is only allowed after 15:00 (IST).",
		},
		{
			name:     "holiday on the next working day",
			holidays: map[string]string{"2026-03-27": "Test Holiday"},
			batch:    calendar.BatchB,
			seatType: seatModel.TypeDesignated,
			date:     "2026-03-27",
			now:      at(2026, time.March, 26, 15, 1),
			code:     policy.CodeHoliday,
			reason:   "Holiday: Test Holiday",
		},
		{
			name:     "holiday is reported before the cutoff check",
			holidays: map[string]string{"2026-03-27": "Test Holiday"},
			batch:    calendar.BatchA,
			seatType: seatModel.TypeFloater,
			date:     "2026-03-27",
			now:      at(2026, time.March, 26, 9, 0),
			code:     policy.CodeHoliday,
			reason:   "Holiday: Test Holiday",
		},
		{
			name:     "batch A designated on monday of week one",
			batch:    calendar.BatchA,
			seatType: seatModel.TypeDesignated,
			date:     "2026-03-23",
			now:      at(2026, time.March, 20, 15, 1),
			allowed:  true,
		},
		{
			name:     "batch A floater on monday of week one",
			batch:    calendar.BatchA,
			seatType: seatModel.TypeFloater,
			date:     "2026-03-23",
			now:      at(2026, time.March, 20, 15, 1),
			code:     policy.CodeWrongDayForFloater,
			reason:   "Floater seats are only available on your non-designated days.",
		},
		{
			name:     "batch B designated on monday of week one",
			batch:    calendar.BatchB,
			seatType: seatModel.TypeDesignated,
			date:     "2026-03-23",
			now:      at(2026, time.March, 20, 15, 1),
			code:     policy.CodeWrongDayForDesignated,
			reason:   "Designated seats for Batch B are only available on Thu, Fri in WEEK_1.",
		},
		{
			name:     "batch B floater on monday of week one",
			batch:    calendar.BatchB,
			seatType: seatModel.TypeFloater,
			date:     "2026-03-23",
			now:      at(2026, time.March, 20, 15, 1),
			allowed:  true,
		},
		{
			name:     "batch A designated on monday of week two",
			batch:    calendar.BatchA,
			seatType: seatModel.TypeDesignated,
			date:     "2026-03-30",
			now:      at(2026, time.March, 27, 16, 0),
			code:     policy.CodeWrongDayForDesignated,
			reason:   "Designated seats for Batch A are only available on Thu, Fri in WEEK_2.",
		},
		{
			name:     "two days ahead",
			batch:    calendar.BatchA,
			seatType: seatModel.TypeDesignated,
			date:     "2026-03-24",
			now:      at(2026, time.March, 20, 15, 1),
			code:     policy.CodeNotNextWorkingDay,
			reason:   "You can only book for the next working day (2026-03-23).",
		},
		{
			name:     "today",
			batch:    calendar.BatchA,
			seatType: seatModel.TypeDesignated,
			date:     "2026-03-25",
			now:      at(2026, time.March, 25, 15, 30),
			code:     policy.CodeNotNextWorkingDay,
			reason:   "You can only book for the next working day (2026-03-26).",
		},
		{
			name:     "saturday",
			batch:    calendar.BatchA,
			seatType: seatModel.TypeFloater,
			date:     "2026-03-28",
			now:      at(2026, time.March, 27, 15, 1),
			code:     policy.CodeWeekend,
			reason:   "Weekends cannot be booked.",
		},
		{
			name:     "weekend wins over holiday",
			holidays: map[string]string{"2026-03-29": "Sunday Holiday"},
			batch:    calendar.BatchA,
			seatType: seatModel.TypeFloater,
			date:     "2026-03-29",
			now:      at(2026, time.March, 27, 15, 1),
			code:     policy.CodeWeekend,
			reason:   "Weekends cannot be booked.",
		},
		{
			name:     "exactly at cutoff",
			batch:    calendar.BatchB,
			seatType: seatModel.TypeDesignated,
			date:     "2026-03-27",
			now:      at(2026, time.March, 26, 15, 0),
			allowed:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPolicy(&holidayFinder{holidays: tt.holidays})

			decision, err := p.Decide(context.Background(), tt.batch, tt.seatType, date(tt.date), tt.now)
			require.NoError(t, err)

			assert.Equal(t, tt.allowed, decision.Allowed)
			assert.Equal(t, tt.code, decision.Code)
			assert.Equal(t, tt.reason, decision.Reason)

			if tt.allowed {
				assert.NoError(t, decision.Err())
			} else {
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(decision.Err()))
				assert.Equal(t, tt.code, failure.GetReason(decision.Err()))
			}
		})
	}
}

func TestDecide_WeekendSkipsHolidayLookup(t *testing.T) {
	finder := &holidayFinder{}
	p := newPolicy(finder)

	decision, err := p.Decide(context.Background(), calendar.BatchA, seatModel.TypeFloater, date("2026-03-28"), at(2026, time.March, 27, 16, 0))
	require.NoError(t, err)

	assert.Equal(t, policy.CodeWeekend, decision.Code)
	assert.Zero(t, finder.calls)
}

func TestDecide_CarriesContext(t *testing.T) {
	p := newPolicy(&holidayFinder{})

	decision, err := p.Decide(context.Background(), calendar.BatchA, seatModel.TypeDesignated, date("2026-03-24"), at(2026, time.March, 20, 15, 1))
	require.NoError(t, err)

	require.NotNil(t, decision.NextBookableDate)
	assert.Equal(t, "2026-03-23", calendar.FormatDate(*decision.NextBookableDate))
	assert.Equal(t, calendar.WeekOne, decision.WeekType)
	assert.Equal(t, []time.Weekday{time.Monday, time.Tuesday, time.Wednesday}, decision.DesignatedDays)
}

func TestDecide_IsDeterministic(t *testing.T) {
	p := newPolicy(&holidayFinder{holidays: map[string]string{"2026-03-27": "Test Holiday"}})
	now := at(2026, time.March, 26, 15, 1)

	for _, seatType := range []string{seatModel.TypeDesignated, seatModel.TypeFloater} {
		for _, batch := range []calendar.Batch{calendar.BatchA, calendar.BatchB} {
			first, err := p.Decide(context.Background(), batch, seatType, date("2026-03-27"), now)
			require.NoError(t, err)

			second, err := p.Decide(context.Background(), batch, seatType, date("2026-03-27"), now)
			require.NoError(t, err)

			assert.Equal(t, first, second)
		}
	}
}

func TestDecide_HolidayLookupFails(t *testing.T) {
	lookupErr := errors.New("connection refused")
	p := newPolicy(&holidayFinder{err: lookupErr})

	_, err := p.Decide(context.Background(), calendar.BatchA, seatModel.TypeDesignated, date("2026-03-23"), at(2026, time.March, 20, 15, 1))

	require.Error(t, err)
	assert.ErrorIs(t, err, lookupErr)
}

func TestDecide_InvalidInput(t *testing.T) {
	p := newPolicy(&holidayFinder{})
	now := at(2026, time.March, 20, 15, 1)

	_, err := p.Decide(context.Background(), calendar.Batch("C"), seatModel.TypeDesignated, date("2026-03-23"), now)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = p.Decide(context.Background(), calendar.BatchA, "standing", date("2026-03-23"), now)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestNextBookableDate(t *testing.T) {
	p := newPolicy(&holidayFinder{})

	_, open := p.NextBookableDate(at(2026, time.March, 26, 14, 59))
	assert.False(t, open)

	next, open := p.NextBookableDate(at(2026, time.March, 27, 15, 0))
	require.True(t, open)
	assert.Equal(t, "2026-03-30", calendar.FormatDate(next))
}

func TestNewClock(t *testing.T) {
	cfg := &config.Config{}
	cfg.Booking.Timezone = "UTC"
	cfg.Booking.CutoffHour = 15

	clock := policy.NewClock(cfg)
	assert.Equal(t, "UTC", clock.Location.String())
	assert.Equal(t, 15, clock.Hour)

	cfg.Booking.Timezone = "Nowhere/Special"
	clock = policy.NewClock(cfg)
	assert.NotNil(t, clock.Location)
}
