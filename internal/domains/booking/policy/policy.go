// Package policy decides whether a batch may book a seat type on a date.
//
// The same Decide call backs both the eligibility preview and the
// authoritative booking path, so the two can never disagree for the same
// holiday data and clock value.
package policy

import (
	"context"
	"fmt"
	"slices"
	"time"

	"desk/config"
	"desk/infras/otel"
	holidayModel "desk/internal/domains/holiday/model"
	seatModel "desk/internal/domains/seat/model"
	"desk/shared/calendar"
	"desk/shared/constant"
	"desk/shared/failure"
	"desk/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Rejection codes, in the order the checks run.
const (
	CodeWeekend               = "WEEKEND"
	CodeHoliday               = "HOLIDAY"
	CodeBeforeCutoff          = "BEFORE_CUTOFF"
	CodeNotNextWorkingDay     = "NOT_NEXT_WORKING_DAY"
	CodeWrongDayForDesignated = "WRONG_DAY_FOR_DESIGNATED"
	CodeWrongDayForFloater    = "WRONG_DAY_FOR_FLOATER"
)

type HolidayFinder interface {
	GetByDate(ctx context.Context, date time.Time) (holidayModel.Holiday, bool, error)
}

// Decision is the outcome of Decide. Code and Reason are empty when Allowed.
type Decision struct {
	Allowed          bool
	Code             string
	Reason           string
	WeekType         calendar.WeekType
	NextBookableDate *time.Time
	DesignatedDays   []time.Weekday
}

// Err turns a rejection into a failure carrying its code, or nil when allowed.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}

	return failure.Rejected(d.Code, d.Reason)
}

type Policy interface {
	Decide(ctx context.Context, batch calendar.Batch, seatType string, date, now time.Time) (Decision, error)
	NextBookableDate(now time.Time) (time.Time, bool)
	Clock() calendar.CutoffClock
}

type policyImpl struct {
	holidays HolidayFinder
	clock    calendar.CutoffClock
	otel     otel.Otel
}

func New(holidays HolidayFinder, clock calendar.CutoffClock, otel otel.Otel) Policy {
	return &policyImpl{
		holidays: holidays,
		clock:    clock,
		otel:     otel,
	}
}

// NewClock builds the cutoff clock from BOOKING_TIMEZONE and BOOKING_CUTOFF_HOUR.
func NewClock(cfg *config.Config) calendar.CutoffClock {
	loc, err := timezone.Load(cfg.Booking.Timezone)
	if err != nil {
		log.Error().Err(err).Str("timezone", cfg.Booking.Timezone).Msg("falling back to application timezone for booking cutoff")

		loc = timezone.GetLocation()
	}

	return calendar.NewCutoffClock(loc, cfg.Booking.CutoffHour)
}

func (p *policyImpl) Clock() calendar.CutoffClock {
	return p.clock
}

func (p *policyImpl) NextBookableDate(now time.Time) (time.Time, bool) {
	return p.clock.NextBookableDate(now)
}

// Decide runs the checks in a fixed order and stops at the first rejection.
// The only side effect is the holiday lookup; errors from it are returned as is.
func (p *policyImpl) Decide(ctx context.Context, batch calendar.Batch, seatType string, date, now time.Time) (res Decision, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelPolicyScopeName, constant.OtelPolicyScopeName+".Decide")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !batch.Valid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown batch %q", batch)) // nolint:wrapcheck
	}

	if seatType != seatModel.TypeDesignated && seatType != seatModel.TypeFloater {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown seat type %q", seatType)) // nolint:wrapcheck
	}

	date = calendar.DateOf(date)
	res.WeekType = calendar.WeekTypeOf(date)
	res.DesignatedDays = calendar.DesignatedDays(batch, res.WeekType)

	if calendar.IsWeekend(date) {
		return res.reject(CodeWeekend, "Weekends cannot be booked."), nil
	}

	holiday, found, err := p.holidays.GetByDate(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", calendar.FormatDate(date)).Msg("failed to look up holiday")

		return res, fmt.Errorf("failed to look up holiday: %w", err)
	}

	if found {
		return res.reject(CodeHoliday, "Holiday: "+holiday.Reason), nil
	}

	next, open := p.clock.NextBookableDate(now)
	if !open {
		return res.reject(CodeBeforeCutoff, fmt.Sprintf("Booking is only allowed after %02d:00 (%s).", p.clock.Hour, p.clock.Location)), nil
	}

	res.NextBookableDate = &next

	if !date.Equal(next) {
		return res.reject(CodeNotNextWorkingDay, fmt.Sprintf("You can only book for the next working day (%s).", calendar.FormatDate(next))), nil
	}

	designatedDay := slices.Contains(res.DesignatedDays, date.Weekday())

	switch {
	case seatType == seatModel.TypeDesignated && !designatedDay:
		return res.reject(CodeWrongDayForDesignated, fmt.Sprintf(
			"Designated seats for Batch %s are only available on %s in %s.",
			batch, calendar.WeekdayNames(res.DesignatedDays), res.WeekType,
		)), nil
	case seatType == seatModel.TypeFloater && designatedDay:
		return res.reject(CodeWrongDayForFloater, "Floater seats are only available on your non-designated days."), nil
	}

	res.Allowed = true

	return res, nil
}

func (d Decision) reject(code, reason string) Decision {
	d.Allowed = false
	d.Code = code
	d.Reason = reason

	return d
}
