package dto

import (
	"time"

	"desk/internal/domains/booking/model"
	"desk/internal/domains/booking/policy"
	seatModel "desk/internal/domains/seat/model"
	"desk/shared"
	"desk/shared/calendar"
	gDto "desk/shared/dto"
	gModel "desk/shared/model"

	"github.com/google/uuid"
)

const (
	EventBookingCreated  = "booking.created"
	EventBookingReleased = "booking.released"
)

type CreateBookingRequest struct {
	SeatID string `json:"seat_id" validate:"required,uuid"`
	Date   string `json:"date"    validate:"required,datetime=2006-01-02"`
}

func (c *CreateBookingRequest) ToModel(userID string, date, now time.Time) model.Booking {
	return model.Booking{
		ID:       uuid.NewString(),
		SeatID:   c.SeatID,
		UserID:   userID,
		Date:     calendar.DateOf(date),
		Metadata: gModel.NewMetadata(userID, now),
	}
}

type EligibilityRequest struct {
	SeatType string `json:"seat_type" validate:"required,oneof=designated floater"`
	Date     string `json:"date"      validate:"required,datetime=2006-01-02"`
	Batch    string `json:"batch"     validate:"omitempty,batch"`
}

type WeekRequest struct {
	Week string `json:"week" validate:"required,isoweek"`
}

type BookingResponse struct {
	ID         string `json:"id"`
	SeatID     string `json:"seat_id"`
	SeatNumber int    `json:"seat_number"`
	SeatType   string `json:"seat_type"`
	UserID     string `json:"user_id"`
	Date       string `json:"date"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.SeatID = model.SeatID
	r.SeatNumber = model.SeatNumber
	r.SeatType = model.SeatType
	r.UserID = model.UserID
	r.Date = calendar.FormatDate(model.Date)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type EligibilityResponse struct {
	Allowed          bool     `json:"allowed"`
	Code             string   `json:"code,omitempty"`
	Reason           string   `json:"reason,omitempty"`
	Batch            string   `json:"batch"`
	SeatType         string   `json:"seat_type"`
	Date             string   `json:"date"`
	WeekType         string   `json:"week_type"`
	DesignatedDays   []string `json:"designated_days"`
	NextBookableDate *string  `json:"next_bookable_date"`
}

func (r *EligibilityResponse) FromDecision(batch calendar.Batch, seatType string, date time.Time, decision policy.Decision) {
	r.Allowed = decision.Allowed
	r.Code = decision.Code
	r.Reason = decision.Reason
	r.Batch = string(batch)
	r.SeatType = seatType
	r.Date = calendar.FormatDate(date)
	r.WeekType = string(decision.WeekType)
	r.DesignatedDays = weekdayNames(decision.DesignatedDays)
	r.NextBookableDate = formatOptional(decision.NextBookableDate)
}

type SeatAvailability struct {
	SeatID     string `json:"seat_id"`
	SeatNumber int    `json:"seat_number"`
	Type       string `json:"type"`
	IsActive   bool   `json:"is_active"`
	Booked     bool   `json:"booked"`
	BookedByMe bool   `json:"booked_by_me"`
	BookingID  string `json:"booking_id,omitempty"`
	Bookable   bool   `json:"bookable"`
	Code       string `json:"code,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

type AvailabilityResponse struct {
	Date             string             `json:"date"`
	Batch            string             `json:"batch"`
	WeekType         string             `json:"week_type"`
	NextBookableDate *string            `json:"next_bookable_date"`
	Seats            []SeatAvailability `json:"seats"`
}

// FromModels builds the seat grid. decisions is keyed by seat type so every
// seat of a type shows the same verdict the booking path would give.
func (r *AvailabilityResponse) FromModels(userID string, seats []seatModel.Seat, bookings []model.Booking, decisions map[string]policy.Decision) {
	bySeat := make(map[string]model.Booking, len(bookings))
	for _, booking := range bookings {
		bySeat[booking.SeatID] = booking
	}

	r.Seats = make([]SeatAvailability, len(seats))
	for i, seat := range seats {
		decision := decisions[seat.Type]
		booking, booked := bySeat[seat.ID]

		item := SeatAvailability{
			SeatID:     seat.ID,
			SeatNumber: seat.SeatNumber,
			Type:       seat.Type,
			IsActive:   seat.IsActive,
			Booked:     booked,
			BookedByMe: booked && booking.UserID == userID,
			BookingID:  booking.ID,
			Code:       decision.Code,
			Reason:     decision.Reason,
		}

		switch {
		case !decision.Allowed:
		case !seat.IsActive:
			item.Reason = model.MessageUnderMaintenance
		case booked:
			item.Code = model.CodeAlreadyBooked
			item.Reason = model.MessageAlreadyBooked
		default:
			item.Bookable = true
		}

		r.Seats[i] = item
	}
}

type WeekResponse struct {
	Year           int      `json:"year"`
	Week           int      `json:"week"`
	WeekType       string   `json:"week_type"`
	Dates          []string `json:"dates"`
	Batch          string   `json:"batch"`
	DesignatedDays []string `json:"designated_days"`
}

func (r *WeekResponse) FromDates(year, week int, batch calendar.Batch, dates []time.Time) {
	r.Year = year
	r.Week = week
	r.Batch = string(batch)
	r.Dates = make([]string, len(dates))

	for i, date := range dates {
		r.Dates[i] = calendar.FormatDate(date)
	}

	if len(dates) > 0 {
		weekType := calendar.WeekTypeOf(dates[0])
		r.WeekType = string(weekType)

		if batch.Valid() {
			r.DesignatedDays = weekdayNames(calendar.DesignatedDays(batch, weekType))
		}
	}
}

type NextBookableResponse struct {
	Date       *string `json:"date"`
	CutoffHour int     `json:"cutoff_hour"`
	Timezone   string  `json:"timezone"`
}

// BookingEvent is published after a booking is created or released.
type BookingEvent struct {
	Type       string `json:"type"`
	BookingID  string `json:"booking_id"`
	SeatID     string `json:"seat_id"`
	SeatNumber int    `json:"seat_number,omitempty"`
	UserID     string `json:"user_id"`
	Date       string `json:"date"`
	Actor      string `json:"actor"`
	Override   bool   `json:"override,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

func NewBookingEvent(eventType string, booking model.Booking, actor string, override bool, now time.Time) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		SeatID:     booking.SeatID,
		SeatNumber: booking.SeatNumber,
		UserID:     booking.UserID,
		Date:       calendar.FormatDate(booking.Date),
		Actor:      actor,
		Override:   override,
		OccurredAt: now.UTC().Format(time.RFC3339),
	}
}

func weekdayNames(days []time.Weekday) []string {
	names := make([]string, len(days))
	for i, day := range days {
		names[i] = day.String()
	}

	return names
}

func formatOptional(date *time.Time) *string {
	if date == nil {
		return nil
	}

	formatted := calendar.FormatDate(*date)

	return &formatted
}
