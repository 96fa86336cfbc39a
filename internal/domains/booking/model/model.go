package model

import (
	"time"

	seatModel "desk/internal/domains/seat/model"
	"desk/shared/model"
)

const (
	TableName  = "seat_bookings"
	EntityName = "booking"

	FieldID     = "id"
	FieldSeatID = "seat_id"
	FieldUserID = "user_id"
	FieldDate   = "date"
)

// Booking is one user's claim on one seat for one calendar day.
type Booking struct {
	ID         string    `db:"id"`
	SeatID     string    `db:"seat_id"`
	UserID     string    `db:"user_id"`
	Date       time.Time `db:"date"`
	SeatNumber int       `db:"seat_number" table:"seats"`
	SeatType   string    `db:"seat_type"   column:"type" table:"seats"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN seats ON seats.id = seat_bookings.seat_id"
}

// Reason codes and messages owned by the allocator.
const (
	CodeAlreadyBooked   = "ALREADY_BOOKED"
	CodeSeatNotFound    = seatModel.CodeSeatNotFound
	CodeBookingNotFound = "BOOKING_NOT_FOUND"

	MessageAlreadyBooked    = "This seat is already booked for that date."
	MessageSeatNotFound     = seatModel.MessageSeatNotFound
	MessageBookingNotFound  = "Booking not found."
	MessageNotOwner         = "You can only cancel your own bookings."
	MessageUnderMaintenance = "This seat is under maintenance."
)
