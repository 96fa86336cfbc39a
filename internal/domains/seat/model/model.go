package model

import "desk/shared/model"

const (
	TableName  = "seats"
	EntityName = "seat"

	FieldID         = "id"
	FieldSeatNumber = "seat_number"
	FieldType       = "type"
	FieldIsActive   = "is_active"
)

const (
	TypeDesignated = "designated"
	TypeFloater    = "floater"
)

const (
	CodeSeatNotFound    = "SEAT_NOT_FOUND"
	MessageSeatNotFound = "Seat not found."
)

const (
	DesignatedSeatCount = 40
	FloaterSeatCount    = 10
)

type Seat struct {
	ID         string `db:"id"`
	SeatNumber int    `db:"seat_number"`
	Type       string `db:"type"`
	IsActive   bool   `db:"is_active"`
	model.Metadata
}

// TypeForNumber follows the office convention: 1-40 designated, the rest floater.
func TypeForNumber(number int) string {
	if number <= DesignatedSeatCount {
		return TypeDesignated
	}

	return TypeFloater
}
