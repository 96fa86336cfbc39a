package model

import (
	"desk/shared/model"
	"time"
)

const (
	TableName  = "holidays"
	EntityName = "holiday"

	FieldID     = "id"
	FieldDate   = "date"
	FieldReason = "reason"
)

type Holiday struct {
	ID     string    `db:"id"`
	Date   time.Time `db:"date"`
	Reason string    `db:"reason"`
	model.Metadata
}
