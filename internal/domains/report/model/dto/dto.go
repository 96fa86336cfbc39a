package dto

import (
	"fmt"
	"time"

	"desk/shared/constant"
)

// Columns of the weekly occupancy export, in file order.
var ExportColumns = []string{"date", "weekday", "week_type", "seat_number", "seat_type", "user_id", "booking_id"}

type ExportWeekRequest struct {
	Week string `json:"week" validate:"required,isoweek"`
}

type ExportResponse struct {
	Week        string `json:"week"`
	Rows        int    `json:"rows"`
	ObjectKey   string `json:"object_key"`
	URL         string `json:"url"`
	GeneratedAt string `json:"generated_at"`
}

// ExportFileName is unique per generation so earlier exports are never overwritten.
func ExportFileName(year, week int, now time.Time) string {
	return fmt.Sprintf(constant.ISOWeekFormat+"-%s.csv", year, week, now.UTC().Format("20060102T150405Z"))
}
