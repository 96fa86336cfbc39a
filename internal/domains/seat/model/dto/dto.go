package dto

import (
	"fmt"
	"time"

	"desk/internal/domains/seat/model"
	gDto "desk/shared/dto"
	gModel "desk/shared/model"

	"github.com/google/uuid"
)

type SeatResponse struct {
	ID         string `json:"id"`
	SeatNumber int    `json:"seat_number"`
	Label      string `json:"label"`
	Type       string `json:"type"`
	IsActive   bool   `json:"is_active"`
	gDto.Metadata
}

func (r *SeatResponse) FromModel(model model.Seat) {
	r.ID = model.ID
	r.SeatNumber = model.SeatNumber
	r.Label = fmt.Sprintf("S%02d", model.SeatNumber)
	r.Type = model.Type
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetSeatsResponse struct {
	Seats      []SeatResponse `json:"seats"`
	Designated int            `json:"designated"`
	Floater    int            `json:"floater"`
	Disabled   int            `json:"disabled"`
}

func (r *GetSeatsResponse) FromModels(models []model.Seat) {
	r.Seats = make([]SeatResponse, len(models))

	for i, mod := range models {
		r.Seats[i].FromModel(mod)

		if mod.Type == model.TypeFloater {
			r.Floater++
		} else {
			r.Designated++
		}

		if !mod.IsActive {
			r.Disabled++
		}
	}
}

// Catalog builds the standard office layout: seats 1-40 designated, 41-50 floater.
func Catalog(actor string, now time.Time) []model.Seat {
	seats := make([]model.Seat, 0, model.DesignatedSeatCount+model.FloaterSeatCount)

	for number := 1; number <= model.DesignatedSeatCount+model.FloaterSeatCount; number++ {
		seats = append(seats, model.Seat{
			ID:         uuid.NewString(),
			SeatNumber: number,
			Type:       model.TypeForNumber(number),
			IsActive:   true,
			Metadata:   gModel.NewMetadata(actor, now),
		})
	}

	return seats
}
