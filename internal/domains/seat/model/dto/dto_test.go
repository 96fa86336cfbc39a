package dto_test

import (
	"testing"
	"time"

	"desk/internal/domains/seat/model"
	"desk/internal/domains/seat/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	seats := dto.Catalog("seed", now)

	assert.Len(t, seats, 50)
	assert.Equal(t, 1, seats[0].SeatNumber)
	assert.Equal(t, model.TypeDesignated, seats[39].Type)
	assert.Equal(t, 41, seats[40].SeatNumber)
	assert.Equal(t, model.TypeFloater, seats[40].Type)
	assert.Equal(t, "seed", seats[0].CreatedBy)

	ids := map[string]bool{}
	for _, seat := range seats {
		assert.True(t, seat.IsActive)
		ids[seat.ID] = true
	}

	assert.Len(t, ids, 50)
}

func TestGetSeatsResponse(t *testing.T) {
	res := dto.GetSeatsResponse{}
	res.FromModels([]model.Seat{
		{ID: "a", SeatNumber: 7, Type: model.TypeDesignated, IsActive: true},
		{ID: "b", SeatNumber: 41, Type: model.TypeFloater, IsActive: false},
	})

	assert.Equal(t, 1, res.Designated)
	assert.Equal(t, 1, res.Floater)
	assert.Equal(t, 1, res.Disabled)
	assert.Equal(t, "S07", res.Seats[0].Label)
}
