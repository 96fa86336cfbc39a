package dto

import (
	"time"

	"desk/internal/domains/holiday/model"
	"desk/shared/calendar"
	gDto "desk/shared/dto"
	gModel "desk/shared/model"

	"github.com/google/uuid"
)

type CreateHolidayRequest struct {
	Date   string `json:"date"   validate:"required,datetime=2006-01-02"`
	Reason string `json:"reason" validate:"required,max=200"`
}

func (c *CreateHolidayRequest) ToModel(actor string, now time.Time) (model.Holiday, error) {
	date, err := calendar.ParseDate(c.Date)
	if err != nil {
		return model.Holiday{}, err
	}

	return model.Holiday{
		ID:       uuid.NewString(),
		Date:     date,
		Reason:   c.Reason,
		Metadata: gModel.NewMetadata(actor, now),
	}, nil
}

type HolidayResponse struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Reason  string `json:"reason"`
	gDto.Metadata
}

func (r *HolidayResponse) FromModel(model model.Holiday) {
	r.ID = model.ID
	r.Date = calendar.FormatDate(model.Date)
	r.Weekday = model.Date.Weekday().String()
	r.Reason = model.Reason
	r.Metadata.FromModel(model.Metadata)
}

type GetHolidaysResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
}

func (r *GetHolidaysResponse) FromModels(models []model.Holiday) {
	r.Holidays = make([]HolidayResponse, len(models))
	for i, mod := range models {
		r.Holidays[i].FromModel(mod)
	}
}
