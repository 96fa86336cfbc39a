package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"desk/shared/failure"
	"desk/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingBody struct {
	SeatID string `json:"seat_id" validate:"required,uuid"`
	Date   string `json:"date"    validate:"required,datetime=2006-01-02"`
	Batch  string `json:"batch"   validate:"omitempty,batch"`
	Week   string `json:"week"    validate:"omitempty,isoweek"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    bookingBody
		message string
	}{
		{
			name: "valid",
			data: bookingBody{SeatID: "4d6f7bd2-8a0a-4b6e-9bb5-1f6cf9a0c001", Date: "2026-03-23", Batch: "B", Week: "2026-13"},
		},
		{
			name:    "missing seat",
			data:    bookingBody{Date: "2026-03-23"},
			message: "SeatID is required",
		},
		{
			name:    "seat is not a uuid",
			data:    bookingBody{SeatID: "seat-7", Date: "2026-03-23"},
			message: "SeatID must be a valid UUID",
		},
		{
			name:    "malformed date",
			data:    bookingBody{SeatID: "4d6f7bd2-8a0a-4b6e-9bb5-1f6cf9a0c001", Date: "23/03/2026"},
			message: "Date must match the format 2006-01-02",
		},
		{
			name:    "unknown batch",
			data:    bookingBody{SeatID: "4d6f7bd2-8a0a-4b6e-9bb5-1f6cf9a0c001", Date: "2026-03-23", Batch: "C"},
			message: "Batch must be A or B",
		},
		{
			name:    "week out of range",
			data:    bookingBody{SeatID: "4d6f7bd2-8a0a-4b6e-9bb5-1f6cf9a0c001", Date: "2026-03-23", Week: "2026-54"},
			message: "Week must be an ISO week formatted as YYYY-WW",
		},
		{
			name:    "every failing field is reported",
			data:    bookingBody{Batch: "C"},
			message: "SeatID is required; Date is required; Batch must be A or B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, failure.ReasonInvalidRequest, failure.GetReason(err))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"seat_id":"4d6f7bd2-8a0a-4b6e-9bb5-1f6cf9a0c001","date":"2026-03-23"}`,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"seat_id":"4d6f7bd2-8a0a-4b6e-9bb5-1f6cf9a0c001","date":"tomorrow"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"seat_id":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingBody

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("A", "batch"))
	assert.Error(t, validator.ValidateVar("a", "batch"))
	assert.NoError(t, validator.ValidateVar("", "empty"))
	assert.Error(t, validator.ValidateVar("x", "empty"))
	assert.NoError(t, validator.ValidateVar("designated", "oneof=designated floater"))
	assert.Error(t, validator.ValidateVar("standing", "oneof=designated floater"))
}

func TestParseISOWeek(t *testing.T) {
	year, week, err := validator.ParseISOWeek("2026-13")
	require.NoError(t, err)
	assert.Equal(t, 2026, year)
	assert.Equal(t, 13, week)

	for _, value := range []string{"2026-00", "2026-54", "2026-1", "26-13", "2026/13", ""} {
		_, _, err = validator.ParseISOWeek(value)
		assert.Error(t, err, value)
	}
}
