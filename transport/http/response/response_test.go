package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"desk/shared/failure"
	"desk/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		reason string
	}{
		{
			name:   "domain rejection",
			err:    failure.Rejected("BEFORE_CUTOFF", "Booking opens at 15:00."),
			code:   http.StatusBadRequest,
			reason: "BEFORE_CUTOFF",
		},
		{
			name:   "conflict",
			err:    failure.Conflict("ALREADY_BOOKED", "This seat is already booked for that date."),
			code:   http.StatusConflict,
			reason: "ALREADY_BOOKED",
		},
		{
			name:   "plain error",
			err:    errors.New("boom"),
			code:   http.StatusInternalServerError,
			reason: failure.ReasonInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			body := decode(t, rec)
			assert.Equal(t, tt.err.Error(), body["error"])
			assert.Equal(t, tt.reason, body["reason"])
		})
	}
}

func TestWithJSONAndMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "b-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, map[string]any{"id": "b-1"}, decode(t, rec)["data"])

	rec = httptest.NewRecorder()
	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Equal(t, "REQUEST LIMIT EXCEEDED", decode(t, rec)["message"])
}

func TestWithError_RetryAfter(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithError(rec, failure.Unavailable(errors.New("connection refused")))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	rec = httptest.NewRecorder()
	response.WithError(rec, failure.Conflict("ALREADY_BOOKED", "taken"))

	assert.Empty(t, rec.Header().Get("Retry-After"))
}

func TestWithJSON_Unencodable(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
