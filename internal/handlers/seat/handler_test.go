package seat_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "desk/infras/otel/mocks"
	bookingDto "desk/internal/domains/booking/model/dto"
	bookingMocks "desk/internal/domains/booking/service/mocks"
	"desk/internal/domains/seat/model/dto"
	seatMocks "desk/internal/domains/seat/service/mocks"
	"desk/internal/handlers/seat"
	"desk/shared/calendar"
	"desk/shared/failure"
	"desk/shared/identity"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var bob = identity.Identity{UserID: "bob", Email: "bob@example.com", Role: "USER", Batch: calendar.BatchB}

func setup(t *testing.T) (*seatMocks.MockSeat, *bookingMocks.MockBooking, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	seats := seatMocks.NewMockSeat(ctrl)
	bookings := bookingMocks.NewMockBooking(ctrl)
	handler := seat.New(seats, bookings, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(identity.WithIdentity(r.Context(), bob)))
		})
	})
	handler.Router(router)

	return seats, bookings, router
}

func TestGetSeats(t *testing.T) {
	seats, _, router := setup(t)

	seats.EXPECT().GetAll(gomock.Any()).Return(dto.GetSeatsResponse{Designated: 40, Floater: 10}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/seats", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"floater":10`)
}

func TestGetSeats_StorageDown(t *testing.T) {
	seats, _, router := setup(t)

	seats.EXPECT().GetAll(gomock.Any()).Return(dto.GetSeatsResponse{}, failure.Unavailable(assert.AnError))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/seats", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), failure.ReasonStorageUnavailable)
}

func TestGetAvailability(t *testing.T) {
	_, bookings, router := setup(t)

	bookings.EXPECT().
		Availability(gomock.Any(), bob, "2026-03-26", gomock.Any()).
		Return(bookingDto.AvailabilityResponse{Date: "2026-03-26", Batch: "B", WeekType: "WEEK_1"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/seats/availability?date=2026-03-26", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"week_type":"WEEK_1"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/seats/availability", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
