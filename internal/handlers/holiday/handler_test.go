package holiday_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "desk/infras/otel/mocks"
	"desk/internal/domains/holiday/model/dto"
	"desk/internal/domains/holiday/service"
	"desk/internal/domains/holiday/service/mocks"
	"desk/internal/handlers/holiday"
	"desk/shared/constant"
	"desk/shared/failure"
	"desk/shared/identity"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	holidayID = "3f2e1d0c-b9a8-4776-8554-433221100fed"
	missingID = "00000000-0000-4000-8000-000000000000"
)

func setup(t *testing.T) (*mocks.MockHoliday, http.Handler) {
	t.Helper()

	svc := mocks.NewMockHoliday(gomock.NewController(t))
	handler := holiday.New(svc, otelMocks.NewOtel())

	admin := identity.Identity{UserID: "admin", Email: "admin@example.com", Role: constant.RoleAdmin}

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(identity.WithIdentity(r.Context(), admin)))
		})
	})
	handler.Router(router)

	return svc, router
}

func TestCreateHoliday(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().
		Create(gomock.Any(), dto.CreateHolidayRequest{Date: "2026-03-25", Reason: "Holi"}, "admin").
		Return(dto.HolidayResponse{ID: holidayID, Date: "2026-03-25", Weekday: "Wednesday", Reason: "Holi"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/holidays", strings.NewReader(`{"date":"2026-03-25","reason":"Holi"}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wednesday")
}

func TestCreateHoliday_Duplicate(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().
		Create(gomock.Any(), gomock.Any(), "admin").
		Return(dto.HolidayResponse{}, failure.Conflict(service.CodeHolidayExists, "A holiday already exists on that date."))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/holidays", strings.NewReader(`{"date":"2026-03-25","reason":"Holi"}`)))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), service.CodeHolidayExists)
}

func TestCreateHoliday_Invalid(t *testing.T) {
	_, router := setup(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/holidays", strings.NewReader(`{"date":"25/03/2026"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAndDeleteHolidays(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().GetAll(gomock.Any()).Return(dto.GetHolidaysResponse{Holidays: []dto.HolidayResponse{{Date: "2026-03-25"}}}, nil)
	svc.EXPECT().Delete(gomock.Any(), holidayID).Return(nil)
	svc.EXPECT().Delete(gomock.Any(), missingID).Return(failure.NotFound(service.CodeHolidayNotFound, "Holiday not found."))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/holidays", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/holidays/"+holidayID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/holidays/"+missingID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
