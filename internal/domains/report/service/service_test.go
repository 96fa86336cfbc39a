package service_test

import (
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"desk/config"
	otelMocks "desk/infras/otel/mocks"
	s3Mocks "desk/infras/s3/mocks"
	bookingDto "desk/internal/domains/booking/model/dto"
	bookingMocks "desk/internal/domains/booking/service/mocks"
	"desk/internal/domains/report/model/dto"
	"desk/internal/domains/report/service"
	"desk/shared/failure"
)

var now = time.Date(2026, time.March, 26, 10, 30, 0, 0, time.UTC)

func setup(t *testing.T) (*bookingMocks.MockBooking, *s3Mocks.MockS3, service.Report) {
	t.Helper()

	ctrl := gomock.NewController(t)

	bookings := bookingMocks.NewMockBooking(ctrl)
	store := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.External.S3.ReportDirectory = "reports/bookings"

	return bookings, store, service.New(bookings, store, cfg, otelMocks.NewOtel())
}

func TestReportService_ExportWeek(t *testing.T) {
	t.Run("writes one row per booking", func(t *testing.T) {
		bookings, store, svc := setup(t)

		bookings.EXPECT().
			GetWeek(gomock.Any(), 2026, 13).
			Return(bookingDto.GetBookingsResponse{
				Bookings: []bookingDto.BookingResponse{
					{ID: "b-1", SeatNumber: 7, SeatType: "DESIGNATED", UserID: "alice", Date: "2026-03-23"},
					{ID: "b-2", SeatNumber: 45, SeatType: "FLOATER", UserID: "bob", Date: "2026-03-26"},
				},
				TotalData: 2,
			}, nil)

		var stored string

		store.EXPECT().
			PutObject(gomock.Any(), "reports/bookings", "2026-13-20260326T103000Z.csv", "text/csv", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, _ string, data []byte) (string, error) {
				stored = string(data)

				return "https://files.example.com/reports/bookings/2026-13-20260326T103000Z.csv", nil
			})

		res, err := svc.ExportWeek(context.Background(), 2026, 13, "admin", now)
		require.NoError(t, err)

		assert.Equal(t, dto.ExportResponse{
			Week:        "2026-13",
			Rows:        2,
			ObjectKey:   "reports/bookings/2026-13-20260326T103000Z.csv",
			URL:         "https://files.example.com/reports/bookings/2026-13-20260326T103000Z.csv",
			GeneratedAt: "2026-03-26T10:30:00Z",
		}, res)

		records, err := csv.NewReader(strings.NewReader(stored)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, dto.ExportColumns, records[0])
		assert.Equal(t, []string{"2026-03-23", "Monday", "WEEK_1", "7", "DESIGNATED", "alice", "b-1"}, records[1])
		assert.Equal(t, []string{"2026-03-26", "Thursday", "WEEK_1", "45", "FLOATER", "bob", "b-2"}, records[2])
	})

	t.Run("empty week still produces a header", func(t *testing.T) {
		bookings, store, svc := setup(t)

		bookings.EXPECT().
			GetWeek(gomock.Any(), 2026, 14).
			Return(bookingDto.GetBookingsResponse{}, nil)

		store.EXPECT().
			PutObject(gomock.Any(), "reports/bookings", gomock.Any(), "text/csv", []byte("date,weekday,week_type,seat_number,seat_type,user_id,booking_id\n")).
			Return("https://files.example.com/x.csv", nil)

		res, err := svc.ExportWeek(context.Background(), 2026, 14, "admin", now)
		require.NoError(t, err)
		assert.Zero(t, res.Rows)
		assert.Equal(t, "2026-14", res.Week)
	})

	t.Run("booking lookup failure is passed through", func(t *testing.T) {
		bookings, _, svc := setup(t)

		bookings.EXPECT().
			GetWeek(gomock.Any(), 2026, 13).
			Return(bookingDto.GetBookingsResponse{}, failure.Unavailable(errors.New("db down")))

		_, err := svc.ExportWeek(context.Background(), 2026, 13, "admin", now)
		require.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	})

	t.Run("store failure is unavailable", func(t *testing.T) {
		bookings, store, svc := setup(t)

		bookings.EXPECT().
			GetWeek(gomock.Any(), 2026, 13).
			Return(bookingDto.GetBookingsResponse{}, nil)
		store.EXPECT().
			PutObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("bucket missing"))

		_, err := svc.ExportWeek(context.Background(), 2026, 13, "admin", now)
		require.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
		assert.Equal(t, failure.ReasonStorageUnavailable, failure.GetReason(err))
	})

	t.Run("malformed booking date is internal", func(t *testing.T) {
		bookings, _, svc := setup(t)

		bookings.EXPECT().
			GetWeek(gomock.Any(), 2026, 13).
			Return(bookingDto.GetBookingsResponse{
				Bookings: []bookingDto.BookingResponse{{ID: "b-1", Date: "yesterday"}},
			}, nil)

		_, err := svc.ExportWeek(context.Background(), 2026, 13, "admin", now)
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}
