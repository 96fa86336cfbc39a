package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"desk/config"
	otelMocks "desk/infras/otel/mocks"
	seatMocks "desk/internal/domains/seat/mocks"
	"desk/internal/domains/seat/model"
	"desk/internal/domains/seat/model/dto"
	"desk/internal/domains/seat/service"
	cacheMocks "desk/shared/cache/mocks"
	"desk/shared/constant"
	gDto "desk/shared/dto"
	"desk/shared/failure"
)

func setup(t *testing.T) (*seatMocks.MockSeat, *cacheMocks.MockRedisCache, service.Seat) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := seatMocks.NewMockSeat(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.StorageTimeoutSeconds = 5

	return mockRepo, mockCache, service.New(mockRepo, cfg, mockCache, otelMocks.NewOtel())
}

func waitFor(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("background cache call did not happen")
	}
}

func TestSeatService_GetAll(t *testing.T) {
	t.Run("cache miss loads from repository", func(t *testing.T) {
		mockRepo, mockCache, svc := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), "seat:gets", gomock.Any()).Return(errors.New("redis: nil"))
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.Seat, error) {
				assert.Equal(t, "seats.seat_number", params.SortBy)

				return []model.Seat{
					{ID: "a", SeatNumber: 1, Type: model.TypeDesignated, IsActive: true},
					{ID: "b", SeatNumber: 41, Type: model.TypeFloater, IsActive: true},
				}, nil
			})

		saved := make(chan struct{})
		mockCache.EXPECT().
			Save(gomock.Any(), "seat:gets", gomock.Any(), 3600).
			DoAndReturn(func(context.Context, string, any, int) error {
				close(saved)

				return nil
			})

		res, err := svc.GetAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, res.Seats, 2)
		assert.Equal(t, 1, res.Floater)

		waitFor(t, saved)
	})

	t.Run("cache hit", func(t *testing.T) {
		_, mockCache, svc := setup(t)

		mockCache.EXPECT().
			Get(gomock.Any(), "seat:gets", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, _ := value.(*dto.GetSeatsResponse)
				res.Seats = []dto.SeatResponse{{ID: "cached"}}

				return nil
			})

		res, err := svc.GetAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "cached", res.Seats[0].ID)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo, mockCache, svc := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		_, err := svc.GetAll(context.Background())
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	})
}

func TestSeatService_SetActive(t *testing.T) {
	t.Run("disable", func(t *testing.T) {
		mockRepo, mockCache, svc := setup(t)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error) {
				assert.Equal(t, false, req[model.FieldIsActive])
				assert.Equal(t, "admin", req[constant.FieldModifiedBy])

				_, args := filter.GetWhereClause()
				assert.Equal(t, "seat-7", args[model.FieldID])

				return 1, nil
			})

		cleared := make(chan struct{})
		mockCache.EXPECT().
			Clear(gomock.Any(), "seat:gets*").
			DoAndReturn(func(context.Context, string) error {
				close(cleared)

				return nil
			})

		require.NoError(t, svc.SetActive(context.Background(), "seat-7", false, "admin"))

		waitFor(t, cleared)
	})

	t.Run("unknown seat", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := svc.SetActive(context.Background(), "seat-404", true, "admin")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, model.CodeSeatNotFound, failure.GetReason(err))
	})

	t.Run("storage error", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("timeout"))

		err := svc.SetActive(context.Background(), "seat-7", true, "admin")
		assert.Equal(t, failure.ReasonStorageUnavailable, failure.GetReason(err))
	})
}

func TestSeatService_EnsureCatalog(t *testing.T) {
	t.Run("empty catalog is seeded", func(t *testing.T) {
		mockRepo, mockCache, svc := setup(t)

		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
		mockRepo.EXPECT().
			InsertBulk(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, seats []model.Seat) error {
				assert.Len(t, seats, model.DesignatedSeatCount+model.FloaterSeatCount)

				return nil
			})
		mockCache.EXPECT().Clear(gomock.Any(), "seat:gets*").Return(nil)

		created, err := svc.EnsureCatalog(context.Background(), "seed")
		require.NoError(t, err)
		assert.Equal(t, 50, created)
	})

	t.Run("existing catalog is kept", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(50, nil)

		created, err := svc.EnsureCatalog(context.Background(), "seed")
		require.NoError(t, err)
		assert.Zero(t, created)
	})
}
