package seeder_test

import (
	"context"
	"testing"

	"desk/config"
	"desk/infras/jwt"
	holidayDto "desk/internal/domains/holiday/model/dto"
	holidayService "desk/internal/domains/holiday/service"
	holidayMocks "desk/internal/domains/holiday/service/mocks"
	seatMocks "desk/internal/domains/seat/service/mocks"
	"desk/internal/seeder"
	cacheMocks "desk/shared/cache/mocks"
	"desk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newJWT() jwt.JWT {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "access"
	cfg.JWT.RefreshSecret = "refresh"
	cfg.JWT.AccessExpireMin = 60
	cfg.JWT.RefreshExpireMin = 120

	return jwt.New(cfg)
}

func TestRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	seats := seatMocks.NewMockSeat(ctrl)
	holidays := holidayMocks.NewMockHoliday(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	tokens := newJWT()

	seats.EXPECT().EnsureCatalog(gomock.Any(), "system").Return(50, nil)

	holidays.EXPECT().
		Create(gomock.Any(), gomock.Any(), "system").
		DoAndReturn(func(_ context.Context, req holidayDto.CreateHolidayRequest, _ string) (holidayDto.HolidayResponse, error) {
			if req.Date == "2026-03-25" {
				return holidayDto.HolidayResponse{}, failure.Conflict(holidayService.CodeHolidayExists, "A holiday already exists on that date.")
			}

			return holidayDto.HolidayResponse{Date: req.Date}, nil
		}).
		Times(len(seeder.Holidays))

	redisCache.EXPECT().Clear(gomock.Any(), "holiday*").Return(nil)

	res, err := seeder.New(seats, holidays, tokens, redisCache).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 50, res.SeatsCreated)
	assert.Equal(t, len(seeder.Holidays)-1, res.HolidaysCreated)
	require.Len(t, res.Tokens, len(seeder.Identities))

	claims, err := tokens.ValidateToken(res.Tokens["bob"].AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "B", claims.Batch)
}

func TestRun_HolidayStorageDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	seats := seatMocks.NewMockSeat(ctrl)
	holidays := holidayMocks.NewMockHoliday(ctrl)

	seats.EXPECT().EnsureCatalog(gomock.Any(), "system").Return(0, nil)
	holidays.EXPECT().Create(gomock.Any(), gomock.Any(), "system").Return(holidayDto.HolidayResponse{}, failure.Unavailable(assert.AnError))

	_, err := seeder.New(seats, holidays, newJWT(), cacheMocks.NewMockRedisCache(ctrl)).Run(context.Background())

	assert.ErrorContains(t, err, "seeding holiday 2026-03-25")
}
