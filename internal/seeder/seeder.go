// Package seeder loads the office layout, sample holidays and development
// identities into a fresh environment.
package seeder

import (
	"context"
	"errors"
	"fmt"

	"desk/infras/jwt"
	holidayDto "desk/internal/domains/holiday/model/dto"
	holidayService "desk/internal/domains/holiday/service"
	seatService "desk/internal/domains/seat/service"
	"desk/shared"
	"desk/shared/cache"
	"desk/shared/constant"
	"desk/shared/failure"

	"github.com/rs/zerolog/log"
)

const cachePrefixHoliday = "holiday"

// Holidays observed by the sample office.
var Holidays = []holidayDto.CreateHolidayRequest{
	{Date: "2026-03-25", Reason: "Holi"},
	{Date: "2026-04-14", Reason: "Dr. Ambedkar Jayanti"},
	{Date: "2026-08-15", Reason: "Independence Day"},
	{Date: "2026-10-02", Reason: "Gandhi Jayanti"},
	{Date: "2026-12-25", Reason: "Christmas"},
}

// Identities get development tokens printed after seeding.
var Identities = []jwt.Subject{
	{UserID: "admin", Email: "admin@desk.local", Role: constant.RoleAdmin, Batch: "A"},
	{UserID: "alice", Email: "alice@desk.local", Role: constant.RoleUser, Batch: "A"},
	{UserID: "bob", Email: "bob@desk.local", Role: constant.RoleUser, Batch: "B"},
	{UserID: "carol", Email: "carol@desk.local", Role: constant.RoleUser, Batch: "A"},
}

type Result struct {
	SeatsCreated    int
	HolidaysCreated int
	Tokens          map[string]*jwt.TokenPair
}

type Seeder struct {
	seats    seatService.Seat
	holidays holidayService.Holiday
	jwt      jwt.JWT
	cache    cache.RedisCache
}

func New(seats seatService.Seat, holidays holidayService.Holiday, tokens jwt.JWT, redisCache cache.RedisCache) *Seeder {
	return &Seeder{
		seats:    seats,
		holidays: holidays,
		jwt:      tokens,
		cache:    redisCache,
	}
}

// Run is idempotent: existing seats and holidays are left alone.
func (s *Seeder) Run(ctx context.Context) (res Result, err error) {
	res.SeatsCreated, err = s.seats.EnsureCatalog(ctx, constant.SystemActor)
	if err != nil {
		return res, fmt.Errorf("seeding seats: %w", err)
	}

	for _, req := range Holidays {
		_, err := s.holidays.Create(ctx, req, constant.SystemActor)

		var fail *failure.Failure

		switch {
		case err == nil:
			res.HolidaysCreated++
		case errors.As(err, &fail) && fail.Reason == holidayService.CodeHolidayExists:
			log.Debug().Str("date", req.Date).Msg("holiday already present")
		default:
			return res, fmt.Errorf("seeding holiday %s: %w", req.Date, err)
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefixHoliday)

	res.Tokens = make(map[string]*jwt.TokenPair, len(Identities))

	for _, subject := range Identities {
		pair, err := s.jwt.GenerateTokenPair(subject)
		if err != nil {
			return res, fmt.Errorf("minting token for %s: %w", subject.UserID, err)
		}

		res.Tokens[subject.UserID] = pair
	}

	return res, nil
}
