package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"desk/config"
	"desk/infras/otel"
	"desk/internal/domains/seat/model"
	"desk/internal/domains/seat/model/dto"
	"desk/internal/domains/seat/repository"
	"desk/shared"
	"desk/shared/cache"
	"desk/shared/constant"
	gDto "desk/shared/dto"
	"desk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllSeat = "seat:gets"
)

type Seat interface {
	GetAll(ctx context.Context) (dto.GetSeatsResponse, error)
	SetActive(ctx context.Context, id string, active bool, actor string) error
	EnsureCatalog(ctx context.Context, actor string) (int, error)
}

type serviceImpl struct {
	repo  repository.Seat
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Seat, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Seat {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetAll lists the catalog ordered by seat number.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetSeatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllSeat")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetAllSeat)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for seats")

		return res, nil
	}

	if !cache.IsMiss(err) {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("cache read failed, falling back to storage")
	}

	ctx, cancel := shared.WithStorageTimeout(ctx, s.cfg.Booking.StorageTimeoutSeconds)
	defer cancel()

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldSeatNumber,
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get seats")

		return res, failure.Unavailable(fmt.Errorf("failed to get seats: %w", err)) // nolint:wrapcheck
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save seats to cache")
		}
	}()

	return res, nil
}

// SetActive flips the maintenance flag. It never touches existing bookings.
func (s *serviceImpl) SetActive(ctx context.Context, id string, active bool, actor string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetActive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ctx, cancel := shared.WithStorageTimeout(ctx, s.cfg.Booking.StorageTimeoutSeconds)
	defer cancel()

	affected, err := s.repo.Update(ctx, map[string]any{
		model.FieldIsActive:      active,
		constant.FieldModifiedAt: time.Now(),
		constant.FieldModifiedBy: actor,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("seat_id", id).Msg("failed to update seat")

		return failure.Unavailable(fmt.Errorf("failed to update seat: %w", err)) // nolint:wrapcheck
	}

	if affected == 0 {
		return failure.NotFound(model.CodeSeatNotFound, model.MessageSeatNotFound) // nolint:wrapcheck
	}

	log.Info().Str("seat_id", id).Bool("active", active).Str("actor", actor).Msg("seat maintenance flag changed")

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllSeat)

	return nil
}

// EnsureCatalog inserts the standard layout when no seats exist and reports how many were created.
func (s *serviceImpl) EnsureCatalog(ctx context.Context, actor string) (created int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureCatalog")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	count, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return 0, fmt.Errorf("failed to count seats: %w", err)
	}

	if count > 0 {
		log.Info().Int("seats", count).Msg("seat catalog already present")

		return 0, nil
	}

	seats := dto.Catalog(actor, time.Now())
	if err = s.repo.InsertBulk(ctx, seats); err != nil {
		return 0, fmt.Errorf("failed to insert seats: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllSeat)

	return len(seats), nil
}
