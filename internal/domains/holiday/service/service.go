package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"desk/config"
	"desk/infras/otel"
	"desk/internal/domains/holiday/model"
	"desk/internal/domains/holiday/model/dto"
	"desk/internal/domains/holiday/repository"
	"desk/shared"
	"desk/shared/cache"
	"desk/shared/constant"
	gDto "desk/shared/dto"
	"desk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllHoliday = "holiday:gets"

	CodeHolidayExists   = "HOLIDAY_EXISTS"
	CodeHolidayNotFound = "HOLIDAY_NOT_FOUND"
)

type Holiday interface {
	GetAll(ctx context.Context) (dto.GetHolidaysResponse, error)
	Create(ctx context.Context, req dto.CreateHolidayRequest, actor string) (dto.HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Holiday
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Holiday, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Holiday {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetHolidaysResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllHoliday")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetAllHoliday)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for holidays")

		return res, nil
	}

	if !cache.IsMiss(err) {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("cache read failed, falling back to storage")
	}

	ctx, cancel := shared.WithStorageTimeout(ctx, s.cfg.Booking.StorageTimeoutSeconds)
	defer cancel()

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldDate,
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get holidays")

		return res, failure.Unavailable(fmt.Errorf("failed to get holidays: %w", err)) // nolint:wrapcheck
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save holidays to cache")
		}
	}()

	return res, nil
}

// Create registers a holiday. Bookings already made for that day are kept.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHolidayRequest, actor string) (res dto.HolidayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateHoliday")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	holiday, err := req.ToModel(actor, time.Now())
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	ctx, cancel := shared.WithStorageTimeout(ctx, s.cfg.Booking.StorageTimeoutSeconds)
	defer cancel()

	err = s.repo.Insert(ctx, holiday)
	if errors.Is(err, repository.ErrDuplicateDate) {
		return res, failure.Conflict(CodeHolidayExists, "A holiday already exists on that date.") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create holiday")

		return res, failure.Unavailable(fmt.Errorf("failed to create holiday: %w", err)) // nolint:wrapcheck
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllHoliday)

	res.FromModel(holiday)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteHoliday")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ctx, cancel := shared.WithStorageTimeout(ctx, s.cfg.Booking.StorageTimeoutSeconds)
	defer cancel()

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("holiday_id", id).Msg("failed to delete holiday")

		return failure.Unavailable(fmt.Errorf("failed to delete holiday: %w", err)) // nolint:wrapcheck
	}

	if affected == 0 {
		return failure.NotFound(CodeHolidayNotFound, "Holiday not found.") // nolint:wrapcheck
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllHoliday)

	return nil
}
