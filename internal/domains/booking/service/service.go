package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"desk/config"
	"desk/infras/kafka"
	"desk/infras/otel"
	"desk/internal/domains/booking/model"
	"desk/internal/domains/booking/model/dto"
	"desk/internal/domains/booking/policy"
	"desk/internal/domains/booking/repository"
	seatModel "desk/internal/domains/seat/model"
	seatRepo "desk/internal/domains/seat/repository"
	"desk/shared"
	"desk/shared/calendar"
	"desk/shared/constant"
	gDto "desk/shared/dto"
	"desk/shared/failure"
	"desk/shared/identity"

	"github.com/rs/zerolog/log"
)

// Booking allocates seats for a calendar day and releases them again.
type Booking interface {
	Create(ctx context.Context, who identity.Identity, req dto.CreateBookingRequest, now time.Time) (dto.BookingResponse, error)
	Release(ctx context.Context, id string, who identity.Identity, isAdmin bool) error
	Preview(ctx context.Context, who identity.Identity, req dto.EligibilityRequest, now time.Time) (dto.EligibilityResponse, error)
	Availability(ctx context.Context, who identity.Identity, date string, now time.Time) (dto.AvailabilityResponse, error)
	GetWeek(ctx context.Context, year, week int) (dto.GetBookingsResponse, error)
	GetMine(ctx context.Context, who identity.Identity, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	Week(ctx context.Context, who identity.Identity, year, week int) (dto.WeekResponse, error)
	NextBookable(now time.Time) dto.NextBookableResponse
}

type serviceImpl struct {
	repo     repository.Booking
	seatRepo seatRepo.Seat
	policy   policy.Policy
	kafka    kafka.Client
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Booking, seatRepo seatRepo.Seat, policy policy.Policy, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		seatRepo: seatRepo,
		policy:   policy,
		kafka:    kafka,
		cfg:      cfg,
		otel:     otel,
	}
}

// Create books a seat after the policy approves it. The insert itself is the
// concurrency guard: losers of a race get ALREADY_BOOKED from the unique index.
// Disabled seats are not rejected here.
func (s *serviceImpl) Create(ctx context.Context, who identity.Identity, req dto.CreateBookingRequest, now time.Time) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !who.Batch.Valid() {
		return res, failure.BadRequestFromString("your account has no batch assigned") // nolint:wrapcheck
	}

	ctx, cancel := shared.WithStorageTimeout(ctx, s.cfg.Booking.StorageTimeoutSeconds)
	defer cancel()

	seat, err := s.seatRepo.Get(ctx, shared.FilterByID(req.SeatID, seatModel.FieldID, seatModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("seat_id", req.SeatID).Msg("failed to get seat")

		return res, failure.Unavailable(fmt.Errorf("failed to get seat: %w", err)) // nolint:wrapcheck
	}

	if seat.ID == constant.Empty {
		return res, failure.NotFound(model.CodeSeatNotFound, model.MessageSeatNotFound) // nolint:wrapcheck
	}

	decision, err := s.policy.Decide(ctx, who.Batch, seat.Type, date, now)
	if err != nil {
		return res, storageFailure(err)
	}

	if !decision.Allowed {
		log.Info().
			Str("user_id", who.UserID).
			Int("seat_number", seat.SeatNumber).
			Str("date", req.Date).
			Str("code", decision.Code).
			Msg("booking rejected by policy")

		return res, decision.Err()
	}

	booking := req.ToModel(who.UserID, date, now)
	booking.SeatNumber = seat.SeatNumber
	booking.SeatType = seat.Type

	err = s.repo.Create(ctx, booking)

	switch {
	case errors.Is(err, repository.ErrAlreadyBooked):
		return res, failure.Conflict(model.CodeAlreadyBooked, model.MessageAlreadyBooked) // nolint:wrapcheck
	case errors.Is(err, repository.ErrSeatMissing):
		return res, failure.NotFound(model.CodeSeatNotFound, model.MessageSeatNotFound) // nolint:wrapcheck
	case err != nil:
		log.Error().Err(err).Msg("failed to create booking")

		return res, failure.Unavailable(fmt.Errorf("failed to create booking: %w", err)) // nolint:wrapcheck
	}

	s.publish(ctx, dto.NewBookingEvent(dto.EventBookingCreated, booking, who.UserID, false, now))

	res.FromModel(booking)

	return res, nil
}

// Release deletes a booking owned by who. isAdmin lifts the ownership check.
func (s *serviceImpl) Release(ctx context.Context, id string, who identity.Identity, isAdmin bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ctx, cancel := shared.WithStorageTimeout(ctx, s.cfg.Booking.StorageTimeoutSeconds)
	defer cancel()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return failure.Unavailable(fmt.Errorf("failed to get booking: %w", err)) // nolint:wrapcheck
	}

	if booking.ID == constant.Empty {
		return failure.NotFound(model.CodeBookingNotFound, model.MessageBookingNotFound) // nolint:wrapcheck
	}

	if booking.UserID != who.UserID && !isAdmin {
		log.Warn().Str("booking_id", id).Str("user_id", who.UserID).Msg("release refused, not the owner")

		return failure.Forbidden(model.MessageNotOwner) // nolint:wrapcheck
	}

	affected, err := s.repo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to delete booking")

		return failure.Unavailable(fmt.Errorf("failed to delete booking: %w", err)) // nolint:wrapcheck
	}

	if affected == 0 {
		return failure.NotFound(model.CodeBookingNotFound, model.MessageBookingNotFound) // nolint:wrapcheck
	}

	override := booking.UserID != who.UserID
	s.publish(ctx, dto.NewBookingEvent(dto.EventBookingReleased, booking, who.UserID, override, time.Now()))

	return nil
}

// Preview runs the same policy as Create without touching bookings.
func (s *serviceImpl) Preview(ctx context.Context, who identity.Identity, req dto.EligibilityRequest, now time.Time) (res dto.EligibilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Preview")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	batch := who.Batch
	if req.Batch != constant.Empty {
		batch = calendar.Batch(req.Batch)
	}

	ctx, cancel := shared.WithStorageTimeout(ctx, s.cfg.Booking.StorageTimeoutSeconds)
	defer cancel()

	decision, err := s.policy.Decide(ctx, batch, req.SeatType, date, now)
	if err != nil {
		return res, storageFailure(err)
	}

	res.FromDecision(batch, req.SeatType, date, decision)

	return res, nil
}

// Availability renders the seat grid for date with one policy decision per seat type.
func (s *serviceImpl) Availability(ctx context.Context, who identity.Identity, date string, now time.Time) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day, err := calendar.ParseDate(date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !who.Batch.Valid() {
		return res, failure.BadRequestFromString("your account has no batch assigned") // nolint:wrapcheck
	}

	ctx, cancel := shared.WithStorageTimeout(ctx, s.cfg.Booking.StorageTimeoutSeconds)
	defer cancel()

	seats, err := s.seatRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  seatModel.TableName + "." + seatModel.FieldSeatNumber,
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get seats")

		return res, failure.Unavailable(fmt.Errorf("failed to get seats: %w", err)) // nolint:wrapcheck
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filterByDates(day, day))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, failure.Unavailable(fmt.Errorf("failed to get bookings: %w", err)) // nolint:wrapcheck
	}

	decisions := make(map[string]policy.Decision, 2)
	for _, seatType := range []string{seatModel.TypeDesignated, seatModel.TypeFloater} {
		decision, err := s.policy.Decide(ctx, who.Batch, seatType, day, now)
		if err != nil {
			return res, storageFailure(err)
		}

		decisions[seatType] = decision
	}

	designated := decisions[seatModel.TypeDesignated]

	res.Date = calendar.FormatDate(day)
	res.Batch = string(who.Batch)
	res.WeekType = string(designated.WeekType)

	if designated.NextBookableDate != nil {
		next := calendar.FormatDate(*designated.NextBookableDate)
		res.NextBookableDate = &next
	}

	res.FromModels(who.UserID, seats, bookings, decisions)

	return res, nil
}

// GetWeek lists every booking from Monday to Friday of an ISO week.
func (s *serviceImpl) GetWeek(ctx context.Context, year, week int) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetWeek")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	dates, err := calendar.WeekDates(year, week)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	ctx, cancel := shared.WithStorageTimeout(ctx, s.cfg.Booking.StorageTimeoutSeconds)
	defer cancel()

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldDate,
		SortDir: gDto.SortDirAsc,
	}, filterByDates(dates[0], dates[len(dates)-1]))
	if err != nil {
		log.Error().Err(err).Int("year", year).Int("week", week).Msg("failed to get bookings of week")

		return res, failure.Unavailable(fmt.Errorf("failed to get bookings: %w", err)) // nolint:wrapcheck
	}

	res.FromModels(models, len(models), len(models))

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, who identity.Identity, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.SortBy = model.TableName + "." + model.FieldDate
	if params.SortDir == constant.Empty {
		params.SortDir = gDto.SortDirAsc
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    who.UserID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return s.list(ctx, params, filter)
}

// GetAll is the admin listing, newest date first unless asked otherwise.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.SortBy = model.TableName + "." + model.FieldDate
	if params.SortDir == constant.Empty {
		params.SortDir = gDto.SortDirDesc
	}

	return s.list(ctx, params, gDto.FilterGroup{})
}

func (s *serviceImpl) Week(ctx context.Context, who identity.Identity, year, week int) (res dto.WeekResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Week")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	dates, err := calendar.WeekDates(year, week)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res.FromDates(year, week, who.Batch, dates)

	return res, nil
}

func (s *serviceImpl) NextBookable(now time.Time) (res dto.NextBookableResponse) {
	clock := s.policy.Clock()

	res.CutoffHour = clock.Hour
	res.Timezone = clock.Location.String()

	if next, open := s.policy.NextBookableDate(now); open {
		formatted := calendar.FormatDate(next)
		res.Date = &formatted
	}

	return res
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, cancel := shared.WithStorageTimeout(ctx, s.cfg.Booking.StorageTimeoutSeconds)
	defer cancel()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, failure.Unavailable(fmt.Errorf("failed to count bookings: %w", err)) // nolint:wrapcheck
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, failure.Unavailable(fmt.Errorf("failed to get bookings: %w", err)) // nolint:wrapcheck
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

// publish sends the event in the background. Failures are logged and never
// change the outcome of the request that produced the event.
func (s *serviceImpl) publish(ctx context.Context, event dto.BookingEvent) {
	go func() {
		c, cancel := shared.WithStorageTimeout(context.WithoutCancel(ctx), s.cfg.Booking.StorageTimeoutSeconds)
		defer cancel()

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Booking, kafka.Message{Key: event.SeatID, Value: event})
		if err != nil {
			log.Error().Err(err).Str("type", event.Type).Str("booking_id", event.BookingID).Msg("failed to publish booking event")
		}
	}()
}

func filterByDates(from, to time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "date_from",
				Field:    model.FieldDate,
				Value:    calendar.FormatDate(from),
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "date_to",
				Field:    model.FieldDate,
				Value:    calendar.FormatDate(to),
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
		},
	}
}

// storageFailure keeps failures raised by the policy and marks the rest retryable.
func storageFailure(err error) error {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	return failure.Unavailable(err) // nolint:wrapcheck
}
