package booking

import (
	"net/http"
	"strconv"
	"time"

	"desk/infras/otel"
	"desk/internal/domains/booking/model/dto"
	"desk/internal/domains/booking/service"
	"desk/shared/constant"
	gDto "desk/shared/dto"
	"desk/shared/failure"
	"desk/shared/identity"
	"desk/shared/validator"
	"desk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
	now     func() time.Time
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
		now:     time.Now,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetWeekBookings)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/mine", handler.GetMyBookings)
		routerGroup.Delete("/{id}", handler.ReleaseBooking)
	})

	router.Get("/eligibility", handler.PreviewEligibility)

	router.Route("/calendar", func(routerGroup chi.Router) {
		routerGroup.Get("/weeks/{year}/{week}", handler.GetWeek)
		routerGroup.Get("/next-bookable", handler.GetNextBookable)
	})
}

// CreateBooking books a seat for the caller.
// @Summary Book a seat
// @Description Book a seat for one calendar day. Rejections carry a reason code such as BEFORE_CUTOFF or ALREADY_BOOKED.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	who, err := identity.Require(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, who, req, handler.now())
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("user_id", who.UserID).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully by user " + who.UserID)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetWeekBookings lists every booking of an ISO week.
// @Summary Bookings of a week
// @Tags Booking
// @Produce json
// @Param week query string true "ISO week, YYYY-WW"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetWeekBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWeekBookings")
	defer scope.End()

	req := dto.WeekRequest{Week: request.URL.Query().Get(constant.RequestParamWeek)}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	year, week, err := validator.ParseISOWeek(req.Week)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	bookings, err := handler.service.GetWeek(ctx, year, week)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings of week")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetMyBookings lists the caller's bookings.
// @Summary My bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 503 {object} response.Error
// @Router /v1/bookings/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	who, err := identity.Require(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	bookings, err := handler.service.GetMine(ctx, who, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get my bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// ReleaseBooking cancels one of the caller's bookings. Admins may cancel any.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) ReleaseBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReleaseBooking")
	defer scope.End()

	who, err := identity.Require(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)

	if err := validator.ValidateVar(id, "required,uuid"); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Release(ctx, id, who, who.IsAdmin()); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("booking_id", id).Msg("failed to release booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking released by user " + who.UserID)

	response.WithMessage(writer, http.StatusOK, "Booking cancelled successfully")
}

// PreviewEligibility answers whether a booking would be allowed, without booking.
// @Summary Check eligibility
// @Tags Booking
// @Produce json
// @Param seat_type query string true "designated or floater"
// @Param date query string true "YYYY-MM-DD"
// @Param batch query string false "A or B, defaults to the caller's batch"
// @Success 200 {object} response.Data[dto.EligibilityResponse]
// @Failure 400 {object} response.Error
// @Router /v1/eligibility [get]
// @Security BearerAuth
func (handler *Handler) PreviewEligibility(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PreviewEligibility")
	defer scope.End()

	who, err := identity.Require(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	query := request.URL.Query()
	req := dto.EligibilityRequest{
		SeatType: query.Get(constant.RequestParamSeatType),
		Date:     query.Get(constant.RequestParamDate),
		Batch:    query.Get(constant.RequestParamBatch),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Preview(ctx, who, req, handler.now())
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetWeek describes an ISO week for the caller's batch.
// @Summary Week calendar
// @Tags Calendar
// @Produce json
// @Param year path int true "ISO year"
// @Param week path int true "ISO week number"
// @Success 200 {object} response.Data[dto.WeekResponse]
// @Failure 400 {object} response.Error
// @Router /v1/calendar/weeks/{year}/{week} [get]
// @Security BearerAuth
func (handler *Handler) GetWeek(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWeek")
	defer scope.End()

	who, err := identity.Require(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	year, errYear := strconv.Atoi(chi.URLParam(request, constant.RequestParamYear))
	week, errWeek := strconv.Atoi(chi.URLParam(request, constant.RequestParamWeek))

	if errYear != nil || errWeek != nil {
		err := failure.BadRequestFromString("year and week must be numbers")
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Week(ctx, who, year, week)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetNextBookable returns the only date currently open for booking, or null before the cutoff.
// @Summary Next bookable date
// @Tags Calendar
// @Produce json
// @Success 200 {object} response.Data[dto.NextBookableResponse]
// @Router /v1/calendar/next-bookable [get]
// @Security BearerAuth
func (handler *Handler) GetNextBookable(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNextBookable")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.NextBookable(handler.now()))
}
