package admin

import (
	"net/http"
	"time"

	"desk/infras/otel"
	bookingService "desk/internal/domains/booking/service"
	reportDto "desk/internal/domains/report/model/dto"
	reportService "desk/internal/domains/report/service"
	seatService "desk/internal/domains/seat/service"
	"desk/shared/constant"
	gDto "desk/shared/dto"
	"desk/shared/failure"
	"desk/shared/identity"
	"desk/shared/validator"
	"desk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handler exposes the override operations. Role checks happen in RBAC.
type Handler struct {
	bookings bookingService.Booking
	seats    seatService.Seat
	reports  reportService.Report
	otel     otel.Otel
	now      func() time.Time
}

func New(bookings bookingService.Booking, seats seatService.Seat, reports reportService.Report, otel otel.Otel) Handler {
	return Handler{
		bookings: bookings,
		seats:    seats,
		reports:  reports,
		otel:     otel,
		now:      time.Now,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Get("/bookings", handler.GetBookings)
		routerGroup.Delete("/bookings/{id}", handler.ForceRelease)
		routerGroup.Patch("/seats/{id}/disable", handler.DisableSeat)
		routerGroup.Patch("/seats/{id}/enable", handler.EnableSeat)
		routerGroup.Post("/reports/weeks/{week}", handler.ExportWeek)
	})
}

// GetBookings lists every booking, newest date first.
// @Summary All bookings
// @Tags Admin
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} object "Paginated bookings"
// @Failure 403 {object} response.Error
// @Router /v1/admin/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminGetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookings, err := handler.bookings.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get all bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// ForceRelease cancels any booking regardless of owner.
// @Summary Force release a booking
// @Tags Admin
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) ForceRelease(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ForceRelease")
	defer scope.End()

	who, err := identity.Require(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateVar(id, "required,uuid"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.bookings.Release(ctx, id, who, true); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to force release booking")

		response.WithError(w, err)

		return
	}

	log.Info().Str("booking_id", id).Str("admin", who.UserID).Msg("booking force released")

	response.WithMessage(w, http.StatusOK, "Booking released by admin")
}

// DisableSeat puts a seat under maintenance.
// @Summary Disable a seat
// @Tags Admin
// @Produce json
// @Param id path string true "Seat ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/seats/{id}/disable [patch]
// @Security BearerAuth
func (handler *Handler) DisableSeat(w http.ResponseWriter, r *http.Request) {
	handler.setActive(w, r, false)
}

// EnableSeat returns a seat to service.
// @Summary Enable a seat
// @Tags Admin
// @Produce json
// @Param id path string true "Seat ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/seats/{id}/enable [patch]
// @Security BearerAuth
func (handler *Handler) EnableSeat(w http.ResponseWriter, r *http.Request) {
	handler.setActive(w, r, true)
}

func (handler *Handler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetSeatActive")
	defer scope.End()

	who, err := identity.Require(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateVar(id, "required,uuid"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}
	scope.SetAttributes(map[string]any{"seat.id": id, "seat.active": active})

	if err := handler.seats.SetActive(ctx, id, active, who.UserID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("seat_id", id).Bool("active", active).Msg("failed to toggle seat")

		response.WithError(w, err)

		return
	}

	if active {
		response.WithMessage(w, http.StatusOK, "Seat enabled")

		return
	}

	response.WithMessage(w, http.StatusOK, "Seat disabled")
}

// ExportWeek stores a CSV of one ISO week's bookings and returns its download URL.
// @Summary Export a week of bookings
// @Tags Admin
// @Produce json
// @Param week path string true "ISO week, YYYY-WW"
// @Success 201 {object} object "Export location"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/admin/reports/weeks/{week} [post]
// @Security BearerAuth
func (handler *Handler) ExportWeek(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportWeek")
	defer scope.End()

	who, err := identity.Require(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := reportDto.ExportWeekRequest{Week: chi.URLParam(r, constant.RequestParamWeek)}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	year, week, err := validator.ParseISOWeek(req.Week)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(err))

		return
	}

	export, err := handler.reports.ExportWeek(ctx, year, week, who.UserID, handler.now())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("week", req.Week).Msg("failed to export week")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, export)
}
