package seat

import (
	"net/http"
	"time"

	"desk/infras/otel"
	bookingService "desk/internal/domains/booking/service"
	"desk/internal/domains/seat/service"
	"desk/shared/constant"
	"desk/shared/identity"
	"desk/shared/validator"
	"desk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.Seat
	bookings bookingService.Booking
	otel     otel.Otel
	now      func() time.Time
}

func New(service service.Seat, bookings bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		bookings: bookings,
		otel:     otel,
		now:      time.Now,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/seats", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSeats)
		routerGroup.Get("/availability", handler.GetAvailability)
	})
}

// GetSeats lists the seat catalog.
// @Summary List seats
// @Tags Seat
// @Produce json
// @Success 200 {object} response.Data[dto.GetSeatsResponse]
// @Failure 503 {object} response.Error
// @Router /v1/seats [get]
// @Security BearerAuth
func (handler *Handler) GetSeats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeats")
	defer scope.End()

	seats, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get seats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, seats)
}

// GetAvailability renders the seat grid of one day for the caller.
// @Summary Seat availability
// @Tags Seat
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} object "Seat grid for the day"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/seats/availability [get]
// @Security BearerAuth
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	who, err := identity.Require(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	date := r.URL.Query().Get(constant.RequestParamDate)

	if err := validator.ValidateVar(date, "required,datetime=2006-01-02"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	grid, err := handler.bookings.Availability(ctx, who, date, handler.now())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to get availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, grid)
}
