package holiday

import (
	"net/http"

	"desk/infras/otel"
	"desk/internal/domains/holiday/model/dto"
	"desk/internal/domains/holiday/service"
	"desk/shared/constant"
	"desk/shared/identity"
	"desk/shared/validator"
	"desk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Holiday
	otel    otel.Otel
}

func New(service service.Holiday, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/holidays", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHolidays)
		routerGroup.Post("/", handler.CreateHoliday)
		routerGroup.Delete("/{id}", handler.DeleteHoliday)
	})
}

// GetHolidays lists office holidays by date.
// @Summary List holidays
// @Tags Holiday
// @Produce json
// @Success 200 {object} response.Data[dto.GetHolidaysResponse]
// @Failure 503 {object} response.Error
// @Router /v1/holidays [get]
// @Security BearerAuth
func (handler *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHolidays")
	defer scope.End()

	holidays, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get holidays")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, holidays)
}

// CreateHoliday adds a holiday.
// @Summary Add a holiday
// @Tags Holiday
// @Accept json
// @Produce json
// @Param request body dto.CreateHolidayRequest true "Create Holiday Request"
// @Success 201 {object} response.Data[dto.HolidayResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/holidays [post]
// @Security BearerAuth
func (handler *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHoliday")
	defer scope.End()

	who, err := identity.Require(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.CreateHolidayRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	holiday, err := handler.service.Create(ctx, req, who.UserID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", req.Date).Msg("failed to create holiday")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Holiday created by user " + who.UserID)

	response.WithJSON(w, http.StatusCreated, holiday)
}

// DeleteHoliday removes a holiday.
// @Summary Remove a holiday
// @Tags Holiday
// @Produce json
// @Param id path string true "Holiday ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/holidays/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHoliday")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateVar(id, "required,uuid"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("holiday_id", id).Msg("failed to delete holiday")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Holiday deleted successfully")
}
