package auth

import (
	"net/http"

	"desk/infras/jwt"
	"desk/infras/otel"
	"desk/shared/constant"
	"desk/shared/failure"
	"desk/shared/identity"
	"desk/shared/validator"
	"desk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Tokens are issued by the identity provider. This service only refreshes
// them and reports who the bearer is.
type Handler struct {
	jwt  jwt.JWT
	otel otel.Otel
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type MeResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Batch  string `json:"batch,omitempty"`
}

func New(jwt jwt.JWT, otel otel.Otel) Handler {
	return Handler{
		jwt:  jwt,
		otel: otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/refresh", handler.RefreshToken)
		r.Get("/me", handler.Me)
	})
}

// RefreshToken handles token refresh
// @Summary Refresh access token
// @Description Exchange a refresh token for a new token pair carrying the same identity.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[jwt.TokenPair]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/refresh [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := RefreshTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	pair, err := handler.jwt.RefreshTokens(req.RefreshToken)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to refresh token")

		response.WithError(w, failure.Unauthorized("Invalid refresh token"))

		return
	}

	scope.AddEvent("Token refreshed successfully")

	response.WithJSON(w, http.StatusOK, pair)
}

// Me reports the authenticated caller.
// @Summary Current identity
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[MeResponse]
// @Failure 401 {object} response.Error
// @Router /v1/auth/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	who, err := identity.Require(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, MeResponse{
		UserID: who.UserID,
		Email:  who.Email,
		Role:   who.Role,
		Batch:  string(who.Batch),
	})
}
