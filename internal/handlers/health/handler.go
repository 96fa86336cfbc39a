package health

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"desk/infras/postgres"
	"desk/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const checkTimeout = 2 * time.Second

// Check probes one dependency.
type Check func(ctx context.Context) error

type Handler struct {
	checks   map[string]Check
	draining *atomic.Bool
}

type Status struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func New(db *postgres.Connection, client *goRedis.Client) Handler {
	return NewWithChecks(map[string]Check{
		"postgres": db.Ping,
		"redis": func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
	})
}

func NewWithChecks(checks map[string]Check) Handler {
	return Handler{
		checks:   checks,
		draining: &atomic.Bool{},
	}
}

// Drain makes liveness fail so load balancers stop routing here.
func (handler Handler) Drain() {
	handler.draining.Store(true)
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Live)
	router.Get("/health/ready", handler.Ready)
}

// Live reports whether the process accepts traffic.
// @Summary Liveness
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Status]
// @Failure 503 {object} response.Message
// @Router /health [get]
func (handler *Handler) Live(w http.ResponseWriter, _ *http.Request) {
	if handler.draining.Load() {
		response.WithPreparingShutdown(w)

		return
	}

	response.WithJSON(w, http.StatusOK, Status{Status: "ok"})
}

// Ready probes every dependency.
// @Summary Readiness
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Status]
// @Failure 503 {object} response.Data[Status]
// @Router /health/ready [get]
func (handler *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	status := Status{Status: "ok", Checks: make(map[string]string, len(handler.checks))}
	code := http.StatusOK

	for name, check := range handler.checks {
		if err := check(ctx); err != nil {
			log.Warn().Err(err).Str("dependency", name).Msg("readiness check failed")

			status.Checks[name] = err.Error()
			status.Status = "unavailable"
			code = http.StatusServiceUnavailable

			continue
		}

		status.Checks[name] = "ok"
	}

	response.WithJSON(w, code, status)
}
