package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"desk/config"
	"desk/infras/kafka"
	"desk/infras/otel"
	"desk/shared/constant"
	"desk/transport/http/middleware"
	"desk/transport/http/router"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
)

type HTTP struct {
	Config   *config.Config
	Router   router.Router
	App      middleware.AppMiddleware
	AuthRole middleware.AuthRole
	Otel     otel.Otel
	Kafka    kafka.Client
	state    atomic.Int32
	mux      *chi.Mux
	once     sync.Once
}

func New(cfg *config.Config, r router.Router, app middleware.AppMiddleware, authRole middleware.AuthRole, otl otel.Otel, kafkaClient kafka.Client) *HTTP {
	return &HTTP{
		Config:   cfg,
		Router:   r,
		App:      app,
		AuthRole: authRole,
		Otel:     otl,
		Kafka:    kafkaClient,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// ServeHTTP lets the server run behind another http.Server, e.g. a serverless entrypoint.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()
	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) Serve() {
	h.setup()

	server := &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("Starting up HTTP server.")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	<-signals

	h.shutdown(server)
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.mux = chi.NewRouter()

		h.mux.Use(chiMiddleware.RequestID)
		h.mux.Use(chiMiddleware.Recoverer)

		if h.Config.App.CORS.Enable {
			h.mux.Use(cors.Handler(cors.Options{
				AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
				AllowedMethods:   h.Config.App.CORS.AllowedMethods,
				AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
				ExposedHeaders:   []string{constant.RequestHeaderRequestID, constant.RequestHeaderRateLimitRemaining},
				AllowCredentials: h.Config.App.CORS.AllowCredentials,
				MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
			}))
		}

		h.mux.Use(h.App.Tracing)
		h.mux.Use(h.App.Logger)
		h.mux.Use(h.App.RateLimit())

		h.Router.SetupRoutes(h.mux, h.AuthRole.APIKey, h.AuthRole.Auth, h.AuthRole.RBAC)

		h.state.Store(int32(ServerStateReady))
	})
}

// shutdown drains in two phases. During the grace period liveness fails
// while requests are still served, then in-flight requests get the cleanup
// period to finish before tracing and the event writer are flushed.
func (h *HTTP) shutdown(server *http.Server) {
	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		shutdownConfig.GracePeriodSeconds = 0
	}

	h.state.Store(int32(ServerStateInGracePeriod))
	h.Router.DomainHandlers.Health.Drain()

	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")
	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	h.state.Store(int32(ServerStateInCleanupPeriod))
	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(max(shutdownConfig.CleanupPeriodSeconds, 1))*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server did not shut down cleanly")
	}

	if err := h.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close kafka writer")
	}

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
