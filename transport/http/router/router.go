package router

import (
	"net/http"

	_ "desk/docs"
	"desk/internal/handlers/admin"
	"desk/internal/handlers/auth"
	"desk/internal/handlers/booking"
	"desk/internal/handlers/health"
	"desk/internal/handlers/holiday"
	"desk/internal/handlers/seat"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Booking booking.Handler
	Seat    seat.Handler
	Holiday holiday.Handler
	Admin   admin.Handler
	Health  health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every handler. protect wraps the routes that go
// through authentication and role checks.
func (r *Router) SetupRoutes(router chi.Router, protect ...func(http.Handler) http.Handler) {
	r.DomainHandlers.Health.Router(router)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Group(func(protected chi.Router) {
		protected.Use(protect...)

		protected.Route("/v1", func(routerGroup chi.Router) {
			r.DomainHandlers.Auth.Router(routerGroup)
			r.DomainHandlers.Booking.Router(routerGroup)
			r.DomainHandlers.Seat.Router(routerGroup)
			r.DomainHandlers.Holiday.Router(routerGroup)
			r.DomainHandlers.Admin.Router(routerGroup)
		})
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
