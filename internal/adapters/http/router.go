// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-service-errors/internal/domain"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is composed with middleware.Chain and applied globally, first
// argument outermost; nil entries are skipped. Unmatched paths and
// methods are reported through errs as ROUTE_NOT_FOUND and
// METHOD_NOT_ALLOWED problems.
func NewRouter(
	customerHandler *handlers.CustomerHandler,
	accountHandler *handlers.AccountHandler,
	healthHandler *handlers.HealthHandler,
	errs handlers.ErrorWriter,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(middlewares...))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		errs.WriteError(w, req, domain.BusinessErrorOf(domain.CodeRouteNotFound,
			"path", req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		errs.WriteError(w, req, domain.BusinessErrorOf(domain.CodeMethodNotAllowed,
			"method", req.Method, "path", req.URL.Path))
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/customers", customerHandler.RegisterCustomer)
		r.Get("/customers/{id}", customerHandler.GetCustomer)

		r.Get("/accounts/{id}", accountHandler.GetAccount)
		r.Post("/transfers", accountHandler.Transfer)
	})

	return r
}
