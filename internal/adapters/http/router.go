// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ekocak/todo-service/internal/adapters/http/handlers"
	"github.com/ekocak/todo-service/internal/adapters/http/middleware"
	"github.com/ekocak/todo-service/internal/ports"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given; the item routes are
// additionally wrapped in the Authenticate middleware so health and auth
// endpoints stay reachable without a credential.
func NewRouter(
	itemHandler *handlers.ItemHandler,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	resolver ports.IdentityResolver,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/token", authHandler.Token)

		// Owner-scoped item CRUD.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(resolver))

			r.Get("/todos", itemHandler.ListItems)
			r.Post("/todos", itemHandler.CreateItem)
			r.Get("/todos/{id}", itemHandler.GetItem)
			r.Put("/todos/{id}", itemHandler.UpdateItem)
			r.Delete("/todos/{id}", itemHandler.DeleteItem)
		})
	})

	return r
}
