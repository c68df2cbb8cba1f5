// internal/app/features/events/routes.go
package events

import "github.com/go-chi/chi/v5"

// Routes serves the event listing and creation endpoints (mounted under
// /api/evenements).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.ServeCreate)
	return r
}

// RegistrationRoutes serves event signups (mounted under /api/evenement).
func RegistrationRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/inscription", h.ServeRegister)
	return r
}
