// internal/app/features/contact/routes.go
package contact

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the contact form (mounted under
// /api/contact).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeCreate)
	return r
}
