// internal/app/features/inscriptions/routes.go
package inscriptions

import "github.com/go-chi/chi/v5"

// CreateRoutes serves the registration form endpoint (mounted under
// /api/inscription).
func CreateRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeCreate)
	return r
}

// ListRoutes serves the registration listing (mounted under
// /api/inscriptions).
func ListRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
