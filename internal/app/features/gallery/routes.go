// internal/app/features/gallery/routes.go
package gallery

import "github.com/go-chi/chi/v5"

// Routes serves the gallery listing and upload endpoints (mounted under
// /api/galerie).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.ServeCreate)
	return r
}
