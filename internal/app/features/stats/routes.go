// internal/app/features/stats/routes.go
package stats

import "github.com/go-chi/chi/v5"

// Routes serves the statistics snapshot (mounted under /api/stats).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
