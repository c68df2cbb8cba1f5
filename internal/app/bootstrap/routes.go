// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	contactfeature "github.com/dalemusser/clubhub/internal/app/features/contact"
	eventsfeature "github.com/dalemusser/clubhub/internal/app/features/events"
	galleryfeature "github.com/dalemusser/clubhub/internal/app/features/gallery"
	healthfeature "github.com/dalemusser/clubhub/internal/app/features/health"
	inscriptionsfeature "github.com/dalemusser/clubhub/internal/app/features/inscriptions"
	statsfeature "github.com/dalemusser/clubhub/internal/app/features/stats"
	"github.com/dalemusser/clubhub/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connection, schema setup, and
// the Startup hook (which seeds default content) have completed. The core
// HTTP layer owns ports, timeouts, and the CORS policy; this function only
// assembles the /api feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.ClubHubMongoDatabase

	healthHandler := healthfeature.NewHandler(deps.ClubHubMongoClient, logger)
	inscriptionsHandler := inscriptionsfeature.NewHandler(db, logger)
	contactHandler := contactfeature.NewHandler(db, logger)
	eventsHandler := eventsfeature.NewHandler(db, logger)
	galleryHandler := galleryfeature.NewHandler(db, logger)
	statsHandler := statsfeature.NewHandler(db, logger)

	// One shared limiter across all public form submissions.
	submitLimiter := ratelimit.New(appCfg.SubmitRateLimit, time.Minute)

	r := chi.NewRouter()

	r.Route("/api", func(api chi.Router) {
		api.Mount("/health", healthfeature.Routes(healthHandler))
		api.Mount("/inscriptions", inscriptionsfeature.ListRoutes(inscriptionsHandler))
		api.Mount("/evenements", eventsfeature.Routes(eventsHandler))
		api.Mount("/galerie", galleryfeature.Routes(galleryHandler))
		api.Mount("/stats", statsfeature.Routes(statsHandler))

		// The visitor-facing submission forms share one limiter; the
		// listing endpoints above stay unthrottled.
		api.Group(func(forms chi.Router) {
			forms.Use(submitLimiter.Middleware)
			forms.Mount("/inscription", inscriptionsfeature.CreateRoutes(inscriptionsHandler))
			forms.Mount("/contact", contactfeature.Routes(contactHandler))
			forms.Mount("/evenement", eventsfeature.RegistrationRoutes(eventsHandler))
		})
	})

	return r, nil
}
