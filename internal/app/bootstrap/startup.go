// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/clubhub/internal/app/system/seed"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
//
// ClubHub seeds the reference collections (events, gallery) here. A
// seeding failure is returned and aborts startup: serving traffic against
// a half-seeded store would hand empty listings to the first visitors.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	seedCtx, cancel := context.WithTimeout(ctx, timeouts.Batch())
	defer cancel()

	return seed.EnsureDefaults(seedCtx, deps.ClubHubMongoDatabase, logger)
}
