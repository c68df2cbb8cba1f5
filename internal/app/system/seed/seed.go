// Package seed populates the reference collections (evenements, galerie)
// with a default dataset the first time the service runs against a fresh
// store.
//
// Each collection is gated on "count == 0", not on per-record identity: a
// collection that already holds anything is left alone, and one that was
// partially emptied by hand gets the full default batch again with fresh
// ids. The count-then-insert pair is also not atomic, so two processes
// seeding the same empty store at once can both insert; deployment is a
// single process, which is why neither gap is closed here.
package seed

import (
	"context"
	"errors"
	"strings"

	eventstore "github.com/dalemusser/clubhub/internal/app/store/events"
	gallerystore "github.com/dalemusser/clubhub/internal/app/store/gallery"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureDefaults seeds each managed collection that is currently empty.
// It is called once at startup, before traffic is served. Errors from the
// two collections are aggregated so a problem with either is visible and
// startup can fail fast.
func EnsureDefaults(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	if err := ensureEvents(ctx, db, logger); err != nil {
		problems = append(problems, "evenements: "+err.Error())
	}
	if err := ensureGallery(ctx, db, logger); err != nil {
		problems = append(problems, "galerie: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureEvents(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := eventstore.New(db)

	n, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Info("events collection already populated, skipping defaults",
			zap.Int64("count", n))
		return nil
	}

	batch := DefaultEvents()
	if err := store.InsertMany(ctx, batch); err != nil {
		return err
	}
	logger.Info("seeded default events", zap.Int("count", len(batch)))
	return nil
}

func ensureGallery(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := gallerystore.New(db)

	n, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Info("gallery collection already populated, skipping defaults",
			zap.Int64("count", n))
		return nil
	}

	batch := DefaultPhotos()
	if err := store.InsertMany(ctx, batch); err != nil {
		return err
	}
	logger.Info("seeded default gallery photos", zap.Int("count", len(batch)))
	return nil
}
