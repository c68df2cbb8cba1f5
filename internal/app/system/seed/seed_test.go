package seed_test

import (
	"testing"

	eventstore "github.com/dalemusser/clubhub/internal/app/store/events"
	gallerystore "github.com/dalemusser/clubhub/internal/app/store/gallery"
	"github.com/dalemusser/clubhub/internal/app/system/seed"
	"github.com/dalemusser/clubhub/internal/testutil"
	"go.uber.org/zap"
)

func TestEnsureDefaults_FreshDatabase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := seed.EnsureDefaults(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureDefaults failed: %v", err)
	}

	events, err := eventstore.New(db).Count(ctx)
	if err != nil {
		t.Fatalf("event count failed: %v", err)
	}
	if events != 4 {
		t.Errorf("event count: got %d, want 4", events)
	}

	photos, err := gallerystore.New(db).Count(ctx)
	if err != nil {
		t.Fatalf("photo count failed: %v", err)
	}
	if photos != 5 {
		t.Errorf("photo count: got %d, want 5", photos)
	}
}

func TestEnsureDefaults_SecondRunIsNoop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := seed.EnsureDefaults(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("first EnsureDefaults failed: %v", err)
	}
	if err := seed.EnsureDefaults(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("second EnsureDefaults failed: %v", err)
	}

	events, err := eventstore.New(db).Count(ctx)
	if err != nil {
		t.Fatalf("event count failed: %v", err)
	}
	if events != 4 {
		t.Errorf("event count after second run: got %d, want 4", events)
	}

	photos, err := gallerystore.New(db).Count(ctx)
	if err != nil {
		t.Fatalf("photo count failed: %v", err)
	}
	if photos != 5 {
		t.Errorf("photo count after second run: got %d, want 5", photos)
	}
}

func TestEnsureDefaults_LeavesExistingDataAlone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// One pre-existing event suppresses the event defaults entirely, while
	// the empty gallery still gets seeded.
	fixtures.CreateEvent(ctx, "Événement existant", "2099-06-01")

	if err := seed.EnsureDefaults(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureDefaults failed: %v", err)
	}

	events, err := eventstore.New(db).Count(ctx)
	if err != nil {
		t.Fatalf("event count failed: %v", err)
	}
	if events != 1 {
		t.Errorf("event count: got %d, want 1", events)
	}

	photos, err := gallerystore.New(db).Count(ctx)
	if err != nil {
		t.Fatalf("photo count failed: %v", err)
	}
	if photos != 5 {
		t.Errorf("photo count: got %d, want 5", photos)
	}
}

func TestDefaultEvents_DatesAreISO(t *testing.T) {
	for _, ev := range seed.DefaultEvents() {
		if len(ev.Date) != 10 || ev.Date[4] != '-' || ev.Date[7] != '-' {
			t.Errorf("event %q has malformed date %q", ev.Titre, ev.Date)
		}
		if ev.ID == "" {
			t.Errorf("event %q has no id", ev.Titre)
		}
		if ev.Statut != "actif" {
			t.Errorf("event %q statut: got %q, want %q", ev.Titre, ev.Statut, "actif")
		}
	}
}
