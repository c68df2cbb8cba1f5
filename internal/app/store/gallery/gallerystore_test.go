package gallerystore_test

import (
	"testing"

	gallerystore "github.com/dalemusser/clubhub/internal/app/store/gallery"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/clubhub/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.GalleryPhoto{
		Titre:       "Match de samedi",
		Description: "Victoire à domicile",
		URLImage:    "https://example.com/match.jpg",
		Categorie:   "match",
		DatePrise:   "2024-11-30",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if created.Statut != "actif" {
		t.Errorf("statut: got %q, want %q", created.Statut, "actif")
	}
	if created.DateAjout == "" {
		t.Error("expected date_ajout to be set")
	}
}

func TestStore_List_NewestCaptureFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreatePhoto(ctx, "Ancienne", "2023-01-01")
	fixtures.CreatePhoto(ctx, "Récente", "2024-12-01")
	fixtures.CreatePhoto(ctx, "Intermédiaire", "2024-03-15")

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 photos, got %d", len(list))
	}

	want := []string{"Récente", "Intermédiaire", "Ancienne"}
	for i, titre := range want {
		if list[i].Titre != titre {
			t.Errorf("position %d: got %q, want %q", i, list[i].Titre, titre)
		}
	}
}
