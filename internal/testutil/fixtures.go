package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// CreateInscription inserts a membership registration directly into the
// inscriptions collection, bypassing the store.
func (f *Fixtures) CreateInscription(ctx context.Context, prenom, nom, email string) models.Inscription {
	f.t.Helper()

	ins := models.Inscription{
		ID:               uuid.NewString(),
		Prenom:           prenom,
		Nom:              nom,
		Email:            email,
		Telephone:        "0600000000",
		Age:              25,
		NiveauExperience: "débutant",
		DateInscription:  nowStamp(),
		Statut:           "en_attente",
	}

	_, err := f.db.Collection("inscriptions").InsertOne(ctx, ins)
	if err != nil {
		f.t.Fatalf("failed to create test inscription: %v", err)
	}

	return ins
}

// CreateContactMessage inserts a contact message directly into the contacts
// collection.
func (f *Fixtures) CreateContactMessage(ctx context.Context, nom, email, sujet string) models.ContactMessage {
	f.t.Helper()

	msg := models.ContactMessage{
		ID:           uuid.NewString(),
		Nom:          nom,
		Email:        email,
		Sujet:        sujet,
		Message:      "Message de test",
		DateCreation: nowStamp(),
		Statut:       "nouveau",
	}

	_, err := f.db.Collection("contacts").InsertOne(ctx, msg)
	if err != nil {
		f.t.Fatalf("failed to create test contact message: %v", err)
	}

	return msg
}

// CreateEventRegistration inserts an event signup directly into the
// evenements_inscriptions collection.
func (f *Fixtures) CreateEventRegistration(ctx context.Context, nom, email, nomEvenement string) models.EventRegistration {
	f.t.Helper()

	reg := models.EventRegistration{
		ID:              uuid.NewString(),
		Nom:             nom,
		Email:           email,
		Telephone:       "0600000000",
		NomEvenement:    nomEvenement,
		DateInscription: nowStamp(),
		Statut:          "confirmé",
	}

	_, err := f.db.Collection("evenements_inscriptions").InsertOne(ctx, reg)
	if err != nil {
		f.t.Fatalf("failed to create test event registration: %v", err)
	}

	return reg
}

// CreateEvent inserts an event with the given ISO date (YYYY-MM-DD) directly
// into the evenements collection.
func (f *Fixtures) CreateEvent(ctx context.Context, titre, date string) models.Event {
	f.t.Helper()

	evt := models.Event{
		ID:            uuid.NewString(),
		Titre:         titre,
		Description:   "Description de test",
		Date:          date,
		Heure:         "19:00",
		Lieu:          "Gymnase municipal",
		TypeEvenement: "entrainement",
		DateCreation:  nowStamp(),
		Statut:        "actif",
	}

	_, err := f.db.Collection("evenements").InsertOne(ctx, evt)
	if err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}

	return evt
}

// CreatePhoto inserts a gallery photo with the given capture date (YYYY-MM-DD)
// directly into the galerie collection.
func (f *Fixtures) CreatePhoto(ctx context.Context, titre, datePrise string) models.GalleryPhoto {
	f.t.Helper()

	photo := models.GalleryPhoto{
		ID:          uuid.NewString(),
		Titre:       titre,
		Description: "Photo de test",
		URLImage:    "https://example.com/photo.jpg",
		Categorie:   "entrainement",
		DatePrise:   datePrise,
		DateAjout:   nowStamp(),
		Statut:      "actif",
	}

	_, err := f.db.Collection("galerie").InsertOne(ctx, photo)
	if err != nil {
		f.t.Fatalf("failed to create test photo: %v", err)
	}

	return photo
}
