package statsstore

import (
	"context"

	eventstore "github.com/dalemusser/clubhub/internal/app/store/events"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store assembles the /api/stats snapshot. Unlike per-collection stores it
// spans the whole database, since every field is a count over a different
// collection.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Fetch runs one count per collection and assembles the snapshot. The
// counts are independent queries with no cross-collection consistency;
// concurrent writes between them can skew the totals. Any failed count
// fails the whole snapshot.
//
// membres_actifs repeats total_inscriptions on purpose: there is no
// membership lifecycle to count yet.
func (s *Store) Fetch(ctx context.Context) (models.ClubStats, error) {
	var out models.ClubStats

	inscriptions, err := s.db.Collection("inscriptions").CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.ClubStats{}, err
	}
	contacts, err := s.db.Collection("contacts").CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.ClubStats{}, err
	}
	eventRegs, err := s.db.Collection("evenements_inscriptions").CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.ClubStats{}, err
	}
	photos, err := s.db.Collection("galerie").CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.ClubStats{}, err
	}
	upcoming, err := s.db.Collection("evenements").CountDocuments(ctx,
		bson.M{"date": bson.M{"$gte": eventstore.Today()}})
	if err != nil {
		return models.ClubStats{}, err
	}

	out.TotalInscriptions = inscriptions
	out.TotalContacts = contacts
	out.TotalEvenements = eventRegs
	out.TotalPhotos = photos
	out.EvenementsAVenir = upcoming
	out.MembresActifs = inscriptions
	return out, nil
}
