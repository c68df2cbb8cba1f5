package eventregstore

import (
	"context"
	"time"

	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("evenements_inscriptions")}
}

// Create inserts an event signup. The event name stays free text; no
// lookup against the evenements collection is performed.
func (s *Store) Create(ctx context.Context, reg models.EventRegistration) (models.EventRegistration, error) {
	reg.ID = uuid.NewString()
	reg.DateInscription = time.Now().UTC().Format(time.RFC3339)
	reg.Statut = "confirmé"

	if _, err := s.c.InsertOne(ctx, reg); err != nil {
		return models.EventRegistration{}, err
	}
	return reg, nil
}
