package inscriptionstore

import (
	"context"
	"time"

	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("inscriptions")}
}

// Create inserts a new member registration. The id, submission timestamp,
// and initial status are assigned here; callers provide only the submitted
// fields.
func (s *Store) Create(ctx context.Context, in models.Inscription) (models.Inscription, error) {
	in.ID = uuid.NewString()
	in.DateInscription = time.Now().UTC().Format(time.RFC3339)
	in.Statut = "en_attente"

	if _, err := s.c.InsertOne(ctx, in); err != nil {
		return models.Inscription{}, err
	}
	return in, nil
}

// List returns every registration in insertion order.
func (s *Store) List(ctx context.Context) ([]models.Inscription, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Inscription{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
