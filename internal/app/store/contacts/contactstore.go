package contactstore

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
	return &Store{c: db.Collection("contacts")}
}

// Create inserts a contact-form message with a fresh id, creation
// timestamp, and the initial "nouveau" status.
func (s *Store) Create(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	msg.ID = uuid.NewString()
	msg.DateCreation = time.Now().UTC().Format(time.RFC3339)
	msg.Statut = "nouveau"

	if _, err := s.c.InsertOne(ctx, msg); err != nil {
		return models.ContactMessage{}, err
	}
	return msg, nil
}
