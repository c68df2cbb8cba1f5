package gallerystore

import (
	"context"
	"time"

	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("galerie")}
}

// Create inserts a gallery photo with a fresh id, added-at timestamp, and
// the initial "actif" status.
func (s *Store) Create(ctx context.Context, photo models.GalleryPhoto) (models.GalleryPhoto, error) {
	photo.ID = uuid.NewString()
	photo.DateAjout = time.Now().UTC().Format(time.RFC3339)
	photo.Statut = "actif"

	if _, err := s.c.InsertOne(ctx, photo); err != nil {
		return models.GalleryPhoto{}, err
	}
	return photo, nil
}

// List returns all photos, newest capture date first. Photos without a
// capture date sort last.
func (s *Store) List(ctx context.Context) ([]models.GalleryPhoto, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date_prise", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.GalleryPhoto{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the total number of photos in the collection.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// InsertMany inserts a batch of photos as a single store operation.
func (s *Store) InsertMany(ctx context.Context, photos []models.GalleryPhoto) error {
	docs := make([]any, len(photos))
	for i, p := range photos {
		docs[i] = p
	}
	_, err := s.c.InsertMany(ctx, docs)
	return err
}
