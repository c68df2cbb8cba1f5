package eventstore

import (
	"context"
	"time"

	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DayFormat is the wire format for event dates. Zero-padded ISO dates sort
// lexicographically in chronological order, which the upcoming filter and
// the ascending listing both depend on.
const DayFormat = "2006-01-02"

// Today returns the current UTC date in DayFormat.
func Today() string {
	return time.Now().UTC().Format(DayFormat)
}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("evenements")}
}

// Create inserts a new event with a fresh id, creation timestamp, and the
// initial "actif" status.
func (s *Store) Create(ctx context.Context, ev models.Event) (models.Event, error) {
	ev.ID = uuid.NewString()
	ev.DateCreation = time.Now().UTC().Format(time.RFC3339)
	ev.Statut = "actif"

	if _, err := s.c.InsertOne(ctx, ev); err != nil {
		return models.Event{}, err
	}
	return ev, nil
}

// ListUpcoming returns events on or after the given day, ascending by
// date. Ties keep store order; an empty result is not an error.
func (s *Store) ListUpcoming(ctx context.Context, today string) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"date": bson.M{"$gte": today}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Event{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the total number of events in the collection.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// InsertMany inserts a batch of events as a single store operation.
func (s *Store) InsertMany(ctx context.Context, evs []models.Event) error {
	docs := make([]any, len(evs))
	for i, ev := range evs {
		docs[i] = ev
	}
	_, err := s.c.InsertMany(ctx, docs)
	return err
}
