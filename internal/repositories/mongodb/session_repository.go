package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/ArowuTest/newslens-backend/internal/models"
	"github.com/ArowuTest/newslens-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.SessionRepository = (*SessionRepository)(nil)

const sessionsCollection = "sessions"

// SessionRepository keeps onboarding sessions in MongoDB. Expired documents
// are removed by the TTL index on expiresAt.
type SessionRepository struct {
	collection *mongo.Collection
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{
		collection: db.Collection(sessionsCollection),
	}
}

// Get returns the live session for a phone number. The TTL monitor only runs
// once a minute, so expired documents are filtered here as well.
func (r *SessionRepository) Get(ctx context.Context, phoneNumber string) (*models.Session, error) {
	var session models.Session
	filter := bson.M{
		"phoneNumber": phoneNumber,
		"expiresAt":   bson.M{"$gt": time.Now()},
	}
	err := r.collection.FindOne(ctx, filter).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Save upserts the session state and pushes its expiry ttl into the future.
// Two concurrent upserts for a new phone number can race on the unique index;
// the loser repeats the update, which then matches the winner's document.
func (r *SessionRepository) Save(ctx context.Context, phoneNumber string, state models.SessionState, ttl time.Duration) error {
	err := r.upsert(ctx, phoneNumber, state, ttl)
	if mongo.IsDuplicateKeyError(err) {
		err = r.upsert(ctx, phoneNumber, state, ttl)
	}
	return err
}

func (r *SessionRepository) upsert(ctx context.Context, phoneNumber string, state models.SessionState, ttl time.Duration) error {
	now := time.Now()
	filter := bson.M{"phoneNumber": phoneNumber}
	update := bson.M{"$set": bson.M{
		"state":     state,
		"expiresAt": now.Add(ttl),
		"updatedAt": now,
	}}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
