package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{
				Keys:    bson.D{{Key: "phoneNumber", Value: 1}},
				Options: options.Index().SetName("phoneNumber_unique").SetUnique(true),
			},
		},
		interactionsCollection: {
			{
				Keys:    bson.D{{Key: "userPhoneNumber", Value: 1}, {Key: "timestamp", Value: 1}},
				Options: options.Index().SetName("userPhoneNumber_timestamp"),
			},
		},
		sessionsCollection: {
			{
				Keys:    bson.D{{Key: "phoneNumber", Value: 1}},
				Options: options.Index().SetName("phoneNumber_unique").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "expiresAt", Value: 1}},
				Options: options.Index().SetName("expiresAt_ttl").SetExpireAfterSeconds(0),
			},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", collection, err)
		}
	}
	return nil
}
