package mongodb

import (
	"context"
	"time"

	"github.com/ArowuTest/newslens-backend/internal/models"
	"github.com/ArowuTest/newslens-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.InteractionRepository = (*InteractionRepository)(nil)

const interactionsCollection = "interactions"

// InteractionRepository handles MongoDB operations for Interaction
type InteractionRepository struct {
	collection *mongo.Collection
}

// NewInteractionRepository creates a new InteractionRepository
func NewInteractionRepository(db *mongo.Database) *InteractionRepository {
	return &InteractionRepository{
		collection: db.Collection(interactionsCollection),
	}
}

// Create inserts a new interaction
func (r *InteractionRepository) Create(ctx context.Context, interaction *models.Interaction) error {
	prepareInteraction(interaction, time.Now())
	_, err := r.collection.InsertOne(ctx, interaction)
	return err
}

// CreateMany inserts interactions in a single batch
func (r *InteractionRepository) CreateMany(ctx context.Context, interactions []*models.Interaction) error {
	if len(interactions) == 0 {
		return nil
	}
	now := time.Now()
	docs := make([]interface{}, 0, len(interactions))
	for _, interaction := range interactions {
		prepareInteraction(interaction, now)
		docs = append(docs, interaction)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// FindByPhoneNumber retrieves every interaction for a phone number, oldest first
func (r *InteractionRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) ([]models.Interaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userPhoneNumber": phoneNumber}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var interactions []models.Interaction
	if err := cursor.All(ctx, &interactions); err != nil {
		return nil, err
	}
	if interactions == nil {
		interactions = []models.Interaction{}
	}
	return interactions, nil
}

func prepareInteraction(interaction *models.Interaction, now time.Time) {
	interaction.ID = primitive.NewObjectID()
	if interaction.Timestamp.IsZero() {
		interaction.Timestamp = now
	}
	interaction.CreatedAt = now
	interaction.UpdatedAt = now
}
