package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interaction is a logged prompt/link/result event tied to a phone number.
// UserID is a weak reference and is not kept consistent with users.
type Interaction struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	UserPhoneNumber string              `bson:"userPhoneNumber" json:"userPhoneNumber"`
	Prompt          string              `bson:"prompt" json:"prompt"`
	Link            string              `bson:"link" json:"link"`
	Result          string              `bson:"result" json:"result"`
	Timestamp       time.Time           `bson:"timestamp" json:"timestamp"`
	UserID          *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}
