package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/ArowuTest/newslens-backend/internal/models"
)

var (
	// ErrNotFound is returned when no document matches a lookup
	ErrNotFound = errors.New("repositories: not found")
	// ErrDuplicate is returned when a write violates a unique index
	ErrDuplicate = errors.New("repositories: duplicate key")
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.User, error)
}

// InteractionRepository defines the interface for interaction data operations
type InteractionRepository interface {
	Create(ctx context.Context, interaction *models.Interaction) error
	CreateMany(ctx context.Context, interactions []*models.Interaction) error
	// FindByPhoneNumber returns interactions oldest first; never nil.
	FindByPhoneNumber(ctx context.Context, phoneNumber string) ([]models.Interaction, error)
}

// SessionRepository stores onboarding conversation state with expiry
type SessionRepository interface {
	Get(ctx context.Context, phoneNumber string) (*models.Session, error)
	Save(ctx context.Context, phoneNumber string, state models.SessionState, ttl time.Duration) error
}
