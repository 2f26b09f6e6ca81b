package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ArowuTest/newslens-backend/internal/models"
	"github.com/ArowuTest/newslens-backend/internal/repositories"
)

type fakeUserRepo struct {
	users     map[string]*models.User
	findErr   error
	createErr error
	creates   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[user.PhoneNumber]; ok {
		return repositories.ErrDuplicate
	}
	user.ID = primitive.NewObjectID()
	f.users[user.PhoneNumber] = user
	return nil
}

func (f *fakeUserRepo) FindByPhoneNumber(_ context.Context, phoneNumber string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	user, ok := f.users[phoneNumber]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

type fakeInteractionRepo struct {
	stored    []*models.Interaction
	findErr   error
	createErr error
}

func (f *fakeInteractionRepo) Create(_ context.Context, interaction *models.Interaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	interaction.ID = primitive.NewObjectID()
	f.stored = append(f.stored, interaction)
	return nil
}

func (f *fakeInteractionRepo) CreateMany(ctx context.Context, interactions []*models.Interaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, interaction := range interactions {
		_ = f.Create(ctx, interaction)
	}
	return nil
}

func (f *fakeInteractionRepo) FindByPhoneNumber(_ context.Context, phoneNumber string) ([]models.Interaction, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := []models.Interaction{}
	for _, interaction := range f.stored {
		if interaction.UserPhoneNumber == phoneNumber {
			out = append(out, *interaction)
		}
	}
	return out, nil
}

type fakeSessionRepo struct {
	sessions map[string]*models.Session
	getErr   error
	saveErr  error
	lastTTL  time.Duration
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*models.Session{}}
}

func (f *fakeSessionRepo) Get(_ context.Context, phoneNumber string) (*models.Session, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	session, ok := f.sessions[phoneNumber]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return session, nil
}

func (f *fakeSessionRepo) Save(_ context.Context, phoneNumber string, state models.SessionState, ttl time.Duration) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.lastTTL = ttl
	f.sessions[phoneNumber] = &models.Session{
		PhoneNumber: phoneNumber,
		State:       state,
		ExpiresAt:   time.Now().Add(ttl),
	}
	return nil
}
