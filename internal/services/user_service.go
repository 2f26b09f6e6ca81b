package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ArowuTest/newslens-backend/internal/models"
	"github.com/ArowuTest/newslens-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// UserService handles user-related business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUser registers a new user. A phone number that is already taken
// yields a KindConflict error and no second record.
func (s *UserService) CreateUser(ctx context.Context, name, phoneNumber string) (*models.User, error) {
	name = strings.TrimSpace(name)
	phoneNumber = strings.TrimSpace(phoneNumber)
	if name == "" || phoneNumber == "" {
		return nil, newError(KindValidation, "name_and_phone_required", nil)
	}

	_, err := s.userRepo.FindByPhoneNumber(ctx, phoneNumber)
	switch {
	case err == nil:
		return nil, newError(KindConflict, "phone_number_taken", nil)
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, newError(KindInternal, "user_lookup_failed", err)
	}

	user := &models.User{
		Name:        name,
		PhoneNumber: phoneNumber,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, newError(KindConflict, "phone_number_taken", err)
		}
		return nil, newError(KindInternal, "user_create_failed", err)
	}

	slog.Info("User created", "phoneNumber", user.PhoneNumber, "userId", user.ID.Hex())
	return user, nil
}

// GetUserByPhoneNumber retrieves a user by phone number
func (s *UserService) GetUserByPhoneNumber(ctx context.Context, phoneNumber string) (*models.User, error) {
	user, err := s.userRepo.FindByPhoneNumber(ctx, phoneNumber)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, newError(KindNotFound, "user_not_found", err)
	}
	if err != nil {
		return nil, newError(KindInternal, "user_lookup_failed", err)
	}
	return user, nil
}
