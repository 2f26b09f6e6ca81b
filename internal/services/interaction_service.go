package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ArowuTest/newslens-backend/internal/analytics"
	"github.com/ArowuTest/newslens-backend/internal/models"
	"github.com/ArowuTest/newslens-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// AddInteractionInput carries a submitted interaction
type AddInteractionInput struct {
	UserPhoneNumber string
	Prompt          string
	Link            string
	Result          string
	Timestamp       time.Time
}

// InteractionService records interactions and derives summaries and digests from them
type InteractionService struct {
	interactionRepo repositories.InteractionRepository
	userRepo        repositories.UserRepository
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(interactionRepo repositories.InteractionRepository, userRepo repositories.UserRepository) *InteractionService {
	return &InteractionService{
		interactionRepo: interactionRepo,
		userRepo:        userRepo,
	}
}

// AddInteraction validates and stores an interaction. The weak user reference
// is filled in when a user with the phone number exists.
func (s *InteractionService) AddInteraction(ctx context.Context, in AddInteractionInput) (*models.Interaction, error) {
	interaction, err := s.build(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		return nil, newError(KindInternal, "interaction_create_failed", err)
	}
	slog.Debug("Interaction saved", "phoneNumber", interaction.UserPhoneNumber, "prompt", interaction.Prompt)
	return interaction, nil
}

// AddInteractions validates every input before storing the batch in one write
func (s *InteractionService) AddInteractions(ctx context.Context, in []AddInteractionInput) ([]*models.Interaction, error) {
	batch := make([]*models.Interaction, 0, len(in))
	for _, item := range in {
		interaction, err := s.build(ctx, item)
		if err != nil {
			return nil, err
		}
		batch = append(batch, interaction)
	}
	if err := s.interactionRepo.CreateMany(ctx, batch); err != nil {
		return nil, newError(KindInternal, "interaction_batch_failed", err)
	}
	return batch, nil
}

// FindByPhoneNumber returns the interactions recorded for a phone number,
// oldest first. No match is an empty slice, not an error.
func (s *InteractionService) FindByPhoneNumber(ctx context.Context, phoneNumber string) ([]models.Interaction, error) {
	if strings.TrimSpace(phoneNumber) == "" {
		return nil, newError(KindValidation, "phone_number_required", nil)
	}
	interactions, err := s.interactionRepo.FindByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, newError(KindInternal, "interaction_lookup_failed", err)
	}
	return interactions, nil
}

// Summary groups a phone number's interactions by prompt
func (s *InteractionService) Summary(ctx context.Context, phoneNumber string) (models.Summary, error) {
	interactions, err := s.requireInteractions(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}
	return analytics.Summarize(interactions), nil
}

// Digest returns the recommended topics for a phone number
func (s *InteractionService) Digest(ctx context.Context, phoneNumber string) ([]string, error) {
	interactions, err := s.requireInteractions(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}
	return analytics.Digest(interactions), nil
}

func (s *InteractionService) requireInteractions(ctx context.Context, phoneNumber string) ([]models.Interaction, error) {
	interactions, err := s.FindByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}
	if len(interactions) == 0 {
		return nil, newError(KindNotFound, "no_interactions", nil)
	}
	return interactions, nil
}

func (s *InteractionService) build(ctx context.Context, in AddInteractionInput) (*models.Interaction, error) {
	if strings.TrimSpace(in.UserPhoneNumber) == "" || strings.TrimSpace(in.Prompt) == "" || strings.TrimSpace(in.Result) == "" {
		return nil, newError(KindValidation, "interaction_fields_required", nil)
	}

	interaction := &models.Interaction{
		UserPhoneNumber: in.UserPhoneNumber,
		Prompt:          in.Prompt,
		Link:            in.Link,
		Result:          in.Result,
		Timestamp:       in.Timestamp,
	}

	user, err := s.userRepo.FindByPhoneNumber(ctx, in.UserPhoneNumber)
	switch {
	case err == nil:
		id := user.ID
		interaction.UserID = &id
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, newError(KindInternal, "user_lookup_failed", err)
	}
	return interaction, nil
}
