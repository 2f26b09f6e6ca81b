package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ArowuTest/newslens-backend/internal/models"
	"github.com/ArowuTest/newslens-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

const (
	ReplyWelcome           = "Welcome! Please enter your name to begin."
	ReplyRegistered        = "Thanks, %s! You’re now registered."
	ReplyRegistrationError = "Sorry, we couldn't register you. Please try again."
	ReplyAlreadyRegistered = "You're already registered."
)

// UserDirectory creates and looks up users on behalf of the onboarding flow
type UserDirectory interface {
	CreateUser(ctx context.Context, name, phoneNumber string) (*models.User, error)
	GetUserByPhoneNumber(ctx context.Context, phoneNumber string) (*models.User, error)
}

var _ UserDirectory = (*UserService)(nil)

// OnboardingService drives the two-state SMS registration conversation
type OnboardingService struct {
	sessions repositories.SessionRepository
	users    UserDirectory
	ttl      time.Duration
}

// NewOnboardingService creates a new OnboardingService. Sessions expire after ttl without activity.
func NewOnboardingService(sessions repositories.SessionRepository, users UserDirectory, ttl time.Duration) *OnboardingService {
	return &OnboardingService{
		sessions: sessions,
		users:    users,
		ttl:      ttl,
	}
}

// HandleMessage advances the conversation for the sender and returns the reply text
func (s *OnboardingService) HandleMessage(ctx context.Context, from, body string) (string, error) {
	if strings.TrimSpace(from) == "" {
		return "", newError(KindValidation, "sender_required", nil)
	}

	session, err := s.sessions.Get(ctx, from)
	if errors.Is(err, repositories.ErrNotFound) {
		return s.start(ctx, from)
	}
	if err != nil {
		return "", newError(KindInternal, "session_lookup_failed", err)
	}

	switch session.State {
	case models.SessionAwaitingName:
		return s.register(ctx, from, strings.TrimSpace(body))
	default:
		return s.alreadyRegistered(ctx, from)
	}
}

// start opens a conversation for a sender without a live session. Known
// users (expired session, or created through the API) skip the name prompt.
func (s *OnboardingService) start(ctx context.Context, from string) (string, error) {
	_, err := s.users.GetUserByPhoneNumber(ctx, from)
	if err == nil {
		return s.alreadyRegistered(ctx, from)
	}
	if KindOf(err) != KindNotFound {
		return "", newError(KindInternal, "user_lookup_failed", err)
	}

	if err := s.sessions.Save(ctx, from, models.SessionAwaitingName, s.ttl); err != nil {
		return "", newError(KindInternal, "session_save_failed", err)
	}
	return ReplyWelcome, nil
}

func (s *OnboardingService) alreadyRegistered(ctx context.Context, from string) (string, error) {
	if err := s.sessions.Save(ctx, from, models.SessionRegistered, s.ttl); err != nil {
		return "", newError(KindInternal, "session_save_failed", err)
	}
	return ReplyAlreadyRegistered, nil
}

func (s *OnboardingService) register(ctx context.Context, from, name string) (string, error) {
	if _, err := s.users.CreateUser(ctx, name, from); err != nil {
		if KindOf(err) == KindConflict {
			return s.alreadyRegistered(ctx, from)
		}
		slog.Error("Failed to register", "phoneNumber", from, "error", err)
		if err := s.sessions.Save(ctx, from, models.SessionAwaitingName, s.ttl); err != nil {
			return "", newError(KindInternal, "session_save_failed", err)
		}
		return ReplyRegistrationError, nil
	}

	if err := s.sessions.Save(ctx, from, models.SessionRegistered, s.ttl); err != nil {
		// The user exists now; a lost state update only costs a retry prompt.
		slog.Warn("Failed to mark session registered", "phoneNumber", from, "error", err)
	}
	return fmt.Sprintf(ReplyRegistered, name), nil
}
