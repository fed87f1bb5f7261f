package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

// GetProfile returns the owner's profile.
func (s *Service) GetProfile(ctx context.Context, ownerID uuid.UUID) (*domain.User, error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", ownerGone(err))
	}

	return user, nil
}

// UpdateProfile changes the owner's name, email or notification preferences.
func (s *Service) UpdateProfile(ctx context.Context, ownerID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.Update(ctx, ownerID, input.params().Patch())
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", ownerGone(err))
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", ownerID.String()))

	return user, nil
}

// ownerGone reports a missing owner row as ErrUserNotFound.
func ownerGone(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrUserNotFound
	}
	return err
}
