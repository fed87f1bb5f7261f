// Package followup implements follow-up listing and mutations.
package followup

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/access"
	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

type engine interface {
	List(ctx context.Context, owner uuid.UUID, preds ...access.Predicate) ([]*domain.Followup, error)
	Get(ctx context.Context, owner, id uuid.UUID) (*domain.Followup, error)
	Create(ctx context.Context, owner uuid.UUID, rec *domain.Followup) (uuid.UUID, error)
	Update(ctx context.Context, owner, id uuid.UUID, patch domain.Patch) error
	Transition(ctx context.Context, owner, id uuid.UUID, patch domain.Patch) error
}

// Service provides follow-up operations for a resolved owner.
type Service struct {
	engine engine
	log    *slog.Logger
}

// NewService creates a new Followup service.
func NewService(log *slog.Logger, engine engine) *Service {
	return &Service{
		engine: engine,
		log:    log.With("service", "followup"),
	}
}

// List returns the owner's follow-ups matching filter, earliest due date first.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, filter domain.FollowupFilter) ([]*domain.Followup, error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	var preds []access.Predicate
	if filter.Status != nil {
		if !filter.Status.IsValid() {
			return nil, domain.NewValidationError("status", "must be one of pending, completed, cancelled")
		}
		preds = append(preds, access.Equals("status", string(*filter.Status)))
	}
	if filter.InteractionID != nil {
		preds = append(preds, access.Equals("interaction_id", *filter.InteractionID))
	}

	return s.engine.List(ctx, ownerID, preds...)
}

// Get returns one of the owner's follow-ups.
func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Followup, error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.engine.Get(ctx, ownerID, id)
}

// Create creates a follow-up on one of the owner's interactions.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, input CreateFollowupInput) (uuid.UUID, error) {
	if ownerID == uuid.Nil {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	id, err := s.engine.Create(ctx, ownerID, &domain.Followup{
		ID:            uuid.New(),
		InteractionID: input.InteractionID,
		DueDate:       input.DueDate.UTC(),
		Type:          input.Type,
		Status:        input.Status,
		Notes:         trimOrNil(input.Notes),
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.log.InfoContext(ctx, "followup created",
		slog.String("user_id", ownerID.String()),
		slog.String("followup_id", id.String()),
		slog.String("interaction_id", input.InteractionID.String()),
	)
	return id, nil
}

// Update applies a partial update to one of the owner's follow-ups.
func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateFollowupInput) error {
	if ownerID == uuid.Nil {
		return domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.engine.Update(ctx, ownerID, id, input.params().Patch()); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "followup updated",
		slog.String("user_id", ownerID.String()),
		slog.String("followup_id", id.String()),
	)
	return nil
}

// Complete marks the follow-up completed.
func (s *Service) Complete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.transition(ctx, ownerID, id, domain.FollowupStatusCompleted)
}

// Cancel marks the follow-up cancelled.
func (s *Service) Cancel(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.transition(ctx, ownerID, id, domain.FollowupStatusCancelled)
}

func (s *Service) transition(ctx context.Context, ownerID, id uuid.UUID, status domain.FollowupStatus) error {
	if ownerID == uuid.Nil {
		return domain.ErrUnauthenticated
	}

	if err := s.engine.Transition(ctx, ownerID, id, domain.FollowupUpdateParams{Status: &status}.Patch()); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "followup "+string(status),
		slog.String("user_id", ownerID.String()),
		slog.String("followup_id", id.String()),
	)
	return nil
}
