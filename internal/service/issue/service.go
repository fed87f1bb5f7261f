// Package issue implements the causes a user advocates for.
package issue

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/access"
	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

type engine interface {
	List(ctx context.Context, owner uuid.UUID, preds ...access.Predicate) ([]*domain.Issue, error)
	Get(ctx context.Context, owner, id uuid.UUID) (*domain.Issue, error)
	Create(ctx context.Context, owner uuid.UUID, rec *domain.Issue) (uuid.UUID, error)
	Update(ctx context.Context, owner, id uuid.UUID, patch domain.Patch) error
	Transition(ctx context.Context, owner, id uuid.UUID, patch domain.Patch) error
}

// Service provides issue operations for a resolved owner.
type Service struct {
	engine engine
	log    *slog.Logger
}

// NewService creates a new Issue service.
func NewService(log *slog.Logger, engine engine) *Service {
	return &Service{
		engine: engine,
		log:    log.With("service", "issue"),
	}
}

// Schema describes issues to the access engine. by_user_target_date serves
// no filter today; it is declared because the table carries it.
func Schema() access.Schema[*domain.Issue] {
	return access.Schema[*domain.Issue]{
		Kind:    domain.EntityTypeIssue,
		Filters: []string{"status", "priority"},
		Indexes: []access.Index{
			{Name: "by_user_status_priority", Keys: []access.Key{{Field: "status"}, {Field: "priority"}}},
			{Name: "by_user_status", Keys: []access.Key{{Field: "status"}}},
			{Name: "by_user_priority", Keys: []access.Key{{Field: "priority"}}},
			{Name: "by_user_target_date", Keys: []access.Key{{Field: "target_date", Range: true}}},
			{Name: "by_user"},
		},
		Fallback: "by_user",
		Order:    access.Order{Field: "created_at"},
		Value: func(i *domain.Issue, field string) any {
			switch field {
			case "status":
				return string(i.Status)
			case "priority":
				return string(i.Priority)
			case "target_date":
				if i.TargetDate == nil {
					return nil
				}
				return *i.TargetDate
			case "created_at":
				return i.CreatedAt
			}
			return nil
		},
	}
}

// List returns the owner's issues matching filter, oldest first.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, filter domain.IssueFilter) ([]*domain.Issue, error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	var preds []access.Predicate
	if filter.Status != nil {
		if !filter.Status.IsValid() {
			return nil, domain.NewValidationError("status", statusMessage)
		}
		preds = append(preds, access.Equals("status", string(*filter.Status)))
	}
	if filter.Priority != nil {
		if !filter.Priority.IsValid() {
			return nil, domain.NewValidationError("priority", priorityMessage)
		}
		preds = append(preds, access.Equals("priority", string(*filter.Priority)))
	}

	return s.engine.List(ctx, ownerID, preds...)
}

// Get returns one of the owner's issues.
func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Issue, error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.engine.Get(ctx, ownerID, id)
}

// Create creates an issue for the owner.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, input CreateIssueInput) (uuid.UUID, error) {
	if ownerID == uuid.Nil {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	id, err := s.engine.Create(ctx, ownerID, input.record())
	if err != nil {
		return uuid.Nil, err
	}

	s.log.InfoContext(ctx, "issue created",
		slog.String("user_id", ownerID.String()),
		slog.String("issue_id", id.String()),
	)
	return id, nil
}

// Update applies a partial update. Fields not supplied are left untouched.
func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateIssueInput) error {
	if ownerID == uuid.Nil {
		return domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.engine.Update(ctx, ownerID, id, input.params().Patch()); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "issue updated",
		slog.String("user_id", ownerID.String()),
		slog.String("issue_id", id.String()),
	)
	return nil
}

// Archive sets the issue's status to archived. Interactions and tasks
// referencing the issue are not touched.
func (s *Service) Archive(ctx context.Context, ownerID, id uuid.UUID) error {
	if ownerID == uuid.Nil {
		return domain.ErrUnauthenticated
	}

	archived := domain.IssueStatusArchived
	if err := s.engine.Transition(ctx, ownerID, id, domain.IssueUpdateParams{Status: &archived}.Patch()); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "issue archived",
		slog.String("user_id", ownerID.String()),
		slog.String("issue_id", id.String()),
	)
	return nil
}
