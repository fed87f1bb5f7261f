// Package representative manages the officials and staffers a user contacts.
package representative

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/access"
	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

type engine interface {
	List(ctx context.Context, owner uuid.UUID, preds ...access.Predicate) ([]*domain.Representative, error)
	Get(ctx context.Context, owner, id uuid.UUID) (*domain.Representative, error)
	Create(ctx context.Context, owner uuid.UUID, rec *domain.Representative) (uuid.UUID, error)
	Update(ctx context.Context, owner, id uuid.UUID, patch domain.Patch) error
}

// Service provides representative operations for a resolved owner.
type Service struct {
	engine engine
	log    *slog.Logger
}

// NewService creates a new Representative service.
func NewService(log *slog.Logger, engine engine) *Service {
	return &Service{
		engine: engine,
		log:    log.With("service", "representative"),
	}
}

// Schema describes representatives to the access engine. Only the owner
// prefix is indexed; level and district are always residual.
func Schema() access.Schema[*domain.Representative] {
	return access.Schema[*domain.Representative]{
		Kind:     domain.EntityTypeRepresentative,
		Filters:  []string{"level", "district"},
		Indexes:  []access.Index{{Name: "by_user"}},
		Fallback: "by_user",
		Order:    access.Order{Field: "created_at"},
		Value: func(r *domain.Representative, field string) any {
			switch field {
			case "level":
				return string(r.Level)
			case "district":
				if r.District == nil {
					return nil
				}
				return *r.District
			case "created_at":
				return r.CreatedAt
			}
			return nil
		},
	}
}

// List returns the owner's representatives in creation order.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, filter domain.RepresentativeFilter) ([]*domain.Representative, error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	var preds []access.Predicate
	if filter.Level != nil {
		if !filter.Level.IsValid() {
			return nil, domain.NewValidationError("level", levelMessage)
		}
		preds = append(preds, access.Equals("level", string(*filter.Level)))
	}
	if filter.District != nil {
		preds = append(preds, access.Equals("district", strings.TrimSpace(*filter.District)))
	}

	return s.engine.List(ctx, ownerID, preds...)
}

// Get returns one of the owner's representatives.
func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Representative, error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.engine.Get(ctx, ownerID, id)
}

// Create creates a representative for the owner.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, input CreateRepresentativeInput) (uuid.UUID, error) {
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

	s.log.InfoContext(ctx, "representative created",
		slog.String("user_id", ownerID.String()),
		slog.String("representative_id", id.String()),
		slog.String("level", string(input.Level)),
	)
	return id, nil
}

// Update applies a partial update to one of the owner's representatives.
func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateRepresentativeInput) error {
	if ownerID == uuid.Nil {
		return domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.engine.Update(ctx, ownerID, id, input.params().Patch()); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "representative updated",
		slog.String("user_id", ownerID.String()),
		slog.String("representative_id", id.String()),
	)
	return nil
}
