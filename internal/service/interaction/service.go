// Package interaction implements the interaction log: listing, creation
// and partial updates of contacts with representatives.
package interaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/access"
	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

type engine interface {
	List(ctx context.Context, owner uuid.UUID, preds ...access.Predicate) ([]*domain.Interaction, error)
	Get(ctx context.Context, owner, id uuid.UUID) (*domain.Interaction, error)
	Create(ctx context.Context, owner uuid.UUID, rec *domain.Interaction) (uuid.UUID, error)
	Update(ctx context.Context, owner, id uuid.UUID, patch domain.Patch) error
}

// Service provides interaction operations for a resolved owner.
type Service struct {
	engine engine
	log    *slog.Logger
}

// NewService creates a new Interaction service.
func NewService(log *slog.Logger, engine engine) *Service {
	return &Service{
		engine: engine,
		log:    log.With("service", "interaction"),
	}
}

// Schema describes interactions to the access engine. Listings are newest first.
func Schema() access.Schema[*domain.Interaction] {
	return access.Schema[*domain.Interaction]{
		Kind:    domain.EntityTypeInteraction,
		Filters: []string{"representative_id", "issue_id", "date"},
		Indexes: []access.Index{
			{Name: "by_user_representative_date", Keys: []access.Key{{Field: "representative_id"}, {Field: "date", Range: true}}},
			{Name: "by_user_issue_date", Keys: []access.Key{{Field: "issue_id"}, {Field: "date", Range: true}}},
			{Name: "by_user_date", Keys: []access.Key{{Field: "date", Range: true}}},
		},
		Fallback: "by_user_date",
		Order:    access.Order{Field: "date", Desc: true},
		Refs: []access.RefField{
			{Field: "representative_id", Kind: domain.EntityTypeRepresentative, Required: true},
			{Field: "issue_id", Kind: domain.EntityTypeIssue},
		},
		Value: value,
	}
}

func value(i *domain.Interaction, field string) any {
	switch field {
	case "representative_id":
		return i.RepresentativeID
	case "issue_id":
		if i.IssueID == nil {
			return nil
		}
		return *i.IssueID
	case "date":
		return i.Date
	case "type":
		return string(i.Type)
	case "outcome":
		return string(i.Outcome)
	}
	return nil
}

// List returns the owner's interactions matching filter, newest first.
// From and To bound the interaction date inclusively.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, filter domain.InteractionFilter) ([]*domain.Interaction, error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	var preds []access.Predicate
	if filter.RepresentativeID != nil {
		preds = append(preds, access.Equals("representative_id", *filter.RepresentativeID))
	}
	if filter.IssueID != nil {
		preds = append(preds, access.Equals("issue_id", *filter.IssueID))
	}
	if filter.From != nil || filter.To != nil {
		preds = append(preds, access.Between("date", filter.From, filter.To))
	}

	return s.engine.List(ctx, ownerID, preds...)
}

// Get returns one of the owner's interactions.
func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Interaction, error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.engine.Get(ctx, ownerID, id)
}

// Create logs an interaction with one of the owner's representatives,
// optionally about one of the owner's issues.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, input CreateInteractionInput) (uuid.UUID, error) {
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

	s.log.InfoContext(ctx, "interaction created",
		slog.String("user_id", ownerID.String()),
		slog.String("interaction_id", id.String()),
		slog.String("representative_id", input.RepresentativeID.String()),
	)
	return id, nil
}

// Update applies a partial update. Changing issue_id re-validates the reference.
func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateInteractionInput) error {
	if ownerID == uuid.Nil {
		return domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.engine.Update(ctx, ownerID, id, input.params().Patch()); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "interaction updated",
		slog.String("user_id", ownerID.String()),
		slog.String("interaction_id", id.String()),
	)
	return nil
}
