// Package task implements task listing and the task mutation operations.
package task

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/access"
	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

type engine interface {
	List(ctx context.Context, owner uuid.UUID, preds ...access.Predicate) ([]*domain.Task, error)
	Get(ctx context.Context, owner, id uuid.UUID) (*domain.Task, error)
	Create(ctx context.Context, owner uuid.UUID, rec *domain.Task) (uuid.UUID, error)
	Update(ctx context.Context, owner, id uuid.UUID, patch domain.Patch) error
	Transition(ctx context.Context, owner, id uuid.UUID, patch domain.Patch) error
}

// Service provides task operations for a resolved owner.
type Service struct {
	engine engine
	log    *slog.Logger
}

// NewService creates a new Task service.
func NewService(log *slog.Logger, engine engine) *Service {
	return &Service{
		engine: engine,
		log:    log.With("service", "task"),
	}
}

// Schema describes tasks to the access engine.
func Schema() access.Schema[*domain.Task] {
	return access.Schema[*domain.Task]{
		Kind:    domain.EntityTypeTask,
		Filters: []string{"status", "priority", "issue_id"},
		Indexes: []access.Index{
			{Name: "by_user_status", Keys: []access.Key{{Field: "status"}, {Field: "due_date", Range: true}}},
			{Name: "by_user_priority", Keys: []access.Key{{Field: "priority"}, {Field: "due_date", Range: true}}},
			{Name: "by_user_issue", Keys: []access.Key{{Field: "issue_id"}, {Field: "due_date", Range: true}}},
			{Name: "by_user_due_date", Keys: []access.Key{{Field: "due_date", Range: true}}},
		},
		Fallback: "by_user_due_date",
		Order:    access.Order{Field: "due_date"},
		Refs:     []access.RefField{{Field: "issue_id", Kind: domain.EntityTypeIssue}},
		Value:    value,
	}
}

func value(t *domain.Task, field string) any {
	switch field {
	case "status":
		return string(t.Status)
	case "priority":
		return string(t.Priority)
	case "issue_id":
		if t.IssueID == nil {
			return nil
		}
		return *t.IssueID
	case "due_date":
		return t.DueDate
	case "created_at":
		return t.CreatedAt
	}
	return nil
}
