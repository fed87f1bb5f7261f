package task

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/access"
	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

// List returns the owner's tasks matching filter, earliest due date first.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, filter domain.TaskFilter) ([]*domain.Task, error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	var preds []access.Predicate
	if filter.Status != nil {
		if !filter.Status.IsValid() {
			return nil, domain.NewValidationError("status", "must be one of todo, in_progress, done")
		}
		preds = append(preds, access.Equals("status", string(*filter.Status)))
	}
	if filter.Priority != nil {
		if !filter.Priority.IsValid() {
			return nil, domain.NewValidationError("priority", "must be one of high, medium, low")
		}
		preds = append(preds, access.Equals("priority", string(*filter.Priority)))
	}
	if filter.IssueID != nil {
		preds = append(preds, access.Equals("issue_id", *filter.IssueID))
	}

	return s.engine.List(ctx, ownerID, preds...)
}

// Get returns one of the owner's tasks.
func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.engine.Get(ctx, ownerID, id)
}

// Create creates a task for the owner. reminder_sent always starts false.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, input CreateTaskInput) (uuid.UUID, error) {
	if ownerID == uuid.Nil {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	id, err := s.engine.Create(ctx, ownerID, &domain.Task{
		ID:          uuid.New(),
		IssueID:     input.IssueID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		DueDate:     input.DueDate.UTC(),
		Status:      input.Status,
		Priority:    input.Priority,
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("user_id", ownerID.String()),
		slog.String("task_id", id.String()),
	)
	return id, nil
}

// Update applies a partial update to one of the owner's tasks.
func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateTaskInput) error {
	if ownerID == uuid.Nil {
		return domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.engine.Update(ctx, ownerID, id, input.params().Patch()); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "task updated",
		slog.String("user_id", ownerID.String()),
		slog.String("task_id", id.String()),
	)
	return nil
}

// Complete marks the task done. Nothing else about the task changes.
func (s *Service) Complete(ctx context.Context, ownerID, id uuid.UUID) error {
	if ownerID == uuid.Nil {
		return domain.ErrUnauthenticated
	}

	done := domain.TaskStatusDone
	if err := s.engine.Transition(ctx, ownerID, id, domain.TaskUpdateParams{Status: &done}.Patch()); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "task completed",
		slog.String("user_id", ownerID.String()),
		slog.String("task_id", id.String()),
	)
	return nil
}
