package task

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

const (
	maxTitle       = 200
	maxDescription = 10000
)

// CreateTaskInput holds the parameters for creating a task.
type CreateTaskInput struct {
	IssueID     *uuid.UUID
	Title       string
	Description string
	DueDate     time.Time
	Status      domain.TaskStatus
	Priority    domain.Priority
}

// Validate checks all fields and collects all errors.
func (i CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	errs = checkTitle(errs, i.Title)
	errs = checkDescription(errs, i.Description)
	if i.DueDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of todo, in_progress, done"})
	}
	if !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be one of high, medium, low"})
	}
	if i.IssueID != nil && *i.IssueID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "issue_id", Message: "must be a valid id"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTaskInput holds a partial update. nil = don't change.
type UpdateTaskInput struct {
	IssueID      *uuid.UUID
	Title        *string
	Description  *string
	DueDate      *time.Time
	Status       *domain.TaskStatus
	Priority     *domain.Priority
	ReminderSent *bool
}

// Validate checks all supplied fields and collects all errors.
func (i UpdateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i == (UpdateTaskInput{}) {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = checkTitle(errs, *i.Title)
	}
	if i.Description != nil {
		errs = checkDescription(errs, *i.Description)
	}
	if i.DueDate != nil && i.DueDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "must be a valid time"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of todo, in_progress, done"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be one of high, medium, low"})
	}
	if i.IssueID != nil && *i.IssueID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "issue_id", Message: "must be a valid id"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateTaskInput) params() domain.TaskUpdateParams {
	p := domain.TaskUpdateParams{
		IssueID:      i.IssueID,
		DueDate:      i.DueDate,
		Status:       i.Status,
		Priority:     i.Priority,
		ReminderSent: i.ReminderSent,
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		p.Title = &title
	}
	if i.Description != nil {
		desc := strings.TrimSpace(*i.Description)
		p.Description = &desc
	}
	return p
}

func checkTitle(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxTitle {
		return append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	return errs
}

func checkDescription(errs []domain.FieldError, desc string) []domain.FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(desc)) > maxDescription {
		return append(errs, domain.FieldError{Field: "description", Message: "max 10000 characters"})
	}
	return errs
}
