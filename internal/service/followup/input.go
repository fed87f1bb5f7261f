package followup

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

const maxNotes = 10000

// CreateFollowupInput holds the parameters for creating a follow-up.
type CreateFollowupInput struct {
	InteractionID uuid.UUID
	DueDate       time.Time
	Type          domain.FollowupType
	Status        domain.FollowupStatus
	Notes         *string
}

// Validate checks all fields and collects all errors.
func (i CreateFollowupInput) Validate() error {
	var errs []domain.FieldError

	if i.InteractionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "interaction_id", Message: "required"})
	}
	if i.DueDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of call, email, meeting"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of pending, completed, cancelled"})
	}
	if i.Notes != nil && utf8.RuneCountInString(*i.Notes) > maxNotes {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 10000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateFollowupInput holds a partial update. nil = don't change.
type UpdateFollowupInput struct {
	DueDate      *time.Time
	Type         *domain.FollowupType
	Status       *domain.FollowupStatus
	Notes        *string
	ReminderSent *bool
}

// Validate checks all supplied fields and collects all errors.
func (i UpdateFollowupInput) Validate() error {
	var errs []domain.FieldError

	if i == (UpdateFollowupInput{}) {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.DueDate != nil && i.DueDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "must be a valid time"})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of call, email, meeting"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of pending, completed, cancelled"})
	}
	if i.Notes != nil && utf8.RuneCountInString(*i.Notes) > maxNotes {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 10000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateFollowupInput) params() domain.FollowupUpdateParams {
	p := domain.FollowupUpdateParams{
		DueDate:      i.DueDate,
		Type:         i.Type,
		Status:       i.Status,
		ReminderSent: i.ReminderSent,
	}
	if i.Notes != nil {
		notes := strings.TrimSpace(*i.Notes)
		p.Notes = &notes
	}
	return p
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
