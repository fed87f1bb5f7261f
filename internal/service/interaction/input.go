package interaction

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

const (
	maxNotes     = 10000
	maxDraft     = 10000
	maxWhatWorks = 50
)

// CreateInteractionInput holds the parameters for logging an interaction.
type CreateInteractionInput struct {
	RepresentativeID uuid.UUID
	IssueID          *uuid.UUID
	Type             domain.InteractionType
	Date             time.Time
	Notes            string
	Outcome          domain.Outcome
	FollowUpNeeded   bool
	MessageFeedback  *domain.MessageFeedback
}

// Validate checks all fields and collects all errors.
func (i CreateInteractionInput) Validate() error {
	var errs []domain.FieldError

	if i.RepresentativeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "representative_id", Message: "required"})
	}
	if i.IssueID != nil && *i.IssueID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "issue_id", Message: "must be a valid id"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of call, email, meeting, letter"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if !i.Outcome.IsValid() {
		errs = append(errs, domain.FieldError{Field: "outcome", Message: "must be one of positive, neutral, negative, no_response"})
	}
	if utf8.RuneCountInString(i.Notes) > maxNotes {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 10000 characters"})
	}
	errs = append(errs, checkFeedback(i.MessageFeedback)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateInteractionInput) record() *domain.Interaction {
	return &domain.Interaction{
		ID:               uuid.New(),
		RepresentativeID: i.RepresentativeID,
		IssueID:          i.IssueID,
		Type:             i.Type,
		Date:             i.Date.UTC(),
		Notes:            strings.TrimSpace(i.Notes),
		Outcome:          i.Outcome,
		FollowUpNeeded:   i.FollowUpNeeded,
		MessageFeedback:  i.MessageFeedback,
	}
}

// UpdateInteractionInput holds a partial update. nil = don't change.
// The representative is fixed at creation.
type UpdateInteractionInput struct {
	IssueID         *uuid.UUID
	Type            *domain.InteractionType
	Date            *time.Time
	Notes           *string
	Outcome         *domain.Outcome
	FollowUpNeeded  *bool
	MessageFeedback *domain.MessageFeedback
}

// Validate checks all supplied fields and collects all errors.
func (i UpdateInteractionInput) Validate() error {
	var errs []domain.FieldError

	if i == (UpdateInteractionInput{}) {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.IssueID != nil && *i.IssueID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "issue_id", Message: "must be a valid id"})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of call, email, meeting, letter"})
	}
	if i.Date != nil && i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be a valid time"})
	}
	if i.Outcome != nil && !i.Outcome.IsValid() {
		errs = append(errs, domain.FieldError{Field: "outcome", Message: "must be one of positive, neutral, negative, no_response"})
	}
	if i.Notes != nil && utf8.RuneCountInString(*i.Notes) > maxNotes {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 10000 characters"})
	}
	errs = append(errs, checkFeedback(i.MessageFeedback)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInteractionInput) params() domain.InteractionUpdateParams {
	p := domain.InteractionUpdateParams{
		IssueID:         i.IssueID,
		Type:            i.Type,
		Date:            i.Date,
		Outcome:         i.Outcome,
		FollowUpNeeded:  i.FollowUpNeeded,
		MessageFeedback: i.MessageFeedback,
	}
	if i.Notes != nil {
		notes := strings.TrimSpace(*i.Notes)
		p.Notes = &notes
	}
	return p
}

func checkFeedback(fb *domain.MessageFeedback) []domain.FieldError {
	if fb == nil {
		return nil
	}
	var errs []domain.FieldError
	if fb.OriginalDraft != nil && utf8.RuneCountInString(*fb.OriginalDraft) > maxDraft {
		errs = append(errs, domain.FieldError{Field: "message_feedback.original_draft", Message: "max 10000 characters"})
	}
	if fb.FinalVersion != nil && utf8.RuneCountInString(*fb.FinalVersion) > maxDraft {
		errs = append(errs, domain.FieldError{Field: "message_feedback.final_version", Message: "max 10000 characters"})
	}
	if len(fb.WhatWorked) > maxWhatWorks {
		errs = append(errs, domain.FieldError{Field: "message_feedback.what_worked", Message: "max 50 entries"})
	}
	return errs
}
