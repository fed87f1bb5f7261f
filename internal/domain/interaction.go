package domain

import (
	"time"

	"github.com/google/uuid"
)

// Interaction is a logged contact with a representative, optionally about an issue.
type Interaction struct {
	ID               uuid.UUID        `db:"id"                json:"id"`
	UserID           uuid.UUID        `db:"user_id"           json:"user_id"`
	RepresentativeID uuid.UUID        `db:"representative_id" json:"representative_id"`
	IssueID          *uuid.UUID       `db:"issue_id"          json:"issue_id,omitempty"`
	Type             InteractionType  `db:"type"              json:"type"`
	Date             time.Time        `db:"date"              json:"date"`
	Notes            string           `db:"notes"             json:"notes"`
	Outcome          Outcome          `db:"outcome"           json:"outcome"`
	FollowUpNeeded   bool             `db:"follow_up_needed"  json:"follow_up_needed"`
	MessageFeedback  *MessageFeedback `db:"message_feedback"  json:"message_feedback,omitempty"`
	CreatedAt        time.Time        `db:"created_at"        json:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at"        json:"updated_at"`
}

// MessageFeedback captures notes on the message that was sent. Stored as JSONB.
type MessageFeedback struct {
	OriginalDraft *string  `json:"original_draft,omitempty"`
	FinalVersion  *string  `json:"final_version,omitempty"`
	WhatWorked    []string `json:"what_worked,omitempty"`
}

func (i *Interaction) RecordID() uuid.UUID        { return i.ID }
func (i *Interaction) OwnerID() uuid.UUID         { return i.UserID }
func (i *Interaction) AssignOwner(owner uuid.UUID) { i.UserID = owner }

// InteractionUpdateParams holds a partial update. nil = don't change.
// The representative of an interaction is fixed at creation.
type InteractionUpdateParams struct {
	IssueID         *uuid.UUID
	Type            *InteractionType
	Date            *time.Time
	Notes           *string
	Outcome         *Outcome
	FollowUpNeeded  *bool
	MessageFeedback *MessageFeedback
}

// Patch converts the supplied fields into column assignments.
func (p InteractionUpdateParams) Patch() Patch {
	patch := Patch{}
	if p.IssueID != nil {
		patch["issue_id"] = *p.IssueID
	}
	if p.Type != nil {
		patch["type"] = string(*p.Type)
	}
	if p.Date != nil {
		patch["date"] = p.Date.UTC()
	}
	if p.Notes != nil {
		patch["notes"] = *p.Notes
	}
	if p.Outcome != nil {
		patch["outcome"] = string(*p.Outcome)
	}
	if p.FollowUpNeeded != nil {
		patch["follow_up_needed"] = *p.FollowUpNeeded
	}
	if p.MessageFeedback != nil {
		patch["message_feedback"] = *p.MessageFeedback
	}
	return patch
}
