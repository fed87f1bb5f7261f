package domain

import (
	"time"

	"github.com/google/uuid"
)

// Followup is a planned next contact after an interaction.
type Followup struct {
	ID            uuid.UUID      `db:"id"             json:"id"`
	UserID        uuid.UUID      `db:"user_id"        json:"user_id"`
	InteractionID uuid.UUID      `db:"interaction_id" json:"interaction_id"`
	DueDate       time.Time      `db:"due_date"       json:"due_date"`
	Type          FollowupType   `db:"type"           json:"type"`
	Status        FollowupStatus `db:"status"         json:"status"`
	Notes         *string        `db:"notes"          json:"notes,omitempty"`
	ReminderSent  bool           `db:"reminder_sent"  json:"reminder_sent"`
	CreatedAt     time.Time      `db:"created_at"     json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"     json:"updated_at"`
}

func (f *Followup) RecordID() uuid.UUID        { return f.ID }
func (f *Followup) OwnerID() uuid.UUID         { return f.UserID }
func (f *Followup) AssignOwner(owner uuid.UUID) { f.UserID = owner }

// FollowupUpdateParams holds a partial update. nil = don't change.
// The interaction a follow-up belongs to is fixed at creation.
type FollowupUpdateParams struct {
	DueDate      *time.Time
	Type         *FollowupType
	Status       *FollowupStatus
	Notes        *string
	ReminderSent *bool
}

// Patch converts the supplied fields into column assignments.
func (p FollowupUpdateParams) Patch() Patch {
	patch := Patch{}
	if p.DueDate != nil {
		patch["due_date"] = p.DueDate.UTC()
	}
	if p.Type != nil {
		patch["type"] = string(*p.Type)
	}
	if p.Status != nil {
		patch["status"] = string(*p.Status)
	}
	if p.Notes != nil {
		patch["notes"] = *p.Notes
	}
	if p.ReminderSent != nil {
		patch["reminder_sent"] = *p.ReminderSent
	}
	return patch
}
