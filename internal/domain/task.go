package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a to-do item, optionally tied to an issue.
type Task struct {
	ID           uuid.UUID  `db:"id"            json:"id"`
	UserID       uuid.UUID  `db:"user_id"       json:"user_id"`
	IssueID      *uuid.UUID `db:"issue_id"      json:"issue_id,omitempty"`
	Title        string     `db:"title"         json:"title"`
	Description  string     `db:"description"   json:"description"`
	DueDate      time.Time  `db:"due_date"      json:"due_date"`
	Status       TaskStatus `db:"status"        json:"status"`
	Priority     Priority   `db:"priority"      json:"priority"`
	ReminderSent bool       `db:"reminder_sent" json:"reminder_sent"`
	CreatedAt    time.Time  `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"    json:"updated_at"`
}

func (t *Task) RecordID() uuid.UUID        { return t.ID }
func (t *Task) OwnerID() uuid.UUID         { return t.UserID }
func (t *Task) AssignOwner(owner uuid.UUID) { t.UserID = owner }

// TaskUpdateParams holds a partial update. nil = don't change.
type TaskUpdateParams struct {
	IssueID      *uuid.UUID
	Title        *string
	Description  *string
	DueDate      *time.Time
	Status       *TaskStatus
	Priority     *Priority
	ReminderSent *bool
}

// Patch converts the supplied fields into column assignments.
func (p TaskUpdateParams) Patch() Patch {
	patch := Patch{}
	if p.IssueID != nil {
		patch["issue_id"] = *p.IssueID
	}
	if p.Title != nil {
		patch["title"] = *p.Title
	}
	if p.Description != nil {
		patch["description"] = *p.Description
	}
	if p.DueDate != nil {
		patch["due_date"] = p.DueDate.UTC()
	}
	if p.Status != nil {
		patch["status"] = string(*p.Status)
	}
	if p.Priority != nil {
		patch["priority"] = string(*p.Priority)
	}
	if p.ReminderSent != nil {
		patch["reminder_sent"] = *p.ReminderSent
	}
	return patch
}
