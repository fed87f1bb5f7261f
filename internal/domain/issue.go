package domain

import (
	"time"

	"github.com/google/uuid"
)

// Issue is a cause the user advocates for.
type Issue struct {
	ID              uuid.UUID   `db:"id"               json:"id"`
	UserID          uuid.UUID   `db:"user_id"          json:"user_id"`
	Title           string      `db:"title"            json:"title"`
	Description     string      `db:"description"      json:"description"`
	Status          IssueStatus `db:"status"           json:"status"`
	Priority        Priority    `db:"priority"         json:"priority"`
	Tags            []string    `db:"tags"             json:"tags"`
	TargetDate      *time.Time  `db:"target_date"      json:"target_date,omitempty"`
	Notes           string      `db:"notes"            json:"notes"`
	KeyPoints       []string    `db:"key_points"       json:"key_points"`
	SuccessCriteria []string    `db:"success_criteria" json:"success_criteria"`
	CreatedAt       time.Time   `db:"created_at"       json:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at"       json:"updated_at"`
}

func (i *Issue) RecordID() uuid.UUID        { return i.ID }
func (i *Issue) OwnerID() uuid.UUID         { return i.UserID }
func (i *Issue) AssignOwner(owner uuid.UUID) { i.UserID = owner }

// IssueUpdateParams holds a partial update. nil = don't change.
type IssueUpdateParams struct {
	Title           *string
	Description     *string
	Status          *IssueStatus
	Priority        *Priority
	Tags            *[]string
	TargetDate      *time.Time
	Notes           *string
	KeyPoints       *[]string
	SuccessCriteria *[]string
}

// Patch converts the supplied fields into column assignments.
func (p IssueUpdateParams) Patch() Patch {
	patch := Patch{}
	if p.Title != nil {
		patch["title"] = *p.Title
	}
	if p.Description != nil {
		patch["description"] = *p.Description
	}
	if p.Status != nil {
		patch["status"] = string(*p.Status)
	}
	if p.Priority != nil {
		patch["priority"] = string(*p.Priority)
	}
	if p.Tags != nil {
		patch["tags"] = nonNilStrings(*p.Tags)
	}
	if p.TargetDate != nil {
		patch["target_date"] = p.TargetDate.UTC()
	}
	if p.Notes != nil {
		patch["notes"] = *p.Notes
	}
	if p.KeyPoints != nil {
		patch["key_points"] = nonNilStrings(*p.KeyPoints)
	}
	if p.SuccessCriteria != nil {
		patch["success_criteria"] = nonNilStrings(*p.SuccessCriteria)
	}
	return patch
}

// nonNilStrings keeps text[] columns NOT NULL.
func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
