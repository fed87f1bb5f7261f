package domain

import (
	"time"

	"github.com/google/uuid"
)

// Filters are optional: a nil field means "not supplied".

// RepresentativeFilter narrows a representative listing.
type RepresentativeFilter struct {
	Level    *GovernmentLevel
	District *string
}

// IssueFilter narrows an issue listing.
type IssueFilter struct {
	Status   *IssueStatus
	Priority *Priority
}

// InteractionFilter narrows an interaction listing. From and To bound the
// interaction date inclusively; either may be omitted.
type InteractionFilter struct {
	RepresentativeID *uuid.UUID
	IssueID          *uuid.UUID
	From             *time.Time
	To               *time.Time
}

// TaskFilter narrows a task listing.
type TaskFilter struct {
	Status   *TaskStatus
	Priority *Priority
	IssueID  *uuid.UUID
}

// FollowupFilter narrows a follow-up listing.
type FollowupFilter struct {
	Status        *FollowupStatus
	InteractionID *uuid.UUID
}
