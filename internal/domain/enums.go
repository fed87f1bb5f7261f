package domain

// EntityType identifies the kind of owned record (used in references and logs).
type EntityType string

const (
	EntityTypeUser           EntityType = "user"
	EntityTypeRepresentative EntityType = "representative"
	EntityTypeIssue          EntityType = "issue"
	EntityTypeInteraction    EntityType = "interaction"
	EntityTypeTask           EntityType = "task"
	EntityTypeFollowup       EntityType = "followup"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeUser, EntityTypeRepresentative, EntityTypeIssue,
		EntityTypeInteraction, EntityTypeTask, EntityTypeFollowup:
		return true
	}
	return false
}

// GovernmentLevel is the level of office a representative holds.
type GovernmentLevel string

const (
	GovernmentLevelFederal GovernmentLevel = "federal"
	GovernmentLevelState   GovernmentLevel = "state"
	GovernmentLevelLocal   GovernmentLevel = "local"
)

func (l GovernmentLevel) String() string { return string(l) }

func (l GovernmentLevel) IsValid() bool {
	switch l {
	case GovernmentLevelFederal, GovernmentLevelState, GovernmentLevelLocal:
		return true
	}
	return false
}

// CommunicationStyle is a representative's preferred register.
type CommunicationStyle string

const (
	CommunicationStyleFormal CommunicationStyle = "formal"
	CommunicationStyleCasual CommunicationStyle = "casual"
)

func (s CommunicationStyle) IsValid() bool {
	switch s {
	case CommunicationStyleFormal, CommunicationStyleCasual:
		return true
	}
	return false
}

// IssueStatus is the lifecycle state of an issue.
type IssueStatus string

const (
	IssueStatusActive     IssueStatus = "active"
	IssueStatusMonitoring IssueStatus = "monitoring"
	IssueStatusArchived   IssueStatus = "archived"
	IssueStatusResolved   IssueStatus = "resolved"
	IssueStatusBlocked    IssueStatus = "blocked"
)

func (s IssueStatus) String() string { return string(s) }

func (s IssueStatus) IsValid() bool {
	switch s {
	case IssueStatusActive, IssueStatusMonitoring, IssueStatusArchived,
		IssueStatusResolved, IssueStatusBlocked:
		return true
	}
	return false
}

// Priority is shared by issues and tasks.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// InteractionType is the channel an interaction happened over.
type InteractionType string

const (
	InteractionTypeCall    InteractionType = "call"
	InteractionTypeEmail   InteractionType = "email"
	InteractionTypeMeeting InteractionType = "meeting"
	InteractionTypeLetter  InteractionType = "letter"
)

func (t InteractionType) String() string { return string(t) }

func (t InteractionType) IsValid() bool {
	switch t {
	case InteractionTypeCall, InteractionTypeEmail, InteractionTypeMeeting, InteractionTypeLetter:
		return true
	}
	return false
}

// Outcome records how an interaction went.
type Outcome string

const (
	OutcomePositive   Outcome = "positive"
	OutcomeNeutral    Outcome = "neutral"
	OutcomeNegative   Outcome = "negative"
	OutcomeNoResponse Outcome = "no_response"
)

func (o Outcome) String() string { return string(o) }

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomePositive, OutcomeNeutral, OutcomeNegative, OutcomeNoResponse:
		return true
	}
	return false
}

// TaskStatus is the progress state of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// FollowupType is the planned channel of a follow-up. Letters are not offered.
type FollowupType string

const (
	FollowupTypeCall    FollowupType = "call"
	FollowupTypeEmail   FollowupType = "email"
	FollowupTypeMeeting FollowupType = "meeting"
)

func (t FollowupType) String() string { return string(t) }

func (t FollowupType) IsValid() bool {
	switch t {
	case FollowupTypeCall, FollowupTypeEmail, FollowupTypeMeeting:
		return true
	}
	return false
}

// FollowupStatus is the state of a follow-up.
type FollowupStatus string

const (
	FollowupStatusPending   FollowupStatus = "pending"
	FollowupStatusCompleted FollowupStatus = "completed"
	FollowupStatusCancelled FollowupStatus = "cancelled"
)

func (s FollowupStatus) String() string { return string(s) }

func (s FollowupStatus) IsValid() bool {
	switch s {
	case FollowupStatusPending, FollowupStatusCompleted, FollowupStatusCancelled:
		return true
	}
	return false
}
