// Package records declares the table definitions of the owned entities.
package records

import (
	"github.com/heartmarshall/advocacy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

type (
	RepresentativeTable = postgres.Table[domain.Representative, *domain.Representative]
	IssueTable          = postgres.Table[domain.Issue, *domain.Issue]
	InteractionTable    = postgres.Table[domain.Interaction, *domain.Interaction]
	TaskTable           = postgres.Table[domain.Task, *domain.Task]
	FollowupTable       = postgres.Table[domain.Followup, *domain.Followup]
)

// ---------------------------------------------------------------------------
// Representatives
// ---------------------------------------------------------------------------

var representativeColumns = []string{
	"id", "user_id", "name", "title", "office", "level", "district",
	"contact_info", "notes", "communication_preferences", "created_at", "updated_at",
}

// NewRepresentatives returns the representatives table.
func NewRepresentatives(pool postgres.Querier) *RepresentativeTable {
	return postgres.NewTable[domain.Representative](pool, postgres.TableDef[domain.Representative]{
		Name:    "representatives",
		Entity:  "representative",
		Columns: representativeColumns,
		Values: func(r *domain.Representative) map[string]any {
			return map[string]any{
				"id":                        r.ID,
				"user_id":                   r.UserID,
				"name":                      r.Name,
				"title":                     r.Title,
				"office":                    r.Office,
				"level":                     string(r.Level),
				"district":                  r.District,
				"contact_info":              r.ContactInfo,
				"notes":                     r.Notes,
				"communication_preferences": r.CommunicationPreferences,
			}
		},
	})
}

// ---------------------------------------------------------------------------
// Issues
// ---------------------------------------------------------------------------

var issueColumns = []string{
	"id", "user_id", "title", "description", "status", "priority", "tags",
	"target_date", "notes", "key_points", "success_criteria", "created_at", "updated_at",
}

// NewIssues returns the issues table.
func NewIssues(pool postgres.Querier) *IssueTable {
	return postgres.NewTable[domain.Issue](pool, postgres.TableDef[domain.Issue]{
		Name:    "issues",
		Entity:  "issue",
		Columns: issueColumns,
		Values: func(i *domain.Issue) map[string]any {
			return map[string]any{
				"id":               i.ID,
				"user_id":          i.UserID,
				"title":            i.Title,
				"description":      i.Description,
				"status":           string(i.Status),
				"priority":         string(i.Priority),
				"tags":             nonNil(i.Tags),
				"target_date":      i.TargetDate,
				"notes":            i.Notes,
				"key_points":       nonNil(i.KeyPoints),
				"success_criteria": nonNil(i.SuccessCriteria),
			}
		},
	})
}

// ---------------------------------------------------------------------------
// Interactions
// ---------------------------------------------------------------------------

var interactionColumns = []string{
	"id", "user_id", "representative_id", "issue_id", "type", "date", "notes",
	"outcome", "follow_up_needed", "message_feedback", "created_at", "updated_at",
}

// NewInteractions returns the interactions table.
func NewInteractions(pool postgres.Querier) *InteractionTable {
	return postgres.NewTable[domain.Interaction](pool, postgres.TableDef[domain.Interaction]{
		Name:    "interactions",
		Entity:  "interaction",
		Columns: interactionColumns,
		Values: func(i *domain.Interaction) map[string]any {
			return map[string]any{
				"id":                i.ID,
				"user_id":           i.UserID,
				"representative_id": i.RepresentativeID,
				"issue_id":          i.IssueID,
				"type":              string(i.Type),
				"date":              i.Date,
				"notes":             i.Notes,
				"outcome":           string(i.Outcome),
				"follow_up_needed":  i.FollowUpNeeded,
				"message_feedback":  i.MessageFeedback,
			}
		},
	})
}

// ---------------------------------------------------------------------------
// Tasks
// ---------------------------------------------------------------------------

var taskColumns = []string{
	"id", "user_id", "issue_id", "title", "description", "due_date",
	"status", "priority", "reminder_sent", "created_at", "updated_at",
}

// NewTasks returns the tasks table. reminder_sent is left to its default.
func NewTasks(pool postgres.Querier) *TaskTable {
	return postgres.NewTable[domain.Task](pool, postgres.TableDef[domain.Task]{
		Name:    "tasks",
		Entity:  "task",
		Columns: taskColumns,
		Values: func(t *domain.Task) map[string]any {
			return map[string]any{
				"id":          t.ID,
				"user_id":     t.UserID,
				"issue_id":    t.IssueID,
				"title":       t.Title,
				"description": t.Description,
				"due_date":    t.DueDate,
				"status":      string(t.Status),
				"priority":    string(t.Priority),
			}
		},
	})
}

// ---------------------------------------------------------------------------
// Followups
// ---------------------------------------------------------------------------

var followupColumns = []string{
	"id", "user_id", "interaction_id", "due_date", "type", "status",
	"notes", "reminder_sent", "created_at", "updated_at",
}

// NewFollowups returns the followups table. reminder_sent is left to its default.
func NewFollowups(pool postgres.Querier) *FollowupTable {
	return postgres.NewTable[domain.Followup](pool, postgres.TableDef[domain.Followup]{
		Name:    "followups",
		Entity:  "followup",
		Columns: followupColumns,
		Values: func(f *domain.Followup) map[string]any {
			return map[string]any{
				"id":             f.ID,
				"user_id":        f.UserID,
				"interaction_id": f.InteractionID,
				"due_date":       f.DueDate,
				"type":           string(f.Type),
				"status":         string(f.Status),
				"notes":          f.Notes,
			}
		},
	})
}

// nonNil keeps NOT NULL array columns non-null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
