package followup

import (
	"github.com/heartmarshall/advocacy-backend/internal/access"
	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

// Schema describes follow-ups to the access engine.
func Schema() access.Schema[*domain.Followup] {
	return access.Schema[*domain.Followup]{
		Kind:    domain.EntityTypeFollowup,
		Filters: []string{"status", "interaction_id"},
		Indexes: []access.Index{
			{Name: "by_user_status", Keys: []access.Key{{Field: "status"}, {Field: "due_date", Range: true}}},
			{Name: "by_user_interaction", Keys: []access.Key{{Field: "interaction_id"}, {Field: "due_date", Range: true}}},
			{Name: "by_user_due_date", Keys: []access.Key{{Field: "due_date", Range: true}}},
		},
		Fallback: "by_user_due_date",
		Order:    access.Order{Field: "due_date"},
		Refs: []access.RefField{
			{Field: "interaction_id", Kind: domain.EntityTypeInteraction, Required: true},
		},
		Value: func(f *domain.Followup, field string) any {
			switch field {
			case "status":
				return string(f.Status)
			case "interaction_id":
				return f.InteractionID
			case "due_date":
				return f.DueDate
			case "type":
				return string(f.Type)
			}
			return nil
		},
	}
}
