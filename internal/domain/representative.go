package domain

import (
	"time"

	"github.com/google/uuid"
)

// Representative is an elected official or staffer the user contacts.
type Representative struct {
	ID                       uuid.UUID                 `db:"id"                        json:"id"`
	UserID                   uuid.UUID                 `db:"user_id"                   json:"user_id"`
	Name                     string                    `db:"name"                      json:"name"`
	Title                    string                    `db:"title"                     json:"title"`
	Office                   string                    `db:"office"                    json:"office"`
	Level                    GovernmentLevel           `db:"level"                     json:"level"`
	District                 *string                   `db:"district"                  json:"district,omitempty"`
	ContactInfo              ContactInfo               `db:"contact_info"              json:"contact_info"`
	Notes                    *string                   `db:"notes"                     json:"notes,omitempty"`
	CommunicationPreferences *CommunicationPreferences `db:"communication_preferences" json:"communication_preferences,omitempty"`
	CreatedAt                time.Time                 `db:"created_at"                json:"created_at"`
	UpdatedAt                time.Time                 `db:"updated_at"                json:"updated_at"`
}

// ContactInfo is stored as JSONB.
type ContactInfo struct {
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	OfficeAddress *string `json:"office_address,omitempty"`
}

// CommunicationPreferences is stored as JSONB.
type CommunicationPreferences struct {
	PreferredStyle *CommunicationStyle `json:"preferred_style,omitempty"`
	KeyInterests   []string            `json:"key_interests,omitempty"`
	BestPractices  []string            `json:"best_practices,omitempty"`
}

func (r *Representative) RecordID() uuid.UUID        { return r.ID }
func (r *Representative) OwnerID() uuid.UUID         { return r.UserID }
func (r *Representative) AssignOwner(owner uuid.UUID) { r.UserID = owner }

// RepresentativeUpdateParams holds a partial update. nil = don't change.
type RepresentativeUpdateParams struct {
	Name                     *string
	Title                    *string
	Office                   *string
	Level                    *GovernmentLevel
	District                 *string
	ContactInfo              *ContactInfo
	Notes                    *string
	CommunicationPreferences *CommunicationPreferences
}

// Patch converts the supplied fields into column assignments.
func (p RepresentativeUpdateParams) Patch() Patch {
	patch := Patch{}
	if p.Name != nil {
		patch["name"] = *p.Name
	}
	if p.Title != nil {
		patch["title"] = *p.Title
	}
	if p.Office != nil {
		patch["office"] = *p.Office
	}
	if p.Level != nil {
		patch["level"] = string(*p.Level)
	}
	if p.District != nil {
		patch["district"] = *p.District
	}
	if p.ContactInfo != nil {
		patch["contact_info"] = *p.ContactInfo
	}
	if p.Notes != nil {
		patch["notes"] = *p.Notes
	}
	if p.CommunicationPreferences != nil {
		patch["communication_preferences"] = *p.CommunicationPreferences
	}
	return patch
}
