package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultUserName is assigned when the identity provider supplies no name.
const DefaultUserName = "New User"

// User is the owner of every other record. Subject is the identity
// provider's stable opaque identifier and is unique.
type User struct {
	ID          uuid.UUID        `db:"id"          json:"id"`
	Subject     string           `db:"subject"     json:"-"`
	Name        string           `db:"name"        json:"name"`
	Email       string           `db:"email"       json:"email"`
	Preferences *UserPreferences `db:"preferences" json:"preferences,omitempty"`
	CreatedAt   time.Time        `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at"  json:"updated_at"`
}

// UserPreferences holds notification settings. Stored as JSONB.
type UserPreferences struct {
	Notifications          NotificationSettings `json:"notification_settings"`
	DefaultReminderMinutes *int                 `json:"default_reminder_minutes,omitempty"`
}

// NotificationSettings selects reminder delivery channels.
type NotificationSettings struct {
	Email bool  `json:"email"`
	SMS   *bool `json:"sms,omitempty"`
	Push  *bool `json:"push,omitempty"`
}

// UserUpdateParams contains the profile fields a user may change.
// nil = don't change.
type UserUpdateParams struct {
	Name        *string
	Email       *string
	Preferences *UserPreferences
}

// Patch converts the supplied fields into column assignments.
func (p UserUpdateParams) Patch() Patch {
	patch := Patch{}
	if p.Name != nil {
		patch["name"] = *p.Name
	}
	if p.Email != nil {
		patch["email"] = *p.Email
	}
	if p.Preferences != nil {
		patch["preferences"] = *p.Preferences
	}
	return patch
}

// DefaultUserPreferences returns the preferences a new profile starts with:
// email notifications on, no default reminder offset.
func DefaultUserPreferences() UserPreferences {
	return UserPreferences{Notifications: NotificationSettings{Email: true}}
}
