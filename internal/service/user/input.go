package user

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

const (
	maxName            = 200
	maxEmail           = 254
	maxReminderMinutes = 7 * 24 * 60
)

// UpdateProfileInput holds parameters for profile update operation.
// All fields are optional (nil = don't change).
type UpdateProfileInput struct {
	Name        *string
	Email       *string
	Preferences *domain.UserPreferences
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == nil && i.Email == nil && i.Preferences == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		} else if utf8.RuneCountInString(name) > maxName {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if i.Email != nil {
		email := strings.TrimSpace(*i.Email)
		if len(email) > maxEmail {
			errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
		} else if email != "" {
			if addr, err := mail.ParseAddress(email); err != nil || addr.Name != "" {
				errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
			}
		}
	}

	if i.Preferences != nil && i.Preferences.DefaultReminderMinutes != nil {
		m := *i.Preferences.DefaultReminderMinutes
		if m < 0 {
			errs = append(errs, domain.FieldError{Field: "preferences.default_reminder_minutes", Message: "must not be negative"})
		} else if m > maxReminderMinutes {
			errs = append(errs, domain.FieldError{Field: "preferences.default_reminder_minutes", Message: "must be at most 10080"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateProfileInput) params() domain.UserUpdateParams {
	p := domain.UserUpdateParams{Preferences: i.Preferences}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		p.Name = &name
	}
	if i.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*i.Email))
		p.Email = &email
	}
	return p
}
