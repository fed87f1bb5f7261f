package representative

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

const (
	maxName      = 200
	maxText      = 10000
	maxListItems = 100

	levelMessage = "must be one of federal, state, local"
)

// CreateRepresentativeInput holds the parameters for creating a representative.
type CreateRepresentativeInput struct {
	Name                     string
	Title                    string
	Office                   string
	Level                    domain.GovernmentLevel
	District                 *string
	ContactInfo              domain.ContactInfo
	Notes                    *string
	CommunicationPreferences *domain.CommunicationPreferences
}

// Validate checks all fields and collects all errors.
func (i CreateRepresentativeInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, checkRequired("name", i.Name)...)
	errs = append(errs, checkRequired("title", i.Title)...)
	errs = append(errs, checkRequired("office", i.Office)...)
	if !i.Level.IsValid() {
		errs = append(errs, domain.FieldError{Field: "level", Message: levelMessage})
	}
	if i.District != nil && utf8.RuneCountInString(*i.District) > maxName {
		errs = append(errs, domain.FieldError{Field: "district", Message: "max 200 characters"})
	}
	if i.Notes != nil && utf8.RuneCountInString(*i.Notes) > maxText {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 10000 characters"})
	}
	errs = append(errs, checkContact(i.ContactInfo)...)
	errs = append(errs, checkPreferences(i.CommunicationPreferences)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateRepresentativeInput) record() *domain.Representative {
	return &domain.Representative{
		ID:                       uuid.New(),
		Name:                     strings.TrimSpace(i.Name),
		Title:                    strings.TrimSpace(i.Title),
		Office:                   strings.TrimSpace(i.Office),
		Level:                    i.Level,
		District:                 trimOrNil(i.District),
		ContactInfo:              trimContact(i.ContactInfo),
		Notes:                    trimOrNil(i.Notes),
		CommunicationPreferences: i.CommunicationPreferences,
	}
}

// UpdateRepresentativeInput holds a partial update. nil = don't change.
type UpdateRepresentativeInput struct {
	Name                     *string
	Title                    *string
	Office                   *string
	Level                    *domain.GovernmentLevel
	District                 *string
	ContactInfo              *domain.ContactInfo
	Notes                    *string
	CommunicationPreferences *domain.CommunicationPreferences
}

// Validate checks all supplied fields and collects all errors.
func (i UpdateRepresentativeInput) Validate() error {
	var errs []domain.FieldError

	if i == (UpdateRepresentativeInput{}) {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = append(errs, checkRequired("name", *i.Name)...)
	}
	if i.Title != nil {
		errs = append(errs, checkRequired("title", *i.Title)...)
	}
	if i.Office != nil {
		errs = append(errs, checkRequired("office", *i.Office)...)
	}
	if i.Level != nil && !i.Level.IsValid() {
		errs = append(errs, domain.FieldError{Field: "level", Message: levelMessage})
	}
	if i.District != nil && utf8.RuneCountInString(*i.District) > maxName {
		errs = append(errs, domain.FieldError{Field: "district", Message: "max 200 characters"})
	}
	if i.Notes != nil && utf8.RuneCountInString(*i.Notes) > maxText {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 10000 characters"})
	}
	if i.ContactInfo != nil {
		errs = append(errs, checkContact(*i.ContactInfo)...)
	}
	errs = append(errs, checkPreferences(i.CommunicationPreferences)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateRepresentativeInput) params() domain.RepresentativeUpdateParams {
	p := domain.RepresentativeUpdateParams{
		Name:                     trimPtr(i.Name),
		Title:                    trimPtr(i.Title),
		Office:                   trimPtr(i.Office),
		Level:                    i.Level,
		District:                 trimPtr(i.District),
		Notes:                    trimPtr(i.Notes),
		CommunicationPreferences: i.CommunicationPreferences,
	}
	if i.ContactInfo != nil {
		ci := trimContact(*i.ContactInfo)
		p.ContactInfo = &ci
	}
	return p
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func checkRequired(field, s string) []domain.FieldError {
	s = strings.TrimSpace(s)
	if s == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if utf8.RuneCountInString(s) > maxName {
		return []domain.FieldError{{Field: field, Message: "max 200 characters"}}
	}
	return nil
}

func checkContact(ci domain.ContactInfo) []domain.FieldError {
	var errs []domain.FieldError
	if ci.Email != nil && *ci.Email != "" && !validEmail(*ci.Email) {
		errs = append(errs, domain.FieldError{Field: "contact_info.email", Message: "must be an email address"})
	}
	if ci.Phone != nil && utf8.RuneCountInString(*ci.Phone) > maxName {
		errs = append(errs, domain.FieldError{Field: "contact_info.phone", Message: "max 200 characters"})
	}
	if ci.OfficeAddress != nil && utf8.RuneCountInString(*ci.OfficeAddress) > maxText {
		errs = append(errs, domain.FieldError{Field: "contact_info.office_address", Message: "max 10000 characters"})
	}
	return errs
}

func checkPreferences(cp *domain.CommunicationPreferences) []domain.FieldError {
	if cp == nil {
		return nil
	}
	var errs []domain.FieldError
	if cp.PreferredStyle != nil && !cp.PreferredStyle.IsValid() {
		errs = append(errs, domain.FieldError{Field: "communication_preferences.preferred_style", Message: "must be one of formal, casual"})
	}
	if len(cp.KeyInterests) > maxListItems {
		errs = append(errs, domain.FieldError{Field: "communication_preferences.key_interests", Message: "max 100 entries"})
	}
	if len(cp.BestPractices) > maxListItems {
		errs = append(errs, domain.FieldError{Field: "communication_preferences.best_practices", Message: "max 100 entries"})
	}
	return errs
}

func trimContact(ci domain.ContactInfo) domain.ContactInfo {
	return domain.ContactInfo{
		Email:         trimOrNil(ci.Email),
		Phone:         trimOrNil(ci.Phone),
		OfficeAddress: trimOrNil(ci.OfficeAddress),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	return err == nil && addr.Name == ""
}
