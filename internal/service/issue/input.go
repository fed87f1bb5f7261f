package issue

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

const (
	maxTitle     = 200
	maxText      = 10000
	maxTags      = 50
	maxTagLength = 50
	maxListItems = 100

	statusMessage   = "must be one of active, monitoring, archived, resolved, blocked"
	priorityMessage = "must be one of high, medium, low"
)

// CreateIssueInput holds the parameters for creating an issue.
type CreateIssueInput struct {
	Title           string
	Description     string
	Status          domain.IssueStatus
	Priority        domain.Priority
	Tags            []string
	TargetDate      *time.Time
	Notes           string
	KeyPoints       []string
	SuccessCriteria []string
}

// Validate checks all fields and collects all errors.
func (i CreateIssueInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(strings.TrimSpace(i.Title)) > maxTitle {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: statusMessage})
	}
	if !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: priorityMessage})
	}
	errs = append(errs, checkText("description", i.Description)...)
	errs = append(errs, checkText("notes", i.Notes)...)
	errs = append(errs, checkTags(i.Tags)...)
	errs = append(errs, checkList("key_points", i.KeyPoints)...)
	errs = append(errs, checkList("success_criteria", i.SuccessCriteria)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateIssueInput) record() *domain.Issue {
	rec := &domain.Issue{
		ID:              uuid.New(),
		Title:           strings.TrimSpace(i.Title),
		Description:     strings.TrimSpace(i.Description),
		Status:          i.Status,
		Priority:        i.Priority,
		Tags:            domain.NormalizeTags(i.Tags),
		Notes:           strings.TrimSpace(i.Notes),
		KeyPoints:       trimList(i.KeyPoints),
		SuccessCriteria: trimList(i.SuccessCriteria),
	}
	if i.TargetDate != nil {
		t := i.TargetDate.UTC()
		rec.TargetDate = &t
	}
	return rec
}

// UpdateIssueInput holds a partial update. nil = don't change.
type UpdateIssueInput struct {
	Title           *string
	Description     *string
	Status          *domain.IssueStatus
	Priority        *domain.Priority
	Tags            *[]string
	TargetDate      *time.Time
	Notes           *string
	KeyPoints       *[]string
	SuccessCriteria *[]string
}

// Validate checks all supplied fields and collects all errors.
func (i UpdateIssueInput) Validate() error {
	var errs []domain.FieldError

	if i == (UpdateIssueInput{}) {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		} else if utf8.RuneCountInString(title) > maxTitle {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: statusMessage})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: priorityMessage})
	}
	if i.Description != nil {
		errs = append(errs, checkText("description", *i.Description)...)
	}
	if i.Notes != nil {
		errs = append(errs, checkText("notes", *i.Notes)...)
	}
	if i.Tags != nil {
		errs = append(errs, checkTags(*i.Tags)...)
	}
	if i.KeyPoints != nil {
		errs = append(errs, checkList("key_points", *i.KeyPoints)...)
	}
	if i.SuccessCriteria != nil {
		errs = append(errs, checkList("success_criteria", *i.SuccessCriteria)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateIssueInput) params() domain.IssueUpdateParams {
	p := domain.IssueUpdateParams{
		Title:       trimPtr(i.Title),
		Description: trimPtr(i.Description),
		Status:      i.Status,
		Priority:    i.Priority,
		TargetDate:  i.TargetDate,
		Notes:       trimPtr(i.Notes),
	}
	if i.Tags != nil {
		tags := domain.NormalizeTags(*i.Tags)
		p.Tags = &tags
	}
	if i.KeyPoints != nil {
		kp := trimList(*i.KeyPoints)
		p.KeyPoints = &kp
	}
	if i.SuccessCriteria != nil {
		sc := trimList(*i.SuccessCriteria)
		p.SuccessCriteria = &sc
	}
	return p
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func checkText(field, s string) []domain.FieldError {
	if utf8.RuneCountInString(s) > maxText {
		return []domain.FieldError{{Field: field, Message: "max 10000 characters"}}
	}
	return nil
}

// checkTags validates tags after normalization, so duplicates that collapse
// into one count once.
func checkTags(tags []string) []domain.FieldError {
	normalized := domain.NormalizeTags(tags)
	if len(normalized) > maxTags {
		return []domain.FieldError{{Field: "tags", Message: "max 50 tags"}}
	}
	for _, t := range normalized {
		if utf8.RuneCountInString(t) > maxTagLength {
			return []domain.FieldError{{Field: "tags", Message: "each tag max 50 characters"}}
		}
	}
	return nil
}

func checkList(field string, items []string) []domain.FieldError {
	if len(items) > maxListItems {
		return []domain.FieldError{{Field: field, Message: "max 100 entries"}}
	}
	for _, it := range items {
		if utf8.RuneCountInString(it) > maxText {
			return []domain.FieldError{{Field: field, Message: "each entry max 10000 characters"}}
		}
	}
	return nil
}

// trimList trims every entry and drops blanks. Never returns nil.
func trimList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
