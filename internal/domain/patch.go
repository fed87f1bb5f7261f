package domain

import (
	"maps"
	"slices"
)

// Patch maps column names to new values for a partial update. Only the
// columns present are written.
type Patch map[string]any

// ImmutableColumns can never appear in a patch.
var ImmutableColumns = []string{"id", "user_id", "created_at"}

// Has reports whether the patch sets the given column.
func (p Patch) Has(column string) bool {
	_, ok := p[column]
	return ok
}

// Columns returns the patched column names in sorted order.
func (p Patch) Columns() []string {
	return slices.Sorted(maps.Keys(p))
}

// Validate rejects empty patches and patches that touch immutable columns.
func (p Patch) Validate() error {
	if len(p) == 0 {
		return NewValidationError("input", "at least one field must be provided")
	}
	var errs []FieldError
	for _, col := range ImmutableColumns {
		if p.Has(col) {
			errs = append(errs, FieldError{Field: col, Message: "immutable"})
		}
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
