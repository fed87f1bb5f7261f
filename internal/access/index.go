package access

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Declarations
// ---------------------------------------------------------------------------

// Key is one column of a declared index. The owner column is an implicit
// leading key of every index and is not listed.
type Key struct {
	Field string
	// Range marks an ordered column that accepts a range predicate.
	// A range predicate ends the usable prefix.
	Range bool
}

// Index is a declared composite index, e.g. by_user_status = [status, due_date].
type Index struct {
	Name string
	Keys []Key
}

// Order is an entity's canonical listing order. Ties break on id ascending.
type Order struct {
	Field string
	Desc  bool
}

// RefField declares a column that holds the id of another owned record.
type RefField struct {
	Field    string
	Kind     domain.EntityType
	Required bool
}

// Schema describes one entity to the engine. Entity packages declare it once;
// the engine never inspects query text to decide which index applies.
type Schema[R Record] struct {
	Kind domain.EntityType
	// Filters lists the filterable fields in canonical order.
	Filters []string
	// Indexes in declaration order. Declaration order breaks ties.
	Indexes []Index
	// Fallback names the index used when no supplied filter is covered.
	Fallback string
	Order    Order
	Refs     []RefField
	// Value returns a field of rec as a comparable value: string for enums
	// and text, uuid.UUID for ids, time.Time for timestamps, nil when absent.
	Value func(rec R, field string) any
}

// ---------------------------------------------------------------------------
// Predicates
// ---------------------------------------------------------------------------

// Predicate is one supplied filter: equality on Eq, or an inclusive time
// range over From/To (either bound may be nil). The kind is fixed by the
// constructor, never inferred from the values.
type Predicate struct {
	Field string
	Eq    any
	From  *time.Time
	To    *time.Time

	ranged bool
}

// Equals builds an equality predicate.
func Equals(field string, v any) Predicate {
	return Predicate{Field: field, Eq: v}
}

// Between builds an inclusive range predicate. Bounds are truncated to the
// storage precision so Go-side and SQL-side comparisons agree.
func Between(field string, from, to *time.Time) Predicate {
	p := Predicate{Field: field, ranged: true}
	if from != nil {
		t := from.UTC().Truncate(time.Microsecond)
		p.From = &t
	}
	if to != nil {
		t := to.UTC().Truncate(time.Microsecond)
		p.To = &t
	}
	return p
}

// IsRange reports whether p is a range predicate.
func (p Predicate) IsRange() bool { return p.ranged }

// Match reports whether v satisfies p.
func (p Predicate) Match(v any) bool {
	if !p.IsRange() {
		return v != nil && v == p.Eq
	}
	t, ok := v.(time.Time)
	if !ok {
		return false
	}
	if p.From != nil && t.Before(*p.From) {
		return false
	}
	if p.To != nil && t.After(*p.To) {
		return false
	}
	return true
}

func (p Predicate) String() string {
	if !p.IsRange() {
		return fmt.Sprintf("%s=%v", p.Field, p.Eq)
	}
	var b strings.Builder
	b.WriteString(p.Field)
	b.WriteString(" in [")
	if p.From != nil {
		b.WriteString(p.From.Format(time.RFC3339))
	}
	b.WriteString(", ")
	if p.To != nil {
		b.WriteString(p.To.Format(time.RFC3339))
	}
	b.WriteString("]")
	return b.String()
}

// ---------------------------------------------------------------------------
// Planning
// ---------------------------------------------------------------------------

// Plan is the chosen access path for one listing. Bounds are pushed into the
// indexed scan; Residual is applied to the scanned rows afterwards.
type Plan struct {
	Index    Index
	Bounds   []Predicate
	Residual []Predicate
	Order    Order
}

// canonical validates the supplied predicates and returns them sorted by the
// schema's canonical filter order.
func (s *Schema[R]) canonical(preds []Predicate) ([]Predicate, error) {
	var errs []domain.FieldError
	seen := make(map[string]bool, len(preds))
	for _, p := range preds {
		if !slices.Contains(s.Filters, p.Field) {
			errs = append(errs, domain.FieldError{Field: p.Field, Message: "unknown filter"})
			continue
		}
		if seen[p.Field] {
			errs = append(errs, domain.FieldError{Field: p.Field, Message: "supplied more than once"})
			continue
		}
		seen[p.Field] = true
		if !p.IsRange() && p.Eq == nil {
			errs = append(errs, domain.FieldError{Field: p.Field, Message: "equality filter needs a value"})
		}
		if p.IsRange() && p.From != nil && p.To != nil && p.From.After(*p.To) {
			errs = append(errs, domain.FieldError{Field: p.Field, Message: "range start is after range end"})
		}
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	out := slices.Clone(preds)
	slices.SortStableFunc(out, func(a, b Predicate) int {
		return slices.Index(s.Filters, a.Field) - slices.Index(s.Filters, b.Field)
	})
	return out, nil
}

// Plan picks the index whose leading keys cover the most supplied
// predicates. Ties go to the index with more keys, then to the one declared
// first. When nothing is covered the fallback index is used and every
// predicate becomes residual. preds must already be in canonical order.
func (s *Schema[R]) Plan(preds []Predicate) Plan {
	best, bestCovered := -1, []int(nil)
	for i, idx := range s.Indexes {
		covered := coverage(idx, preds)
		if len(covered) == 0 {
			continue
		}
		if best < 0 ||
			len(covered) > len(bestCovered) ||
			(len(covered) == len(bestCovered) && len(idx.Keys) > len(s.Indexes[best].Keys)) {
			best, bestCovered = i, covered
		}
	}

	plan := Plan{Order: s.Order}
	if best < 0 {
		plan.Index = s.index(s.Fallback)
		plan.Residual = slices.Clone(preds)
		return plan
	}

	plan.Index = s.Indexes[best]
	for i, p := range preds {
		if slices.Contains(bestCovered, i) {
			plan.Bounds = append(plan.Bounds, p)
		} else {
			plan.Residual = append(plan.Residual, p)
		}
	}
	return plan
}

// coverage returns the positions in preds of the predicates that bound a
// prefix of idx. An equality predicate extends the prefix; a range
// predicate on a range key is covered and ends it.
func coverage(idx Index, preds []Predicate) []int {
	var covered []int
	for _, k := range idx.Keys {
		j := slices.IndexFunc(preds, func(p Predicate) bool { return p.Field == k.Field })
		if j < 0 {
			break
		}
		if preds[j].IsRange() {
			if k.Range {
				covered = append(covered, j)
			}
			break
		}
		covered = append(covered, j)
	}
	return covered
}

func (s *Schema[R]) index(name string) Index {
	for _, idx := range s.Indexes {
		if idx.Name == name {
			return idx
		}
	}
	// Owner-only scan.
	return Index{Name: name}
}

// ---------------------------------------------------------------------------
// Residual filtering and ordering
// ---------------------------------------------------------------------------

func (s *Schema[R]) matches(rec R, preds []Predicate) bool {
	for _, p := range preds {
		if !p.Match(s.Value(rec, p.Field)) {
			return false
		}
	}
	return true
}

func (s *Schema[R]) sort(recs []R) {
	slices.SortStableFunc(recs, func(a, b R) int {
		c := compareValues(s.Value(a, s.Order.Field), s.Value(b, s.Order.Field))
		if s.Order.Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
		ia, ib := a.RecordID(), b.RecordID()
		return bytes.Compare(ia[:], ib[:])
	})
}

// compareValues orders two field values of the same kind. nil sorts last.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	switch x := a.(type) {
	case time.Time:
		y, _ := b.(time.Time)
		return x.Compare(y)
	case string:
		y, _ := b.(string)
		return strings.Compare(x, y)
	case uuid.UUID:
		y, _ := b.(uuid.UUID)
		return bytes.Compare(x[:], y[:])
	}
	return 0
}
