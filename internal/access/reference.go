package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

// OwnerLookup returns the owner of a record of one entity kind, or
// ErrNotFound when there is no such record.
type OwnerLookup interface {
	OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

// Ref is one foreign reference carried by a payload or a filter.
type Ref struct {
	Field string
	Kind  domain.EntityType
	ID    uuid.UUID
}

// ReferenceValidator checks that references resolve to records with the
// expected owner.
type ReferenceValidator struct {
	lookups map[domain.EntityType]OwnerLookup
}

// NewReferenceValidator creates a validator over the given per-kind lookups.
func NewReferenceValidator(lookups map[domain.EntityType]OwnerLookup) *ReferenceValidator {
	return &ReferenceValidator{lookups: lookups}
}

// Validate checks refs in order and returns the first failure. A missing
// record and a record owned by someone else both yield *domain.ReferenceError.
func (v *ReferenceValidator) Validate(ctx context.Context, owner uuid.UUID, refs ...Ref) error {
	for _, ref := range refs {
		if err := v.check(ctx, owner, ref); err != nil {
			return err
		}
	}
	return nil
}

func (v *ReferenceValidator) check(ctx context.Context, owner uuid.UUID, ref Ref) error {
	invalid := &domain.ReferenceError{Field: ref.Field, Kind: ref.Kind, ID: ref.ID}
	if ref.ID == uuid.Nil {
		return invalid
	}

	lookup, ok := v.lookups[ref.Kind]
	if !ok {
		return fmt.Errorf("no owner lookup registered for %s", ref.Kind)
	}

	got, err := lookup.OwnerOf(ctx, ref.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return invalid
	}
	if err != nil {
		return fmt.Errorf("resolve %s %s: %w", ref.Kind, ref.ID, err)
	}
	if got != owner {
		return invalid
	}
	return nil
}
