package middleware

import (
	"context"

	"github.com/google/uuid"
)

type ownerSlotKey struct{}

// ownerSlot lets an inner middleware report the resolved owner back to an
// outer one, since context values only flow inward.
type ownerSlot struct {
	owner uuid.UUID
	set   bool
}

func withOwnerSlot(ctx context.Context, s *ownerSlot) context.Context {
	return context.WithValue(ctx, ownerSlotKey{}, s)
}

func recordOwner(ctx context.Context, owner uuid.UUID) {
	if s, ok := ctx.Value(ownerSlotKey{}).(*ownerSlot); ok {
		s.owner, s.set = owner, true
	}
}
