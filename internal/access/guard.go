// Package access implements the owner-scoped data access engine shared by
// every owned entity: ownership checks, index selection, reference
// validation and the create/update pipeline.
package access

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

// Owned is anything that carries an owner id.
type Owned interface {
	OwnerID() uuid.UUID
}

// Authorize admits rec only when it belongs to owner. It performs no I/O.
// A mismatch is ErrUnauthorized, never ErrNotFound.
func Authorize[R Owned](rec R, owner uuid.UUID) (R, error) {
	if owner == uuid.Nil || rec.OwnerID() != owner {
		var zero R
		return zero, domain.ErrUnauthorized
	}
	return rec, nil
}
