// Package identity maps identity-provider subjects to owner ids.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/auth"
	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the resolver.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetBySubject(ctx context.Context, subject string) (*domain.User, error)
	CreateIfAbsent(ctx context.Context, u *domain.User) (*domain.User, bool, error)
}

// Resolver turns a verified identity into the id of the owning User,
// creating the User with a default profile on first sight.
type Resolver struct {
	users userRepo
	log   *slog.Logger
}

// NewResolver creates a new identity resolver.
func NewResolver(log *slog.Logger, users userRepo) *Resolver {
	return &Resolver{
		users: users,
		log:   log.With("service", "identity"),
	}
}

// Resolve returns the owner id for id.Subject. Concurrent first calls for the
// same subject create exactly one User and all observe its id.
func (r *Resolver) Resolve(ctx context.Context, id auth.Identity) (uuid.UUID, error) {
	subject := strings.TrimSpace(id.Subject)
	if subject == "" {
		return uuid.Nil, domain.ErrUnauthenticated
	}

	u, err := r.users.GetBySubject(ctx, subject)
	if err == nil {
		return u.ID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return uuid.Nil, fmt.Errorf("identity.Resolve: %w", err)
	}

	prefs := domain.DefaultUserPreferences()
	name := id.Name
	if name == "" {
		name = domain.DefaultUserName
	}

	u, created, err := r.users.CreateIfAbsent(ctx, &domain.User{
		ID:          uuid.New(),
		Subject:     subject,
		Name:        name,
		Email:       strings.ToLower(id.Email),
		Preferences: &prefs,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("identity.Resolve create: %w", err)
	}

	if created {
		r.log.InfoContext(ctx, "user created",
			slog.String("user_id", u.ID.String()))
	}
	return u.ID, nil
}

// Owner loads the resolved owner. A missing row means the owner was deleted
// after resolution and is reported as ErrUserNotFound.
func (r *Resolver) Owner(ctx context.Context, ownerID uuid.UUID) (*domain.User, error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	u, err := r.users.GetByID(ctx, ownerID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("identity.Owner: %w", err)
	}
	return u, nil
}
