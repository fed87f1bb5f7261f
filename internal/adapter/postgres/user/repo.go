// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

var columns = []string{"id", "subject", "name", "email", "preferences", "created_at", "updated_at"}

// Profile columns a user may change.
var mutable = []string{"name", "email", "preferences"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new user repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id}, id)
}

// GetBySubject returns the user holding the identity provider subject.
func (r *Repo) GetBySubject(ctx context.Context, subject string) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"subject": subject}, uuid.Nil)
}

func (r *Repo) getBy(ctx context.Context, where squirrel.Eq, id uuid.UUID) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user select: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &u, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// CreateIfAbsent inserts u unless a user with the same subject exists.
// It returns the stored row and whether this call created it. Concurrent
// callers with the same subject all receive the single winning row.
func (r *Repo) CreateIfAbsent(ctx context.Context, u *domain.User) (*domain.User, bool, error) {
	query, args, err := postgres.Builder().
		Insert("users").
		Columns("id", "subject", "name", "email", "preferences").
		Values(u.ID, u.Subject, u.Name, u.Email, u.Preferences).
		Suffix("ON CONFLICT (subject) DO NOTHING RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build user insert: %w", err)
	}

	var rows []domain.User
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, false, postgres.MapError(err, "user", u.ID)
	}
	if len(rows) == 1 {
		return &rows[0], true, nil
	}

	// Lost the race: the conflicting row is committed, read it back.
	existing, err := r.GetBySubject(ctx, u.Subject)
	if err != nil {
		return nil, false, fmt.Errorf("re-read user by subject: %w", err)
	}
	return existing, false, nil
}

// Update applies patch to the user's profile and returns the stored row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, patch domain.Patch) (*domain.User, error) {
	set := make(map[string]any, len(patch))
	for _, col := range patch.Columns() {
		if !slices.Contains(mutable, col) {
			return nil, domain.NewValidationError(col, "cannot be changed")
		}
		set[col] = patch[col]
	}

	query, args, err := postgres.Builder().
		Update("users").
		SetMap(set).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user update: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &u, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}
