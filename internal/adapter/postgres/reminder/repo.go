// Package reminder implements the trusted due-item queries used by the
// reminder sweep. Nothing here is owner-scoped.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/advocacy-backend/internal/adapter/postgres/records"
	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

// Repo provides reminder persistence backed by PostgreSQL.
type Repo struct {
	pool      postgres.Querier
	tasks     postgres.TableDef[domain.Task]
	followups postgres.TableDef[domain.Followup]
}

// New creates a new reminder repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{
		pool:      pool,
		tasks:     records.NewTasks(pool).Def(),
		followups: records.NewFollowups(pool).Def(),
	}
}

// DueTasks returns open tasks due at or before until whose reminder has not
// been sent, earliest first.
func (r *Repo) DueTasks(ctx context.Context, until time.Time, limit int) ([]domain.Task, error) {
	query, args, err := postgres.Builder().
		Select(r.tasks.Columns...).
		From(r.tasks.Name).
		Where(squirrel.Eq{"reminder_sent": false}).
		Where(squirrel.NotEq{"status": string(domain.TaskStatusDone)}).
		Where(squirrel.LtOrEq{"due_date": until}).
		OrderBy("due_date ASC", "id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due tasks: %w", err)
	}

	var tasks []domain.Task
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("select due tasks: %w", err)
	}
	return tasks, nil
}

// DueFollowups returns pending follow-ups due at or before until whose
// reminder has not been sent, earliest first.
func (r *Repo) DueFollowups(ctx context.Context, until time.Time, limit int) ([]domain.Followup, error) {
	query, args, err := postgres.Builder().
		Select(r.followups.Columns...).
		From(r.followups.Name).
		Where(squirrel.Eq{
			"reminder_sent": false,
			"status":        string(domain.FollowupStatusPending),
		}).
		Where(squirrel.LtOrEq{"due_date": until}).
		OrderBy("due_date ASC", "id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due followups: %w", err)
	}

	var followups []domain.Followup
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &followups, query, args...); err != nil {
		return nil, fmt.Errorf("select due followups: %w", err)
	}
	return followups, nil
}

// MarkTasksSent flips reminder_sent on the given tasks and returns how many
// rows changed. Rows already flipped by a concurrent sweep are skipped.
func (r *Repo) MarkTasksSent(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return r.markSent(ctx, r.tasks.Name, ids)
}

// MarkFollowupsSent is MarkTasksSent for follow-ups.
func (r *Repo) MarkFollowupsSent(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return r.markSent(ctx, r.followups.Name, ids)
}

func (r *Repo) markSent(ctx context.Context, table string, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := postgres.Builder().
		Update(table).
		Set("reminder_sent", true).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": ids, "reminder_sent": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build mark %s: %w", table, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("mark %s reminders: %w", table, err)
	}
	return tag.RowsAffected(), nil
}
