// Package reminder implements the trusted sweep that flags due tasks and
// follow-ups as reminded. It runs outside any request and is not scoped to
// an owner.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/advocacy-backend/internal/config"
	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

// dueRepo defines the storage interface needed by the sweep.
type dueRepo interface {
	DueTasks(ctx context.Context, until time.Time, limit int) ([]domain.Task, error)
	DueFollowups(ctx context.Context, until time.Time, limit int) ([]domain.Followup, error)
	MarkTasksSent(ctx context.Context, ids []uuid.UUID) (int64, error)
	MarkFollowupsSent(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// Result counts the items flagged by one sweep.
type Result struct {
	Tasks     int
	Followups int
}

// Service runs reminder sweeps.
type Service struct {
	repo      dueRepo
	log       *slog.Logger
	lookahead time.Duration
	batchSize int
}

// NewService creates a new reminder service.
func NewService(log *slog.Logger, repo dueRepo, cfg config.RemindersConfig) *Service {
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = 200
	}
	return &Service{
		repo:      repo,
		log:       log.With("service", "reminder"),
		lookahead: cfg.Lookahead,
		batchSize: batch,
	}
}

// Sweep flags every unreminded task (status != done) and pending follow-up
// due at or before now+lookahead. Tasks and follow-ups are swept concurrently.
// An item is flagged at most once even if sweeps overlap.
func (s *Service) Sweep(ctx context.Context, now time.Time) (Result, error) {
	until := now.UTC().Add(s.lookahead)
	var res Result

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := sweep(gctx, s, until, s.repo.DueTasks, s.repo.MarkTasksSent, func(t domain.Task) []any {
			return []any{
				slog.String("user_id", t.UserID.String()),
				slog.String("task_id", t.ID.String()),
				slog.Time("due_date", t.DueDate),
			}
		})
		res.Tasks = n
		if err != nil {
			return fmt.Errorf("sweep tasks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		n, err := sweep(gctx, s, until, s.repo.DueFollowups, s.repo.MarkFollowupsSent, func(f domain.Followup) []any {
			return []any{
				slog.String("user_id", f.UserID.String()),
				slog.String("followup_id", f.ID.String()),
				slog.String("interaction_id", f.InteractionID.String()),
				slog.Time("due_date", f.DueDate),
			}
		})
		res.Followups = n
		if err != nil {
			return fmt.Errorf("sweep followups: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return res, err
	}

	s.log.InfoContext(ctx, "reminder sweep finished",
		slog.Time("until", until),
		slog.Int("tasks", res.Tasks),
		slog.Int("followups", res.Followups),
	)
	return res, nil
}

// sweep drains one kind of due item in batches. Flagged items drop out of
// the next batch, so the loop ends once a batch comes back short.
func sweep[T any, P interface {
	*T
	RecordID() uuid.UUID
}](
	ctx context.Context,
	s *Service,
	until time.Time,
	due func(context.Context, time.Time, int) ([]T, error),
	mark func(context.Context, []uuid.UUID) (int64, error),
	attrs func(T) []any,
) (int, error) {
	total := 0
	for {
		items, err := due(ctx, until, s.batchSize)
		if err != nil {
			return total, err
		}
		if len(items) == 0 {
			return total, nil
		}

		ids := make([]uuid.UUID, len(items))
		for i := range items {
			ids[i] = P(&items[i]).RecordID()
			s.log.InfoContext(ctx, "reminder due", attrs(items[i])...)
		}

		n, err := mark(ctx, ids)
		if err != nil {
			return total, err
		}
		total += int(n)

		if len(items) < s.batchSize {
			return total, nil
		}
	}
}
