// Command reminders flags tasks and follow-ups due within the configured
// lookahead as reminded. It is intended to be invoked by an external cron
// job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/advocacy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/advocacy-backend/internal/app"
	"github.com/heartmarshall/advocacy-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, "advocacy-reminders")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svcs := app.NewServices(logger, pool, cfg)

	now := time.Now()
	res, err := svcs.Reminders.Sweep(ctx, now)
	if err != nil {
		logger.Error("reminder sweep failed",
			slog.String("error", err.Error()),
			slog.Time("now", now),
		)
		os.Exit(1)
	}

	logger.Info("reminder sweep completed",
		slog.Int("tasks", res.Tasks),
		slog.Int("followups", res.Followups),
		slog.Duration("lookahead", cfg.Reminders.Lookahead),
	)
}
