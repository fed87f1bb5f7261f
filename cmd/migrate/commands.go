package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/advocacy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/advocacy-backend/internal/config"
)

type rootOptions struct {
	configPath string
	dsn        string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the advocacy database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (defaults to CONFIG_PATH or ./config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.dsn, "dsn", "", "database DSN, overrides config")

	cmd.AddCommand(
		newUpCommand(opts),
		newDownCommand(opts),
		newStatusCommand(opts),
	)
	return cmd
}

func newUpCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProvider(cmd.Context(), opts, func(ctx context.Context, p *goose.Provider) error {
				results, err := p.Up(ctx)
				if err != nil {
					return fmt.Errorf("up: %w", err)
				}
				printResults(cmd.OutOrStdout(), results...)
				if len(results) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
				}
				return nil
			})
		},
	}
}

func newDownCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProvider(cmd.Context(), opts, func(ctx context.Context, p *goose.Provider) error {
				result, err := p.Down(ctx)
				if err != nil {
					return fmt.Errorf("down: %w", err)
				}
				printResults(cmd.OutOrStdout(), result)
				return nil
			})
		},
	}
}

func newStatusCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProvider(cmd.Context(), opts, func(ctx context.Context, p *goose.Provider) error {
				statuses, err := p.Status(ctx)
				if err != nil {
					return fmt.Errorf("status: %w", err)
				}
				w := cmd.OutOrStdout()
				for _, s := range statuses {
					applied := "pending"
					if s.State == goose.StateApplied {
						applied = s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
					}
					fmt.Fprintf(w, "%-20s %s\n", applied, s.Source.Path)
				}
				return nil
			})
		},
	}
}

func withProvider(ctx context.Context, opts *rootOptions, fn func(context.Context, *goose.Provider) error) error {
	dsn, err := resolveDSN(opts)
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	p, err := postgres.NewMigrator(db)
	if err != nil {
		return err
	}
	return fn(ctx, p)
}

// resolveDSN prefers --dsn so migrations can run without the rest of the
// application config being present.
func resolveDSN(opts *rootOptions) (string, error) {
	if opts.dsn != "" {
		return opts.dsn, nil
	}
	cfg, err := config.LoadFrom(opts.configPath)
	if err != nil {
		return "", err
	}
	return cfg.Database.DSN, nil
}

func printResults(w io.Writer, results ...*goose.MigrationResult) {
	for _, r := range results {
		if r == nil || r.Source == nil {
			continue
		}
		fmt.Fprintf(w, "%-4s %s (%s)\n", r.Direction, r.Source.Path, r.Duration.Round(time.Millisecond))
	}
}
