package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/advocacy-backend/internal/access"
	"github.com/heartmarshall/advocacy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/advocacy-backend/internal/adapter/postgres/records"
	reminderrepo "github.com/heartmarshall/advocacy-backend/internal/adapter/postgres/reminder"
	userrepo "github.com/heartmarshall/advocacy-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/advocacy-backend/internal/config"
	"github.com/heartmarshall/advocacy-backend/internal/domain"
	"github.com/heartmarshall/advocacy-backend/internal/service/followup"
	"github.com/heartmarshall/advocacy-backend/internal/service/identity"
	"github.com/heartmarshall/advocacy-backend/internal/service/interaction"
	"github.com/heartmarshall/advocacy-backend/internal/service/issue"
	"github.com/heartmarshall/advocacy-backend/internal/service/reminder"
	"github.com/heartmarshall/advocacy-backend/internal/service/representative"
	"github.com/heartmarshall/advocacy-backend/internal/service/task"
	"github.com/heartmarshall/advocacy-backend/internal/service/user"
)

// Services holds every domain service built over one connection pool.
type Services struct {
	Identity        *identity.Resolver
	Users           *user.Service
	Representatives *representative.Service
	Issues          *issue.Service
	Interactions    *interaction.Service
	Tasks           *task.Service
	Followups       *followup.Service
	Reminders       *reminder.Service
}

// NewServices wires repositories, access engines and services.
func NewServices(logger *slog.Logger, pool *pgxpool.Pool, cfg *config.Config) *Services {
	txm := postgres.NewTxManager(pool)

	reps := records.NewRepresentatives(pool)
	issues := records.NewIssues(pool)
	interactions := records.NewInteractions(pool)
	tasks := records.NewTasks(pool)
	followups := records.NewFollowups(pool)

	refs := access.NewReferenceValidator(map[domain.EntityType]access.OwnerLookup{
		domain.EntityTypeRepresentative: reps,
		domain.EntityTypeIssue:          issues,
		domain.EntityTypeInteraction:    interactions,
		domain.EntityTypeTask:           tasks,
		domain.EntityTypeFollowup:       followups,
	})

	users := userrepo.New(pool)

	return &Services{
		Identity: identity.NewResolver(logger, users),
		Users:    user.NewService(logger, users),
		Representatives: representative.NewService(logger,
			access.NewEngine(logger, representative.Schema(), reps, refs, txm)),
		Issues: issue.NewService(logger,
			access.NewEngine(logger, issue.Schema(), issues, refs, txm)),
		Interactions: interaction.NewService(logger,
			access.NewEngine(logger, interaction.Schema(), interactions, refs, txm)),
		Tasks: task.NewService(logger,
			access.NewEngine(logger, task.Schema(), tasks, refs, txm)),
		Followups: followup.NewService(logger,
			access.NewEngine(logger, followup.Schema(), followups, refs, txm)),
		Reminders: reminder.NewService(logger, reminderrepo.New(pool), cfg.Reminders),
	}
}
