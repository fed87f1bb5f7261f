package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique subject and default preferences.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	prefs := domain.DefaultUserPreferences()
	user := domain.User{
		ID:          uuid.New(),
		Subject:     "subject-" + suffix,
		Name:        "Test User " + suffix,
		Email:       "testuser-" + suffix + "@example.com",
		Preferences: &prefs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, subject, name, email, preferences, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Subject, user.Name, user.Email, user.Preferences, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedRepresentative creates a federal representative owned by userID.
func SeedRepresentative(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Representative {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rep := domain.Representative{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Rep " + uniqueSuffix(),
		Title:     "Senator",
		Office:    "Senate",
		Level:     domain.GovernmentLevelFederal,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO representatives (id, user_id, name, title, office, level, contact_info, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rep.ID, rep.UserID, rep.Name, rep.Title, rep.Office, string(rep.Level), rep.ContactInfo, rep.CreatedAt, rep.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRepresentative: %v", err)
	}

	return rep
}

// SeedIssue creates an active, medium-priority issue owned by userID.
func SeedIssue(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Issue {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	issue := domain.Issue{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           "Issue " + uniqueSuffix(),
		Status:          domain.IssueStatusActive,
		Priority:        domain.PriorityMedium,
		Tags:            []string{"housing"},
		KeyPoints:       []string{},
		SuccessCriteria: []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO issues (id, user_id, title, status, priority, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		issue.ID, issue.UserID, issue.Title, string(issue.Status), string(issue.Priority), issue.Tags,
		issue.CreatedAt, issue.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIssue: %v", err)
	}

	return issue
}

// SeedInteraction creates a call to repID dated at date, owned by userID.
func SeedInteraction(t *testing.T, pool *pgxpool.Pool, userID, repID uuid.UUID, date time.Time) domain.Interaction {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	in := domain.Interaction{
		ID:               uuid.New(),
		UserID:           userID,
		RepresentativeID: repID,
		Type:             domain.InteractionTypeCall,
		Date:             date.UTC().Truncate(time.Microsecond),
		Outcome:          domain.OutcomeNeutral,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO interactions (id, user_id, representative_id, type, date, outcome, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		in.ID, in.UserID, in.RepresentativeID, string(in.Type), in.Date, string(in.Outcome), in.CreatedAt, in.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedInteraction: %v", err)
	}

	return in
}
