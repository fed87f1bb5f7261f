package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/advocacy-backend/internal/transport/middleware"
)

// Handlers groups everything mounted by NewRouter.
type Handlers struct {
	Health          *HealthHandler
	Profile         *ProfileHandler
	Representatives *RepresentativeHandler
	Issues          *IssueHandler
	Interactions    *InteractionHandler
	Tasks           *TaskHandler
	Followups       *FollowupHandler
}

// RouterOptions carries the middleware stacks. Global wraps every route;
// Protected wraps only /api/v1 and must establish the owner.
type RouterOptions struct {
	Global       middleware.Middleware
	Protected    middleware.Middleware
	MaxBodyBytes int64
}

// NewRouter mounts the health probes and the owner-scoped API.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	if opts.Global != nil {
		r.Use(opts.Global)
	}
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api/v1", func(r chi.Router) {
		if opts.Protected != nil {
			r.Use(opts.Protected)
		}
		if opts.MaxBodyBytes > 0 {
			r.Use(limitBody(opts.MaxBodyBytes))
		}
		r.Route("/me", h.Profile.Routes)
		r.Route("/representatives", h.Representatives.Routes)
		r.Route("/issues", h.Issues.Routes)
		r.Route("/interactions", h.Interactions.Routes)
		r.Route("/tasks", h.Tasks.Routes)
		r.Route("/followups", h.Followups.Routes)
	})

	return r
}

func limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
