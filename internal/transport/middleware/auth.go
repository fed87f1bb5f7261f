package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/auth"
	"github.com/heartmarshall/advocacy-backend/internal/domain"
	"github.com/heartmarshall/advocacy-backend/pkg/ctxutil"
)

type tokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

type ownerResolver interface {
	Resolve(ctx context.Context, id auth.Identity) (uuid.UUID, error)
}

// Auth requires a bearer token on every request. The token's subject is
// resolved to an owner id, which downstream handlers read via ctxutil.
func Auth(logger *slog.Logger, verifier tokenVerifier, owners ownerResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "missing bearer token")
				return
			}

			id, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", slog.String("error", err.Error()))
				writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "invalid token")
				return
			}

			owner, err := owners.Resolve(r.Context(), id)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "invalid token")
					return
				}
				logger.ErrorContext(r.Context(), "resolve owner",
					slog.String("subject", id.Subject),
					slog.String("error", err.Error()),
				)
				writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
				return
			}

			recordOwner(r.Context(), owner)
			ctx := ctxutil.WithOwnerID(r.Context(), owner)
			ctx = ctxutil.WithSubject(ctx, id.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
