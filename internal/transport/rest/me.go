package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
	"github.com/heartmarshall/advocacy-backend/internal/service/user"
)

type profileService interface {
	GetProfile(ctx context.Context, ownerID uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, ownerID uuid.UUID, input user.UpdateProfileInput) (*domain.User, error)
}

// ProfileHandler serves /me, the caller's own User record.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

func (h *ProfileHandler) Routes(r chi.Router) {
	r.Get("/", h.Get)
	r.Patch("/", h.Update)
}

type updateProfileRequest struct {
	Name        *string                 `json:"name"`
	Email       *string                 `json:"email"`
	Preferences *domain.UserPreferences `json:"preferences"`
}

// Get handles GET /me.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	u, err := h.svc.GetProfile(r.Context(), owner)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// Update handles PATCH /me and returns the updated profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateProfileRequest
	if err := decodePatch(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), owner, user.UpdateProfileInput{
		Name:        req.Name,
		Email:       req.Email,
		Preferences: req.Preferences,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
