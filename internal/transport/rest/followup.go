package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
	"github.com/heartmarshall/advocacy-backend/internal/service/followup"
)

type followupService interface {
	List(ctx context.Context, ownerID uuid.UUID, filter domain.FollowupFilter) ([]*domain.Followup, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Followup, error)
	Create(ctx context.Context, ownerID uuid.UUID, input followup.CreateFollowupInput) (uuid.UUID, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input followup.UpdateFollowupInput) error
	Complete(ctx context.Context, ownerID, id uuid.UUID) error
	Cancel(ctx context.Context, ownerID, id uuid.UUID) error
}

// FollowupHandler serves /followups.
type FollowupHandler struct {
	svc followupService
	log *slog.Logger
}

func NewFollowupHandler(svc followupService, logger *slog.Logger) *FollowupHandler {
	return &FollowupHandler{svc: svc, log: logger.With("handler", "followup")}
}

func (h *FollowupHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
	r.Post("/{id}/complete", h.transition(h.svc.Complete))
	r.Post("/{id}/cancel", h.transition(h.svc.Cancel))
}

type createFollowupRequest struct {
	InteractionID uuid.UUID             `json:"interaction_id"`
	DueDate       time.Time             `json:"due_date"`
	Type          domain.FollowupType   `json:"type"`
	Status        domain.FollowupStatus `json:"status"`
	Notes         *string               `json:"notes"`
}

type updateFollowupRequest struct {
	DueDate      *time.Time             `json:"due_date"`
	Type         *domain.FollowupType   `json:"type"`
	Status       *domain.FollowupStatus `json:"status"`
	Notes        *string                `json:"notes"`
	ReminderSent *bool                  `json:"reminder_sent"`
}

// List handles GET /followups?status=&interaction_id=.
func (h *FollowupHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q := newQuery(r)
	filter := domain.FollowupFilter{
		Status:        queryEnum[domain.FollowupStatus](q, "status"),
		InteractionID: q.uuid("interaction_id"),
	}
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, err := h.svc.List(r.Context(), owner, filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeList(w, items)
}

// Get handles GET /followups/{id}.
func (h *FollowupHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner, id, err := ownerAndID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	rec, err := h.svc.Get(r.Context(), owner, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Create handles POST /followups.
func (h *FollowupHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createFollowupRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	id, err := h.svc.Create(r.Context(), owner, followup.CreateFollowupInput{
		InteractionID: req.InteractionID,
		DueDate:       req.DueDate,
		Type:          req.Type,
		Status:        req.Status,
		Notes:         req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeCreated(w, id)
}

// Update handles PATCH /followups/{id}.
func (h *FollowupHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, id, err := ownerAndID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateFollowupRequest
	if err := decodePatch(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	err = h.svc.Update(r.Context(), owner, id, followup.UpdateFollowupInput{
		DueDate:      req.DueDate,
		Type:         req.Type,
		Status:       req.Status,
		Notes:        req.Notes,
		ReminderSent: req.ReminderSent,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *FollowupHandler) transition(fn func(ctx context.Context, ownerID, id uuid.UUID) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, id, err := ownerAndID(r)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		if err := fn(r.Context(), owner, id); err != nil {
			handleError(w, r, h.log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
