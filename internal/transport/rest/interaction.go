package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
	"github.com/heartmarshall/advocacy-backend/internal/service/interaction"
)

type interactionService interface {
	List(ctx context.Context, ownerID uuid.UUID, filter domain.InteractionFilter) ([]*domain.Interaction, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Interaction, error)
	Create(ctx context.Context, ownerID uuid.UUID, input interaction.CreateInteractionInput) (uuid.UUID, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input interaction.UpdateInteractionInput) error
}

// InteractionHandler serves /interactions.
type InteractionHandler struct {
	svc interactionService
	log *slog.Logger
}

func NewInteractionHandler(svc interactionService, logger *slog.Logger) *InteractionHandler {
	return &InteractionHandler{svc: svc, log: logger.With("handler", "interaction")}
}

func (h *InteractionHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
}

type createInteractionRequest struct {
	RepresentativeID uuid.UUID               `json:"representative_id"`
	IssueID          *uuid.UUID              `json:"issue_id"`
	Type             domain.InteractionType  `json:"type"`
	Date             time.Time               `json:"date"`
	Notes            string                  `json:"notes"`
	Outcome          domain.Outcome          `json:"outcome"`
	FollowUpNeeded   bool                    `json:"follow_up_needed"`
	MessageFeedback  *domain.MessageFeedback `json:"message_feedback"`
}

// The representative of an interaction is fixed at creation.
type updateInteractionRequest struct {
	IssueID         *uuid.UUID              `json:"issue_id"`
	Type            *domain.InteractionType `json:"type"`
	Date            *time.Time              `json:"date"`
	Notes           *string                 `json:"notes"`
	Outcome         *domain.Outcome         `json:"outcome"`
	FollowUpNeeded  *bool                   `json:"follow_up_needed"`
	MessageFeedback *domain.MessageFeedback `json:"message_feedback"`
}

// List handles GET /interactions?representative_id=&issue_id=&from=&to=.
func (h *InteractionHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q := newQuery(r)
	filter := domain.InteractionFilter{
		RepresentativeID: q.uuid("representative_id"),
		IssueID:          q.uuid("issue_id"),
		From:             q.time("from"),
		To:               q.time("to"),
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

// Get handles GET /interactions/{id}.
func (h *InteractionHandler) Get(w http.ResponseWriter, r *http.Request) {
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

// Create handles POST /interactions.
func (h *InteractionHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createInteractionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	id, err := h.svc.Create(r.Context(), owner, interaction.CreateInteractionInput{
		RepresentativeID: req.RepresentativeID,
		IssueID:          req.IssueID,
		Type:             req.Type,
		Date:             req.Date,
		Notes:            req.Notes,
		Outcome:          req.Outcome,
		FollowUpNeeded:   req.FollowUpNeeded,
		MessageFeedback:  req.MessageFeedback,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeCreated(w, id)
}

// Update handles PATCH /interactions/{id}.
func (h *InteractionHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, id, err := ownerAndID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateInteractionRequest
	if err := decodePatch(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	err = h.svc.Update(r.Context(), owner, id, interaction.UpdateInteractionInput{
		IssueID:         req.IssueID,
		Type:            req.Type,
		Date:            req.Date,
		Notes:           req.Notes,
		Outcome:         req.Outcome,
		FollowUpNeeded:  req.FollowUpNeeded,
		MessageFeedback: req.MessageFeedback,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
