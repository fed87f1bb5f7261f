package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
	"github.com/heartmarshall/advocacy-backend/internal/service/issue"
)

type issueService interface {
	List(ctx context.Context, ownerID uuid.UUID, filter domain.IssueFilter) ([]*domain.Issue, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Issue, error)
	Create(ctx context.Context, ownerID uuid.UUID, input issue.CreateIssueInput) (uuid.UUID, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input issue.UpdateIssueInput) error
	Archive(ctx context.Context, ownerID, id uuid.UUID) error
}

// IssueHandler serves /issues.
type IssueHandler struct {
	svc issueService
	log *slog.Logger
}

func NewIssueHandler(svc issueService, logger *slog.Logger) *IssueHandler {
	return &IssueHandler{svc: svc, log: logger.With("handler", "issue")}
}

func (h *IssueHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
	r.Post("/{id}/archive", h.Archive)
}

type createIssueRequest struct {
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Status          domain.IssueStatus `json:"status"`
	Priority        domain.Priority    `json:"priority"`
	Tags            []string           `json:"tags"`
	TargetDate      *time.Time         `json:"target_date"`
	Notes           string             `json:"notes"`
	KeyPoints       []string           `json:"key_points"`
	SuccessCriteria []string           `json:"success_criteria"`
}

type updateIssueRequest struct {
	Title           *string             `json:"title"`
	Description     *string             `json:"description"`
	Status          *domain.IssueStatus `json:"status"`
	Priority        *domain.Priority    `json:"priority"`
	Tags            *[]string           `json:"tags"`
	TargetDate      *time.Time          `json:"target_date"`
	Notes           *string             `json:"notes"`
	KeyPoints       *[]string           `json:"key_points"`
	SuccessCriteria *[]string           `json:"success_criteria"`
}

// List handles GET /issues?status=&priority=.
func (h *IssueHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q := newQuery(r)
	filter := domain.IssueFilter{
		Status:   queryEnum[domain.IssueStatus](q, "status"),
		Priority: queryEnum[domain.Priority](q, "priority"),
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

// Get handles GET /issues/{id}.
func (h *IssueHandler) Get(w http.ResponseWriter, r *http.Request) {
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

// Create handles POST /issues.
func (h *IssueHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createIssueRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	id, err := h.svc.Create(r.Context(), owner, issue.CreateIssueInput{
		Title:           req.Title,
		Description:     req.Description,
		Status:          req.Status,
		Priority:        req.Priority,
		Tags:            req.Tags,
		TargetDate:      req.TargetDate,
		Notes:           req.Notes,
		KeyPoints:       req.KeyPoints,
		SuccessCriteria: req.SuccessCriteria,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeCreated(w, id)
}

// Update handles PATCH /issues/{id}.
func (h *IssueHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, id, err := ownerAndID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateIssueRequest
	if err := decodePatch(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	err = h.svc.Update(r.Context(), owner, id, issue.UpdateIssueInput{
		Title:           req.Title,
		Description:     req.Description,
		Status:          req.Status,
		Priority:        req.Priority,
		Tags:            req.Tags,
		TargetDate:      req.TargetDate,
		Notes:           req.Notes,
		KeyPoints:       req.KeyPoints,
		SuccessCriteria: req.SuccessCriteria,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Archive handles POST /issues/{id}/archive.
func (h *IssueHandler) Archive(w http.ResponseWriter, r *http.Request) {
	owner, id, err := ownerAndID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.Archive(r.Context(), owner, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
