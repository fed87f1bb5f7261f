package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
	"github.com/heartmarshall/advocacy-backend/internal/service/task"
)

type taskService interface {
	List(ctx context.Context, ownerID uuid.UUID, filter domain.TaskFilter) ([]*domain.Task, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error)
	Create(ctx context.Context, ownerID uuid.UUID, input task.CreateTaskInput) (uuid.UUID, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input task.UpdateTaskInput) error
	Complete(ctx context.Context, ownerID, id uuid.UUID) error
}

// TaskHandler serves /tasks.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

func (h *TaskHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
	r.Post("/{id}/complete", h.Complete)
}

type createTaskRequest struct {
	IssueID     *uuid.UUID        `json:"issue_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	DueDate     time.Time         `json:"due_date"`
	Status      domain.TaskStatus `json:"status"`
	Priority    domain.Priority   `json:"priority"`
}

type updateTaskRequest struct {
	IssueID      *uuid.UUID         `json:"issue_id"`
	Title        *string            `json:"title"`
	Description  *string            `json:"description"`
	DueDate      *time.Time         `json:"due_date"`
	Status       *domain.TaskStatus `json:"status"`
	Priority     *domain.Priority   `json:"priority"`
	ReminderSent *bool              `json:"reminder_sent"`
}

// List handles GET /tasks?status=&priority=&issue_id=.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q := newQuery(r)
	filter := domain.TaskFilter{
		Status:   queryEnum[domain.TaskStatus](q, "status"),
		Priority: queryEnum[domain.Priority](q, "priority"),
		IssueID:  q.uuid("issue_id"),
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

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
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

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	id, err := h.svc.Create(r.Context(), owner, task.CreateTaskInput{
		IssueID:     req.IssueID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
		Priority:    req.Priority,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeCreated(w, id)
}

// Update handles PATCH /tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, id, err := ownerAndID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateTaskRequest
	if err := decodePatch(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	err = h.svc.Update(r.Context(), owner, id, task.UpdateTaskInput{
		IssueID:      req.IssueID,
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		Status:       req.Status,
		Priority:     req.Priority,
		ReminderSent: req.ReminderSent,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Complete handles POST /tasks/{id}/complete.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	owner, id, err := ownerAndID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.Complete(r.Context(), owner, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
