package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
	"github.com/heartmarshall/advocacy-backend/internal/service/representative"
)

type representativeService interface {
	List(ctx context.Context, ownerID uuid.UUID, filter domain.RepresentativeFilter) ([]*domain.Representative, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Representative, error)
	Create(ctx context.Context, ownerID uuid.UUID, input representative.CreateRepresentativeInput) (uuid.UUID, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input representative.UpdateRepresentativeInput) error
}

// RepresentativeHandler serves /representatives.
type RepresentativeHandler struct {
	svc representativeService
	log *slog.Logger
}

func NewRepresentativeHandler(svc representativeService, logger *slog.Logger) *RepresentativeHandler {
	return &RepresentativeHandler{svc: svc, log: logger.With("handler", "representative")}
}

func (h *RepresentativeHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
}

type createRepresentativeRequest struct {
	Name                     string                           `json:"name"`
	Title                    string                           `json:"title"`
	Office                   string                           `json:"office"`
	Level                    domain.GovernmentLevel           `json:"level"`
	District                 *string                          `json:"district"`
	ContactInfo              domain.ContactInfo               `json:"contact_info"`
	Notes                    *string                          `json:"notes"`
	CommunicationPreferences *domain.CommunicationPreferences `json:"communication_preferences"`
}

type updateRepresentativeRequest struct {
	Name                     *string                          `json:"name"`
	Title                    *string                          `json:"title"`
	Office                   *string                          `json:"office"`
	Level                    *domain.GovernmentLevel          `json:"level"`
	District                 *string                          `json:"district"`
	ContactInfo              *domain.ContactInfo              `json:"contact_info"`
	Notes                    *string                          `json:"notes"`
	CommunicationPreferences *domain.CommunicationPreferences `json:"communication_preferences"`
}

// List handles GET /representatives?level=&district=.
func (h *RepresentativeHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q := newQuery(r)
	filter := domain.RepresentativeFilter{
		Level:    queryEnum[domain.GovernmentLevel](q, "level"),
		District: q.str("district"),
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

// Get handles GET /representatives/{id}.
func (h *RepresentativeHandler) Get(w http.ResponseWriter, r *http.Request) {
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

// Create handles POST /representatives.
func (h *RepresentativeHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createRepresentativeRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	id, err := h.svc.Create(r.Context(), owner, representative.CreateRepresentativeInput{
		Name:                     req.Name,
		Title:                    req.Title,
		Office:                   req.Office,
		Level:                    req.Level,
		District:                 req.District,
		ContactInfo:              req.ContactInfo,
		Notes:                    req.Notes,
		CommunicationPreferences: req.CommunicationPreferences,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeCreated(w, id)
}

// Update handles PATCH /representatives/{id}.
func (h *RepresentativeHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, id, err := ownerAndID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateRepresentativeRequest
	if err := decodePatch(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	err = h.svc.Update(r.Context(), owner, id, representative.UpdateRepresentativeInput{
		Name:                     req.Name,
		Title:                    req.Title,
		Office:                   req.Office,
		Level:                    req.Level,
		District:                 req.District,
		ContactInfo:              req.ContactInfo,
		Notes:                    req.Notes,
		CommunicationPreferences: req.CommunicationPreferences,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
