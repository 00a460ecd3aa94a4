package volunteers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/am-saksham/rescue-api/internal/domain"
	"github.com/am-saksham/rescue-api/internal/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Registry interface {
	Register(ctx context.Context, req domain.RegisterVolunteerRequest) (*domain.Volunteer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Volunteer, error)
	GetByContact(ctx context.Context, contact string) (*domain.Volunteer, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, req domain.UpdateLocationRequest) (domain.LocationHistory, error)
	SetNotificationToken(ctx context.Context, id uuid.UUID, token string) error
	SetPhoto(ctx context.Context, id uuid.UUID, photoURL string) error
}

type Handler struct {
	logger   *slog.Logger
	Registry Registry
}

func NewHandler(logger *slog.Logger, registry Registry) *Handler {
	return &Handler{
		logger:   logger,
		Registry: registry,
	}
}

func (h *Handler) VolunteerRegister(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.RegisterVolunteerRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	v, err := h.Registry.Register(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("volunteer registered", slog.String("id", v.ID.String()))
	h.writeJSON(w, http.StatusCreated, domain.RegisterVolunteerResponse{
		Success: true,
		Message: "Volunteer registered successfully",
		ID:      v.ID,
	})
}

func (h *Handler) VolunteerGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	v, err := h.Registry.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, v)
}

// VolunteerFind looks a volunteer up by ?contact=.
func (h *Handler) VolunteerFind(w http.ResponseWriter, r *http.Request) {
	contact := strings.TrimSpace(r.URL.Query().Get("contact"))
	if contact == "" {
		h.writeError(w, http.StatusBadRequest, "contact query parameter is required")
		return
	}

	v, err := h.Registry.GetByContact(r.Context(), contact)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, v)
}

func (h *Handler) VolunteerUpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateLocationRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	history, err := h.Registry.UpdateLocation(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Debug("location updated", slog.String("id", id.String()), slog.Int("samples", len(history)))
	h.writeJSON(w, http.StatusOK, domain.LocationHistoryResponse{
		VolunteerID: id,
		History:     history,
	})
}

func (h *Handler) VolunteerSetPushToken(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.SetPushTokenRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Registry.SetNotificationToken(r.Context(), id, req.Token); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ack{Success: true, Message: "push token updated"})
}

func (h *Handler) VolunteerSetPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.SetPhotoRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Registry.SetPhoto(r.Context(), id, req.PhotoURL); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ack{Success: true, Message: "photo updated"})
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.log(r).Warn("invalid volunteer id", slog.String("id", chi.URLParam(r, "id")))
		h.writeError(w, http.StatusBadRequest, "invalid volunteer id")
		return uuid.Nil, false
	}
	return id, true
}
