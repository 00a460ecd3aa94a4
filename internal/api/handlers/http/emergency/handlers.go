package emergency

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/am-saksham/rescue-api/internal/domain"
	"github.com/am-saksham/rescue-api/internal/middleware"
	"github.com/am-saksham/rescue-api/pkg/e"
	"github.com/am-saksham/rescue-api/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Orchestrator interface {
	RequestHelp(ctx context.Context, req domain.HelpRequest) (domain.HelpResponse, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*domain.EmergencyRequest, error)
}

type Resolver interface {
	Respond(ctx context.Context, requestID, volunteerID uuid.UUID, accept bool) (domain.RespondResult, error)
}

type Handler struct {
	logger       *slog.Logger
	Orchestrator Orchestrator
	Resolver     Resolver
}

func NewHandler(logger *slog.Logger, orchestrator Orchestrator, resolver Resolver) *Handler {
	return &Handler{
		logger:       logger,
		Orchestrator: orchestrator,
		Resolver:     resolver,
	}
}

func (h *Handler) EmergencyCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.HelpRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("help request received",
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
		slog.Float64("radius_km", req.RadiusKM),
	)

	resp, err := h.Orchestrator.RequestHelp(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) EmergencyGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	req, err := h.Orchestrator.GetRequest(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, req)
}

func (h *Handler) EmergencyRespond(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.emergency.Respond"

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.RespondRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.handleError(w, r, e.Invalid(op, err))
		return
	}
	volunteerID := uuid.MustParse(req.VolunteerID) // validated above

	res, err := h.Resolver.Respond(r.Context(), id, volunteerID, req.Accept)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("response recorded",
		slog.String("request_id", id.String()),
		slog.String("volunteer_id", volunteerID.String()),
		slog.String("response", string(res.Response)),
	)
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.log(r).Warn("invalid request id", slog.String("id", chi.URLParam(r, "id")))
		h.writeError(w, http.StatusBadRequest, "invalid request id")
		return uuid.Nil, false
	}
	return id, true
}
