package emergency

import (
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/am-saksham/rescue-api/internal/render"
	"github.com/am-saksham/rescue-api/pkg/e"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, e.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, e.ErrNoVolunteersAvailable), errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, e.ErrAlreadyRespondedOrNotFound),
		errors.Is(err, e.ErrRequestCompleted),
		errors.Is(err, e.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, e.ErrDeadline):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	l := h.log(r)
	if status >= http.StatusInternalServerError {
		l.Error("request failed", slog.Int("status", status), slog.Any("error", err))
		h.writeError(w, status, http.StatusText(status))
		return
	}
	l.Warn("request rejected", slog.Int("status", status), slog.Any("error", err))
	h.writeError(w, status, err.Error())
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	if err := render.JSON(w, code, v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, code int, msg string) {
	if err := render.Error(w, code, msg); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
