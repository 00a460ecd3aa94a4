package volunteers

import (
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/am-saksham/rescue-api/internal/render"
	"github.com/am-saksham/rescue-api/pkg/e"
)

type ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, e.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, e.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, e.ErrDuplicateContact), errors.Is(err, e.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, e.ErrDeadline):
		status = http.StatusGatewayTimeout
	default:
		status = http.StatusInternalServerError
	}

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
