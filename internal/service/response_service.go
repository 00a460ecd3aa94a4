package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/am-saksham/rescue-api/internal/domain"
	"github.com/am-saksham/rescue-api/internal/observability"
	"github.com/am-saksham/rescue-api/pkg/e"
)

type responseService struct {
	repo       EmergencyRepository
	volunteers VolunteerRepository
	events     EventQueue
	metrics    *observability.Metrics
	logger     *slog.Logger
	now        func() time.Time
}

func NewResponseService(
	repo EmergencyRepository,
	volunteers VolunteerRepository,
	events EventQueue,
	metrics *observability.Metrics,
	logger *slog.Logger,
) ResponseService {
	if events == nil {
		events = DiscardEvents{}
	}
	return &responseService{
		repo:       repo,
		volunteers: volunteers,
		events:     events,
		metrics:    metrics,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Respond resolves the volunteer's pending entry. Only the first response for
// an entry wins; later ones get ErrAlreadyRespondedOrNotFound. An accept on
// a request another volunteer already completed gets ErrRequestCompleted and
// leaves the entry pending.
func (s *responseService) Respond(ctx context.Context, requestID, volunteerID uuid.UUID, accept bool) (domain.RespondResult, error) {
	const op = "service.Response.Respond"

	ctx, span := tracer.Start(ctx, "ResponseService.Respond")
	defer span.End()
	span.SetAttributes(
		attribute.String("request.id", requestID.String()),
		attribute.String("volunteer.id", volunteerID.String()),
		attribute.Bool("accept", accept),
	)

	if requestID == uuid.Nil || volunteerID == uuid.Nil {
		return domain.RespondResult{}, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	response := domain.ResponseRejected
	if accept {
		response = domain.ResponseAccepted
	}

	res, err := s.repo.Resolve(ctx, requestID, volunteerID, response, s.now())
	if err != nil {
		outcome := "error"
		switch {
		case errors.Is(err, e.ErrAlreadyRespondedOrNotFound):
			outcome = "already_responded"
		case errors.Is(err, e.ErrRequestCompleted):
			outcome = "request_completed"
		default:
			s.logger.Error("repo.Resolve failed", slog.String("op", op), slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "resolve")
		}
		s.metrics.ObserveResponse(string(response), outcome)
		return domain.RespondResult{}, err
	}
	s.metrics.ObserveResponse(string(response), "ok")

	s.logger.Info("response recorded",
		slog.String("request_id", requestID.String()),
		slog.String("volunteer_id", volunteerID.String()),
		slog.String("response", string(res.Response)),
		slog.String("status", string(res.Status)),
	)

	result := domain.RespondResult{
		RequestID:   res.RequestID,
		VolunteerID: res.VolunteerID,
		Response:    res.Response,
		Status:      res.Status,
	}
	if res.Response != domain.ResponseAccepted {
		return result, nil
	}

	// the transition is already committed; a failed profile lookup only
	// loses the hand-off details
	v, err := s.volunteers.GetByID(ctx, volunteerID)
	if err != nil {
		s.logger.Error("profile lookup failed",
			slog.String("volunteer_id", volunteerID.String()),
			slog.Any("error", err),
		)
	} else {
		profile := v.Profile()
		result.Volunteer = &profile
	}

	vid := volunteerID
	ev := domain.RequestEvent{
		Type:        domain.EventRequestCompleted,
		RequestID:   requestID,
		VolunteerID: &vid,
		Status:      res.Status,
		OccurredAt:  res.RespondedAt,
	}
	if err := s.events.Enqueue(ctx, ev); err != nil {
		s.logger.Error("enqueue event failed",
			slog.String("type", string(ev.Type)),
			slog.String("request_id", requestID.String()),
			slog.Any("error", err),
		)
	}

	return result, nil
}
