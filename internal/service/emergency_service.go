package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/am-saksham/rescue-api/internal/domain"
	"github.com/am-saksham/rescue-api/internal/geo"
	"github.com/am-saksham/rescue-api/internal/observability"
	"github.com/am-saksham/rescue-api/pkg/e"
	"github.com/am-saksham/rescue-api/pkg/validator"
)

var tracer = otel.Tracer("github.com/am-saksham/rescue-api/internal/service")

type emergencyService struct {
	repo       EmergencyRepository
	locator    VolunteerLocator
	dispatcher Dispatcher
	events     EventQueue
	metrics    *observability.Metrics
	logger     *slog.Logger
	maxFanout  int
	now        func() time.Time
}

func NewEmergencyService(
	repo EmergencyRepository,
	locator VolunteerLocator,
	dispatcher Dispatcher,
	events EventQueue,
	metrics *observability.Metrics,
	logger *slog.Logger,
	maxFanout int,
) EmergencyService {
	if maxFanout <= 0 {
		maxFanout = geo.DefaultLimit
	}
	if events == nil {
		events = DiscardEvents{}
	}
	return &emergencyService{
		repo:       repo,
		locator:    locator,
		dispatcher: dispatcher,
		events:     events,
		metrics:    metrics,
		logger:     logger,
		maxFanout:  maxFanout,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *emergencyService) RequestHelp(ctx context.Context, req domain.HelpRequest) (domain.HelpResponse, error) {
	const op = "service.Emergency.RequestHelp"

	ctx, span := tracer.Start(ctx, "EmergencyService.RequestHelp")
	defer span.End()

	if err := validator.ValidateStruct(req); err != nil {
		s.metrics.ObserveHelpRequest("invalid", 0)
		return domain.HelpResponse{}, e.Invalid(op, err)
	}
	requesterID := uuid.Nil
	if req.RequesterID != "" {
		requesterID = uuid.MustParse(req.RequesterID) // validated above
	}
	center := domain.Point{Lat: req.Lat, Lng: req.Lng}

	s.logger.Info("help requested",
		slog.String("requester_id", req.RequesterID),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
		slog.Float64("radius_km", req.RadiusKM),
	)

	nearby, err := s.locator.FindNearby(ctx, domain.NearbyQuery{
		Center:    center,
		RadiusKM:  req.RadiusKM,
		Limit:     s.maxFanout,
		ExcludeID: requesterID,
	})
	if err != nil {
		s.logger.Error("locator.FindNearby failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "find nearby")
		s.metrics.ObserveHelpRequest("error", 0)
		return domain.HelpResponse{}, err
	}
	if len(nearby) == 0 {
		s.logger.Info("no volunteers nearby")
		s.metrics.ObserveHelpRequest("no_volunteers", 0)
		return domain.HelpResponse{}, fmt.Errorf("%s: %w", op, e.ErrNoVolunteersAvailable)
	}

	entries := make([]domain.Entry, 0, len(nearby))
	for _, n := range nearby {
		entries = append(entries, domain.Entry{
			VolunteerID: n.Volunteer.ID,
			Response:    domain.ResponsePending,
			DistanceKM:  n.DistanceKM,
		})
	}
	request := &domain.EmergencyRequest{
		ID:          uuid.New(),
		RequesterID: requesterID,
		Location:    center,
		RadiusKM:    req.RadiusKM,
		Status:      domain.RequestActive,
		Entries:     entries,
		CreatedAt:   s.now(),
	}

	// the request must exist before anyone can be told about it
	if err := s.repo.Create(ctx, request); err != nil {
		s.logger.Error("repo.Create failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "create request")
		s.metrics.ObserveHelpRequest("error", 0)
		return domain.HelpResponse{}, err
	}
	span.SetAttributes(
		attribute.String("request.id", request.ID.String()),
		attribute.Int("request.fanout", len(nearby)),
	)

	deliveries := s.fanOut(ctx, request, nearby)

	delivered := 0
	for _, d := range deliveries {
		if d.Delivered {
			delivered++
		}
	}
	s.logger.Info("fan-out done",
		slog.String("request_id", request.ID.String()),
		slog.Int("notified", len(deliveries)),
		slog.Int("delivered", delivered),
	)
	s.metrics.ObserveHelpRequest("created", len(nearby))

	s.publish(ctx, domain.RequestEvent{
		Type:          domain.EventHelpRequested,
		RequestID:     request.ID,
		Status:        request.Status,
		NotifiedCount: len(nearby),
		Location:      &center,
		OccurredAt:    request.CreatedAt,
	})

	return domain.HelpResponse{
		RequestID:     request.ID,
		NotifiedCount: len(nearby),
		Deliveries:    deliveries,
	}, nil
}

// fanOut notifies every recipient concurrently. Each goroutine owns one slot
// of the result slice; a failed or panicking send only affects its own slot.
// Sends are detached from the caller's cancellation so a dropped client
// connection does not cut the fan-out short.
func (s *emergencyService) fanOut(ctx context.Context, req *domain.EmergencyRequest, recipients []domain.NearbyVolunteer) []domain.DeliveryResult {
	sendCtx := context.WithoutCancel(ctx)
	results := make([]domain.DeliveryResult, len(recipients))

	var wg sync.WaitGroup
	for i, r := range recipients {
		wg.Add(1)
		go func(i int, r domain.NearbyVolunteer) {
			defer wg.Done()
			results[i] = s.send(sendCtx, req, r)
		}(i, r)
	}
	wg.Wait()

	return results
}

func (s *emergencyService) send(ctx context.Context, req *domain.EmergencyRequest, r domain.NearbyVolunteer) (res domain.DeliveryResult) {
	ctx, span := tracer.Start(ctx, "EmergencyService.dispatch")
	defer span.End()
	span.SetAttributes(attribute.String("volunteer.id", r.Volunteer.ID.String()))

	defer func() {
		if p := recover(); p != nil {
			res = domain.DeliveryResult{Error: fmt.Sprintf("%v: panic: %v", e.ErrDispatchFailed, p)}
		}
		res.VolunteerID = r.Volunteer.ID
		if !res.Delivered {
			span.SetStatus(codes.Error, res.Error)
			s.logger.Warn("notification not delivered",
				slog.String("request_id", req.ID.String()),
				slog.String("volunteer_id", r.Volunteer.ID.String()),
				slog.String("reason", res.Error),
			)
		}
		s.metrics.ObserveDelivery(res.Delivered)
	}()

	return s.dispatcher.Send(ctx, r.Volunteer.PushToken, helpMessage(req, r))
}

func helpMessage(req *domain.EmergencyRequest, r domain.NearbyVolunteer) domain.PushMessage {
	return domain.PushMessage{
		Title: "Someone nearby needs help",
		Body:  fmt.Sprintf("An emergency was reported %.1f km from you. Can you help?", r.DistanceKM),
		Data: map[string]string{
			"request_id":  req.ID.String(),
			"lat":         strconv.FormatFloat(req.Location.Lat, 'f', 6, 64),
			"lng":         strconv.FormatFloat(req.Location.Lng, 'f', 6, 64),
			"distance_km": strconv.FormatFloat(r.DistanceKM, 'f', 2, 64),
		},
	}
}

func (s *emergencyService) GetRequest(ctx context.Context, id uuid.UUID) (*domain.EmergencyRequest, error) {
	return s.repo.Get(ctx, id)
}

func (s *emergencyService) publish(ctx context.Context, ev domain.RequestEvent) {
	if err := s.events.Enqueue(ctx, ev); err != nil {
		s.logger.Error("enqueue event failed",
			slog.String("type", string(ev.Type)),
			slog.String("request_id", ev.RequestID.String()),
			slog.Any("error", err),
		)
		return
	}
	s.logger.Debug("event enqueued", slog.String("type", string(ev.Type)))
}
