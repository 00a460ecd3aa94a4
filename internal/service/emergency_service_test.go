package service_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/am-saksham/rescue-api/internal/domain"
	"github.com/am-saksham/rescue-api/internal/service"
	mock_service "github.com/am-saksham/rescue-api/internal/service/mocks"
	"github.com/am-saksham/rescue-api/internal/storage/memory"
	"github.com/am-saksham/rescue-api/pkg/e"
	"github.com/am-saksham/rescue-api/pkg/logger"
)

type world struct {
	volunteers  *memory.Volunteers
	emergencies *memory.Emergencies
	registry    service.VolunteerService
	dispatcher  *mock_service.MockDispatcher
	events      *mock_service.MockEventQueue
	svc         *service.Service
}

func newWorld(t *testing.T) *world {
	t.Helper()
	ctrl := gomock.NewController(t)

	w := &world{
		volunteers:  memory.NewVolunteers(),
		emergencies: memory.NewEmergencies(),
		dispatcher:  mock_service.NewMockDispatcher(ctrl),
		events:      mock_service.NewMockEventQueue(ctrl),
	}
	w.registry = service.NewVolunteerService(w.volunteers, nil, logger.Discard())
	w.svc = service.NewService(
		w.registry,
		service.NewEmergencyService(w.emergencies, w.volunteers, w.dispatcher, w.events, nil, logger.Discard(), 20),
		service.NewResponseService(w.emergencies, w.volunteers, w.events, nil, logger.Discard()),
	)
	return w
}

func (w *world) volunteer(t *testing.T, name, contact string, lat, lng float64, token string) *domain.Volunteer {
	t.Helper()
	ctx := context.Background()

	v, err := w.registry.Register(ctx, domain.RegisterVolunteerRequest{Name: name, Contact: contact, Message: "ready to help"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := w.registry.UpdateLocation(ctx, v.ID, domain.UpdateLocationRequest{Lat: lat, Lng: lng}); err != nil {
		t.Fatalf("UpdateLocation: %v", err)
	}
	if token != "" {
		if err := w.registry.SetNotificationToken(ctx, v.ID, token); err != nil {
			t.Fatalf("SetNotificationToken: %v", err)
		}
	}
	return v
}

func TestEmergency_EndToEnd_RequestAndAccept(t *testing.T) {
	t.Parallel()
	w := newWorld(t)
	ctx := context.Background()

	v := w.volunteer(t, "Asha", "asha@example.com", 12.90, 77.60, "ExponentPushToken[asha]")

	w.dispatcher.EXPECT().
		Send(gomock.Any(), "ExponentPushToken[asha]", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, msg domain.PushMessage) domain.DeliveryResult {
			if msg.Data["request_id"] == "" {
				t.Errorf("push payload must carry the request id")
			}
			return domain.DeliveryResult{Delivered: true}
		}).
		Times(1)

	var published []domain.EventType
	w.events.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev domain.RequestEvent) error {
			published = append(published, ev.Type)
			return nil
		}).
		Times(2)

	resp, err := w.svc.EmergencyService.RequestHelp(ctx, domain.HelpRequest{Lat: 12.91, Lng: 77.61, RadiusKM: 5})
	if err != nil {
		t.Fatalf("RequestHelp: %v", err)
	}
	if resp.NotifiedCount != 1 || len(resp.Deliveries) != 1 || !resp.Deliveries[0].Delivered {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Deliveries[0].VolunteerID != v.ID {
		t.Fatalf("delivery for wrong volunteer: %v", resp.Deliveries[0].VolunteerID)
	}

	req, err := w.svc.EmergencyService.GetRequest(ctx, resp.RequestID)
	if err != nil {
		t.Fatalf("GetRequest: %v", err)
	}
	if req.Status != domain.RequestActive || len(req.Entries) != 1 || req.Entries[0].Response != domain.ResponsePending {
		t.Fatalf("unexpected stored request: %+v", req)
	}

	res, err := w.svc.ResponseService.Respond(ctx, resp.RequestID, v.ID, true)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if res.Status != domain.RequestCompleted || res.Response != domain.ResponseAccepted {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Volunteer == nil || res.Volunteer.Name != "Asha" || res.Volunteer.ID != v.ID {
		t.Fatalf("expected volunteer profile, got %+v", res.Volunteer)
	}

	_, err = w.svc.ResponseService.Respond(ctx, resp.RequestID, v.ID, false)
	if !errors.Is(err, e.ErrAlreadyRespondedOrNotFound) {
		t.Fatalf("expected ErrAlreadyRespondedOrNotFound, got %v", err)
	}

	if len(published) != 2 || published[0] != domain.EventHelpRequested || published[1] != domain.EventRequestCompleted {
		t.Fatalf("unexpected events: %v", published)
	}
}

func TestEmergency_RequestHelp_Validation(t *testing.T) {
	t.Parallel()

	cases := map[string]domain.HelpRequest{
		"radius zero":      {Lat: 12.9, Lng: 77.6, RadiusKM: 0},
		"radius too big":   {Lat: 12.9, Lng: 77.6, RadiusKM: 51},
		"lat out of range": {Lat: 91, Lng: 77.6, RadiusKM: 5},
		"lng out of range": {Lat: 12.9, Lng: -181, RadiusKM: 5},
		"bad requester":    {RequesterID: "me", Lat: 12.9, Lng: 77.6, RadiusKM: 5},
	}

	for name, req := range cases {
		req := req
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			// no locator, repo, or dispatcher call is allowed
			svc := service.NewEmergencyService(
				mock_service.NewMockEmergencyRepository(ctrl),
				mock_service.NewMockVolunteerLocator(ctrl),
				mock_service.NewMockDispatcher(ctrl),
				nil, nil, logger.Discard(), 20,
			)

			_, err := svc.RequestHelp(context.Background(), req)
			if !errors.Is(err, e.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestEmergency_RequestHelp_NoVolunteers_NothingPersisted(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	repo := mock_service.NewMockEmergencyRepository(ctrl)
	locator := mock_service.NewMockVolunteerLocator(ctrl)
	locator.EXPECT().FindNearby(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	svc := service.NewEmergencyService(repo, locator, mock_service.NewMockDispatcher(ctrl), nil, nil, logger.Discard(), 20)

	_, err := svc.RequestHelp(context.Background(), domain.HelpRequest{Lat: 12.9, Lng: 77.6, RadiusKM: 5})
	if !errors.Is(err, e.ErrNoVolunteersAvailable) {
		t.Fatalf("expected ErrNoVolunteersAvailable, got %v", err)
	}
}

func TestEmergency_RequestHelp_QueryShape(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	requester := uuid.New()
	locator := mock_service.NewMockVolunteerLocator(ctrl)
	locator.EXPECT().
		FindNearby(gomock.Any(), domain.NearbyQuery{
			Center:    domain.Point{Lat: 12.9, Lng: 77.6},
			RadiusKM:  3,
			Limit:     7,
			ExcludeID: requester,
		}).
		Return(nil, nil)

	svc := service.NewEmergencyService(mock_service.NewMockEmergencyRepository(ctrl), locator, mock_service.NewMockDispatcher(ctrl), nil, nil, logger.Discard(), 7)

	_, err := svc.RequestHelp(context.Background(), domain.HelpRequest{
		RequesterID: requester.String(),
		Lat:         12.9,
		Lng:         77.6,
		RadiusKM:    3,
	})
	if !errors.Is(err, e.ErrNoVolunteersAvailable) {
		t.Fatalf("expected ErrNoVolunteersAvailable, got %v", err)
	}
}

func TestEmergency_RequestHelp_CreatesBeforeDispatch(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	v := domain.Volunteer{ID: uuid.New(), Location: &domain.Point{Lat: 12.9, Lng: 77.6}, PushToken: "tok"}

	locator := mock_service.NewMockVolunteerLocator(ctrl)
	repo := mock_service.NewMockEmergencyRepository(ctrl)
	dispatcher := mock_service.NewMockDispatcher(ctrl)

	locator.EXPECT().FindNearby(gomock.Any(), gomock.Any()).
		Return([]domain.NearbyVolunteer{{Volunteer: v, DistanceKM: 0.5}}, nil)

	gomock.InOrder(
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.EmergencyRequest) error {
				if len(req.Entries) != 1 || req.Entries[0].Response != domain.ResponsePending {
					t.Errorf("unexpected entries: %+v", req.Entries)
				}
				return nil
			}),
		dispatcher.EXPECT().Send(gomock.Any(), "tok", gomock.Any()).Return(domain.DeliveryResult{Delivered: true}),
	)

	svc := service.NewEmergencyService(repo, locator, dispatcher, nil, nil, logger.Discard(), 20)

	if _, err := svc.RequestHelp(context.Background(), domain.HelpRequest{Lat: 12.9, Lng: 77.6, RadiusKM: 1}); err != nil {
		t.Fatalf("RequestHelp: %v", err)
	}
}

func TestEmergency_RequestHelp_CreateFails_NoDispatch(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	v := domain.Volunteer{ID: uuid.New(), Location: &domain.Point{Lat: 12.9, Lng: 77.6}, PushToken: "tok"}

	locator := mock_service.NewMockVolunteerLocator(ctrl)
	locator.EXPECT().FindNearby(gomock.Any(), gomock.Any()).
		Return([]domain.NearbyVolunteer{{Volunteer: v, DistanceKM: 0.5}}, nil)
	repo := mock_service.NewMockEmergencyRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(e.ErrInternal)

	svc := service.NewEmergencyService(repo, locator, mock_service.NewMockDispatcher(ctrl), nil, nil, logger.Discard(), 20)

	_, err := svc.RequestHelp(context.Background(), domain.HelpRequest{Lat: 12.9, Lng: 77.6, RadiusKM: 1})
	if !errors.Is(err, e.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestEmergency_RequestHelp_PartialDispatchFailure(t *testing.T) {
	t.Parallel()
	w := newWorld(t)
	ctx := context.Background()

	ok := w.volunteer(t, "Ok", "ok@example.com", 12.90, 77.60, "tok-ok")
	bad := w.volunteer(t, "Bad", "bad@example.com", 12.901, 77.601, "tok-bad")
	boom := w.volunteer(t, "Boom", "boom@example.com", 12.902, 77.602, "tok-boom")

	w.events.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	w.dispatcher.EXPECT().Send(gomock.Any(), "tok-ok", gomock.Any()).Return(domain.DeliveryResult{Delivered: true})
	w.dispatcher.EXPECT().Send(gomock.Any(), "tok-bad", gomock.Any()).Return(domain.DeliveryResult{Error: "DeviceNotRegistered"})
	w.dispatcher.EXPECT().Send(gomock.Any(), "tok-boom", gomock.Any()).
		DoAndReturn(func(context.Context, string, domain.PushMessage) domain.DeliveryResult {
			panic("provider exploded")
		})

	resp, err := w.svc.EmergencyService.RequestHelp(ctx, domain.HelpRequest{Lat: 12.90, Lng: 77.60, RadiusKM: 5})
	if err != nil {
		t.Fatalf("RequestHelp: %v", err)
	}
	if resp.NotifiedCount != 3 {
		t.Fatalf("expected 3 notified, got %d", resp.NotifiedCount)
	}

	byID := make(map[uuid.UUID]domain.DeliveryResult)
	for _, d := range resp.Deliveries {
		byID[d.VolunteerID] = d
	}
	if !byID[ok.ID].Delivered || byID[bad.ID].Delivered || byID[boom.ID].Delivered {
		t.Fatalf("unexpected deliveries: %+v", resp.Deliveries)
	}
	if byID[boom.ID].Error == "" {
		t.Fatalf("expected panic reported as failure")
	}

	req, err := w.svc.EmergencyService.GetRequest(ctx, resp.RequestID)
	if err != nil {
		t.Fatalf("GetRequest: %v", err)
	}
	for _, en := range req.Entries {
		if en.Response != domain.ResponsePending {
			t.Fatalf("dispatch must not touch entries, got %+v", en)
		}
	}
}

func TestEmergency_RequestHelp_ExcludesRequesterAndIneligible(t *testing.T) {
	t.Parallel()
	w := newWorld(t)

	requester := w.volunteer(t, "Req", "req@example.com", 12.90, 77.60, "tok-req")
	w.volunteer(t, "Silent", "silent@example.com", 12.90, 77.60, "")
	helper := w.volunteer(t, "Helper", "helper@example.com", 12.905, 77.605, "tok-helper")

	w.events.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	w.dispatcher.EXPECT().Send(gomock.Any(), "tok-helper", gomock.Any()).Return(domain.DeliveryResult{Delivered: true})

	resp, err := w.svc.EmergencyService.RequestHelp(context.Background(), domain.HelpRequest{
		RequesterID: requester.ID.String(),
		Lat:         12.90,
		Lng:         77.60,
		RadiusKM:    2,
	})
	if err != nil {
		t.Fatalf("RequestHelp: %v", err)
	}
	if resp.NotifiedCount != 1 || resp.Deliveries[0].VolunteerID != helper.ID {
		t.Fatalf("unexpected deliveries: %+v", resp.Deliveries)
	}
}

func TestEmergency_RequestHelp_CallerCancelDoesNotCutFanOut(t *testing.T) {
	t.Parallel()
	w := newWorld(t)

	w.volunteer(t, "A", "a@example.com", 12.90, 77.60, "tok-a")
	w.volunteer(t, "B", "b@example.com", 12.901, 77.601, "tok-b")

	ctx, cancel := context.WithCancel(context.Background())

	var sent int32
	w.events.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	w.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(sendCtx context.Context, _ string, _ domain.PushMessage) domain.DeliveryResult {
			cancel()
			if sendCtx.Err() != nil {
				return domain.DeliveryResult{Error: sendCtx.Err().Error()}
			}
			atomic.AddInt32(&sent, 1)
			return domain.DeliveryResult{Delivered: true}
		}).
		Times(2)

	resp, err := w.svc.EmergencyService.RequestHelp(ctx, domain.HelpRequest{Lat: 12.90, Lng: 77.60, RadiusKM: 1})
	if err != nil {
		t.Fatalf("RequestHelp: %v", err)
	}
	if resp.NotifiedCount != 2 || atomic.LoadInt32(&sent) != 2 {
		t.Fatalf("expected both sends to go through, got %d", sent)
	}
}
