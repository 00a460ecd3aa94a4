package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/am-saksham/rescue-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type VolunteerRepository interface {
	Create(ctx context.Context, v *domain.Volunteer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Volunteer, error)
	GetByContact(ctx context.Context, contact string) (*domain.Volunteer, error)
	// UpdateLocation sets the current location and records the sample into
	// the history atomically for that volunteer.
	UpdateLocation(ctx context.Context, id uuid.UUID, sample domain.LocationSample) (*domain.Volunteer, error)
	SetPushToken(ctx context.Context, id uuid.UUID, token string) (*domain.Volunteer, error)
	SetPhoto(ctx context.Context, id uuid.UUID, photoURL string) error
}

// VolunteerLocator is the geospatial index.
type VolunteerLocator interface {
	FindNearby(ctx context.Context, q domain.NearbyQuery) ([]domain.NearbyVolunteer, error)
}

// VolunteerIndexer is implemented by indexes that keep their own copy of
// volunteer positions.
type VolunteerIndexer interface {
	Sync(ctx context.Context, v *domain.Volunteer) error
}

type EmergencyRepository interface {
	Create(ctx context.Context, req *domain.EmergencyRequest) error
	Get(ctx context.Context, id uuid.UUID) (*domain.EmergencyRequest, error)
	// Resolve moves a pending entry to response in a single conditional
	// operation. Accepting also completes the request.
	Resolve(ctx context.Context, requestID, volunteerID uuid.UUID, response domain.Response, at time.Time) (domain.Resolution, error)
}

type Dispatcher interface {
	Send(ctx context.Context, token string, msg domain.PushMessage) domain.DeliveryResult
}

type EventQueue interface {
	Enqueue(ctx context.Context, ev domain.RequestEvent) error
}

// Registry
type VolunteerService interface {
	Register(ctx context.Context, req domain.RegisterVolunteerRequest) (*domain.Volunteer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Volunteer, error)
	GetByContact(ctx context.Context, contact string) (*domain.Volunteer, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, req domain.UpdateLocationRequest) (domain.LocationHistory, error)
	RecordLocation(ctx context.Context, id uuid.UUID, p domain.Point, at time.Time) (domain.LocationHistory, error)
	SetNotificationToken(ctx context.Context, id uuid.UUID, token string) error
	SetPhoto(ctx context.Context, id uuid.UUID, photoURL string) error
}

// Orchestrator
type EmergencyService interface {
	RequestHelp(ctx context.Context, req domain.HelpRequest) (domain.HelpResponse, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*domain.EmergencyRequest, error)
}

// Resolution state machine
type ResponseService interface {
	Respond(ctx context.Context, requestID, volunteerID uuid.UUID, accept bool) (domain.RespondResult, error)
}

type Service struct {
	VolunteerService VolunteerService
	EmergencyService EmergencyService
	ResponseService  ResponseService
}

func NewService(
	volunteerService VolunteerService,
	emergencyService EmergencyService,
	responseService ResponseService,
) *Service {
	return &Service{
		VolunteerService: volunteerService,
		EmergencyService: emergencyService,
		ResponseService:  responseService,
	}
}

// DiscardEvents is used when no event queue is configured.
type DiscardEvents struct{}

func (DiscardEvents) Enqueue(context.Context, domain.RequestEvent) error { return nil }
