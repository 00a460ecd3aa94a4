package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/am-saksham/rescue-api/internal/domain"
)

type VolunteerRepository interface {
	Create(ctx context.Context, v *domain.Volunteer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Volunteer, error)
	GetByContact(ctx context.Context, contact string) (*domain.Volunteer, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, sample domain.LocationSample) (*domain.Volunteer, error)
	SetPushToken(ctx context.Context, id uuid.UUID, token string) (*domain.Volunteer, error)
	SetPhoto(ctx context.Context, id uuid.UUID, photoURL string) error
}

type GeoRepository interface {
	FindNearby(ctx context.Context, q domain.NearbyQuery) ([]domain.NearbyVolunteer, error)
}

type EmergencyRepository interface {
	Create(ctx context.Context, req *domain.EmergencyRequest) error
	Get(ctx context.Context, id uuid.UUID) (*domain.EmergencyRequest, error)
	Resolve(ctx context.Context, requestID, volunteerID uuid.UUID, response domain.Response, at time.Time) (domain.Resolution, error)
}

func (p *Postgres) Volunteers() VolunteerRepository  { return p.Volunteer }
func (p *Postgres) Geo() GeoRepository               { return p.Volunteer }
func (p *Postgres) Emergencies() EmergencyRepository { return p.Emergency }
