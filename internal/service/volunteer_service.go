package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/am-saksham/rescue-api/internal/domain"
	"github.com/am-saksham/rescue-api/pkg/e"
	"github.com/am-saksham/rescue-api/pkg/validator"
)

type volunteerService struct {
	repo   VolunteerRepository
	index  VolunteerIndexer
	logger *slog.Logger
	now    func() time.Time
}

// NewVolunteerService builds the registry. index may be nil when the
// geospatial index reads straight from the repository.
func NewVolunteerService(repo VolunteerRepository, index VolunteerIndexer, logger *slog.Logger) VolunteerService {
	return &volunteerService{
		repo:   repo,
		index:  index,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *volunteerService) Register(ctx context.Context, req domain.RegisterVolunteerRequest) (*domain.Volunteer, error) {
	const op = "service.Volunteer.Register"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, e.Invalid(op, err)
	}
	contact := domain.NormalizeContact(req.Contact)
	name := strings.TrimSpace(req.Name)
	if contact == "" || name == "" {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	now := s.now()
	v := &domain.Volunteer{
		ID:        uuid.New(),
		Name:      name,
		Contact:   contact,
		Message:   strings.TrimSpace(req.Message),
		History:   domain.LocationHistory{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	s.logger.Info("volunteer registered", slog.String("volunteer_id", v.ID.String()))
	return v, nil
}

func (s *volunteerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Volunteer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *volunteerService) GetByContact(ctx context.Context, contact string) (*domain.Volunteer, error) {
	const op = "service.Volunteer.GetByContact"

	c := domain.NormalizeContact(contact)
	if c == "" {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	return s.repo.GetByContact(ctx, c)
}

func (s *volunteerService) UpdateLocation(ctx context.Context, id uuid.UUID, req domain.UpdateLocationRequest) (domain.LocationHistory, error) {
	return s.RecordLocation(ctx, id, domain.Point{Lat: req.Lat, Lng: req.Lng}, time.Time{})
}

// RecordLocation stores p as the current location and appends it to the
// history. A zero at means now.
func (s *volunteerService) RecordLocation(ctx context.Context, id uuid.UUID, p domain.Point, at time.Time) (domain.LocationHistory, error) {
	const op = "service.Volunteer.RecordLocation"

	if !p.Valid() {
		return nil, fmt.Errorf("%s: %w: %w", op, e.ErrInvalidInput, e.ErrInvalidCoordinates)
	}
	if at.IsZero() {
		at = s.now()
	}

	v, err := s.repo.UpdateLocation(ctx, id, domain.LocationSample{Point: p, RecordedAt: at.UTC()})
	if err != nil {
		return nil, err
	}

	s.sync(ctx, v)

	s.logger.Debug("location recorded",
		slog.String("volunteer_id", id.String()),
		slog.Int("history", len(v.History)),
	)
	return v.History, nil
}

// SetNotificationToken registers the push token; an empty token makes the
// volunteer ineligible for fan-outs.
func (s *volunteerService) SetNotificationToken(ctx context.Context, id uuid.UUID, token string) error {
	const op = "service.Volunteer.SetNotificationToken"

	token = strings.TrimSpace(token)
	if err := validator.ValidateStruct(domain.SetPushTokenRequest{Token: token}); err != nil {
		return e.Invalid(op, err)
	}

	v, err := s.repo.SetPushToken(ctx, id, token)
	if err != nil {
		return err
	}

	s.sync(ctx, v)
	return nil
}

func (s *volunteerService) SetPhoto(ctx context.Context, id uuid.UUID, photoURL string) error {
	const op = "service.Volunteer.SetPhoto"

	photoURL = strings.TrimSpace(photoURL)
	if err := validator.ValidateStruct(domain.SetPhotoRequest{PhotoURL: photoURL}); err != nil {
		return e.Invalid(op, err)
	}
	return s.repo.SetPhoto(ctx, id, photoURL)
}

// sync pushes eligibility changes to a separate index. The repository is the
// source of truth, so a failed sync is logged and the write still succeeds.
// Syncs of concurrent updates can arrive out of order; the index keeps the
// version with the newest UpdatedAt, and reads re-check the stored location.
func (s *volunteerService) sync(ctx context.Context, v *domain.Volunteer) {
	if s.index == nil || v == nil {
		return
	}
	if err := s.index.Sync(ctx, v); err != nil {
		s.logger.Error("geo index sync failed",
			slog.String("volunteer_id", v.ID.String()),
			slog.Any("error", err),
		)
	}
}
