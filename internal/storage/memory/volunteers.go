package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/am-saksham/rescue-api/internal/domain"
	"github.com/am-saksham/rescue-api/internal/geo"
	"github.com/am-saksham/rescue-api/pkg/e"
)

// Volunteers is an in-process registry store. It also serves as the
// geospatial index by scanning its records.
type Volunteers struct {
	mu        sync.RWMutex
	byID      map[uuid.UUID]*domain.Volunteer
	byContact map[string]uuid.UUID
	now       func() time.Time
}

func NewVolunteers() *Volunteers {
	return &Volunteers{
		byID:      make(map[uuid.UUID]*domain.Volunteer),
		byContact: make(map[string]uuid.UUID),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Volunteers) Create(_ context.Context, v *domain.Volunteer) error {
	const op = "memory.Volunteer.Create"

	if v == nil || v.Contact == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byContact[v.Contact]; ok {
		return fmt.Errorf("%s: %w", op, e.ErrDuplicateContact)
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if _, ok := s.byID[v.ID]; ok {
		return fmt.Errorf("%s: %w", op, e.ErrConflict)
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = s.now()
		v.UpdatedAt = v.CreatedAt
	}

	stored := clone(v)
	s.byID[v.ID] = stored
	s.byContact[v.Contact] = v.ID
	return nil
}

func (s *Volunteers) GetByID(_ context.Context, id uuid.UUID) (*domain.Volunteer, error) {
	const op = "memory.Volunteer.GetByID"

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return clone(v), nil
}

func (s *Volunteers) GetByContact(_ context.Context, contact string) (*domain.Volunteer, error) {
	const op = "memory.Volunteer.GetByContact"

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byContact[contact]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return clone(s.byID[id]), nil
}

func (s *Volunteers) UpdateLocation(_ context.Context, id uuid.UUID, sample domain.LocationSample) (*domain.Volunteer, error) {
	const op = "memory.Volunteer.UpdateLocation"

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	p := sample.Point
	v.Location = &p
	v.History = v.History.Record(sample)
	v.UpdatedAt = s.now()
	return clone(v), nil
}

func (s *Volunteers) SetPushToken(_ context.Context, id uuid.UUID, token string) (*domain.Volunteer, error) {
	const op = "memory.Volunteer.SetPushToken"

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	v.PushToken = token
	v.UpdatedAt = s.now()
	return clone(v), nil
}

func (s *Volunteers) SetPhoto(_ context.Context, id uuid.UUID, photoURL string) error {
	const op = "memory.Volunteer.SetPhoto"

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	v.PhotoURL = photoURL
	v.UpdatedAt = s.now()
	return nil
}

func (s *Volunteers) FindNearby(_ context.Context, q domain.NearbyQuery) ([]domain.NearbyVolunteer, error) {
	const op = "memory.Volunteer.FindNearby"

	if !q.Center.Valid() || q.RadiusKM <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	s.mu.RLock()
	candidates := make([]domain.Volunteer, 0, len(s.byID))
	for _, v := range s.byID {
		if q.Admits(v) {
			candidates = append(candidates, *clone(v))
		}
	}
	s.mu.RUnlock()

	return geo.Nearby(candidates, q), nil
}

// GetMany returns the volunteers that exist among ids, in no particular order.
func (s *Volunteers) GetMany(_ context.Context, ids []uuid.UUID) ([]*domain.Volunteer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Volunteer, 0, len(ids))
	for _, id := range ids {
		if v, ok := s.byID[id]; ok {
			out = append(out, clone(v))
		}
	}
	return out, nil
}

// ListEligible pages through volunteers with a location and a push token in
// id order, starting after the given id.
func (s *Volunteers) ListEligible(_ context.Context, after uuid.UUID, limit int) ([]*domain.Volunteer, error) {
	const op = "memory.Volunteer.ListEligible"

	if limit <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	cursor := after.String()

	s.mu.RLock()
	out := make([]*domain.Volunteer, 0, limit)
	for id, v := range s.byID {
		if v.Eligible() && id.String() > cursor {
			out = append(out, clone(v))
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func clone(v *domain.Volunteer) *domain.Volunteer {
	out := *v
	if v.Location != nil {
		p := *v.Location
		out.Location = &p
	}
	out.History = append(domain.LocationHistory{}, v.History...)
	return &out
}
