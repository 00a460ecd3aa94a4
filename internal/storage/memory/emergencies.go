package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/am-saksham/rescue-api/internal/domain"
	"github.com/am-saksham/rescue-api/pkg/e"
)

type emergencyRecord struct {
	mu  sync.Mutex
	req domain.EmergencyRequest
}

// Emergencies keeps requests in memory. Entry transitions lock only the
// request they touch.
type Emergencies struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]*emergencyRecord
}

func NewEmergencies() *Emergencies {
	return &Emergencies{requests: make(map[uuid.UUID]*emergencyRecord)}
}

func (s *Emergencies) Create(_ context.Context, req *domain.EmergencyRequest) error {
	const op = "memory.Emergency.Create"

	if req == nil || len(req.Entries) == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.Status == "" {
		req.Status = domain.RequestActive
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.requests[req.ID]; ok {
		return fmt.Errorf("%s: %w", op, e.ErrConflict)
	}
	s.requests[req.ID] = &emergencyRecord{req: cloneRequest(req)}
	return nil
}

func (s *Emergencies) Get(_ context.Context, id uuid.UUID) (*domain.EmergencyRequest, error) {
	const op = "memory.Emergency.Get"

	rec, ok := s.lookup(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	out := cloneRequest(&rec.req)
	return &out, nil
}

func (s *Emergencies) Resolve(_ context.Context, requestID, volunteerID uuid.UUID, response domain.Response, at time.Time) (domain.Resolution, error) {
	const op = "memory.Emergency.Resolve"

	if response != domain.ResponseAccepted && response != domain.ResponseRejected {
		return domain.Resolution{}, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	rec, ok := s.lookup(requestID)
	if !ok {
		return domain.Resolution{}, fmt.Errorf("%s: %w", op, e.ErrAlreadyRespondedOrNotFound)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	entry, ok := rec.req.Entry(volunteerID)
	if !ok || entry.Response != domain.ResponsePending {
		return domain.Resolution{}, fmt.Errorf("%s: %w", op, e.ErrAlreadyRespondedOrNotFound)
	}
	if response == domain.ResponseAccepted && rec.req.Status == domain.RequestCompleted {
		return domain.Resolution{}, fmt.Errorf("%s: %w", op, e.ErrRequestCompleted)
	}

	respondedAt := at
	entry.Response = response
	entry.RespondedAt = &respondedAt
	if response == domain.ResponseAccepted {
		rec.req.Status = domain.RequestCompleted
		rec.req.CompletedAt = &respondedAt
	}

	return domain.Resolution{
		RequestID:   requestID,
		VolunteerID: volunteerID,
		Response:    response,
		Status:      rec.req.Status,
		RespondedAt: at,
	}, nil
}

func (s *Emergencies) lookup(id uuid.UUID) (*emergencyRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.requests[id]
	return rec, ok
}

func cloneRequest(req *domain.EmergencyRequest) domain.EmergencyRequest {
	out := *req
	out.Entries = make([]domain.Entry, len(req.Entries))
	for i, en := range req.Entries {
		if en.RespondedAt != nil {
			t := *en.RespondedAt
			en.RespondedAt = &t
		}
		out.Entries[i] = en
	}
	if req.CompletedAt != nil {
		t := *req.CompletedAt
		out.CompletedAt = &t
	}
	return out
}
