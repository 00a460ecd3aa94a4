package domain

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestActive    RequestStatus = "active"
	RequestCompleted RequestStatus = "completed"
)

type Response string

const (
	ResponsePending  Response = "pending"
	ResponseAccepted Response = "accepted"
	ResponseRejected Response = "rejected"
)

// Entry tracks one notified volunteer within a request.
type Entry struct {
	VolunteerID uuid.UUID  `json:"volunteer_id"`
	Response    Response   `json:"response"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	DistanceKM  float64    `json:"distance_km"`
}

type EmergencyRequest struct {
	ID          uuid.UUID     `json:"id"`
	RequesterID uuid.UUID     `json:"requester_id"`
	Location    Point         `json:"location"`
	RadiusKM    float64       `json:"radius_km"`
	Status      RequestStatus `json:"status"`
	Entries     []Entry       `json:"entries"`
	CreatedAt   time.Time     `json:"created_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}

func (r *EmergencyRequest) Entry(volunteerID uuid.UUID) (*Entry, bool) {
	for i := range r.Entries {
		if r.Entries[i].VolunteerID == volunteerID {
			return &r.Entries[i], true
		}
	}
	return nil, false
}

// Resolution is what the store reports after a successful transition.
type Resolution struct {
	RequestID   uuid.UUID
	VolunteerID uuid.UUID
	Response    Response
	Status      RequestStatus
	RespondedAt time.Time
}
