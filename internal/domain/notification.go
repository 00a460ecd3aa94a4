package domain

import (
	"time"

	"github.com/google/uuid"
)

type PushMessage struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// DeliveryResult is the per-recipient outcome of a fan-out.
type DeliveryResult struct {
	VolunteerID uuid.UUID `json:"volunteer_id"`
	Delivered   bool      `json:"delivered"`
	Error       string    `json:"error,omitempty"`
}

type EventType string

const (
	EventHelpRequested    EventType = "help_requested"
	EventRequestCompleted EventType = "request_completed"
)

type RequestEvent struct {
	Type          EventType     `json:"type"`
	RequestID     uuid.UUID     `json:"request_id"`
	VolunteerID   *uuid.UUID    `json:"volunteer_id,omitempty"`
	Status        RequestStatus `json:"status"`
	NotifiedCount int           `json:"notified_count,omitempty"`
	Location      *Point        `json:"location,omitempty"`
	OccurredAt    time.Time     `json:"occurred_at"`
}
