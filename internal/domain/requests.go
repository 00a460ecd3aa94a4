package domain

import (
	"github.com/google/uuid"
)

type RegisterVolunteerRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Contact string `json:"contact" validate:"required,max=320"`
	Message string `json:"message" validate:"required,max=2000"`
}

type RegisterVolunteerResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

type UpdateLocationRequest struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

type LocationHistoryResponse struct {
	VolunteerID uuid.UUID       `json:"volunteer_id"`
	History     LocationHistory `json:"history"`
}

type SetPushTokenRequest struct {
	Token string `json:"token" validate:"max=512"`
}

type SetPhotoRequest struct {
	PhotoURL string `json:"photo_url" validate:"omitempty,url,max=2048"`
}

type HelpRequest struct {
	RequesterID string  `json:"requester_id,omitempty" validate:"omitempty,uuid"`
	Lat         float64 `json:"lat" validate:"lat"`
	Lng         float64 `json:"lng" validate:"lng"`
	RadiusKM    float64 `json:"radius_km" validate:"radius_km"`
}

type HelpResponse struct {
	RequestID     uuid.UUID        `json:"request_id"`
	NotifiedCount int              `json:"notified_count"`
	Deliveries    []DeliveryResult `json:"deliveries"`
}

type RespondRequest struct {
	VolunteerID string `json:"volunteer_id" validate:"required,uuid"`
	Accept      bool   `json:"accept"`
}

type RespondResult struct {
	RequestID   uuid.UUID         `json:"request_id"`
	VolunteerID uuid.UUID         `json:"volunteer_id"`
	Response    Response          `json:"response"`
	Status      RequestStatus     `json:"status"`
	Volunteer   *VolunteerProfile `json:"volunteer,omitempty"`
}
