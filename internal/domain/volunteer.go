package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Volunteer struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Contact   string          `json:"contact"`
	Message   string          `json:"message"`
	Location  *Point          `json:"location,omitempty"` // nil while unknown
	PushToken string          `json:"-"`
	PhotoURL  string          `json:"photo_url,omitempty"`
	History   LocationHistory `json:"history"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Eligible reports whether the volunteer can be picked for a fan-out.
func (v *Volunteer) Eligible() bool {
	return v.Location != nil && v.PushToken != ""
}

func (v *Volunteer) Profile() VolunteerProfile {
	return VolunteerProfile{
		ID:       v.ID,
		Name:     v.Name,
		PhotoURL: v.PhotoURL,
	}
}

// VolunteerProfile is what a requester gets once a volunteer accepts.
type VolunteerProfile struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	PhotoURL string    `json:"photo_url,omitempty"`
}

type NearbyVolunteer struct {
	Volunteer  Volunteer
	DistanceKM float64
}

type NearbyQuery struct {
	Center    Point
	RadiusKM  float64
	Limit     int
	ExcludeID uuid.UUID
}

// Admits applies the eligibility rules every index shares.
func (q NearbyQuery) Admits(v *Volunteer) bool {
	if !v.Eligible() {
		return false
	}
	return q.ExcludeID == uuid.Nil || v.ID != q.ExcludeID
}

// NormalizeContact lower-cases the contact and, for phone numbers, strips
// common separators so "+1 (555) 010-0000" and "+15550100000" collide.
func NormalizeContact(contact string) string {
	c := strings.ToLower(strings.TrimSpace(contact))
	if strings.Contains(c, "@") {
		return c
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '(', ')':
			return -1
		}
		return r
	}, c)
}
