package geo

import (
	"math"
	"sort"

	"github.com/am-saksham/rescue-api/internal/domain"
)

const (
	EarthRadiusKM = 6371.0
	DefaultLimit  = 20
)

// DistanceKM is the great-circle distance between a and b.
func DistanceKM(a, b domain.Point) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKM * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Rank orders candidates by distance, then id, and caps them to limit.
func Rank(candidates []domain.NearbyVolunteer, limit int) []domain.NearbyVolunteer {
	if limit <= 0 {
		limit = DefaultLimit
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].DistanceKM != candidates[j].DistanceKM {
			return candidates[i].DistanceKM < candidates[j].DistanceKM
		}
		return candidates[i].Volunteer.ID.String() < candidates[j].Volunteer.ID.String()
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// Nearby scans volunteers and returns the ranked ones admitted by q.
func Nearby(volunteers []domain.Volunteer, q domain.NearbyQuery) []domain.NearbyVolunteer {
	out := make([]domain.NearbyVolunteer, 0, 8)
	for i := range volunteers {
		v := &volunteers[i]
		if !q.Admits(v) {
			continue
		}
		dist := DistanceKM(q.Center, *v.Location)
		if dist <= q.RadiusKM {
			out = append(out, domain.NearbyVolunteer{Volunteer: *v, DistanceKM: dist})
		}
	}
	return Rank(out, q.Limit)
}
