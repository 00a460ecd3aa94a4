package domain

import (
	"sort"
	"time"
)

// HistoryCap is the number of samples kept per volunteer.
const HistoryCap = 5

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

type LocationSample struct {
	Point      Point     `json:"point"`
	RecordedAt time.Time `json:"recorded_at"`
}

// LocationHistory is ordered by RecordedAt, most recent first.
type LocationHistory []LocationSample

// Record returns a new history with s inserted. An exact duplicate of a stored
// sample occupies a single slot. Samples are re-sorted by timestamp (stored
// samples keep their order on ties) before truncating to HistoryCap, so the
// oldest by timestamp is evicted regardless of arrival order.
func (h LocationHistory) Record(s LocationSample) LocationHistory {
	out := make(LocationHistory, 0, len(h)+1)
	out = append(out, h...)

	duplicate := false
	for _, existing := range h {
		if existing.Point == s.Point && existing.RecordedAt.Equal(s.RecordedAt) {
			duplicate = true
			break
		}
	}
	if !duplicate {
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})

	if len(out) > HistoryCap {
		out = out[:HistoryCap]
	}
	return out
}
