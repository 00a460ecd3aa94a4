package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/am-saksham/rescue-api/internal/domain"
)

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func sample(lat float64, offset time.Duration) domain.LocationSample {
	return domain.LocationSample{
		Point:      domain.Point{Lat: lat, Lng: 77.6},
		RecordedAt: base.Add(offset),
	}
}

func assertDescending(t *testing.T, h domain.LocationHistory) {
	t.Helper()
	for i := 1; i < len(h); i++ {
		assert.False(t, h[i].RecordedAt.After(h[i-1].RecordedAt), "history not sorted at %d: %+v", i, h)
	}
}

func TestLocationHistory_Record_KeepsMinNFive(t *testing.T) {
	t.Parallel()

	var h domain.LocationHistory
	for n := 1; n <= 8; n++ {
		h = h.Record(sample(float64(n), time.Duration(n)*time.Minute))

		want := n
		if want > domain.HistoryCap {
			want = domain.HistoryCap
		}
		require.Len(t, h, want)
		assertDescending(t, h)
	}

	assert.Equal(t, 8.0, h[0].Point.Lat)
	assert.Equal(t, 4.0, h[len(h)-1].Point.Lat)
}

func TestLocationHistory_Record_EvictsOldestByTimestamp(t *testing.T) {
	t.Parallel()

	var h domain.LocationHistory
	for i := 0; i < domain.HistoryCap; i++ {
		h = h.Record(sample(float64(i), time.Duration(10+i)*time.Minute))
	}

	// arrives last but is the oldest sample overall
	h = h.Record(sample(99, time.Minute))

	require.Len(t, h, domain.HistoryCap)
	for _, s := range h {
		assert.NotEqual(t, 99.0, s.Point.Lat)
	}
	assertDescending(t, h)
}

func TestLocationHistory_Record_OutOfOrderIsResorted(t *testing.T) {
	t.Parallel()

	var h domain.LocationHistory
	h = h.Record(sample(1, 5*time.Minute))
	h = h.Record(sample(2, 1*time.Minute))
	h = h.Record(sample(3, 9*time.Minute))

	require.Len(t, h, 3)
	assert.Equal(t, []float64{3, 1, 2}, []float64{h[0].Point.Lat, h[1].Point.Lat, h[2].Point.Lat})
}

func TestLocationHistory_Record_ExactDuplicateTakesOneSlot(t *testing.T) {
	t.Parallel()

	s := sample(12.9, time.Minute)

	var h domain.LocationHistory
	h = h.Record(s)
	h = h.Record(s)

	assert.Len(t, h, 1)
}

func TestLocationHistory_Record_TiesKeepStoredOrder(t *testing.T) {
	t.Parallel()

	var h domain.LocationHistory
	h = h.Record(sample(1, time.Minute))
	h = h.Record(sample(2, time.Minute))

	require.Len(t, h, 2)
	assert.Equal(t, 1.0, h[0].Point.Lat)
	assert.Equal(t, 2.0, h[1].Point.Lat)
}

func TestLocationHistory_Record_DoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	h := domain.LocationHistory{sample(1, time.Minute)}
	_ = h.Record(sample(2, 2*time.Minute))

	require.Len(t, h, 1)
	assert.Equal(t, 1.0, h[0].Point.Lat)
}

func TestNormalizeContact(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"  Jane.Doe@Example.COM ", "jane.doe@example.com"},
		{"+1 (555) 010-0000", "+15550100000"},
		{"98450.12345", "9845012345"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, domain.NormalizeContact(c.in), c.in)
	}
}

func TestPoint_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.Point{Lat: -90, Lng: -180}.Valid())
	assert.True(t, domain.Point{Lat: 90, Lng: 180}.Valid())
	assert.False(t, domain.Point{Lat: 90.01, Lng: 0}.Valid())
	assert.False(t, domain.Point{Lat: 0, Lng: -180.5}.Valid())
}
