package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/am-saksham/rescue-api/internal/domain"
	"github.com/am-saksham/rescue-api/internal/storage/memory"
	"github.com/am-saksham/rescue-api/pkg/e"
	"github.com/am-saksham/rescue-api/pkg/logger"
)

const geoKey = "volunteers:geo"

func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func addVolunteer(t *testing.T, store *memory.Volunteers, contact string, p *domain.Point, token string) *domain.Volunteer {
	t.Helper()
	ctx := context.Background()

	v := &domain.Volunteer{Name: contact, Contact: contact, Message: "ready"}
	require.NoError(t, store.Create(ctx, v))
	if p != nil {
		var err error
		v, err = store.UpdateLocation(ctx, v.ID, domain.LocationSample{Point: *p, RecordedAt: time.Now().UTC()})
		require.NoError(t, err)
	}
	if token != "" {
		var err error
		v, err = store.SetPushToken(ctx, v.ID, token)
		require.NoError(t, err)
	}
	return v
}

func position(t *testing.T, client *redis.Client, id uuid.UUID) *redis.GeoPos {
	t.Helper()
	pos, err := client.GeoPos(context.Background(), geoKey, id.String()).Result()
	require.NoError(t, err)
	require.Len(t, pos, 1)
	return pos[0]
}

func TestGeoIndex_Sync_AddsEligibleRemovesIneligible(t *testing.T) {
	_, client := setupMiniRedis(t)
	idx := NewGeoIndex(client, geoKey, memory.NewVolunteers(), logger.Discard())
	ctx := context.Background()

	v := &domain.Volunteer{
		ID:        uuid.New(),
		Location:  &domain.Point{Lat: 12.90, Lng: 77.60},
		PushToken: "tok",
		UpdatedAt: time.Now(),
	}
	require.NoError(t, idx.Sync(ctx, v))

	pos := position(t, client, v.ID)
	require.NotNil(t, pos)
	assert.InDelta(t, 77.60, pos.Longitude, 1e-4)
	assert.InDelta(t, 12.90, pos.Latitude, 1e-4)

	v.PushToken = ""
	v.UpdatedAt = v.UpdatedAt.Add(time.Second)
	require.NoError(t, idx.Sync(ctx, v))
	assert.Nil(t, position(t, client, v.ID))

	assert.True(t, errors.Is(idx.Sync(ctx, nil), e.ErrInvalidInput))
}

func TestGeoIndex_Sync_KeepsNewestVersion(t *testing.T) {
	_, client := setupMiniRedis(t)
	idx := NewGeoIndex(client, geoKey, memory.NewVolunteers(), logger.Discard())
	ctx := context.Background()

	id := uuid.New()
	now := time.Now()
	newer := &domain.Volunteer{ID: id, Location: &domain.Point{Lat: 12.90, Lng: 77.60}, PushToken: "tok", UpdatedAt: now}
	older := &domain.Volunteer{ID: id, Location: &domain.Point{Lat: 13.50, Lng: 78.20}, PushToken: "tok", UpdatedAt: now.Add(-time.Second)}

	// the later write lands first
	require.NoError(t, idx.Sync(ctx, newer))
	require.NoError(t, idx.Sync(ctx, older))

	pos := position(t, client, id)
	require.NotNil(t, pos)
	assert.InDelta(t, 77.60, pos.Longitude, 1e-4)

	// an older removal does not evict the newer position either
	older.PushToken = ""
	require.NoError(t, idx.Sync(ctx, older))
	assert.NotNil(t, position(t, client, id))
}

func TestGeoIndex_Rebuild_ReplacesSetFromStore(t *testing.T) {
	_, client := setupMiniRedis(t)
	ctx := context.Background()
	store := memory.NewVolunteers()

	a := addVolunteer(t, store, "a", &domain.Point{Lat: 12.90, Lng: 77.60}, "tok-a")
	b := addVolunteer(t, store, "b", &domain.Point{Lat: 12.95, Lng: 77.65}, "tok-b")
	silent := addVolunteer(t, store, "silent", &domain.Point{Lat: 12.91, Lng: 77.61}, "")
	addVolunteer(t, store, "nowhere", nil, "tok-n")

	ghost := uuid.New()
	require.NoError(t, client.GeoAdd(ctx, geoKey, &redis.GeoLocation{Name: ghost.String(), Longitude: 77.6, Latitude: 12.9}).Err())

	idx := NewGeoIndex(client, geoKey, store, logger.Discard())
	n, err := idx.Rebuild(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	members, err := client.ZRange(ctx, geoKey, 0, -1).Result()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a.ID.String(), b.ID.String()}, members)
	assert.Nil(t, position(t, client, silent.ID))

	// rebuilt stamps still order later syncs
	stale := *a
	stale.Location = &domain.Point{Lat: 1, Lng: 1}
	stale.UpdatedAt = a.UpdatedAt.Add(-time.Minute)
	require.NoError(t, idx.Sync(ctx, &stale))
	assert.InDelta(t, 77.60, position(t, client, a.ID).Longitude, 1e-4)

	exists, err := client.Exists(ctx, geoKey+":rebuild").Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}

func TestGeoIndex_Rebuild_PagesAndClearsWhenEmpty(t *testing.T) {
	_, client := setupMiniRedis(t)
	ctx := context.Background()

	store := memory.NewVolunteers()
	for i := 0; i < rebuildPage+3; i++ {
		addVolunteer(t, store, uuid.NewString(), &domain.Point{Lat: 10, Lng: 10}, "tok")
	}

	n, err := NewGeoIndex(client, geoKey, store, logger.Discard()).Rebuild(ctx)
	require.NoError(t, err)
	assert.Equal(t, rebuildPage+3, n)

	card, err := client.ZCard(ctx, geoKey).Result()
	require.NoError(t, err)
	assert.EqualValues(t, rebuildPage+3, card)

	n, err = NewGeoIndex(client, geoKey, memory.NewVolunteers(), logger.Discard()).Rebuild(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	card, err = client.ZCard(ctx, geoKey).Result()
	require.NoError(t, err)
	assert.Zero(t, card)
}

func TestGeoIndex_Hydrate_DropsStaleAndRefilters(t *testing.T) {
	_, client := setupMiniRedis(t)
	ctx := context.Background()
	store := memory.NewVolunteers()
	idx := NewGeoIndex(client, geoKey, store, logger.Discard())

	center := domain.Point{Lat: 12.90, Lng: 77.60}
	inside := addVolunteer(t, store, "inside", &domain.Point{Lat: 12.905, Lng: 77.605}, "tok")
	// ~1.001 km north: inside the widened GEOSEARCH radius, outside 1 km
	edge := addVolunteer(t, store, "edge", &domain.Point{Lat: 12.90 + 1.0005/111.195, Lng: 77.60}, "tok")
	silent := addVolunteer(t, store, "silent", &domain.Point{Lat: 12.901, Lng: 77.601}, "")
	requester := addVolunteer(t, store, "requester", &domain.Point{Lat: 12.90, Lng: 77.60}, "tok")
	ghost := uuid.New()

	for _, v := range []*domain.Volunteer{inside, edge, requester} {
		require.NoError(t, idx.Sync(ctx, v))
	}
	require.NoError(t, client.GeoAdd(ctx, geoKey, &redis.GeoLocation{Name: ghost.String(), Longitude: 77.6, Latitude: 12.9}).Err())

	hits := []redis.GeoLocation{
		{Name: ghost.String()},
		{Name: "not-a-uuid"},
		{Name: requester.ID.String()},
		{Name: silent.ID.String()},
		{Name: inside.ID.String()},
		{Name: edge.ID.String()},
	}
	got, err := idx.hydrate(ctx, domain.NearbyQuery{Center: center, RadiusKM: 1, ExcludeID: requester.ID}, hits)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inside.ID, got[0].Volunteer.ID)

	score, err := client.ZScore(ctx, geoKey, ghost.String()).Result()
	assert.ErrorIs(t, err, redis.Nil, "ghost member removed, score %v", score)
	card, err := client.ZCard(ctx, geoKey).Result()
	require.NoError(t, err)
	assert.EqualValues(t, 3, card)
}

func TestEventQueue_LPushBRPopOrder(t *testing.T) {
	_, client := setupMiniRedis(t)
	q := NewEventQueue(client, "events:queue")
	ctx := context.Background()

	first := domain.RequestEvent{Type: domain.EventHelpRequested, RequestID: uuid.New(), NotifiedCount: 2}
	second := domain.RequestEvent{Type: domain.EventRequestCompleted, RequestID: first.RequestID}
	require.NoError(t, q.Enqueue(ctx, first))
	require.NoError(t, q.Enqueue(ctx, second))

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	got, err := q.BRPop(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, first.Type, got.Type)
	assert.Equal(t, 2, got.NotifiedCount)

	got, err = q.BRPop(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, second.Type, got.Type)
}

func TestEventQueue_EmptyAndMalformed(t *testing.T) {
	mr, client := setupMiniRedis(t)
	q := NewEventQueue(client, "events:queue")
	ctx := context.Background()

	_, err := q.BRPop(ctx, time.Second)
	assert.True(t, errors.Is(err, e.ErrEventQueueEmpty))

	_, err = mr.Lpush("events:queue", "{not json")
	require.NoError(t, err)
	_, err = q.BRPop(ctx, time.Second)
	require.Error(t, err)
	assert.False(t, errors.Is(err, e.ErrEventQueueEmpty))
}
