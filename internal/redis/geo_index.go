package redis

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/am-saksham/rescue-api/internal/domain"
	"github.com/am-saksham/rescue-api/internal/geo"
	"github.com/am-saksham/rescue-api/pkg/e"
)

const (
	// radiusSlack widens the GEOSEARCH radius a little; members are
	// re-filtered with geo.DistanceKM so the result matches the other indexes.
	radiusSlack = 1.001
	// searchFactor over-fetches members to absorb stale, excluded and
	// ineligible hits before falling back to a wider COUNT.
	searchFactor = 2
	rebuildPage  = 500
)

// VolunteerSource is the primary store the index hydrates from.
type VolunteerSource interface {
	GetMany(ctx context.Context, ids []uuid.UUID) ([]*domain.Volunteer, error)
	ListEligible(ctx context.Context, after uuid.UUID, limit int) ([]*domain.Volunteer, error)
}

// GeoIndex keeps eligible volunteers in a Redis GEO set keyed by id and reads
// profiles back from the primary store. A companion hash holds the UpdatedAt
// of the version each member was written from.
type GeoIndex struct {
	client     *redis.Client
	key        string
	stampKey   string
	volunteers VolunteerSource
	logger     *slog.Logger
}

func NewGeoIndex(client *redis.Client, key string, volunteers VolunteerSource, logger *slog.Logger) *GeoIndex {
	return &GeoIndex{
		client:     client,
		key:        key,
		stampKey:   key + ":updated",
		volunteers: volunteers,
		logger:     logger,
	}
}

// syncScript applies a volunteer version unless a newer one is already
// indexed. KEYS: geo set, stamp hash. ARGV: member, stamp (unix micros),
// "1" to add or "0" to remove, lng, lat.
var syncScript = redis.NewScript(`
local cur = redis.call('HGET', KEYS[2], ARGV[1])
if cur and tonumber(cur) > tonumber(ARGV[2]) then
  return 0
end
redis.call('HSET', KEYS[2], ARGV[1], ARGV[2])
if ARGV[3] == '1' then
  redis.call('GEOADD', KEYS[1], ARGV[4], ARGV[5], ARGV[1])
else
  redis.call('ZREM', KEYS[1], ARGV[1])
end
return 1
`)

// Sync writes v's eligibility into the set. Updates racing on the same
// volunteer may reach Redis out of order; the stamp check keeps the newest.
func (g *GeoIndex) Sync(ctx context.Context, v *domain.Volunteer) error {
	const op = "redis.GeoIndex.Sync"

	if v == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	add, lng, lat := "0", "0", "0"
	if v.Eligible() {
		add = "1"
		lng = strconv.FormatFloat(v.Location.Lng, 'f', -1, 64)
		lat = strconv.FormatFloat(v.Location.Lat, 'f', -1, 64)
	}

	applied, err := syncScript.Run(ctx, g.client,
		[]string{g.key, g.stampKey},
		v.ID.String(), v.UpdatedAt.UnixMicro(), add, lng, lat,
	).Int()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if applied == 0 {
		g.logger.Debug("skipped outdated geo sync", slog.String("volunteer_id", v.ID.String()))
	}
	return nil
}

// Rebuild replaces the set with every eligible volunteer from the primary
// store. It builds into scratch keys and swaps them in, so readers never see
// a half-filled set.
func (g *GeoIndex) Rebuild(ctx context.Context) (int, error) {
	const op = "redis.GeoIndex.Rebuild"

	tmpKey, tmpStamp := g.key+":rebuild", g.stampKey+":rebuild"
	if err := g.client.Del(ctx, tmpKey, tmpStamp).Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	total := 0
	after := uuid.Nil
	for {
		page, err := g.volunteers.ListEligible(ctx, after, rebuildPage)
		if err != nil {
			return total, fmt.Errorf("%s: %w", op, err)
		}
		if len(page) == 0 {
			break
		}

		_, err = g.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, v := range page {
				pipe.GeoAdd(ctx, tmpKey, &redis.GeoLocation{
					Name:      v.ID.String(),
					Longitude: v.Location.Lng,
					Latitude:  v.Location.Lat,
				})
				pipe.HSet(ctx, tmpStamp, v.ID.String(), v.UpdatedAt.UnixMicro())
			}
			return nil
		})
		if err != nil {
			return total, fmt.Errorf("%s: geoadd: %w", op, err)
		}

		total += len(page)
		after = page[len(page)-1].ID
		if len(page) < rebuildPage {
			break
		}
	}

	_, err := g.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if total == 0 {
			pipe.Del(ctx, g.key, g.stampKey)
			return nil
		}
		pipe.Rename(ctx, tmpKey, g.key)
		pipe.Rename(ctx, tmpStamp, g.stampKey)
		return nil
	})
	if err != nil {
		return total, fmt.Errorf("%s: swap: %w", op, err)
	}

	g.logger.Info("geo index rebuilt", slog.String("key", g.key), slog.Int("volunteers", total))
	return total, nil
}

func (g *GeoIndex) FindNearby(ctx context.Context, q domain.NearbyQuery) ([]domain.NearbyVolunteer, error) {
	const op = "redis.GeoIndex.FindNearby"

	if !q.Center.Valid() || q.RadiusKM <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	limit := q.Limit
	if limit <= 0 {
		limit = geo.DefaultLimit
	}

	count := limit * searchFactor
	for {
		hits, err := g.search(ctx, q, count)
		if err != nil {
			g.logger.Error("geosearch failed", slog.String("op", op), slog.Any("error", err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		out, err := g.hydrate(ctx, q, hits)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		// fewer hits than asked for means the radius is exhausted
		if len(out) >= limit || len(hits) < count {
			return geo.Rank(out, limit), nil
		}
		count *= 4
	}
}

func (g *GeoIndex) search(ctx context.Context, q domain.NearbyQuery, count int) ([]redis.GeoLocation, error) {
	return g.client.GeoSearchLocation(ctx, g.key, &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  q.Center.Lng,
			Latitude:   q.Center.Lat,
			Radius:     q.RadiusKM * radiusSlack,
			RadiusUnit: "km",
			Sort:       "ASC",
			Count:      count,
		},
		WithDist: true,
	}).Result()
}

// hydrate loads the profiles behind hits in one store call, drops members
// the store no longer knows and re-applies the query filters.
func (g *GeoIndex) hydrate(ctx context.Context, q domain.NearbyQuery, hits []redis.GeoLocation) ([]domain.NearbyVolunteer, error) {
	ids := make([]uuid.UUID, 0, len(hits))
	for _, hit := range hits {
		id, err := uuid.Parse(hit.Name)
		if err != nil {
			g.logger.Warn("skipping malformed geo member", slog.String("member", hit.Name))
			continue
		}
		if id == q.ExcludeID {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := g.volunteers.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	known := make(map[uuid.UUID]*domain.Volunteer, len(found))
	for _, v := range found {
		known[v.ID] = v
	}

	var stale []string
	out := make([]domain.NearbyVolunteer, 0, len(found))
	for _, id := range ids {
		v, ok := known[id]
		if !ok {
			stale = append(stale, id.String())
			continue
		}
		if !q.Admits(v) {
			continue
		}
		dist := geo.DistanceKM(q.Center, *v.Location)
		if dist > q.RadiusKM {
			continue
		}
		out = append(out, domain.NearbyVolunteer{Volunteer: *v, DistanceKM: dist})
	}

	if len(stale) > 0 {
		g.dropStale(ctx, stale)
	}
	return out, nil
}

func (g *GeoIndex) dropStale(ctx context.Context, members []string) {
	_, err := g.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		args := make([]any, len(members))
		for i, m := range members {
			args[i] = m
		}
		pipe.ZRem(ctx, g.key, args...)
		pipe.HDel(ctx, g.stampKey, members...)
		return nil
	})
	if err != nil {
		g.logger.Warn("stale member cleanup failed", slog.Int("members", len(members)), slog.Any("error", err))
	}
}
