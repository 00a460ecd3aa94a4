package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/am-saksham/rescue-api/internal/domain"
	"github.com/am-saksham/rescue-api/internal/geo"
	"github.com/am-saksham/rescue-api/pkg/e"
)

// FindNearby runs the radius query in PostGIS. use_spheroid=false keeps the
// distance on a sphere, matching geo.DistanceKM.
func (p *VolunteerRepo) FindNearby(ctx context.Context, q domain.NearbyQuery) ([]domain.NearbyVolunteer, error) {
	const op = "postgres.Volunteer.FindNearby"

	if !q.Center.Valid() || q.RadiusKM <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	limit := q.Limit
	if limit <= 0 {
		limit = geo.DefaultLimit
	}
	var exclude *uuid.UUID
	if q.ExcludeID != uuid.Nil {
		exclude = &q.ExcludeID
	}

	const query = `
WITH center AS (
  SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS g
)
SELECT ` + volunteerColumns + `,
       ST_Distance(v.geo_point, center.g, false) / 1000 AS distance_km
FROM volunteers v, center
WHERE v.geo_point IS NOT NULL
  AND v.push_token <> ''
  AND ($4::uuid IS NULL OR v.id <> $4)
  AND ST_DWithin(v.geo_point, center.g, $3 * 1000, false)
ORDER BY distance_km ASC, v.id ASC
LIMIT $5
`

	rows, err := p.pool.Query(ctx, query, q.Center.Lng, q.Center.Lat, q.RadiusKM, exclude, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.NearbyVolunteer, 0, 8)
	for rows.Next() {
		var (
			v        domain.Volunteer
			lat, lng *float64
			dist     float64
		)
		if err := rows.Scan(
			&v.ID,
			&v.Name,
			&v.Contact,
			&v.Message,
			&lat,
			&lng,
			&v.PushToken,
			&v.PhotoURL,
			&v.History,
			&v.CreatedAt,
			&v.UpdatedAt,
			&dist,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		if lat != nil && lng != nil {
			v.Location = &domain.Point{Lat: *lat, Lng: *lng}
		}
		out = append(out, domain.NearbyVolunteer{Volunteer: v, DistanceKM: dist})
	}

	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return out, nil
}
