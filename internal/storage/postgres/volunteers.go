package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/am-saksham/rescue-api/internal/domain"
	"github.com/am-saksham/rescue-api/pkg/e"
)

const volunteerColumns = `
	id, name, contact, message,
	ST_Y(geo_point::geometry) AS lat,
	ST_X(geo_point::geometry) AS lng,
	push_token, photo_url, location_history, created_at, updated_at`

type VolunteerRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewVolunteerRepo(pool *pgxpool.Pool, logger *slog.Logger) *VolunteerRepo {
	return &VolunteerRepo{pool: pool, logger: logger}
}

func (p *VolunteerRepo) Create(ctx context.Context, v *domain.Volunteer) error {
	const op = "postgres.Volunteer.Create"

	if v == nil || v.Contact == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
		v.UpdatedAt = v.CreatedAt
	}
	if v.History == nil {
		v.History = domain.LocationHistory{}
	}

	const query = `
		INSERT INTO volunteers (id, name, contact, message, location_history, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := p.pool.Exec(ctx, query,
		v.ID,
		v.Name,
		v.Contact,
		v.Message,
		v.History,
		v.CreatedAt,
		v.UpdatedAt,
	)
	if err != nil {
		wrapped := e.WrapError(ctx, op, err)
		if errors.Is(wrapped, e.ErrUniqueViolation) {
			return fmt.Errorf("%s: %w", op, e.ErrDuplicateContact)
		}
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return wrapped
	}

	return nil
}

func (p *VolunteerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Volunteer, error) {
	const op = "postgres.Volunteer.GetByID"

	row := p.pool.QueryRow(ctx, `SELECT `+volunteerColumns+` FROM volunteers WHERE id = $1`, id)
	v, err := scanVolunteer(row)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return v, nil
}

func (p *VolunteerRepo) GetByContact(ctx context.Context, contact string) (*domain.Volunteer, error) {
	const op = "postgres.Volunteer.GetByContact"

	row := p.pool.QueryRow(ctx, `SELECT `+volunteerColumns+` FROM volunteers WHERE contact = $1`, contact)
	v, err := scanVolunteer(row)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return v, nil
}

// UpdateLocation locks the volunteer row, folds the sample into the stored
// history and writes both the point and the history back in one transaction.
func (p *VolunteerRepo) UpdateLocation(ctx context.Context, id uuid.UUID, sample domain.LocationSample) (*domain.Volunteer, error) {
	const op = "postgres.Volunteer.UpdateLocation"

	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		p.logger.Error("begin tx failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var history domain.LocationHistory
	err = tx.QueryRow(ctx, `SELECT location_history FROM volunteers WHERE id = $1 FOR UPDATE`, id).Scan(&history)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	history = history.Record(sample)

	const query = `
		UPDATE volunteers
		SET geo_point = ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography,
		    location_history = $4,
		    updated_at = $5
		WHERE id = $1
		RETURNING ` + volunteerColumns

	v, err := scanVolunteer(tx.QueryRow(ctx, query,
		id,
		sample.Point.Lng,
		sample.Point.Lat,
		history,
		time.Now().UTC(),
	))
	if err != nil {
		p.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("commit failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return v, nil
}

func (p *VolunteerRepo) SetPushToken(ctx context.Context, id uuid.UUID, token string) (*domain.Volunteer, error) {
	const op = "postgres.Volunteer.SetPushToken"

	const query = `
		UPDATE volunteers SET push_token = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + volunteerColumns

	v, err := scanVolunteer(p.pool.QueryRow(ctx, query, id, token, time.Now().UTC()))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return v, nil
}

func (p *VolunteerRepo) SetPhoto(ctx context.Context, id uuid.UUID, photoURL string) error {
	const op = "postgres.Volunteer.SetPhoto"

	tag, err := p.pool.Exec(ctx,
		`UPDATE volunteers SET photo_url = $2, updated_at = $3 WHERE id = $1`,
		id, photoURL, time.Now().UTC(),
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// GetMany loads every volunteer among ids in one round trip. Unknown ids
// are simply absent from the result.
func (p *VolunteerRepo) GetMany(ctx context.Context, ids []uuid.UUID) ([]*domain.Volunteer, error) {
	const op = "postgres.Volunteer.GetMany"

	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	rows, err := p.pool.Query(ctx, `SELECT `+volunteerColumns+` FROM volunteers WHERE id = ANY($1::uuid[])`, keys)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return collectVolunteers(ctx, op, rows, len(ids))
}

// ListEligible pages through volunteers that have a location and a push
// token, ordered by id (keyset pagination on the primary key).
func (p *VolunteerRepo) ListEligible(ctx context.Context, after uuid.UUID, limit int) ([]*domain.Volunteer, error) {
	const op = "postgres.Volunteer.ListEligible"

	if limit <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	rows, err := p.pool.Query(ctx, `
		SELECT `+volunteerColumns+`
		FROM volunteers
		WHERE geo_point IS NOT NULL AND push_token <> '' AND id > $1
		ORDER BY id
		LIMIT $2
	`, after, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return collectVolunteers(ctx, op, rows, limit)
}

func collectVolunteers(ctx context.Context, op string, rows pgx.Rows, capacity int) ([]*domain.Volunteer, error) {
	defer rows.Close()

	out := make([]*domain.Volunteer, 0, capacity)
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

func scanVolunteer(row pgx.Row) (*domain.Volunteer, error) {
	var (
		v        domain.Volunteer
		lat, lng *float64
	)
	if err := row.Scan(
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
	); err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		v.Location = &domain.Point{Lat: *lat, Lng: *lng}
	}
	if v.History == nil {
		v.History = domain.LocationHistory{}
	}
	return &v, nil
}
