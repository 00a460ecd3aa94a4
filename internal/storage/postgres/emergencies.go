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

type EmergencyRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewEmergencyRepo(pool *pgxpool.Pool, logger *slog.Logger) *EmergencyRepo {
	return &EmergencyRepo{pool: pool, logger: logger}
}

func (p *EmergencyRepo) Create(ctx context.Context, req *domain.EmergencyRequest) error {
	const op = "postgres.Emergency.Create"

	if req == nil || len(req.Entries) == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.Status == "" {
		req.Status = domain.RequestActive
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}

	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		p.logger.Error("begin tx failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var requester *uuid.UUID
	if req.RequesterID != uuid.Nil {
		requester = &req.RequesterID
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO emergency_requests (id, requester_id, geo_point, radius_km, status, created_at)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5, $6, $7)
	`,
		req.ID,
		requester,
		req.Location.Lng,
		req.Location.Lat,
		req.RadiusKM,
		string(req.Status),
		req.CreatedAt,
	)
	if err != nil {
		p.logger.Error("insert request failed", slog.String("op", op), slog.Any("error", err))
		wrapped := e.WrapError(ctx, op, err)
		if errors.Is(wrapped, e.ErrUniqueViolation) {
			return fmt.Errorf("%s: %w", op, e.ErrConflict)
		}
		return wrapped
	}

	batch := &pgx.Batch{}
	for i, en := range req.Entries {
		if en.Response == "" {
			req.Entries[i].Response = domain.ResponsePending
		}
		batch.Queue(`
			INSERT INTO emergency_entries (request_id, volunteer_id, position, response, distance_km)
			VALUES ($1, $2, $3, $4, $5)
		`, req.ID, en.VolunteerID, i, string(req.Entries[i].Response), en.DistanceKM)
	}

	br := tx.SendBatch(ctx, batch)
	for range req.Entries {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			p.logger.Error("insert entry failed", slog.String("op", op), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
	}
	if err := br.Close(); err != nil {
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *EmergencyRepo) Get(ctx context.Context, id uuid.UUID) (*domain.EmergencyRequest, error) {
	const op = "postgres.Emergency.Get"

	var (
		req       domain.EmergencyRequest
		requester *uuid.UUID
		status    string
	)
	err := p.pool.QueryRow(ctx, `
		SELECT id, requester_id,
		       ST_Y(geo_point::geometry), ST_X(geo_point::geometry),
		       radius_km, status, created_at, completed_at
		FROM emergency_requests
		WHERE id = $1
	`, id).Scan(
		&req.ID,
		&requester,
		&req.Location.Lat,
		&req.Location.Lng,
		&req.RadiusKM,
		&status,
		&req.CreatedAt,
		&req.CompletedAt,
	)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	if requester != nil {
		req.RequesterID = *requester
	}
	req.Status = domain.RequestStatus(status)

	rows, err := p.pool.Query(ctx, `
		SELECT volunteer_id, response, responded_at, distance_km
		FROM emergency_entries
		WHERE request_id = $1
		ORDER BY position
	`, id)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	req.Entries = make([]domain.Entry, 0, 8)
	for rows.Next() {
		var (
			en       domain.Entry
			response string
		)
		if err := rows.Scan(&en.VolunteerID, &response, &en.RespondedAt, &en.DistanceKM); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		en.Response = domain.Response(response)
		req.Entries = append(req.Entries, en)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return &req, nil
}

// Resolve locks the request row first so concurrent accepts on the same
// request are serialized. The entry update only matches a pending entry.
func (p *EmergencyRepo) Resolve(ctx context.Context, requestID, volunteerID uuid.UUID, response domain.Response, at time.Time) (domain.Resolution, error) {
	const op = "postgres.Emergency.Resolve"

	if response != domain.ResponseAccepted && response != domain.ResponseRejected {
		return domain.Resolution{}, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		p.logger.Error("begin tx failed", slog.String("op", op), slog.Any("error", err))
		return domain.Resolution{}, e.WrapError(ctx, op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var status string
	err = tx.QueryRow(ctx, `SELECT status FROM emergency_requests WHERE id = $1 FOR UPDATE`, requestID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Resolution{}, fmt.Errorf("%s: %w", op, e.ErrAlreadyRespondedOrNotFound)
	}
	if err != nil {
		p.logger.Error("lock request failed", slog.String("op", op), slog.Any("error", err))
		return domain.Resolution{}, e.WrapError(ctx, op, err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE emergency_entries
		SET response = $3, responded_at = $4
		WHERE request_id = $1 AND volunteer_id = $2 AND response = 'pending'
	`, requestID, volunteerID, string(response), at)
	if err != nil {
		p.logger.Error("update entry failed", slog.String("op", op), slog.Any("error", err))
		return domain.Resolution{}, e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Resolution{}, fmt.Errorf("%s: %w", op, e.ErrAlreadyRespondedOrNotFound)
	}

	if response == domain.ResponseAccepted {
		tag, err = tx.Exec(ctx, `
			UPDATE emergency_requests
			SET status = 'completed', completed_at = $2
			WHERE id = $1 AND status = 'active'
		`, requestID, at)
		if err != nil {
			p.logger.Error("complete request failed", slog.String("op", op), slog.Any("error", err))
			return domain.Resolution{}, e.WrapError(ctx, op, err)
		}
		if tag.RowsAffected() == 0 {
			return domain.Resolution{}, fmt.Errorf("%s: %w", op, e.ErrRequestCompleted)
		}
		status = string(domain.RequestCompleted)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("commit failed", slog.String("op", op), slog.Any("error", err))
		return domain.Resolution{}, e.WrapError(ctx, op, err)
	}

	return domain.Resolution{
		RequestID:   requestID,
		VolunteerID: volunteerID,
		Response:    response,
		Status:      domain.RequestStatus(status),
		RespondedAt: at,
	}, nil
}
