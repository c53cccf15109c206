package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vibescore/internal/domain"
	"vibescore/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewEventRepo(pool *pgxpool.Pool, logger *slog.Logger) *EventRepo {
	return &EventRepo{pool: pool, logger: logger}
}

const eventColumns = `id, name, location, category, event_date, event_time, lat, lng, radius_m, status, created_at`

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var ev domain.Event
	err := row.Scan(
		&ev.ID,
		&ev.Name,
		&ev.Location,
		&ev.Category,
		&ev.Date,
		&ev.Time,
		&ev.Coordinates.Latitude,
		&ev.Coordinates.Longitude,
		&ev.RadiusM,
		&ev.Status,
		&ev.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func prepare(ev *domain.Event) {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	if ev.Status == "" {
		ev.Status = domain.EventUpcoming
	}
}

func (p *EventRepo) Create(ctx context.Context, ev *domain.Event) error {
	const op = "postgres.Event.Create"

	if ev == nil || ev.RadiusM <= 0 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	prepare(ev)

	const query = `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := p.pool.Exec(ctx, query,
		ev.ID,
		ev.Name,
		ev.Location,
		ev.Category,
		ev.Date,
		ev.Time,
		ev.Coordinates.Latitude,
		ev.Coordinates.Longitude,
		ev.RadiusM,
		ev.Status,
		ev.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// Upsert inserts the event or overwrites an existing one with the same id.
// The catalog seed uses it, so re-running a seed is harmless.
func (p *EventRepo) Upsert(ctx context.Context, ev *domain.Event) error {
	const op = "postgres.Event.Upsert"

	if ev == nil || ev.RadiusM <= 0 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	prepare(ev)

	const query = `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE
		SET name       = EXCLUDED.name,
			location   = EXCLUDED.location,
			category   = EXCLUDED.category,
			event_date = EXCLUDED.event_date,
			event_time = EXCLUDED.event_time,
			lat        = EXCLUDED.lat,
			lng        = EXCLUDED.lng,
			radius_m   = EXCLUDED.radius_m,
			status     = EXCLUDED.status
	`

	_, err := p.pool.Exec(ctx, query,
		ev.ID,
		ev.Name,
		ev.Location,
		ev.Category,
		ev.Date,
		ev.Time,
		ev.Coordinates.Latitude,
		ev.Coordinates.Longitude,
		ev.RadiusM,
		ev.Status,
		ev.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", ev.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *EventRepo) List(ctx context.Context, page, limit int) ([]*domain.Event, int64, error) {
	const op = "postgres.Event.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM events`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	const listQuery = `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.pool.Query(ctx, listQuery, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	events, err := p.collect(ctx, op, rows)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (p *EventRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	const op = "postgres.Event.Get"

	const query = `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`

	ev, err := scanEvent(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return ev, nil
}

func (p *EventRepo) Update(ctx context.Context, ev *domain.Event) error {
	const op = "postgres.Event.Update"

	const query = `
		UPDATE events
		SET name     = $2,
			location = $3,
			lat      = $4,
			lng      = $5,
			radius_m = $6,
			status   = $7
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		ev.ID,
		ev.Name,
		ev.Location,
		ev.Coordinates.Latitude,
		ev.Coordinates.Longitude,
		ev.RadiusM,
		ev.Status,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", ev.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *EventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Event.Delete"

	const query = `
		UPDATE events
		SET status = 'ended'
		WHERE id = $1 AND status <> 'ended'
	`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// ListByStatus returns every event with status, or all events when status is empty.
func (p *EventRepo) ListByStatus(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error) {
	const op = "postgres.Event.ListByStatus"

	const query = `
		SELECT ` + eventColumns + `
		FROM events
		WHERE $1 = '' OR status = $1
		ORDER BY name
	`

	rows, err := p.pool.Query(ctx, query, string(status))
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return p.collect(ctx, op, rows)
}

func (p *EventRepo) collect(ctx context.Context, op string, rows pgx.Rows) ([]*domain.Event, error) {
	var events []*domain.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return events, nil
}
