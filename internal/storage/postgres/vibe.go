package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vibescore/internal/domain"
	"vibescore/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VibeRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewVibeRepo(pool *pgxpool.Pool, logger *slog.Logger) *VibeRepo {
	return &VibeRepo{pool: pool, logger: logger}
}

func (p *VibeRepo) Save(ctx context.Context, v *domain.VibeCheck) error {
	const op = "postgres.Vibe.Save"

	if v == nil || v.UserID == uuid.Nil || v.EventID == uuid.Nil || v.Rating < 1 || v.Rating > 5 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.SubmittedAt.IsZero() {
		v.SubmittedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO vibe_checks (id, user_id, event_id, location, rating, comment, photo_url, xp, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := p.pool.Exec(ctx, query,
		v.ID,
		v.UserID,
		v.EventID,
		v.Location,
		v.Rating,
		v.Comment,
		v.PhotoURL,
		v.XP,
		v.SubmittedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("user_id", v.UserID.String()))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// EventScore aggregates the ratings of an event. An event without vibe
// checks has a zero score, not an error.
func (p *VibeRepo) EventScore(ctx context.Context, eventID uuid.UUID) (*domain.EventScore, error) {
	const op = "postgres.Vibe.EventScore"

	const query = `
		SELECT COALESCE(AVG(rating), 0)::double precision,
			   COUNT(*),
			   COALESCE(MAX(submitted_at), 'epoch'::timestamptz)
		FROM vibe_checks
		WHERE event_id = $1
	`

	score := domain.EventScore{EventID: eventID}
	if err := p.pool.QueryRow(ctx, query, eventID).Scan(&score.Average, &score.Count, &score.UpdatedAt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("event_id", eventID.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return &score, nil
}

func (p *VibeRepo) UserActivity(ctx context.Context, userID uuid.UUID) (*domain.UserActivity, error) {
	const op = "postgres.Vibe.UserActivity"

	const query = `
		SELECT
			(SELECT COALESCE(SUM(xp), 0) FROM vibe_checks WHERE user_id = $1),
			(SELECT COUNT(*) FROM vibe_checks WHERE user_id = $1),
			(SELECT COUNT(*) FROM vibe_checks WHERE user_id = $1 AND photo_url <> ''),
			(SELECT COUNT(DISTINCT event_id) FROM check_ins WHERE user_id = $1)
	`

	var a domain.UserActivity
	if err := p.pool.QueryRow(ctx, query, userID).Scan(&a.TotalXP, &a.VibeCount, &a.PhotoVibeCount, &a.EventsAttended); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("user_id", userID.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return &a, nil
}

// LocationScores aggregates an event's ratings per location, best first.
func (p *VibeRepo) LocationScores(ctx context.Context, eventID uuid.UUID) ([]domain.LocationScore, error) {
	const op = "postgres.Vibe.LocationScores"

	const query = `
		SELECT location,
			   AVG(rating)::double precision AS average,
			   COUNT(*) AS reviews,
			   MAX(submitted_at)
		FROM vibe_checks
		WHERE event_id = $1
		GROUP BY location
		ORDER BY average DESC, reviews DESC, location
	`

	rows, err := p.pool.Query(ctx, query, eventID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err), slog.String("event_id", eventID.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	scores := make([]domain.LocationScore, 0)
	for rows.Next() {
		var ls domain.LocationScore
		if err := rows.Scan(&ls.Location, &ls.Average, &ls.Count, &ls.LastVibeAt); err != nil {
			p.logger.Error("db rows scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		scores = append(scores, ls)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return scores, nil
}

// ListByUser returns a user's vibe checks, newest first.
func (p *VibeRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.UserVibe, error) {
	const op = "postgres.Vibe.ListByUser"

	const query = `
		SELECT v.id, v.user_id, v.event_id, v.location, v.rating, v.comment, v.photo_url, v.xp, v.submitted_at,
			   ev.name
		FROM vibe_checks v
		JOIN events ev ON ev.id = v.event_id
		WHERE v.user_id = $1
		ORDER BY v.submitted_at DESC
		LIMIT $2
	`

	rows, err := p.pool.Query(ctx, query, userID, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err), slog.String("user_id", userID.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	vibes := make([]domain.UserVibe, 0)
	for rows.Next() {
		var v domain.UserVibe
		if err := rows.Scan(
			&v.ID, &v.UserID, &v.EventID, &v.Location, &v.Rating, &v.Comment, &v.PhotoURL, &v.XP, &v.SubmittedAt,
			&v.EventName,
		); err != nil {
			p.logger.Error("db rows scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		vibes = append(vibes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return vibes, nil
}
