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

type CheckInRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCheckInRepo(pool *pgxpool.Pool, logger *slog.Logger) *CheckInRepo {
	return &CheckInRepo{pool: pool, logger: logger}
}

func (p *CheckInRepo) SaveCheckIn(ctx context.Context, check *domain.CheckIn) error {
	const op = "postgres.CheckIn.Save"

	if check == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if check.UserID == uuid.Nil || check.EventID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if check.Lat < -90 || check.Lat > 90 || check.Lng < -180 || check.Lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
INSERT INTO check_ins (id, user_id, event_id, lat, lng, distance_m, checked_in_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

	if check.ID == uuid.Nil {
		check.ID = uuid.New()
	}
	if check.CheckedInAt.IsZero() {
		check.CheckedInAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		check.ID,
		check.UserID,
		check.EventID,
		check.Lat,
		check.Lng,
		check.DistanceM,
		check.CheckedInAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("user_id", check.UserID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}
