package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"vibescore/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStats(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) CountUniqueUsers(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.CheckIn.CountUniqueUsers"
	return p.count(ctx, op, minutes, `
		SELECT COUNT(DISTINCT user_id)
		FROM check_ins
		WHERE checked_in_at >= NOW() - ($1 * INTERVAL '1 minute')
	`)
}

func (p *StatsRepo) CountTotalCheckIns(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.CheckIn.CountTotal"
	return p.count(ctx, op, minutes, `
		SELECT COUNT(*)
		FROM check_ins
		WHERE checked_in_at >= NOW() - ($1 * INTERVAL '1 minute')
	`)
}

func (p *StatsRepo) count(ctx context.Context, op string, minutes int, query string) (int64, error) {
	if minutes <= 0 || minutes > 1440 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, minutes).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.Int("minutes", minutes),
		)
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}
