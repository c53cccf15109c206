package workers

import (
	"context"
	"log/slog"
	"time"

	"vibescore/internal/domain"
)

type LiveEventLoader interface {
	Refresh(ctx context.Context) ([]domain.Event, error)
}

// LiveEventRefresher keeps the live event cache warm so check-ins rarely
// hit the database. An event switching to live shows up within one interval.
type LiveEventRefresher struct {
	events   LiveEventLoader
	interval time.Duration
	logger   *slog.Logger
}

func NewLiveEventRefresher(events LiveEventLoader, interval time.Duration, logger *slog.Logger) *LiveEventRefresher {
	return &LiveEventRefresher{events: events, interval: interval, logger: logger}
}

func (w *LiveEventRefresher) Run(ctx context.Context) {
	w.logger.Info("liveEventRefresher STARTED", slog.Duration("interval", w.interval))

	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("liveEventRefresher STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *LiveEventRefresher) refresh(ctx context.Context) {
	events, err := w.events.Refresh(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Error("live events refresh failed", slog.Any("error", err))
		}
		return
	}
	w.logger.Debug("live events refreshed", slog.Int("count", len(events)))
}
