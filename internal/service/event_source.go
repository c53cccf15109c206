package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vibescore/internal/domain"
	"vibescore/pkg/e"

	"github.com/google/uuid"
)

// EventSource answers event lookups for check-ins, serving live events
// from the cache and everything else from the repository.
type EventSource struct {
	repo   EventRepository
	cache  LiveEventCache
	ttl    time.Duration
	logger *slog.Logger
}

// NewEventSource accepts a nil cache.
func NewEventSource(repo EventRepository, cache LiveEventCache, ttl time.Duration, logger *slog.Logger) *EventSource {
	return &EventSource{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

func (s *EventSource) Live(ctx context.Context) ([]domain.Event, error) {
	if s.cache != nil {
		events, ok, err := s.cache.GetLive(ctx)
		if err != nil {
			s.logger.Warn("live event cache read failed", slog.Any("error", err))
		} else if ok {
			return events, nil
		}
	}
	return s.Refresh(ctx)
}

// Refresh reloads live events from the repository into the cache.
func (s *EventSource) Refresh(ctx context.Context) ([]domain.Event, error) {
	ptrs, err := s.repo.ListByStatus(ctx, domain.EventLive)
	if err != nil {
		return nil, err
	}
	events := deref(ptrs)

	if s.cache != nil {
		if err := s.cache.SetLive(ctx, events, s.ttl); err != nil {
			s.logger.Warn("live event cache write failed", slog.Any("error", err))
		}
	}
	return events, nil
}

func (s *EventSource) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("live event cache invalidate failed", slog.Any("error", err))
	}
}

func (s *EventSource) Get(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	live, err := s.Live(ctx)
	if err == nil {
		for _, ev := range live {
			if ev.ID == id {
				return ev, nil
			}
		}
	}

	ev, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}
	if ev == nil {
		return domain.Event{}, fmt.Errorf("service.EventSource.Get: %w", e.ErrNotFound)
	}
	return *ev, nil
}

func deref(src []*domain.Event) []domain.Event {
	out := make([]domain.Event, 0, len(src))
	for _, p := range src {
		out = append(out, *p)
	}
	return out
}
