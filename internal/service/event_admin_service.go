package service

import (
	"context"
	"fmt"
	"log/slog"

	"vibescore/internal/domain"
	"vibescore/internal/geo"
	"vibescore/pkg/e"
	"vibescore/pkg/validator"

	"github.com/google/uuid"
)

type EventAdmin struct {
	repo   EventRepository
	source *EventSource
	logger *slog.Logger
}

// NewEventAdminService invalidates the live event cache of source after
// every mutation. source may be nil.
func NewEventAdminService(repo EventRepository, source *EventSource, logger *slog.Logger) *EventAdmin {
	return &EventAdmin{repo: repo, source: source, logger: logger}
}

func (s *EventAdmin) Create(ctx context.Context, req domain.CreateEventRequest) (uuid.UUID, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return uuid.Nil, fmt.Errorf("service.EventAdmin.Create: %s: %w", validator.Describe(err), e.ErrInvalidInput)
	}

	status := req.Status
	if status == "" {
		status = domain.EventUpcoming
	}
	ev := &domain.Event{
		ID:          uuid.New(),
		Name:        req.Name,
		Location:    req.Location,
		Category:    req.Category,
		Date:        req.Date,
		Time:        req.Time,
		Coordinates: domain.Coordinate{Latitude: req.Lat, Longitude: req.Lng},
		RadiusM:     req.RadiusM,
		Status:      status,
	}
	if err := s.repo.Create(ctx, ev); err != nil {
		return uuid.Nil, err
	}
	s.invalidate(ctx)
	s.logger.Info("event created", slog.String("event_id", ev.ID.String()), slog.String("status", string(ev.Status)))
	return ev.ID, nil
}

func (s *EventAdmin) List(ctx context.Context, page, limit int) ([]*domain.Event, int64, error) {
	items, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *EventAdmin) Get(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return s.repo.Get(ctx, id)
}

func (s *EventAdmin) Update(ctx context.Context, id uuid.UUID, req domain.UpdateEventRequest) error {
	if err := validator.ValidateStruct(req); err != nil {
		return fmt.Errorf("service.EventAdmin.Update: %s: %w", validator.Describe(err), e.ErrInvalidInput)
	}

	ev, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Name != nil {
		ev.Name = *req.Name
	}
	if req.Location != nil {
		ev.Location = *req.Location
	}
	if req.Lat != nil {
		ev.Coordinates.Latitude = *req.Lat
	}
	if req.Lng != nil {
		ev.Coordinates.Longitude = *req.Lng
	}
	if req.RadiusM != nil {
		ev.RadiusM = *req.RadiusM
	}
	if req.Status != nil {
		ev.Status = *req.Status
	}
	if err := s.repo.Update(ctx, ev); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Delete ends the event. Past check-ins and vibes keep referencing it.
func (s *EventAdmin) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Seed upserts catalog events and returns how many were written.
func (s *EventAdmin) Seed(ctx context.Context, events []domain.Event) (int, error) {
	const op = "service.EventAdmin.Seed"

	n := 0
	for i := range events {
		ev := events[i]
		if ev.RadiusM <= 0 || !geo.ValidCoordinate(ev.Coordinates) || !ev.Status.Valid() {
			return n, fmt.Errorf("%s: event %q: %w", op, ev.Name, e.ErrInvalidInput)
		}
		if err := s.repo.Upsert(ctx, &ev); err != nil {
			return n, e.Wrap(op, err)
		}
		n++
	}
	s.invalidate(ctx)
	s.logger.Info("catalog seeded", slog.Int("events", n))
	return n, nil
}

func (s *EventAdmin) invalidate(ctx context.Context) {
	if s.source != nil {
		s.source.Invalidate(ctx)
	}
}
