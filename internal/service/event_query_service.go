package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"vibescore/internal/domain"
	"vibescore/internal/geo"
	"vibescore/pkg/e"

	"github.com/google/uuid"
)

type eventQueryService struct {
	repo   EventRepository
	source *EventSource
	vibes  VibeRepository
}

func NewEventQueryService(repo EventRepository, source *EventSource, vibes VibeRepository) EventQueryService {
	return &eventQueryService{repo: repo, source: source, vibes: vibes}
}

// ListEvents returns events filtered by status. With a reference point every
// event carries its distance and the list is ordered nearest first.
func (s *eventQueryService) ListEvents(ctx context.Context, req domain.ListEventsRequest) ([]domain.EventWithDistance, error) {
	if req.Status != "" && !req.Status.Valid() {
		return nil, fmt.Errorf("service.ListEvents: status %q: %w", req.Status, e.ErrInvalidInput)
	}
	if req.From != nil && !geo.ValidCoordinate(*req.From) {
		return nil, fmt.Errorf("service.ListEvents: %w", e.ErrInvalidCoordinates)
	}

	var events []domain.Event
	if req.Status == domain.EventLive {
		live, err := s.source.Live(ctx)
		if err != nil {
			return nil, err
		}
		events = live
	} else {
		ptrs, err := s.repo.ListByStatus(ctx, req.Status)
		if err != nil {
			return nil, err
		}
		events = deref(ptrs)
	}

	out := make([]domain.EventWithDistance, 0, len(events))
	for _, ev := range events {
		item := domain.EventWithDistance{Event: ev}
		if req.From != nil {
			d := geo.Distance(*req.From, ev.Coordinates)
			item.DistanceM = &d
			item.WithinRadius = geo.Within(d, ev.RadiusM)
		}
		out = append(out, item)
	}

	if req.From != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return *out[i].DistanceM < *out[j].DistanceM
		})
	}
	return out, nil
}

func (s *eventQueryService) GetEvent(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	ev, err := s.source.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// Score aggregates the vibe checks of an event. An event nobody rated yet
// scores 0 with an empty label.
func (s *eventQueryService) Score(ctx context.Context, id uuid.UUID) (*domain.EventScore, error) {
	if _, err := s.source.Get(ctx, id); err != nil {
		return nil, err
	}

	score, err := s.vibes.EventScore(ctx, id)
	if err != nil {
		return nil, err
	}
	score.EventID = id
	if score.Count > 0 {
		score.Label = domain.RatingLabel(int(math.Round(score.Average)))
	}
	return score, nil
}

// LocationScores ranks the spots of an event. sortBy is "score" (the
// default) or "reviews"; ties fall back to the other key, then the name.
func (s *eventQueryService) LocationScores(ctx context.Context, id uuid.UUID, sortBy string) ([]domain.LocationScore, error) {
	const op = "service.LocationScores"

	if sortBy == "" {
		sortBy = domain.SortByScore
	}
	if sortBy != domain.SortByScore && sortBy != domain.SortByReviews {
		return nil, fmt.Errorf("%s: sort %q: %w", op, sortBy, e.ErrInvalidInput)
	}
	if _, err := s.source.Get(ctx, id); err != nil {
		return nil, err
	}

	scores, err := s.vibes.LocationScores(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range scores {
		scores[i].Label = domain.RatingLabel(int(math.Round(scores[i].Average)))
	}

	sort.SliceStable(scores, func(i, j int) bool {
		a, b := scores[i], scores[j]
		if sortBy == domain.SortByReviews && a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Average != b.Average {
			return a.Average > b.Average
		}
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Location < b.Location
	})
	return scores, nil
}
