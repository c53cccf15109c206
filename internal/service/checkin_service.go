package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vibescore/internal/checkin"
	"vibescore/internal/domain"
	"vibescore/pkg/e"
	"vibescore/pkg/validator"

	"github.com/google/uuid"
)

// DeviceLocations builds a provider reading the last position a user's
// device reported.
type DeviceLocations func(userID uuid.UUID) checkin.LocationProvider

type CheckInOptions struct {
	LocationTimeout time.Duration
	ReverifyAfter   time.Duration
}

type checkInService struct {
	events   EventLookup
	tracker  *checkin.Tracker
	repo     CheckInRepository
	devices  DeviceLocations
	notifier Notifier
	logger   *slog.Logger
	opts     CheckInOptions
	now      func() time.Time
}

func NewCheckInService(
	events EventLookup,
	tracker *checkin.Tracker,
	repo CheckInRepository,
	devices DeviceLocations,
	notifier Notifier,
	logger *slog.Logger,
	opts CheckInOptions,
) CheckInService {
	if opts.LocationTimeout <= 0 {
		opts.LocationTimeout = 5 * time.Second
	}
	return &checkInService{
		events:   events,
		tracker:  tracker,
		repo:     repo,
		devices:  devices,
		notifier: notifier,
		logger:   logger,
		opts:     opts,
		now:      time.Now,
	}
}

func (s *checkInService) CheckIn(ctx context.Context, req domain.CheckInRequest) (domain.CheckInResponse, error) {
	const op = "service.CheckIn"

	if err := validator.ValidateStruct(req); err != nil {
		return domain.CheckInResponse{}, fmt.Errorf("%s: %s: %w", op, validator.Describe(err), e.ErrInvalidInput)
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.CheckInResponse{}, fmt.Errorf("%s: %w", op, e.ErrInvalidUserID)
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return domain.CheckInResponse{}, fmt.Errorf("%s: event_id: %w", op, e.ErrInvalidInput)
	}

	l := s.logger.With(slog.String("user_id", req.UserID), slog.String("event_id", req.EventID))
	l.Info("check-in START", slog.Bool("device_location", req.UseDeviceLocation))

	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		l.Warn("event lookup failed", slog.Any("error", err))
		return domain.CheckInResponse{}, err
	}

	provider, err := s.provider(userID, req)
	if err != nil {
		return domain.CheckInResponse{}, err
	}

	// restored if the check-in cannot be persisted
	prev, hadPrev, err := s.tracker.Active(ctx, userID)
	if err != nil {
		return domain.CheckInResponse{}, e.Wrap(op, err)
	}

	session := checkin.NewSession(userID, provider, s.tracker,
		checkin.WithReverifyAfter(s.opts.ReverifyAfter),
		checkin.WithClock(s.now),
	)

	// the already-checked-in and not-live checks run before any location read
	out, err := session.Select(ctx, event)
	if errors.Is(err, checkin.ErrLocationRequired) {
		locCtx, cancel := context.WithTimeout(ctx, s.opts.LocationTimeout)
		coord, locErr := session.RequestLocation(locCtx)
		cancel()
		if locErr != nil {
			l.Warn("location unavailable", slog.Any("error", locErr))
			return domain.CheckInResponse{}, locErr
		}
		l.Debug("location obtained", slog.Float64("lat", coord.Latitude), slog.Float64("lng", coord.Longitude))
		out, err = session.Select(ctx, event)
	}
	if err != nil {
		l.Info("check-in FAILED", slog.String("state", session.State().String()), slog.Any("error", err))
		return domain.CheckInResponse{}, err
	}

	resp := domain.CheckInResponse{
		EventID:          event.ID.String(),
		EventName:        event.Name,
		Location:         event.Location,
		AlreadyCheckedIn: out.AlreadyCheckedIn,
		Result:           out.Result,
		CheckedInAt:      out.Active.CheckedInAt,
	}
	if out.AlreadyCheckedIn {
		l.Info("check-in END: already checked in")
		return resp, nil
	}

	coord, _ := session.Coordinate()
	record := &domain.CheckIn{
		UserID:      userID,
		EventID:     event.ID,
		Lat:         coord.Latitude,
		Lng:         coord.Longitude,
		DistanceM:   out.Result.DistanceM,
		CheckedInAt: out.Active.CheckedInAt,
	}
	if err := s.repo.SaveCheckIn(ctx, record); err != nil {
		l.Error("save check-in failed", slog.Any("error", err))
		s.rollback(ctx, l, userID, prev, hadPrev)
		return domain.CheckInResponse{}, err
	}

	s.notifier.Notify(ctx, domain.WebhookPayload{
		Kind:       domain.NotifyCheckIn,
		UserID:     req.UserID,
		EventID:    event.ID,
		EventName:  event.Name,
		Lat:        coord.Latitude,
		Lng:        coord.Longitude,
		DistanceM:  out.Result.DistanceM,
		OccurredAt: out.Active.CheckedInAt,
	})

	l.Info("check-in END", slog.Float64("distance_m", out.Result.DistanceM), slog.Float64("radius_m", event.RadiusM))
	return resp, nil
}

// rollback puts the tracker back to what it held before the session
// recorded the new check-in.
func (s *checkInService) rollback(ctx context.Context, l *slog.Logger, userID uuid.UUID, prev domain.ActiveCheckIn, hadPrev bool) {
	var err error
	if hadPrev {
		err = s.tracker.Record(ctx, prev)
	} else {
		err = s.tracker.Clear(ctx, userID)
	}
	if err != nil {
		l.Error("rollback active check-in failed", slog.Any("error", err), slog.Bool("restore", hadPrev))
	}
}

func (s *checkInService) provider(userID uuid.UUID, req domain.CheckInRequest) (checkin.LocationProvider, error) {
	if req.UseDeviceLocation {
		if s.devices == nil {
			return nil, fmt.Errorf("service.CheckIn: device locations disabled: %w", e.ErrLocationUnavailable)
		}
		return s.devices(userID), nil
	}
	if req.Lat == nil || req.Lng == nil {
		return nil, fmt.Errorf("service.CheckIn: lat/lng required: %w", e.ErrInvalidInput)
	}
	return checkin.StaticProvider{Latitude: *req.Lat, Longitude: *req.Lng}, nil
}

func (s *checkInService) Active(ctx context.Context, userID uuid.UUID) (*domain.ActiveCheckIn, error) {
	const op = "service.CheckIn.Active"

	active, ok, err := s.tracker.Active(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return &active, nil
}

func (s *checkInService) Leave(ctx context.Context, userID uuid.UUID) error {
	if err := s.tracker.Clear(ctx, userID); err != nil {
		return e.Wrap("service.CheckIn.Leave", err)
	}
	s.logger.Info("left event", slog.String("user_id", userID.String()))
	return nil
}
