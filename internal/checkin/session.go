// Package checkin verifies that a user is physically present at a live event.
//
// A Session is built per check-in attempt and drives the flow
// Idle → RequestingLocation → Ready → Verifying → CheckedIn | Failed.
// From Failed the caller may re-request the location, re-verify the same
// event, or dismiss. A Session is not safe for concurrent use.
package checkin

import (
	"context"
	"fmt"
	"math"
	"time"

	"vibescore/internal/domain"
	"vibescore/internal/geo"

	"github.com/google/uuid"
)

type DistanceFunc func(a, b domain.Coordinate) float64

type Option func(*Session)

// WithDistance replaces the haversine calculator.
func WithDistance(fn DistanceFunc) Option {
	return func(s *Session) { s.distance = fn }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithReverifyAfter makes an existing check-in older than d go through
// verification again instead of short-circuiting. Zero disables it.
func WithReverifyAfter(d time.Duration) Option {
	return func(s *Session) { s.reverifyAfter = d }
}

// Outcome describes a successful check-in.
type Outcome struct {
	Event            domain.Event
	Active           domain.ActiveCheckIn
	Result           *domain.CheckInResult
	AlreadyCheckedIn bool
}

type Session struct {
	userID        uuid.UUID
	provider      LocationProvider
	tracker       *Tracker
	distance      DistanceFunc
	now           func() time.Time
	reverifyAfter time.Duration

	state    State
	coord    domain.Coordinate
	hasCoord bool
	event    *domain.Event
	result   *domain.CheckInResult
	failure  *Failure
}

func NewSession(userID uuid.UUID, provider LocationProvider, tracker *Tracker, opts ...Option) *Session {
	s := &Session{
		userID:   userID,
		provider: provider,
		tracker:  tracker,
		distance: geo.Distance,
		now:      time.Now,
		state:    Idle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() State { return s.state }

func (s *Session) Failure() *Failure { return s.failure }

func (s *Session) Result() *domain.CheckInResult { return s.result }

func (s *Session) Coordinate() (domain.Coordinate, bool) { return s.coord, s.hasCoord }

func (s *Session) Event() *domain.Event { return s.event }

// RequestLocation asks the provider for a fresh position.
func (s *Session) RequestLocation(ctx context.Context) (domain.Coordinate, error) {
	if s.state == Verifying || s.state == RequestingLocation {
		return domain.Coordinate{}, ErrVerificationInFlight
	}

	s.state = RequestingLocation
	s.failure = nil

	c, err := s.provider.CurrentCoordinate(ctx)
	if err == nil && !geo.ValidCoordinate(c) {
		err = fmt.Errorf("provider returned (%v, %v)", c.Latitude, c.Longitude)
	}
	if err != nil {
		s.hasCoord = false
		return domain.Coordinate{}, s.fail(&Failure{Reason: ReasonLocationUnavailable, Cause: err})
	}

	s.coord = c
	s.hasCoord = true
	s.state = Ready
	return c, nil
}

// Select starts a check-in into event.
//
// An event the user is already checked into short-circuits to success
// without a location read, unless that check-in is older than the
// reverify window; then it is dropped and verified from scratch. A non-live event fails with EventNotLive before
// any location or distance work.
func (s *Session) Select(ctx context.Context, event domain.Event) (Outcome, error) {
	if s.state == Verifying || s.state == RequestingLocation {
		return Outcome{}, ErrVerificationInFlight
	}

	active, ok, err := s.tracker.Active(ctx, s.userID)
	if err != nil {
		return Outcome{}, fmt.Errorf("checkin.Session.Select: %w", err)
	}
	if ok && active.EventID == event.ID {
		if !s.stale(active) {
			s.state = CheckedIn
			s.event = &event
			s.result = nil
			s.failure = nil
			return Outcome{Event: event, Active: active, AlreadyCheckedIn: true}, nil
		}
		// a stale check-in only counts again after it passes verification
		if err := s.tracker.Clear(ctx, s.userID); err != nil {
			return Outcome{}, fmt.Errorf("checkin.Session.Select: %w", err)
		}
	}

	if !event.IsLive() {
		s.event = &event
		return Outcome{}, s.fail(&Failure{
			Reason:      ReasonEventNotLive,
			EventID:     event.ID.String(),
			EventStatus: event.Status,
		})
	}

	if !s.hasCoord {
		return Outcome{}, ErrLocationRequired
	}

	return s.verify(ctx, event)
}

// RetryLocation re-reads the position after a failure.
func (s *Session) RetryLocation(ctx context.Context) (domain.Coordinate, error) {
	if s.state != Failed {
		return domain.Coordinate{}, fmt.Errorf("%w: retry location from %s", ErrInvalidTransition, s.state)
	}
	return s.RequestLocation(ctx)
}

// RetryVerify runs verification of the failed event again with the
// current position.
func (s *Session) RetryVerify(ctx context.Context) (Outcome, error) {
	if s.state != Failed || s.event == nil {
		return Outcome{}, fmt.Errorf("%w: retry verify from %s", ErrInvalidTransition, s.state)
	}
	if !s.event.IsLive() {
		return Outcome{}, s.failure
	}
	if !s.hasCoord {
		return Outcome{}, ErrLocationRequired
	}
	return s.verify(ctx, *s.event)
}

// Dismiss clears a failure.
func (s *Session) Dismiss() {
	if s.state != Failed {
		return
	}
	s.failure = nil
	s.event = nil
	s.result = nil
	if s.hasCoord {
		s.state = Ready
	} else {
		s.state = Idle
	}
}

func (s *Session) verify(ctx context.Context, event domain.Event) (out Outcome, err error) {
	s.state = Verifying
	s.event = &event
	s.result = nil
	s.failure = nil

	defer func() {
		if r := recover(); r != nil {
			out = Outcome{}
			err = s.fail(&Failure{
				Reason:  ReasonVerificationError,
				EventID: event.ID.String(),
				Cause:   fmt.Errorf("panic: %v", r),
			})
		}
	}()

	if event.RadiusM <= 0 {
		return Outcome{}, s.fail(&Failure{
			Reason:  ReasonVerificationError,
			EventID: event.ID.String(),
			Cause:   fmt.Errorf("event radius %v", event.RadiusM),
		})
	}

	d := s.distance(s.coord, event.Coordinates)
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return Outcome{}, s.fail(&Failure{
			Reason:  ReasonVerificationError,
			EventID: event.ID.String(),
			Cause:   fmt.Errorf("distance %v", d),
		})
	}

	result := domain.NewCheckInResult(d, event.RadiusM)
	s.result = &result

	if !result.WithinRadius {
		return Outcome{}, s.fail(&Failure{
			Reason:  ReasonOutOfRange,
			EventID: event.ID.String(),
			Result:  &result,
		})
	}

	active := domain.ActiveCheckIn{
		UserID:      s.userID,
		EventID:     event.ID,
		EventName:   event.Name,
		Location:    event.Location,
		CheckedInAt: s.now().UTC(),
	}
	if err := s.tracker.Record(ctx, active); err != nil {
		return Outcome{}, s.fail(&Failure{
			Reason:  ReasonVerificationError,
			EventID: event.ID.String(),
			Cause:   err,
		})
	}

	s.state = CheckedIn
	return Outcome{Event: event, Active: active, Result: &result}, nil
}

func (s *Session) fail(f *Failure) *Failure {
	s.state = Failed
	s.failure = f
	return f
}

func (s *Session) stale(active domain.ActiveCheckIn) bool {
	if s.reverifyAfter <= 0 {
		return false
	}
	return s.now().Sub(active.CheckedInAt) >= s.reverifyAfter
}
