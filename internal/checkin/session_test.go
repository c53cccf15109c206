package checkin_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibescore/internal/checkin"
	"vibescore/internal/domain"
	"vibescore/internal/geo"
	"vibescore/pkg/e"
)

var centralPark = domain.Coordinate{Latitude: 40.7829, Longitude: -73.9654}

func liveEvent() domain.Event {
	return domain.Event{
		ID:          uuid.New(),
		Name:        "Electric Dreams Festival",
		Location:    "Central Park, NYC",
		Coordinates: centralPark,
		RadiusM:     500,
		Status:      domain.EventLive,
	}
}

type countingDistance struct {
	calls int
}

func (c *countingDistance) fn(a, b domain.Coordinate) float64 {
	c.calls++
	return geo.Distance(a, b)
}

func newSession(t *testing.T, at domain.Coordinate, opts ...checkin.Option) (*checkin.Session, *checkin.Tracker, uuid.UUID) {
	t.Helper()
	tracker := checkin.NewTracker(checkin.NewMemoryStore())
	userID := uuid.New()
	return checkin.NewSession(userID, checkin.StaticProvider(at), tracker, opts...), tracker, userID
}

func TestSession_SamePoint_ChecksIn(t *testing.T) {
	s, tracker, userID := newSession(t, centralPark)
	ev := liveEvent()

	require.Equal(t, checkin.Idle, s.State())

	_, err := s.RequestLocation(context.Background())
	require.NoError(t, err)
	require.Equal(t, checkin.Ready, s.State())

	out, err := s.Select(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, checkin.CheckedIn, s.State())
	require.NotNil(t, out.Result)
	assert.Equal(t, 0.0, out.Result.DistanceM)
	assert.True(t, out.Result.WithinRadius)
	assert.False(t, out.AlreadyCheckedIn)

	active, ok, err := tracker.Active(context.Background(), userID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ev.ID, active.EventID)
	assert.Equal(t, ev.Location, active.Location)
}

func TestSession_OneKilometerAway_OutOfRange(t *testing.T) {
	s, tracker, userID := newSession(t, geo.Offset(centralPark, 1000, 0))
	ev := liveEvent()

	_, err := s.RequestLocation(context.Background())
	require.NoError(t, err)

	_, err = s.Select(context.Background(), ev)
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrOutOfRange)
	assert.Equal(t, checkin.Failed, s.State())

	var f *checkin.Failure
	require.True(t, errors.As(err, &f))
	assert.Equal(t, checkin.ReasonOutOfRange, f.Reason)
	require.NotNil(t, f.Result)
	assert.InEpsilon(t, 1000.0, f.Result.DistanceM, 0.1)
	assert.InEpsilon(t, 500.0, f.Result.Shortfall(), 0.2)

	_, ok, err := tracker.Active(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_BoundaryIsInclusive(t *testing.T) {
	ev := liveEvent()
	s, _, _ := newSession(t, centralPark, checkin.WithDistance(func(a, b domain.Coordinate) float64 {
		return ev.RadiusM
	}))

	_, err := s.RequestLocation(context.Background())
	require.NoError(t, err)

	out, err := s.Select(context.Background(), ev)
	require.NoError(t, err)
	assert.True(t, out.Result.WithinRadius)
	assert.Equal(t, 500.0, out.Result.DistanceM)
}

func TestSession_NotLiveEvent_NeverComputesDistance(t *testing.T) {
	for _, status := range []domain.EventStatus{domain.EventUpcoming, domain.EventEnded} {
		t.Run(string(status), func(t *testing.T) {
			dist := &countingDistance{}
			reads := 0
			tracker := checkin.NewTracker(checkin.NewMemoryStore())
			provider := checkin.ProviderFunc(func(ctx context.Context) (domain.Coordinate, error) {
				reads++
				return centralPark, nil
			})
			s := checkin.NewSession(uuid.New(), provider, tracker, checkin.WithDistance(dist.fn))

			ev := liveEvent()
			ev.Status = status

			_, err := s.Select(context.Background(), ev)
			require.Error(t, err)
			assert.ErrorIs(t, err, e.ErrEventNotLive)
			assert.Equal(t, checkin.Failed, s.State())
			assert.Equal(t, 0, dist.calls)
			assert.Equal(t, 0, reads)
		})
	}
}

func TestSession_LocationFailure_BlocksCheckInUntilRetried(t *testing.T) {
	tracker := checkin.NewTracker(checkin.NewMemoryStore())
	fail := true
	provider := checkin.ProviderFunc(func(ctx context.Context) (domain.Coordinate, error) {
		if fail {
			return domain.Coordinate{}, e.ErrPermissionDenied
		}
		return centralPark, nil
	})
	s := checkin.NewSession(uuid.New(), provider, tracker)
	ev := liveEvent()

	_, err := s.RequestLocation(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrLocationUnavailable)
	assert.ErrorIs(t, err, e.ErrPermissionDenied)
	assert.Equal(t, checkin.Failed, s.State())
	assert.Equal(t, checkin.ReasonLocationUnavailable, s.Failure().Reason)

	_, err = s.Select(context.Background(), ev)
	assert.ErrorIs(t, err, checkin.ErrLocationRequired)

	fail = false
	_, err = s.RetryLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, checkin.Ready, s.State())

	_, err = s.Select(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, checkin.CheckedIn, s.State())
}

func TestSession_InvalidProviderCoordinate_IsLocationUnavailable(t *testing.T) {
	s, _, _ := newSession(t, domain.Coordinate{Latitude: 123, Longitude: 0})

	_, err := s.RequestLocation(context.Background())
	assert.ErrorIs(t, err, e.ErrLocationUnavailable)
	_, has := s.Coordinate()
	assert.False(t, has)
}

func TestSession_AlreadyCheckedIn_ShortCircuits(t *testing.T) {
	dist := &countingDistance{}
	s, tracker, userID := newSession(t, centralPark, checkin.WithDistance(dist.fn))
	ev := liveEvent()

	require.NoError(t, tracker.Record(context.Background(), domain.ActiveCheckIn{
		UserID:      userID,
		EventID:     ev.ID,
		CheckedInAt: time.Now(),
	}))

	out, err := s.Select(context.Background(), ev)
	require.NoError(t, err)
	assert.True(t, out.AlreadyCheckedIn)
	assert.Nil(t, out.Result)
	assert.Equal(t, checkin.CheckedIn, s.State())
	assert.Equal(t, 0, dist.calls)
}

func TestSession_AlreadyCheckedIn_EvenWhenEventEnded(t *testing.T) {
	s, tracker, userID := newSession(t, centralPark)
	ev := liveEvent()
	ev.Status = domain.EventEnded

	require.NoError(t, tracker.Record(context.Background(), domain.ActiveCheckIn{UserID: userID, EventID: ev.ID, CheckedInAt: time.Now()}))

	out, err := s.Select(context.Background(), ev)
	require.NoError(t, err)
	assert.True(t, out.AlreadyCheckedIn)
}

func TestSession_ReverifyAfter_StaleCheckInIsVerifiedAgain(t *testing.T) {
	now := time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)
	dist := &countingDistance{}
	s, tracker, userID := newSession(t, centralPark,
		checkin.WithDistance(dist.fn),
		checkin.WithClock(func() time.Time { return now }),
		checkin.WithReverifyAfter(time.Hour),
	)
	ev := liveEvent()

	require.NoError(t, tracker.Record(context.Background(), domain.ActiveCheckIn{
		UserID:      userID,
		EventID:     ev.ID,
		CheckedInAt: now.Add(-2 * time.Hour),
	}))

	_, err := s.RequestLocation(context.Background())
	require.NoError(t, err)

	out, err := s.Select(context.Background(), ev)
	require.NoError(t, err)
	assert.False(t, out.AlreadyCheckedIn)
	assert.Equal(t, 1, dist.calls)
	assert.Equal(t, now, out.Active.CheckedInAt)
}

func TestSession_ReverifyAfter_StaleCheckInOutOfRangeIsDropped(t *testing.T) {
	now := time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)
	s, tracker, userID := newSession(t, geo.Offset(centralPark, 1000, 0),
		checkin.WithClock(func() time.Time { return now }),
		checkin.WithReverifyAfter(time.Minute),
	)
	ev := liveEvent()

	require.NoError(t, tracker.Record(context.Background(), domain.ActiveCheckIn{
		UserID:      userID,
		EventID:     ev.ID,
		CheckedInAt: now.Add(-time.Hour),
	}))

	_, err := s.Select(context.Background(), ev)
	require.ErrorIs(t, err, checkin.ErrLocationRequired)

	_, found, err := tracker.Active(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, found, "stale check-in must not survive a pending re-verification")

	_, err = s.RequestLocation(context.Background())
	require.NoError(t, err)

	_, err = s.Select(context.Background(), ev)
	require.ErrorIs(t, err, e.ErrOutOfRange)
	assert.Equal(t, checkin.Failed, s.State())

	ok, err := tracker.IsCheckedInto(context.Background(), userID, ev.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_ReverifyAfter_OtherEventIsUntouched(t *testing.T) {
	now := time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)
	s, tracker, userID := newSession(t, geo.Offset(centralPark, 1000, 0),
		checkin.WithClock(func() time.Time { return now }),
		checkin.WithReverifyAfter(time.Minute),
	)
	other := uuid.New()

	require.NoError(t, tracker.Record(context.Background(), domain.ActiveCheckIn{
		UserID:      userID,
		EventID:     other,
		CheckedInAt: now.Add(-time.Hour),
	}))

	_, err := s.RequestLocation(context.Background())
	require.NoError(t, err)
	_, err = s.Select(context.Background(), liveEvent())
	require.ErrorIs(t, err, e.ErrOutOfRange)

	ok, err := tracker.IsCheckedInto(context.Background(), userID, other)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSession_RetryVerify_SameEvent(t *testing.T) {
	tracker := checkin.NewTracker(checkin.NewMemoryStore())
	pos := geo.Offset(centralPark, 1000, 0)
	provider := checkin.ProviderFunc(func(ctx context.Context) (domain.Coordinate, error) { return pos, nil })
	s := checkin.NewSession(uuid.New(), provider, tracker)
	ev := liveEvent()

	_, err := s.RequestLocation(context.Background())
	require.NoError(t, err)
	_, err = s.Select(context.Background(), ev)
	require.ErrorIs(t, err, e.ErrOutOfRange)

	// same coordinate, same outcome
	_, err = s.RetryVerify(context.Background())
	require.ErrorIs(t, err, e.ErrOutOfRange)

	pos = geo.Offset(centralPark, 100, 0)
	_, err = s.RetryLocation(context.Background())
	require.NoError(t, err)
	require.Equal(t, checkin.Ready, s.State())

	out, err := s.Select(context.Background(), ev)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, out.Result.DistanceM, 1)
}

func TestSession_RetryFromWrongState(t *testing.T) {
	s, _, _ := newSession(t, centralPark)

	_, err := s.RetryLocation(context.Background())
	assert.ErrorIs(t, err, checkin.ErrInvalidTransition)

	_, err = s.RetryVerify(context.Background())
	assert.ErrorIs(t, err, checkin.ErrInvalidTransition)
}

func TestSession_Dismiss(t *testing.T) {
	s, _, _ := newSession(t, geo.Offset(centralPark, 1000, 0))
	_, err := s.RequestLocation(context.Background())
	require.NoError(t, err)
	_, err = s.Select(context.Background(), liveEvent())
	require.Error(t, err)

	s.Dismiss()
	assert.Equal(t, checkin.Ready, s.State())
	assert.Nil(t, s.Failure())
	assert.Nil(t, s.Event())
}

func TestSession_PanicInDistance_IsVerificationError(t *testing.T) {
	s, _, _ := newSession(t, centralPark, checkin.WithDistance(func(a, b domain.Coordinate) float64 {
		panic("boom")
	}))
	_, err := s.RequestLocation(context.Background())
	require.NoError(t, err)

	_, err = s.Select(context.Background(), liveEvent())
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrVerification)
	assert.Equal(t, checkin.Failed, s.State())
}

func TestSession_NaNDistance_IsVerificationError(t *testing.T) {
	ev := liveEvent()
	ev.Coordinates.Latitude = math.NaN()
	s, _, _ := newSession(t, centralPark)
	_, err := s.RequestLocation(context.Background())
	require.NoError(t, err)

	_, err = s.Select(context.Background(), ev)
	assert.ErrorIs(t, err, e.ErrVerification)
}

func TestSession_SelectWithoutLocation(t *testing.T) {
	s, _, _ := newSession(t, centralPark)

	_, err := s.Select(context.Background(), liveEvent())
	assert.ErrorIs(t, err, checkin.ErrLocationRequired)
	assert.Equal(t, checkin.Idle, s.State())
}

func TestFailure_Retryable(t *testing.T) {
	loc, ver := (&checkin.Failure{Reason: checkin.ReasonOutOfRange}).Retryable()
	assert.True(t, loc)
	assert.True(t, ver)

	loc, ver = (&checkin.Failure{Reason: checkin.ReasonEventNotLive}).Retryable()
	assert.False(t, loc)
	assert.False(t, ver)
}
