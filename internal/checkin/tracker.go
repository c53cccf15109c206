package checkin

import (
	"context"
	"sync"
	"time"

	"vibescore/internal/domain"

	"github.com/google/uuid"
)

type ActiveStore interface {
	Get(ctx context.Context, userID uuid.UUID) (domain.ActiveCheckIn, bool, error)
	Set(ctx context.Context, active domain.ActiveCheckIn) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// Tracker exposes the currently checked-in event of each user to the
// screens that depend on it, the rating flow first of all.
type Tracker struct {
	store  ActiveStore
	maxAge time.Duration
	now    func() time.Time
}

type TrackerOption func(*Tracker)

// WithMaxAge hides and drops check-ins older than d. Zero keeps them
// until they are cleared or the store expires them.
func WithMaxAge(d time.Duration) TrackerOption {
	return func(t *Tracker) { t.maxAge = d }
}

func WithTrackerClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) { t.now = now }
}

func NewTracker(store ActiveStore, opts ...TrackerOption) *Tracker {
	t := &Tracker{store: store, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) Active(ctx context.Context, userID uuid.UUID) (domain.ActiveCheckIn, bool, error) {
	active, ok, err := t.store.Get(ctx, userID)
	if err != nil || !ok {
		return active, ok, err
	}
	if t.maxAge > 0 && t.now().Sub(active.CheckedInAt) >= t.maxAge {
		if err := t.store.Delete(ctx, userID); err != nil {
			return domain.ActiveCheckIn{}, false, err
		}
		return domain.ActiveCheckIn{}, false, nil
	}
	return active, true, nil
}

// IsCheckedInto reports whether userID's active check-in is eventID.
func (t *Tracker) IsCheckedInto(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	active, ok, err := t.Active(ctx, userID)
	if err != nil || !ok {
		return false, err
	}
	return active.EventID == eventID, nil
}

func (t *Tracker) Record(ctx context.Context, active domain.ActiveCheckIn) error {
	return t.store.Set(ctx, active)
}

func (t *Tracker) Clear(ctx context.Context, userID uuid.UUID) error {
	return t.store.Delete(ctx, userID)
}

type MemoryStore struct {
	mu     sync.RWMutex
	active map[uuid.UUID]domain.ActiveCheckIn
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{active: make(map[uuid.UUID]domain.ActiveCheckIn)}
}

func (m *MemoryStore) Get(_ context.Context, userID uuid.UUID) (domain.ActiveCheckIn, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.active[userID]
	return a, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, active domain.ActiveCheckIn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active[active.UserID] = active
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.active, userID)
	return nil
}
