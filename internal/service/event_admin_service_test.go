package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"vibescore/internal/domain"
	"vibescore/internal/service"
	"vibescore/pkg/e"

	mock_service "vibescore/internal/service/mocks"
)

func newAdmin(ctrl *gomock.Controller) (*service.EventAdmin, *mock_service.MockEventRepository, *mock_service.MockLiveEventCache) {
	repo := mock_service.NewMockEventRepository(ctrl)
	cache := mock_service.NewMockLiveEventCache(ctrl)
	source := service.NewEventSource(repo, cache, time.Minute, newTestLogger())
	return service.NewEventAdminService(repo, source, newTestLogger()), repo, cache
}

// --- Create ---

func TestEventAdminService_Create_OK_Defaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, cache := newAdmin(ctrl)

	var got *domain.Event
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *domain.Event) error {
			got = ev
			return nil
		}).
		Times(1)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

	req := domain.CreateEventRequest{
		Name:     "Summer Beats",
		Location: "Brooklyn Bridge Park",
		Lat:      40.7024,
		Lng:      -73.9965,
		RadiusM:  600,
	}

	id, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id == uuid.Nil || got == nil || got.ID != id {
		t.Fatalf("id mismatch: id=%s got=%+v", id, got)
	}
	if got.Coordinates.Latitude != req.Lat || got.Coordinates.Longitude != req.Lng || got.RadiusM != req.RadiusM {
		t.Fatalf("event fields mismatch: got=%+v req=%+v", got, req)
	}
	if got.Status != domain.EventUpcoming {
		t.Fatalf("expected default status=%q, got=%q", domain.EventUpcoming, got.Status)
	}
}

func TestEventAdminService_Create_InvalidRadius(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newAdmin(ctrl)

	_, err := svc.Create(context.Background(), domain.CreateEventRequest{
		Name: "x", Location: "y", Lat: 1, Lng: 1, RadiusM: -5,
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEventAdminService_Create_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newAdmin(ctrl)
	repoErr := errors.New("insert failed")
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repoErr).Times(1)

	_, err := svc.Create(context.Background(), domain.CreateEventRequest{
		Name: "x", Location: "y", Lat: 1, Lng: 1, RadiusM: 100,
	})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected %v, got %v", repoErr, err)
	}
}

// --- Update ---

func TestEventAdminService_Update_AppliesPatch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, cache := newAdmin(ctrl)

	ev := liveEvent()
	ev.Status = domain.EventUpcoming
	repo.EXPECT().Get(gomock.Any(), ev.ID).Return(&ev, nil).Times(1)

	var updated *domain.Event
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *domain.Event) error {
			updated = u
			return nil
		}).
		Times(1)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

	err := svc.Update(context.Background(), ev.ID, domain.UpdateEventRequest{
		Name:    strptr("Electric Dreams"),
		RadiusM: f64ptr(750),
		Status:  statusPtr(domain.EventLive),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Name != "Electric Dreams" || updated.RadiusM != 750 || updated.Status != domain.EventLive {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Location != ev.Location {
		t.Fatalf("untouched field changed: %q", updated.Location)
	}
}

func TestEventAdminService_Update_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newAdmin(ctrl)
	id := uuid.New()
	repo.EXPECT().Get(gomock.Any(), id).Return(nil, e.ErrNotFound).Times(1)

	err := svc.Update(context.Background(), id, domain.UpdateEventRequest{Name: strptr("n")})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// --- Delete ---

func TestEventAdminService_Delete_InvalidatesCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, cache := newAdmin(ctrl)
	id := uuid.New()

	gomock.InOrder(
		repo.EXPECT().Delete(gomock.Any(), id).Return(nil),
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil),
	)

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

// --- Seed ---

func TestEventAdminService_Seed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, cache := newAdmin(ctrl)

	events := []domain.Event{liveEvent(), liveEvent()}
	events[1].ID = uuid.New()
	events[1].Status = domain.EventEnded

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

	n, err := svc.Seed(context.Background(), events)
	if err != nil || n != 2 {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestEventAdminService_Seed_RejectsBadRadius(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newAdmin(ctrl)

	bad := liveEvent()
	bad.RadiusM = 0
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	n, err := svc.Seed(context.Background(), []domain.Event{liveEvent(), bad})
	if !errors.Is(err, e.ErrInvalidInput) || n != 1 {
		t.Fatalf("n=%d err=%v", n, err)
	}
}
