package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"vibescore/internal/domain"
	"vibescore/internal/service"

	mock_service "vibescore/internal/service/mocks"
)

func TestEventSource_Get_ServesLiveFromCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockEventRepository(ctrl)
	cache := mock_service.NewMockLiveEventCache(ctrl)

	ev := liveEvent()
	cache.EXPECT().GetLive(gomock.Any()).Return([]domain.Event{ev}, true, nil).Times(1)

	src := service.NewEventSource(repo, cache, time.Minute, newTestLogger())

	got, err := src.Get(context.Background(), ev.ID)
	if err != nil || got.ID != ev.ID {
		t.Fatalf("got=%+v err=%v", got, err)
	}
}

func TestEventSource_Live_CacheMissRefreshes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockEventRepository(ctrl)
	cache := mock_service.NewMockLiveEventCache(ctrl)

	ev := liveEvent()
	gomock.InOrder(
		cache.EXPECT().GetLive(gomock.Any()).Return(nil, false, nil),
		repo.EXPECT().ListByStatus(gomock.Any(), domain.EventLive).Return([]*domain.Event{&ev}, nil),
		cache.EXPECT().SetLive(gomock.Any(), []domain.Event{ev}, time.Minute).Return(nil),
	)

	src := service.NewEventSource(repo, cache, time.Minute, newTestLogger())

	got, err := src.Live(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("got=%+v err=%v", got, err)
	}
}

func TestEventSource_Live_CacheErrorFallsBackToRepo(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockEventRepository(ctrl)
	cache := mock_service.NewMockLiveEventCache(ctrl)

	cache.EXPECT().GetLive(gomock.Any()).Return(nil, false, errors.New("redis down")).Times(1)
	repo.EXPECT().ListByStatus(gomock.Any(), domain.EventLive).Return([]*domain.Event{}, nil).Times(1)
	cache.EXPECT().SetLive(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	src := service.NewEventSource(repo, cache, time.Minute, newTestLogger())

	if _, err := src.Live(context.Background()); err != nil {
		t.Fatalf("cache failures must not fail reads: %v", err)
	}
}
