package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"vibescore/internal/checkin"
	"vibescore/internal/domain"
	"vibescore/internal/service"
	"vibescore/pkg/e"

	mock_service "vibescore/internal/service/mocks"
)

func TestXPFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		comment, photo string
		want           int
	}{
		{"", "", 25},
		{"great set", "", 35},
		{"   ", "", 25},
		{"", "https://cdn.example.com/p.jpg", 40},
		{"great set", "https://cdn.example.com/p.jpg", 50},
	}
	for _, c := range cases {
		if got := service.XPFor(c.comment, c.photo); got != c.want {
			t.Fatalf("XPFor(%q, %q) = %d, want %d", c.comment, c.photo, got, c.want)
		}
	}
}

func TestVibeService_Submit_RequiresActiveCheckIn(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockVibeRepository(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)
	tracker := checkin.NewTracker(checkin.NewMemoryStore())

	userID := uuid.New()
	// checked in somewhere else
	_ = tracker.Record(context.Background(), domain.ActiveCheckIn{UserID: userID, EventID: uuid.New()})

	svc := service.NewVibeService(repo, tracker, notifier, newTestLogger())

	_, err := svc.Submit(context.Background(), domain.SubmitVibeRequest{
		UserID:  userID.String(),
		EventID: liveEvent().ID.String(),
		Rating:  5,
	})
	if !errors.Is(err, e.ErrNotCheckedIn) {
		t.Fatalf("expected ErrNotCheckedIn, got %v", err)
	}
}

func TestVibeService_Submit_StaleCheckInRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockVibeRepository(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)
	tracker := checkin.NewTracker(checkin.NewMemoryStore(), checkin.WithMaxAge(time.Hour))

	ev := liveEvent()
	userID := uuid.New()
	_ = tracker.Record(context.Background(), domain.ActiveCheckIn{
		UserID: userID, EventID: ev.ID, CheckedInAt: time.Now().Add(-2 * time.Hour),
	})

	svc := service.NewVibeService(repo, tracker, notifier, newTestLogger())

	_, err := svc.Submit(context.Background(), domain.SubmitVibeRequest{
		UserID:  userID.String(),
		EventID: ev.ID.String(),
		Rating:  4,
	})
	if !errors.Is(err, e.ErrNotCheckedIn) {
		t.Fatalf("expected ErrNotCheckedIn, got %v", err)
	}
}

func TestVibeService_Submit_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockVibeRepository(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)
	tracker := checkin.NewTracker(checkin.NewMemoryStore())

	ev := liveEvent()
	userID := uuid.New()
	_ = tracker.Record(context.Background(), domain.ActiveCheckIn{
		UserID: userID, EventID: ev.ID, EventName: ev.Name, Location: ev.Location,
	})

	var saved *domain.VibeCheck
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *domain.VibeCheck) error {
			saved = v
			return nil
		}).
		Times(1)
	notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, p domain.WebhookPayload) {
			if p.Kind != domain.NotifyVibe || p.Rating != 4 {
				t.Errorf("unexpected payload: %+v", p)
			}
		}).
		Times(1)

	svc := service.NewVibeService(repo, tracker, notifier, newTestLogger())

	resp, err := svc.Submit(context.Background(), domain.SubmitVibeRequest{
		UserID:   userID.String(),
		EventID:  ev.ID.String(),
		Rating:   4,
		Comment:  "  bass was unreal ",
		PhotoURL: "https://cdn.example.com/crowd.jpg",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.XP != 50 || resp.RatingLabel != "Good" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if saved.Location != ev.Location || saved.Comment != "bass was unreal" {
		t.Fatalf("unexpected vibe: %+v", saved)
	}
}

func TestVibeService_Submit_InvalidRating(t *testing.T) {
	t.Parallel()

	svc := service.NewVibeService(nil, checkin.NewTracker(checkin.NewMemoryStore()), nil, newTestLogger())

	_, err := svc.Submit(context.Background(), domain.SubmitVibeRequest{
		UserID:  uuid.NewString(),
		EventID: uuid.NewString(),
		Rating:  6,
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestVibeService_Profile_Badges(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockVibeRepository(ctrl)
	userID := uuid.New()
	repo.EXPECT().
		UserActivity(gomock.Any(), userID).
		Return(&domain.UserActivity{TotalXP: 400, VibeCount: 12, PhotoVibeCount: 2, EventsAttended: 3}, nil).
		Times(1)

	svc := service.NewVibeService(repo, nil, nil, newTestLogger())

	p, err := svc.Profile(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got := map[string]bool{}
	for _, b := range p.Badges {
		got[b.ID] = true
	}
	for _, id := range []string{"first_vibe", "vibe_master", "festival_goer"} {
		if !got[id] {
			t.Fatalf("missing badge %s in %+v", id, p.Badges)
		}
	}
	if got["photographer"] {
		t.Fatalf("photographer badge needs 5 photos")
	}
	if p.TotalXP != 400 {
		t.Fatalf("total xp: %d", p.TotalXP)
	}
}

func TestBadges_NewUserHasNone(t *testing.T) {
	t.Parallel()

	b := service.Badges(&domain.UserActivity{})
	if b == nil || len(b) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", b)
	}
}

func TestVibeService_History(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"default", 0, 50},
		{"explicit", 10, 10},
		{"over max", 500, 50},
		{"negative", -3, 50},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_service.NewMockVibeRepository(ctrl)
			userID := uuid.New()
			repo.EXPECT().
				ListByUser(gomock.Any(), userID, c.wantLimit).
				Return([]domain.UserVibe{
					{VibeCheck: domain.VibeCheck{UserID: userID, Rating: 5, XP: 50}, EventName: "Electric Dreams Festival"},
					{VibeCheck: domain.VibeCheck{UserID: userID, Rating: 2, XP: 25}, EventName: "Summer Beats"},
				}, nil).
				Times(1)

			svc := service.NewVibeService(repo, nil, nil, newTestLogger())

			got, err := svc.History(context.Background(), userID, c.limit)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if len(got) != 2 || got[0].RatingLabel != "Excellent" || got[1].RatingLabel != "Poor" {
				t.Fatalf("unexpected history: %+v", got)
			}
		})
	}
}

func TestVibeService_History_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockVibeRepository(ctrl)
	repo.EXPECT().ListByUser(gomock.Any(), gomock.Any(), 50).Return(nil, nil).Times(1)

	got, err := service.NewVibeService(repo, nil, nil, newTestLogger()).History(context.Background(), uuid.New(), 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
