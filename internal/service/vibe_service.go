package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"vibescore/internal/checkin"
	"vibescore/internal/domain"
	"vibescore/pkg/e"
	"vibescore/pkg/validator"

	"github.com/google/uuid"
)

// XP awarded per vibe check.
const (
	xpBase    = 25
	xpComment = 10
	xpPhoto   = 15
)

type badgeRule struct {
	badge domain.Badge
	earn  func(a *domain.UserActivity) bool
}

var badgeRules = []badgeRule{
	{
		badge: domain.Badge{ID: "first_vibe", Name: "First Vibe", Description: "Submitted a first vibe check"},
		earn:  func(a *domain.UserActivity) bool { return a.VibeCount >= 1 },
	},
	{
		badge: domain.Badge{ID: "vibe_master", Name: "Vibe Master", Description: "Submitted 10 vibe checks"},
		earn:  func(a *domain.UserActivity) bool { return a.VibeCount >= 10 },
	},
	{
		badge: domain.Badge{ID: "festival_goer", Name: "Festival Goer", Description: "Checked in to 3 different events"},
		earn:  func(a *domain.UserActivity) bool { return a.EventsAttended >= 3 },
	},
	{
		badge: domain.Badge{ID: "photographer", Name: "Photographer", Description: "Shared 5 vibe photos"},
		earn:  func(a *domain.UserActivity) bool { return a.PhotoVibeCount >= 5 },
	},
}

type vibeService struct {
	repo     VibeRepository
	tracker  *checkin.Tracker
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

func NewVibeService(repo VibeRepository, tracker *checkin.Tracker, notifier Notifier, logger *slog.Logger) VibeService {
	return &vibeService{
		repo:     repo,
		tracker:  tracker,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// XPFor is the XP a vibe check earns.
func XPFor(comment, photoURL string) int {
	xp := xpBase
	if strings.TrimSpace(comment) != "" {
		xp += xpComment
	}
	if photoURL != "" {
		xp += xpPhoto
	}
	return xp
}

// Submit stores a vibe check. Only a user currently checked in to the
// event may rate it.
func (s *vibeService) Submit(ctx context.Context, req domain.SubmitVibeRequest) (domain.SubmitVibeResponse, error) {
	const op = "service.Vibe.Submit"

	if err := validator.ValidateStruct(req); err != nil {
		return domain.SubmitVibeResponse{}, fmt.Errorf("%s: %s: %w", op, validator.Describe(err), e.ErrInvalidInput)
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.SubmitVibeResponse{}, fmt.Errorf("%s: %w", op, e.ErrInvalidUserID)
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return domain.SubmitVibeResponse{}, fmt.Errorf("%s: event_id: %w", op, e.ErrInvalidInput)
	}

	active, ok, err := s.tracker.Active(ctx, userID)
	if err != nil {
		return domain.SubmitVibeResponse{}, e.Wrap(op, err)
	}
	if !ok || active.EventID != eventID {
		return domain.SubmitVibeResponse{}, fmt.Errorf("%s: %w", op, e.ErrNotCheckedIn)
	}

	location := req.Location
	if location == "" {
		location = active.Location
	}
	vibe := &domain.VibeCheck{
		ID:          uuid.New(),
		UserID:      userID,
		EventID:     eventID,
		Location:    location,
		Rating:      req.Rating,
		Comment:     strings.TrimSpace(req.Comment),
		PhotoURL:    req.PhotoURL,
		XP:          XPFor(req.Comment, req.PhotoURL),
		SubmittedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, vibe); err != nil {
		return domain.SubmitVibeResponse{}, err
	}

	s.notifier.Notify(ctx, domain.WebhookPayload{
		Kind:       domain.NotifyVibe,
		UserID:     req.UserID,
		EventID:    eventID,
		EventName:  active.EventName,
		Rating:     vibe.Rating,
		OccurredAt: vibe.SubmittedAt,
	})

	s.logger.Info("vibe submitted",
		slog.String("user_id", req.UserID),
		slog.String("event_id", req.EventID),
		slog.Int("rating", vibe.Rating),
		slog.Int("xp", vibe.XP))

	return domain.SubmitVibeResponse{
		ID:          vibe.ID.String(),
		XP:          vibe.XP,
		RatingLabel: domain.RatingLabel(vibe.Rating),
	}, nil
}

func (s *vibeService) Profile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	activity, err := s.repo.UserActivity(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.Profile{
		UserID:         userID,
		TotalXP:        activity.TotalXP,
		VibeCount:      activity.VibeCount,
		EventsAttended: activity.EventsAttended,
		Badges:         Badges(activity),
	}, nil
}

const (
	historyDefaultLimit = 50
	historyMaxLimit     = 100
)

// History lists a user's own vibe checks, newest first. A limit outside
// 1..100 falls back to 50.
func (s *vibeService) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.UserVibe, error) {
	if limit <= 0 || limit > historyMaxLimit {
		limit = historyDefaultLimit
	}
	vibes, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	for i := range vibes {
		vibes[i].RatingLabel = domain.RatingLabel(vibes[i].Rating)
	}
	if vibes == nil {
		vibes = []domain.UserVibe{}
	}
	return vibes, nil
}

// Badges lists the badges earned by activity, never nil.
func Badges(a *domain.UserActivity) []domain.Badge {
	out := []domain.Badge{}
	for _, r := range badgeRules {
		if r.earn(a) {
			out = append(out, r.badge)
		}
	}
	return out
}
