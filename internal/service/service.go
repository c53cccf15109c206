package service

import (
	"context"
	"time"

	"vibescore/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type EventAdminService interface {
	Create(ctx context.Context, req domain.CreateEventRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.Event, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateEventRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	Seed(ctx context.Context, events []domain.Event) (int, error)
}
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	List(ctx context.Context, page, limit int) ([]*domain.Event, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByStatus(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error)
	Upsert(ctx context.Context, event *domain.Event) error
}
type LiveEventCache interface {
	GetLive(ctx context.Context) ([]domain.Event, bool, error)
	SetLive(ctx context.Context, events []domain.Event, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// Public use cases
type CheckInService interface {
	CheckIn(ctx context.Context, req domain.CheckInRequest) (domain.CheckInResponse, error)
	Active(ctx context.Context, userID uuid.UUID) (*domain.ActiveCheckIn, error)
	Leave(ctx context.Context, userID uuid.UUID) error
}
type EventLookup interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Event, error)
}
type CheckInRepository interface {
	SaveCheckIn(ctx context.Context, check *domain.CheckIn) error
}

type EventQueryService interface {
	ListEvents(ctx context.Context, req domain.ListEventsRequest) ([]domain.EventWithDistance, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	Score(ctx context.Context, id uuid.UUID) (*domain.EventScore, error)
	LocationScores(ctx context.Context, id uuid.UUID, sortBy string) ([]domain.LocationScore, error)
}

type VibeService interface {
	Submit(ctx context.Context, req domain.SubmitVibeRequest) (domain.SubmitVibeResponse, error)
	Profile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.UserVibe, error)
}
type VibeRepository interface {
	Save(ctx context.Context, vibe *domain.VibeCheck) error
	EventScore(ctx context.Context, eventID uuid.UUID) (*domain.EventScore, error)
	UserActivity(ctx context.Context, userID uuid.UUID) (*domain.UserActivity, error)
	LocationScores(ctx context.Context, eventID uuid.UUID) ([]domain.LocationScore, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.UserVibe, error)
}

// Stats
type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.CheckInStats, error)
}
type StatsRepository interface {
	CountUniqueUsers(ctx context.Context, minutes int) (int64, error)
	CountTotalCheckIns(ctx context.Context, minutes int) (int64, error)
}

// Notifications
type Notifier interface {
	Notify(ctx context.Context, payload domain.WebhookPayload)
}
type WebhookQueue interface {
	Enqueue(ctx context.Context, payload domain.WebhookPayload) error
}
type BrokerPublisher interface {
	Publish(ctx context.Context, payload domain.WebhookPayload) error
}
type WebhookSource interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.WebhookPayload, error)
}

type Service struct {
	EventAdminService EventAdminService
	CheckInService    CheckInService
	EventQueryService EventQueryService
	VibeService       VibeService
	StatsService      StatsService
}

func NewService(
	eventAdminService EventAdminService,
	checkInService CheckInService,
	eventQueryService EventQueryService,
	vibeService VibeService,
	statsService StatsService,
) *Service {
	return &Service{
		EventAdminService: eventAdminService,
		CheckInService:    checkInService,
		EventQueryService: eventQueryService,
		VibeService:       vibeService,
		StatsService:      statsService,
	}
}

func (s *Service) CheckIn(ctx context.Context, req domain.CheckInRequest) (domain.CheckInResponse, error) {
	return s.CheckInService.CheckIn(ctx, req)
}

func (s *Service) SubmitVibe(ctx context.Context, req domain.SubmitVibeRequest) (domain.SubmitVibeResponse, error) {
	return s.VibeService.Submit(ctx, req)
}

func (s *Service) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.CheckInStats, error) {
	return s.StatsService.GetStats(ctx, req)
}
