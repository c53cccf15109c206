package postgres

import (
	"context"

	"vibescore/internal/domain"

	"github.com/google/uuid"
)

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	List(ctx context.Context, page, limit int) ([]*domain.Event, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id uuid.UUID) error // marks ended
	ListByStatus(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error)
	Upsert(ctx context.Context, event *domain.Event) error
}

type CheckInRepository interface {
	SaveCheckIn(ctx context.Context, check *domain.CheckIn) error
}

type VibeRepository interface {
	Save(ctx context.Context, vibe *domain.VibeCheck) error
	EventScore(ctx context.Context, eventID uuid.UUID) (*domain.EventScore, error)
	UserActivity(ctx context.Context, userID uuid.UUID) (*domain.UserActivity, error)
	LocationScores(ctx context.Context, eventID uuid.UUID) ([]domain.LocationScore, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.UserVibe, error)
}

type StatsRepository interface {
	CountUniqueUsers(ctx context.Context, minutes int) (int64, error)
	CountTotalCheckIns(ctx context.Context, minutes int) (int64, error)
}

func (p *Postgres) Events() EventRepository     { return p.Event }
func (p *Postgres) CheckIns() CheckInRepository { return p.CheckIn }
func (p *Postgres) Vibes() VibeRepository       { return p.Vibe }
func (p *Postgres) Stats() StatsRepository      { return p.Stat }
