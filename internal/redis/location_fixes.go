package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"vibescore/internal/domain"
	"vibescore/pkg/e"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// LocationFix is the last position a device reported.
type LocationFix struct {
	Coordinate domain.Coordinate `json:"coordinate"`
	ReportedAt time.Time         `json:"reported_at"`
}

type LocationFixes struct {
	client *goredis.Client
	prefix string
	maxAge time.Duration
}

func NewLocationFixes(client *goredis.Client, maxAge time.Duration) *LocationFixes {
	return &LocationFixes{client: client, prefix: "location:fix:", maxAge: maxAge}
}

func (s *LocationFixes) Put(ctx context.Context, userID uuid.UUID, fix LocationFix) error {
	b, err := json.Marshal(fix)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+userID.String(), b, s.maxAge).Err()
}

// Latest returns e.ErrLocationUnavailable when no fresh fix exists.
func (s *LocationFixes) Latest(ctx context.Context, userID uuid.UUID) (LocationFix, error) {
	var fix LocationFix

	data, err := s.client.Get(ctx, s.prefix+userID.String()).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return fix, e.ErrLocationUnavailable
		}
		return fix, err
	}
	if err := json.Unmarshal(data, &fix); err != nil {
		return fix, err
	}
	if s.maxAge > 0 && time.Since(fix.ReportedAt) > s.maxAge {
		return fix, e.ErrLocationUnavailable
	}
	return fix, nil
}
