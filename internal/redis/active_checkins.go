package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"vibescore/internal/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ActiveCheckIns stores one active check-in per user, expiring after ttl.
type ActiveCheckIns struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

func NewActiveCheckIns(client *goredis.Client, ttl time.Duration) *ActiveCheckIns {
	return &ActiveCheckIns{client: client, prefix: "checkin:active:", ttl: ttl}
}

func (s *ActiveCheckIns) key(userID uuid.UUID) string {
	return s.prefix + userID.String()
}

func (s *ActiveCheckIns) Get(ctx context.Context, userID uuid.UUID) (domain.ActiveCheckIn, bool, error) {
	var a domain.ActiveCheckIn

	data, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return a, false, nil
		}
		return a, false, err
	}
	if err := json.Unmarshal(data, &a); err != nil {
		return a, false, err
	}
	return a, true, nil
}

func (s *ActiveCheckIns) Set(ctx context.Context, active domain.ActiveCheckIn) error {
	b, err := json.Marshal(active)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(active.UserID), b, s.ttl).Err()
}

func (s *ActiveCheckIns) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.client.Del(ctx, s.key(userID)).Err()
}
