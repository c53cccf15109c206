package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"vibescore/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// EventCache keeps the live event list so check-ins do not hit Postgres.
type EventCache struct {
	client *goredis.Client
	key    string
}

func NewEventCache(client *goredis.Client) *EventCache {
	return &EventCache{
		client: client,
		key:    "events:live",
	}
}

// GetLive returns ok=false on a cache miss.
func (c *EventCache) GetLive(ctx context.Context) ([]domain.Event, bool, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var events []domain.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, false, err
	}

	return events, true, nil
}

func (c *EventCache) SetLive(ctx context.Context, events []domain.Event, ttl time.Duration) error {
	if events == nil {
		events = []domain.Event{}
	}
	b, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

// Invalidate drops the cached list after an admin change.
func (c *EventCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
