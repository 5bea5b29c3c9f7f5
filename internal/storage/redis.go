package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"swaad-sutra/internal/domain"
)

const summaryTTL = 5 * time.Minute

// RedisCache holds the short-lived daily summary and the per-(order, status)
// sent-notification markers that keep the notifier from re-sending after a
// replayed event.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) SentMarkerKey(orderID int64, status domain.Status) string {
	return "notify:" + strconv.FormatInt(orderID, 10) + ":" + string(status)
}

func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	res, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (c *RedisCache) SetMarker(ctx context.Context, key string) error {
	return c.Client.Set(ctx, key, "1", c.TTL).Err()
}

func (c *RedisCache) GetSummary(ctx context.Context, date string) (*domain.DaySummary, error) {
	raw, err := c.Client.Get(ctx, "summary:"+date).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var summary domain.DaySummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *RedisCache) SetSummary(ctx context.Context, summary *domain.DaySummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, "summary:"+summary.Date, raw, summaryTTL).Err()
}
