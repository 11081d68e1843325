package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/loanworks/loanengine/internal/domain/model"
)

// RedisScheduleCache implements port.ScheduleCache on Redis. Schedules are
// stored as JSON under keys scoped by loan ID so a whole loan can be
// invalidated at once.
type RedisScheduleCache struct {
	client *redis.Client
}

// NewRedisScheduleCache creates a schedule cache on the given Redis client.
func NewRedisScheduleCache(client *redis.Client) *RedisScheduleCache {
	return &RedisScheduleCache{client: client}
}

// Get returns the cached schedule for the key, reporting a miss without error.
func (c *RedisScheduleCache) Get(ctx context.Context, key string) (model.PaymentSchedule, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.PaymentSchedule{}, false, nil
	}
	if err != nil {
		return model.PaymentSchedule{}, false, fmt.Errorf("cache get: %w", err)
	}

	var schedule model.PaymentSchedule
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return model.PaymentSchedule{}, false, fmt.Errorf("cache decode: %w", err)
	}
	return schedule, true, nil
}

// Set stores the schedule under the key for the given TTL.
func (c *RedisScheduleCache) Set(ctx context.Context, key string, schedule model.PaymentSchedule, ttl time.Duration) error {
	raw, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// InvalidateLoan removes every cached schedule for the loan.
func (c *RedisScheduleCache) InvalidateLoan(ctx context.Context, loanID string) error {
	pattern := fmt.Sprintf("schedule:%s:*", loanID)

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}
