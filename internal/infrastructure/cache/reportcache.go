package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/subflow-io/subflow/internal/shared/logger"
)

// ReportCache caches rendered report payloads. Values are opaque JSON; the
// reporting use case owns the shape.
type ReportCache interface {
	// Get returns nil on cache miss.
	Get(ctx context.Context, name string) ([]byte, error)
	Set(ctx context.Context, name string, payload []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, name string) error
}

const reportKeyPrefix = "report:"

// RedisReportCache implements ReportCache on redis.
type RedisReportCache struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisReportCache(client *redis.Client, logger logger.Interface) *RedisReportCache {
	return &RedisReportCache{
		client: client,
		logger: logger,
	}
}

func (c *RedisReportCache) key(name string) string {
	return reportKeyPrefix + name
}

func (c *RedisReportCache) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := c.client.Get(ctx, c.key(name)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report from cache: %w", err)
	}
	return data, nil
}

func (c *RedisReportCache) Set(ctx context.Context, name string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(name), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache report: %w", err)
	}
	return nil
}

func (c *RedisReportCache) Invalidate(ctx context.Context, name string) error {
	if err := c.client.Del(ctx, c.key(name)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate report cache: %w", err)
	}
	return nil
}
