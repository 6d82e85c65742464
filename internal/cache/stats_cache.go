// Package cache holds the read-side caching that sits between the HTTP layer
// and the ticket service. The query core itself never caches; staleness is
// confined to this layer and bounded by the configured TTL.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/matter-service/internal/query"
)

const statsKey = "matters:stats"

// StatsCache caches dashboard statistics in Redis. With a nil client or a
// zero TTL every lookup is a miss and writes are dropped, so the service
// works unchanged without Redis.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewStatsCache constructs the cache.
func NewStatsCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *StatsCache {
	return &StatsCache{client: client, ttl: ttl, logger: logger}
}

// Get returns cached statistics and whether the lookup hit.
func (c *StatsCache) Get(ctx context.Context) (query.TicketStats, bool) {
	if c == nil || c.client == nil || c.ttl <= 0 {
		return query.TicketStats{}, false
	}
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("stats cache read failed", zap.Error(err))
		}
		return query.TicketStats{}, false
	}
	var stats query.TicketStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		c.logger.Warn("stats cache entry corrupt", zap.Error(err))
		return query.TicketStats{}, false
	}
	return stats, true
}

// Set stores statistics for the configured TTL.
func (c *StatsCache) Set(ctx context.Context, stats query.TicketStats) {
	if c == nil || c.client == nil || c.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, statsKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("stats cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached statistics after a mutation.
func (c *StatsCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, statsKey).Err(); err != nil {
		c.logger.Warn("stats cache invalidation failed", zap.Error(err))
	}
}
