package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/braizerecords/label-api/internal/api/metrics"
	"github.com/braizerecords/label-api/internal/core/ports"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 5 * time.Minute
)

// StatsCache holds the computed dashboard aggregation between requests.
type StatsCache struct {
	client *redis.Client
}

func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached payload; the second result is false on a miss.
func (c *StatsCache) Get(ctx context.Context) (*ports.DashboardStats, bool, error) {
	raw, err := c.client.Get(ctx, statsCacheKey).Bytes()
	if err == redis.Nil {
		metrics.DashboardCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("stats cache get: %w", err)
	}

	var stats ports.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false, fmt.Errorf("stats cache decode: %w", err)
	}
	metrics.DashboardCacheTotal.WithLabelValues("hit").Inc()
	return &stats, true, nil
}

func (c *StatsCache) Set(ctx context.Context, stats *ports.DashboardStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	if err := c.client.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
		return fmt.Errorf("stats cache set: %w", err)
	}
	return nil
}
