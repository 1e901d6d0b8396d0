package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/viaaberta/viaaberta/internal/domain"
)

// StatisticsKey is where the cached statistics payload lives.
const StatisticsKey = "stats:reports"

// Cache is a read-through cache for the report statistics aggregate.
// A nil *Cache is valid and behaves as an always-miss cache, so the
// service runs without Redis.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis.New: ping: %w", err)
	}

	return &Cache{client: client, ttl: ttl}, nil
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("redis.Cache.Close: %w", err)
	}
	return nil
}

// GetStatistics returns the cached aggregate, or ok=false on a miss.
// Cache failures are logged and treated as misses, never surfaced.
func (c *Cache) GetStatistics(ctx context.Context) (*domain.Statistics, bool) {
	if c == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, StatisticsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("statistics cache read failed")
		}
		return nil, false
	}

	var stats domain.Statistics
	if err := json.Unmarshal(payload, &stats); err != nil {
		log.Warn().Err(err).Msg("statistics cache payload corrupt, discarding")
		c.Invalidate(ctx)
		return nil, false
	}

	return &stats, true
}

func (c *Cache) SetStatistics(ctx context.Context, stats *domain.Statistics) {
	if c == nil {
		return
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		log.Warn().Err(err).Msg("statistics cache marshal failed")
		return
	}

	if err := c.client.Set(ctx, StatisticsKey, payload, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("statistics cache write failed")
	}
}

// Invalidate drops the cached aggregate. Called after every report write.
func (c *Cache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, StatisticsKey).Err(); err != nil {
		log.Warn().Err(err).Msg("statistics cache invalidation failed")
	}
}
