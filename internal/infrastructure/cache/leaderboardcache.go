package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"codecampus/internal/domain/platform"
	"codecampus/internal/shared/biztime"
)

// ErrCacheMiss is returned when no cached leaderboard exists.
var ErrCacheMiss = errors.New("leaderboard not cached")

// CachedLeaderboard is the cached payload: the ranked rows plus the instant
// they were computed, so responses can report snapshot age.
type CachedLeaderboard struct {
	Rows       []*platform.LeaderboardRow `json:"rows"`
	ComputedAt time.Time                  `json:"computed_at"`
}

// LeaderboardCache stores the computed leaderboard between requests.
type LeaderboardCache interface {
	Get(ctx context.Context) (*CachedLeaderboard, error)
	Set(ctx context.Context, rows []*platform.LeaderboardRow) error
	Invalidate(ctx context.Context) error
}

// RedisLeaderboardCache provides Redis-backed leaderboard caching. A single
// key holds the whole board; the TTL bounds staleness after stat syncs.
type RedisLeaderboardCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisLeaderboardCache creates a new RedisLeaderboardCache instance
func NewRedisLeaderboardCache(client *redis.Client, key string, ttl time.Duration) *RedisLeaderboardCache {
	return &RedisLeaderboardCache{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

// Get retrieves the cached leaderboard, or ErrCacheMiss when absent.
func (c *RedisLeaderboardCache) Get(ctx context.Context) (*CachedLeaderboard, error) {
	data, err := c.client.Get(ctx, c.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cached leaderboard: %w", err)
	}

	var cached CachedLeaderboard
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached leaderboard: %w", err)
	}
	return &cached, nil
}

// Set stores the leaderboard with the configured TTL.
func (c *RedisLeaderboardCache) Set(ctx context.Context, rows []*platform.LeaderboardRow) error {
	cached := CachedLeaderboard{
		Rows:       rows,
		ComputedAt: biztime.NowUTC(),
	}
	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}
	if err := c.client.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store leaderboard in redis: %w", err)
	}
	return nil
}

// Invalidate drops the cached leaderboard so the next read recomputes it.
func (c *RedisLeaderboardCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate leaderboard cache: %w", err)
	}
	return nil
}
