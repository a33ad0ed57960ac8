package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
	"github.com/redis/go-redis/v9"
)

// LeaderboardCacheRepository caches leaderboard pages in Redis, so repeated
// views do not re-run the aggregate query.
type LeaderboardCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached leaderboard pages
}

// NewLeaderboardCacheRepository creates a new repository instance with the given TTL
func NewLeaderboardCacheRepository(client *redis.Client, expiration time.Duration) *LeaderboardCacheRepository {
	return &LeaderboardCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetLeaderboard fetches a cached leaderboard page for the given limit.
func (r *LeaderboardCacheRepository) GetLeaderboard(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error) {
	key := fmt.Sprintf("leaderboard:%d", limit)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("leaderboard not found in cache for limit %d", limit)
		}
		return nil, err
	}

	var entries []models.LeaderboardEntry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(entries),
		"error", nil,
	)

	return entries, nil
}

// SetLeaderboard caches a leaderboard page in Redis with expiration.
func (r *LeaderboardCacheRepository) SetLeaderboard(ctx context.Context, limit int64, entries []models.LeaderboardEntry) error {
	key := fmt.Sprintf("leaderboard:%d", limit)

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"entries", len(entries),
		"result", "ok",
		"error", err,
	)

	return err
}
