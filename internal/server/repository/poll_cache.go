package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"poll-service/internal/ports/models"

	"github.com/redis/go-redis/v9"
)

// PollCache holds the per-user poll listing in redis. Mutations invalidate
// the key; the cache is a hint for the read path only and all failures are
// swallowed after logging.
type PollCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPollCache(client *redis.Client, ttl time.Duration) *PollCache {
	return &PollCache{client: client, ttl: ttl}
}

func userPollsKey(userID string) string {
	return fmt.Sprintf("user_polls:%s", userID)
}

// GetUserPolls returns the cached listing and whether it was present
func (c *PollCache) GetUserPolls(ctx context.Context, userID string) ([]models.Poll, bool) {
	data, err := c.client.Get(ctx, userPollsKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("poll cache read failed", "user_id", userID, "error", err)
		return nil, false
	}

	var polls []models.Poll
	if err := json.Unmarshal(data, &polls); err != nil {
		slog.Warn("poll cache entry corrupt, dropping", "user_id", userID, "error", err)
		c.Invalidate(ctx, userID)
		return nil, false
	}
	return polls, true
}

// SetUserPolls stores the listing with the configured TTL
func (c *PollCache) SetUserPolls(ctx context.Context, userID string, polls []models.Poll) {
	data, err := json.Marshal(polls)
	if err != nil {
		slog.Warn("poll cache marshal failed", "user_id", userID, "error", err)
		return
	}
	if err := c.client.Set(ctx, userPollsKey(userID), data, c.ttl).Err(); err != nil {
		slog.Warn("poll cache write failed", "user_id", userID, "error", err)
	}
}

// Invalidate drops the cached listing after a mutation
func (c *PollCache) Invalidate(ctx context.Context, userID string) {
	if err := c.client.Del(ctx, userPollsKey(userID)).Err(); err != nil {
		slog.Warn("poll cache invalidation failed", "user_id", userID, "error", err)
	}
}
