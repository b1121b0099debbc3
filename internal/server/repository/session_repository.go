package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionRepository keeps server-side session records in redis so that a
// token stops working the moment the account logs out, not only when the
// JWT expires.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, ttl: ttl}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// SaveSession stores the token → user mapping with the configured TTL
func (r *SessionRepository) SaveSession(ctx context.Context, token, userID string) error {
	return r.client.Set(ctx, sessionKey(token), userID, r.ttl).Err()
}

// UserIDByToken resolves a token to its user id. Returns ("", nil) when the
// session does not exist or has expired.
func (r *SessionRepository) UserIDByToken(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

// DeleteSession removes the session record
func (r *SessionRepository) DeleteSession(ctx context.Context, token string) error {
	return r.client.Del(ctx, sessionKey(token)).Err()
}
