package redisadapter

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "session:revoked:"

// SessionStoreRedis tracks revoked login tokens in Redis. Entries expire
// together with the token they revoke.
type SessionStoreRedis struct {
	client *redis.Client
}

func NewSessionStoreRedis(client *redis.Client) *SessionStoreRedis {
	return &SessionStoreRedis{client: client}
}

func (s *SessionStoreRedis) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err()
}

func (s *SessionStoreRedis) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
