package session

import (
	"context"
	"time"
)

// Store tracks revoked login tokens until they would have expired anyway.
type Store interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
