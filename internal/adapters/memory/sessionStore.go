package memory

import (
	"context"
	"sync"
	"time"
)

// SessionStoreMemory implements the session revocation port in memory.
type SessionStoreMemory struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewSessionStoreMemory() *SessionStoreMemory {
	return &SessionStoreMemory{revoked: make(map[string]time.Time)}
}

func (s *SessionStoreMemory) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[tokenID] = time.Now().Add(ttl)
	return nil
}

func (s *SessionStoreMemory) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	until, ok := s.revoked[tokenID]
	return ok && time.Now().Before(until), nil
}
