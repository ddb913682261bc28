package idempotency

import (
	"context"
	"sync"
	"time"

	"marketplace_escrow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type reservation struct {
	token     string
	expiresAt time.Time
}

// MemoryStore is the single-process fallback used when REDIS_ADDR is unset.
type MemoryStore struct {
	mu   sync.Mutex
	keys map[string]reservation
	now  func() time.Time
}

var _ interfaces.IIdempotencyStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{keys: map[string]reservation{}, now: time.Now}
}

func (s *MemoryStore) Reserve(_ context.Context, key string, ttl time.Duration) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if r, ok := s.keys[key]; ok && now.Before(r.expiresAt) {
		return "", false, nil
	}
	token := uuid.NewString()
	s.keys[key] = reservation{token: token, expiresAt: now.Add(ttl)}
	return token, true, nil
}

func (s *MemoryStore) Release(_ context.Context, key, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.keys[key]; ok && r.token == token {
		delete(s.keys, key)
	}
	return nil
}
