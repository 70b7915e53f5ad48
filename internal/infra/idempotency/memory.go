package idempotency

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value   string
	expires time.Time
}

// MemoryStore é usado quando não há Redis configurado (instância única).
type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   clock
	items map[string]entry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]entry),
	}
}

func (s *MemoryStore) Claim(ctx context.Context, token string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(token)
	if e, ok := s.items[k]; ok && s.now().Before(e.expires) {
		return e.value, false, nil
	}

	s.items[k] = entry{value: Pending, expires: s.now().Add(s.ttl)}
	return "", true, nil
}

func (s *MemoryStore) Complete(ctx context.Context, token, appointmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key(token)] = entry{value: appointmentID, expires: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Release(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key(token))
	return nil
}

var _ Store = (*MemoryStore)(nil)
