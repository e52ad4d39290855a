package slot

import (
	"context"
	"sync"

	"mandoob/internal/domain/repository"
)

// memorySlot keeps values in a map. Used by tests and by deployments that
// have not configured durable storage.
type memorySlot struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemorySlot creates an empty in-memory slot.
func NewMemorySlot() repository.Slot {
	return &memorySlot{values: make(map[string]string)}
}

func (s *memorySlot) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}

	return value, nil
}

func (s *memorySlot) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return nil
}

func (s *memorySlot) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return repository.ErrKeyNotFound
	}
	delete(s.values, key)

	return nil
}
