package loyalty

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type MemoryStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[uuid.UUID]int64),
	}
}

func (s *MemoryStore) GetBaseline(ctx context.Context, userID uuid.UUID) (int64, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[userID]
	if !ok {
		return 0, ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) SetBaseline(ctx context.Context, userID uuid.UUID, value int64) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[userID] = value
	return nil
}
