package kv

import "sync"

// MemoryStore keeps values for the life of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	items  map[string]string
	setErr error
}

func NewMemory() *MemoryStore {
	return &MemoryStore{items: map[string]string{}}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.items[key] = value
	return nil
}

// FailWrites makes every following Set return err, or succeed again when
// err is nil. It stands in for a full or unavailable medium.
func (s *MemoryStore) FailWrites(err error) {
	s.mu.Lock()
	s.setErr = err
	s.mu.Unlock()
}

func (s *MemoryStore) Close() error { return nil }
