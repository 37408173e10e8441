// pkg/memcache/blobs.go
package mem

import (
	"context"
	"sync"

	"ohrid/internal/planner"
)

// Blobs is an in-process key-value blob store. Nothing survives a restart;
// it backs the "memory" storage driver and tests.
type Blobs struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewBlobs() *Blobs {
	return &Blobs{
		data: make(map[string][]byte),
	}
}

func (s *Blobs) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.data[key]
	if !ok {
		return nil, planner.ErrBlobNotFound
	}
	return append([]byte(nil), raw...), nil
}

func (s *Blobs) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), data...) // callers may reuse their buffer
	return nil
}

// Peek returns the stored blob as a string.
func (s *Blobs) Peek(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.data[key]
	return string(raw), ok
}
