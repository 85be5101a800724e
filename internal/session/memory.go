package session

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/OMD2Planner_Go/internal/domain"
)

// MemoryStore keeps blobs in a bounded in-process LRU. Entries expire after
// the configured TTL and the least recently used session is evicted first.
type MemoryStore struct {
	cache *expirable.LRU[string, []byte]
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a memory store holding at most size sessions
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &MemoryStore{cache: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (m *MemoryStore) Load(_ context.Context, id string) ([]byte, error) {
	blob, ok := m.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf(ErrFmtLoad, id, domain.ErrSessionNotFound)
	}
	return clone(blob), nil
}

func (m *MemoryStore) Save(_ context.Context, id string, blob []byte) error {
	m.cache.Add(id, clone(blob))
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.cache.Remove(id)
	return nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) Name() string { return BackendMemory }

// Len reports how many sessions are held
func (m *MemoryStore) Len() int {
	return m.cache.Len()
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
