package session

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/OMD2Planner_Go/internal/domain"
)

// CachedStore is a read-through LRU in front of a remote store. Writes go to
// the backing store first and only then refresh the cache.
type CachedStore struct {
	next  Store
	cache *expirable.LRU[string, []byte]
}

var _ Store = (*CachedStore)(nil)

// NewCachedStore wraps next with an LRU of at most size entries
func NewCachedStore(next Store, size int, ttl time.Duration) (*CachedStore, error) {
	if next == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgStoreMissing)
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{
		next:  next,
		cache: expirable.NewLRU[string, []byte](size, nil, ttl),
	}, nil
}

func (c *CachedStore) Load(ctx context.Context, id string) ([]byte, error) {
	if blob, ok := c.cache.Get(id); ok {
		return clone(blob), nil
	}
	blob, err := c.next.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	c.cache.Add(id, clone(blob))
	return blob, nil
}

func (c *CachedStore) Save(ctx context.Context, id string, blob []byte) error {
	if err := c.next.Save(ctx, id, blob); err != nil {
		c.cache.Remove(id)
		return err
	}
	c.cache.Add(id, clone(blob))
	return nil
}

func (c *CachedStore) Delete(ctx context.Context, id string) error {
	c.cache.Remove(id)
	return c.next.Delete(ctx, id)
}

func (c *CachedStore) Ping(ctx context.Context) error {
	return c.next.Ping(ctx)
}

// Name reports the backing store so metrics stay attributed to it
func (c *CachedStore) Name() string {
	return BackendCached + "+" + c.next.Name()
}
