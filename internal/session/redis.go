package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/osse101/OMD2Planner_Go/internal/domain"
	"github.com/osse101/OMD2Planner_Go/internal/redis"
)

// RedisConfig holds the configuration for the Redis store
type RedisConfig struct {
	Client redis.Client
	// TTL is refreshed on every save. Zero keeps keys forever.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgClientMissing)
	}
	return nil
}

// RedisStore keeps blobs under planner:session:{id}
type RedisStore struct {
	client redis.Client
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed store
func NewRedisStore(cfg *RedisConfig) (*RedisStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &RedisStore{client: cfg.Client, ttl: cfg.TTL}, nil
}

func (r *RedisStore) Load(ctx context.Context, id string) ([]byte, error) {
	blob, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, fmt.Errorf(ErrFmtLoad, id, domain.ErrSessionNotFound)
		}
		return nil, fmt.Errorf(ErrFmtLoad, id, errors.Join(domain.ErrStoreUnavailable, err))
	}
	return blob, nil
}

func (r *RedisStore) Save(ctx context.Context, id string, blob []byte) error {
	if err := r.client.Set(ctx, r.key(id), blob, r.ttl).Err(); err != nil {
		return fmt.Errorf(ErrFmtSave, id, errors.Join(domain.ErrStoreUnavailable, err))
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf(ErrFmtDelete, id, errors.Join(domain.ErrStoreUnavailable, err))
	}
	return nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.Join(domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *RedisStore) Name() string { return BackendRedis }

func (r *RedisStore) key(id string) string {
	return RedisKeyPrefix + id
}
