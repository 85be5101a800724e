package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/OMD2Planner_Go/internal/config"
	"github.com/osse101/OMD2Planner_Go/internal/database"
	"github.com/osse101/OMD2Planner_Go/internal/logger"
	"github.com/osse101/OMD2Planner_Go/internal/redis"
	"github.com/osse101/OMD2Planner_Go/internal/session"
)

// Stores holds the session store and the connections behind it
type Stores struct {
	Session session.Store

	redisClient redis.Client
	dbPool      *pgxpool.Pool
}

// Close releases the backing connections
func (s *Stores) Close() {
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "backend", session.BackendRedis, "error", err)
		}
	}
	if s.dbPool != nil {
		s.dbPool.Close()
	}
}

// InitializeStores creates the configured session store. Remote backends are
// fronted by an in-process read-through cache unless SessionCacheTTL is zero.
func InitializeStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	stores := &Stores{}

	switch cfg.SessionStore {
	case config.StoreMemory:
		stores.Session = session.NewMemoryStore(cfg.SessionCacheSize, cfg.SessionTTL)

	case config.StoreRedis:
		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
			DB:       cfg.RedisDB,
			Password: cfg.RedisPassword,
			UseTLS:   cfg.RedisTLS,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		stores.redisClient = client
		if err := client.Ping(ctx).Err(); err != nil {
			stores.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}

		store, err := session.NewRedisStore(&session.RedisConfig{Client: client, TTL: cfg.SessionTTL})
		if err != nil {
			stores.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateStore, err)
		}
		if err := stores.cache(store, cfg); err != nil {
			return nil, err
		}

	case config.StorePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		stores.dbPool = pool

		if err := database.Migrate(ctx, pool); err != nil {
			stores.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}

		store, err := session.NewPostgresStore(pool, cfg.SessionTTL)
		if err != nil {
			stores.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateStore, err)
		}
		if err := stores.cache(store, cfg); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf(ErrMsgUnknownSessionStore, cfg.SessionStore)
	}

	logger.FromContext(ctx).Info(LogMsgSessionStoreReady, "backend", stores.Session.Name())
	return stores, nil
}

func (s *Stores) cache(next session.Store, cfg *config.Config) error {
	// replicas sharing a backend must not serve each other stale blobs
	if cfg.SessionCacheTTL == 0 {
		s.Session = next
		return nil
	}

	cached, err := session.NewCachedStore(next, cfg.SessionCacheSize, cfg.SessionCacheTTL)
	if err != nil {
		s.Close()
		return fmt.Errorf("%s: %w", ErrMsgFailedCreateStore, err)
	}
	s.Session = cached
	return nil
}
