package session

import "time"

// Store backend names, reported by Store.Name and used as metric labels
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendCached   = "cached"
)

// Defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 5 * time.Minute

	// RedisKeyPrefix namespaces session blobs: planner:session:{id}
	RedisKeyPrefix = "planner:session:"
)

// Error format strings
const (
	ErrFmtLoad          = "failed to load session %s: %w"
	ErrFmtSave          = "failed to save session %s: %w"
	ErrFmtDelete        = "failed to delete session %s: %w"
	ErrFmtInvalidID     = "%w: %q is not a session id"
	ErrMsgClientMissing = "redis client is required"
	ErrMsgPoolMissing   = "postgres pool is required"
	ErrMsgStoreMissing  = "backing store is required"
)

// Log messages
const (
	LogMsgSessionCreated       = "Session created"
	LogMsgSessionReset         = "Session reset"
	LogMsgPersistFailed        = "Failed to persist session state"
	LogMsgMalformedBlob        = "Discarding malformed persisted session state"
	LogMsgStaleBlob            = "Discarding persisted session state that no longer matches the catalog"
	LogMsgHydratedFromSnapshot = "Session hydrated from URL snapshot"
)
