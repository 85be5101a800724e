package config

import "time"

// Environment variable names
const (
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvLogDir           = "LOG_DIR"
	EnvEnvironment      = "ENVIRONMENT"
	EnvServiceName      = "SERVICE_NAME"
	EnvVersion          = "VERSION"
	EnvCatalogPath      = "CATALOG_PATH"
	EnvPublicURL        = "PUBLIC_URL"
	EnvSortMode         = "SORT_MODE"
	EnvSessionStore     = "SESSION_STORE"
	EnvSessionTTL       = "SESSION_TTL"
	EnvSessionCacheSize = "SESSION_CACHE_SIZE"
	EnvSessionCacheTTL  = "SESSION_CACHE_TTL"
	EnvRedisAddr        = "REDIS_ADDR"
	EnvRedisPassword    = "REDIS_PASSWORD"
	EnvRedisDB          = "REDIS_DB"
	EnvRedisTLS         = "REDIS_TLS"
	EnvDBUser           = "DB_USER"
	EnvDBPassword       = "DB_PASSWORD"
	EnvDBHost           = "DB_HOST"
	EnvDBPort           = "DB_PORT"
	EnvDBName           = "DB_NAME"
	EnvDBMaxConns       = "DB_MAX_CONNS"
	EnvDBMaxIdleTime    = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxLifetime    = "DB_MAX_CONN_LIFETIME"
	EnvRequestSizeLimit = "REQUEST_SIZE_LIMIT"
	EnvRateLimit        = "RATE_LIMIT"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
)

// Defaults
const (
	DefaultPort             = "8080"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultLogDir           = "logs"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "omd2planner"
	DefaultVersion          = "dev"
	DefaultCatalogPath      = "configs/items.json"
	DefaultPublicURL        = "http://localhost:8080/"
	DefaultSortMode         = "compat"
	DefaultSessionStore     = StoreMemory
	DefaultSessionTTL       = 30 * 24 * time.Hour
	DefaultSessionCacheSize = 1024
	DefaultSessionCacheTTL  = 5 * time.Minute
	DefaultRedisAddr        = "localhost:6379"
	DefaultDBUser           = "postgres"
	DefaultDBPassword       = "postgres"
	DefaultDBHost           = "localhost"
	DefaultDBPort           = "5432"
	DefaultDBName           = "omd2planner"
	DefaultDBMaxConns       = 10
	DefaultDBMaxIdleTime    = 5 * time.Minute
	DefaultDBMaxLifetime    = time.Hour
	DefaultRequestSizeLimit = 1 << 20
	DefaultRateLimit        = 1000
)

// Session store backends
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
)

const (
	ErrFmtInvalidValue = "invalid %s value %q: %w"
	ErrFmtOutOfRange   = "%s must be between %d and %d, got %d"
	ErrFmtOneOf        = "%s must be one of %v, got %q"
	ErrFmtRequired     = "%s must be set when %s=%s"
)
