package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	CatalogPath string
	PublicURL   string
	SortMode    string

	SessionStore     string
	SessionTTL       time.Duration
	SessionCacheSize int
	// SessionCacheTTL bounds how long a replica serves a cached blob in front
	// of Redis or Postgres. Zero turns the cache off.
	SessionCacheTTL time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisTLS      bool

	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBMaxConns    int
	DBMaxIdleTime time.Duration
	DBMaxLifetime time.Duration

	RequestSizeLimit int64
	RateLimit        int
	TrustedProxies   []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:      strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:     strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:        getEnv(EnvLogDir, DefaultLogDir),
		Environment:   getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:   getEnv(EnvServiceName, DefaultServiceName),
		Version:       getEnv(EnvVersion, DefaultVersion),
		CatalogPath:   getEnv(EnvCatalogPath, DefaultCatalogPath),
		PublicURL:     getEnv(EnvPublicURL, DefaultPublicURL),
		SortMode:      getEnv(EnvSortMode, DefaultSortMode),
		SessionStore:  strings.ToLower(getEnv(EnvSessionStore, DefaultSessionStore)),
		RedisAddr:     getEnv(EnvRedisAddr, DefaultRedisAddr),
		RedisPassword: getEnv(EnvRedisPassword, ""),
		DBUser:        getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:    getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:        getEnv(EnvDBHost, DefaultDBHost),
		DBPort:        getEnv(EnvDBPort, DefaultDBPort),
		DBName:        getEnv(EnvDBName, DefaultDBName),
	}

	p := &parser{}
	cfg.Port = p.int(EnvPort, DefaultPort)
	cfg.SessionTTL = p.duration(EnvSessionTTL, DefaultSessionTTL)
	cfg.SessionCacheSize = p.int(EnvSessionCacheSize, strconv.Itoa(DefaultSessionCacheSize))
	cfg.SessionCacheTTL = p.duration(EnvSessionCacheTTL, DefaultSessionCacheTTL)
	cfg.RedisDB = p.int(EnvRedisDB, "0")
	cfg.RedisTLS = p.bool(EnvRedisTLS, false)
	cfg.DBMaxConns = p.int(EnvDBMaxConns, strconv.Itoa(DefaultDBMaxConns))
	cfg.DBMaxIdleTime = p.duration(EnvDBMaxIdleTime, DefaultDBMaxIdleTime)
	cfg.DBMaxLifetime = p.duration(EnvDBMaxLifetime, DefaultDBMaxLifetime)
	cfg.RequestSizeLimit = int64(p.int(EnvRequestSizeLimit, strconv.Itoa(DefaultRequestSizeLimit)))
	cfg.RateLimit = p.int(EnvRateLimit, strconv.Itoa(DefaultRateLimit))
	cfg.TrustedProxies = splitList(getEnv(EnvTrustedProxies, ""))

	if err := errors.Join(p.errs...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// parser collects every conversion failure instead of stopping at the first
type parser struct {
	errs []error
}

func (p *parser) int(key, def string) int {
	raw := getEnv(key, def)
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf(ErrFmtInvalidValue, key, raw, err))
	}
	return v
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf(ErrFmtInvalidValue, key, raw, err))
	}
	return v
}

func (p *parser) bool(key string, def bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf(ErrFmtInvalidValue, key, raw, err))
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// IsDevelopment reports whether source locations should be logged
func (c *Config) IsDevelopment() bool {
	return c.Environment == DefaultEnvironment || c.Environment == "development"
}
