package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	require.NoError(t, os.Unsetenv(key))
}

func validConfig() *Config {
	return &Config{
		Port:             8080,
		LogLevel:         "info",
		LogFormat:        "text",
		Environment:      "dev",
		CatalogPath:      DefaultCatalogPath,
		PublicURL:        DefaultPublicURL,
		SortMode:         DefaultSortMode,
		SessionStore:     StoreMemory,
		SessionTTL:       DefaultSessionTTL,
		SessionCacheSize: DefaultSessionCacheSize,
		SessionCacheTTL:  DefaultSessionCacheTTL,
		RequestSizeLimit: DefaultRequestSizeLimit,
		RateLimit:        DefaultRateLimit,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }, "LOG_LEVEL"},
		{"unknown log format", func(c *Config) { c.LogFormat = "xml" }, "LOG_FORMAT"},
		{"unknown sort mode", func(c *Config) { c.SortMode = "random" }, "SORT_MODE"},
		{"relative public url", func(c *Config) { c.PublicURL = "/planner" }, "PUBLIC_URL"},
		{"unknown store", func(c *Config) { c.SessionStore = "etcd" }, "SESSION_STORE"},
		{"zero ttl", func(c *Config) { c.SessionTTL = 0 }, "SESSION_TTL"},
		{"cache disabled", func(c *Config) { c.SessionCacheTTL = 0 }, ""},
		{"negative cache ttl", func(c *Config) { c.SessionCacheTTL = -time.Second }, "SESSION_CACHE_TTL"},
		{"redis without address", func(c *Config) { c.SessionStore = StoreRedis }, "REDIS_ADDR"},
		{"postgres without host", func(c *Config) { c.SessionStore = StorePostgres; c.DBName = "x"; c.DBMaxConns = 1 }, "DB_HOST"},
		{"postgres without conns", func(c *Config) {
			c.SessionStore = StorePostgres
			c.DBHost, c.DBName = "db", "x"
		}, "DB_MAX_CONNS"},
		{"no request limit", func(c *Config) { c.RequestSizeLimit = 0 }, "REQUEST_SIZE_LIMIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	c := validConfig()
	c.Port = 0
	c.LogLevel = "loud"
	c.SessionCacheSize = 0

	err := c.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
	assert.Contains(t, err.Error(), "SESSION_CACHE_SIZE")
}

func TestWarnings_InsecureDefaults(t *testing.T) {
	c := validConfig()
	c.Environment = "production"
	c.SessionStore = StorePostgres
	c.DBPassword = ExampleDBPassword
	c.RateLimit = 0

	warnings := c.Warnings()

	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "RATE_LIMIT")
}
