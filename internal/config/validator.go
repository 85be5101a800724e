package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"

	"github.com/osse101/OMD2Planner_Go/internal/logger"
	"github.com/osse101/OMD2Planner_Go/internal/planner"
)

var (
	validLogLevels  = []string{logger.LogLevelDebug, logger.LogLevelInfo, logger.LogLevelWarn, logger.LogLevelWarning, logger.LogLevelError}
	validLogFormats = []string{logger.LogFormatText, logger.LogFormatJSON}
	validStores     = []string{StoreMemory, StoreRedis, StorePostgres}
)

// Validate reports every invalid value at once
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf(ErrFmtOutOfRange, EnvPort, 1, 65535, c.Port))
	}
	if !slices.Contains(validLogLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf(ErrFmtOneOf, EnvLogLevel, validLogLevels, c.LogLevel))
	}
	if !slices.Contains(validLogFormats, c.LogFormat) {
		errs = append(errs, fmt.Errorf(ErrFmtOneOf, EnvLogFormat, validLogFormats, c.LogFormat))
	}
	if _, err := planner.ParseSortMode(c.SortMode); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", EnvSortMode, err))
	}
	if u, err := url.Parse(c.PublicURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("%s must be an absolute URL, got %q", EnvPublicURL, c.PublicURL))
	}
	if c.CatalogPath == "" {
		errs = append(errs, fmt.Errorf("%s must be set", EnvCatalogPath))
	}

	if !slices.Contains(validStores, c.SessionStore) {
		errs = append(errs, fmt.Errorf(ErrFmtOneOf, EnvSessionStore, validStores, c.SessionStore))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %s", EnvSessionTTL, c.SessionTTL))
	}
	if c.SessionCacheSize < 1 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvSessionCacheSize, c.SessionCacheSize))
	}
	if c.SessionCacheTTL < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative, got %s", EnvSessionCacheTTL, c.SessionCacheTTL))
	}

	switch c.SessionStore {
	case StoreRedis:
		if c.RedisAddr == "" {
			errs = append(errs, fmt.Errorf(ErrFmtRequired, EnvRedisAddr, EnvSessionStore, StoreRedis))
		}
	case StorePostgres:
		if c.DBHost == "" || c.DBName == "" {
			errs = append(errs, fmt.Errorf(ErrFmtRequired, "DB_HOST and DB_NAME", EnvSessionStore, StorePostgres))
		}
		if c.DBMaxConns < 1 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvDBMaxConns, c.DBMaxConns))
		}
	}

	if c.RequestSizeLimit < 1 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvRequestSizeLimit, c.RequestSizeLimit))
	}

	return errors.Join(errs...)
}

// Warnings lists settings that work but are probably a mistake
func (c *Config) Warnings() []string {
	var warnings []string

	if c.SessionStore == StorePostgres && c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.SessionStore == StoreMemory && !c.IsDevelopment() {
		warnings = append(warnings, "SESSION_STORE=memory outside development - sessions are lost on restart")
	}
	if c.RateLimit <= 0 {
		warnings = append(warnings, "RATE_LIMIT is disabled")
	}

	return warnings
}
