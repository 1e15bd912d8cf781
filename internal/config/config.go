// Package config wraps Viper with ShelfView's defaults and a nil-safe
// accessor type.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides (SHELFVIEW_SERVER_PORT).
const EnvPrefix = "SHELFVIEW"

// Catalog source kinds accepted by catalog.source.
const (
	SourceEmbedded = "embedded"
	SourceYAML     = "yaml"
	SourceSQLite   = "sqlite"
)

// Config is a read-only view over a Viper instance. A Config built from a
// nil Viper returns zero values.
type Config struct {
	v *viper.Viper
}

// New wraps v.
func New(v *viper.Viper) *Config {
	if v == nil {
		v = viper.New()
	}
	return &Config{v: v}
}

// SetDefaults registers the default value of every known key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.rate_limit", 50.0)
	v.SetDefault("server.rate_burst", 100)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("catalog.source", SourceEmbedded)
	v.SetDefault("catalog.path", "")
	v.SetDefault("view.default_page_size", 10)
	v.SetDefault("view.max_views", 1024)
	v.SetDefault("view.ttl", "30m")
	v.SetDefault("query.cache_size", 128)
}

// Load reads configuration from path (if non-empty) layered over defaults
// and SHELFVIEW_* environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	cfg := New(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	var errs []error
	switch src := c.GetString("catalog.source"); src {
	case SourceEmbedded:
	case SourceYAML, SourceSQLite:
		if c.GetString("catalog.path") == "" {
			errs = append(errs, fmt.Errorf("catalog.path is required for source %q", src))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown catalog.source %q", src))
	}
	if c.GetInt("view.default_page_size") <= 0 {
		errs = append(errs, errors.New("view.default_page_size must be positive"))
	}
	if c.GetFloat64("server.rate_limit") < 0 {
		errs = append(errs, errors.New("server.rate_limit must not be negative"))
	}
	return errors.Join(errs...)
}

func (c *Config) GetString(key string) string          { return c.v.GetString(key) }
func (c *Config) GetInt(key string) int                { return c.v.GetInt(key) }
func (c *Config) GetFloat64(key string) float64        { return c.v.GetFloat64(key) }
func (c *Config) GetBool(key string) bool              { return c.v.GetBool(key) }
func (c *Config) GetDuration(key string) time.Duration { return c.v.GetDuration(key) }
func (c *Config) IsSet(key string) bool                { return c.v.IsSet(key) }

// Sub returns the subtree at key. Missing subtrees yield an empty Config,
// never nil.
func (c *Config) Sub(key string) *Config {
	return New(c.v.Sub(key))
}

// Unmarshal decodes the whole configuration into target using mapstructure tags.
func (c *Config) Unmarshal(target any) error {
	return c.v.Unmarshal(target)
}
