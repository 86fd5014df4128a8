package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultAddr       = ":8080"
	DefaultDeckAPIURL = "https://www.deckofcardsapi.com"
	DefaultDeckCount  = 1
	DefaultSessionTTL = 30 * time.Minute
)

// Config represents the application configuration
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	DeckAPI     DeckAPIConfig     `koanf:"deck_api"`
	Session     SessionConfig     `koanf:"session"`
	HealthCheck HealthCheckConfig `koanf:"health_check"`
	LogLevel    string            `koanf:"log_level"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Addr         string        `koanf:"addr"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	BasePath     string        `koanf:"base_path"` // Optional base path for reverse proxy (e.g., "/deck")
}

// DeckAPIConfig represents the upstream card-deck API client configuration
type DeckAPIConfig struct {
	BaseURL   string        `koanf:"base_url"`
	DeckCount int           `koanf:"deck_count"`
	Timeout   time.Duration `koanf:"timeout"` // zero means no client-side timeout
	TLS       *TLSConfig    `koanf:"tls"`
}

// SessionConfig controls how long an idle page session is kept in memory
type SessionConfig struct {
	TTL time.Duration `koanf:"ttl"`
}

// HealthCheckConfig represents health check configuration for the upstream deck API
type HealthCheckConfig struct {
	Enabled         bool          `koanf:"enabled"`
	Interval        time.Duration `koanf:"interval"`
	FailedThreshold int           `koanf:"failed_threshold"`
}

// TLSConfig represents TLS configuration for the deck API client
type TLSConfig struct {
	CA   string `koanf:"ca"`
	Cert string `koanf:"cert"`
	Key  string `koanf:"key"`
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Load YAML config
	if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file overrides anything
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.DeckAPI.BaseURL == "" {
		c.DeckAPI.BaseURL = DefaultDeckAPIURL
	}
	if c.DeckAPI.DeckCount == 0 {
		c.DeckAPI.DeckCount = DefaultDeckCount
	}
	if c.Session.TTL == 0 {
		c.Session.TTL = DefaultSessionTTL
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	u, err := url.Parse(c.DeckAPI.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("deck_api.base_url must be an absolute URL, got %q", c.DeckAPI.BaseURL)
	}

	if c.DeckAPI.DeckCount < 1 {
		return fmt.Errorf("deck_api.deck_count must be at least 1")
	}

	if c.DeckAPI.Timeout < 0 {
		return fmt.Errorf("deck_api.timeout must not be negative")
	}

	if c.DeckAPI.TLS != nil && (c.DeckAPI.TLS.Cert == "") != (c.DeckAPI.TLS.Key == "") {
		return fmt.Errorf("deck_api.tls.cert and deck_api.tls.key must be set together")
	}

	if c.Session.TTL < 0 {
		return fmt.Errorf("session.ttl must not be negative")
	}

	// Validate health check configuration
	if c.HealthCheck.Enabled {
		if c.HealthCheck.Interval <= 0 {
			return fmt.Errorf("health_check.interval must be positive when health check is enabled")
		}
		if c.HealthCheck.FailedThreshold <= 0 {
			return fmt.Errorf("health_check.failed_threshold must be positive when health check is enabled")
		}
	}

	return nil
}
