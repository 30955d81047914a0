// Package config loads billsplit settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ServerConfig configures cmd/server.
type ServerConfig struct {
	// Port is the TCP port the HTTP server listens on.
	Port int `env:"PORT" envDefault:"8080"`

	// SessionTTL is how long an untouched session survives.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"2h"`

	// SweepInterval is how often idle sessions are removed.
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"5m"`

	// MaxSessions caps live sessions. Zero means unlimited.
	MaxSessions int `env:"MAX_SESSIONS" envDefault:"10000"`

	// AllowedOrigin is sent as Access-Control-Allow-Origin.
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"*"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// ClientConfig configures cmd/billsplit.
type ClientConfig struct {
	// ServerURL selects remote mode when set; otherwise the calculator runs in process.
	ServerURL string `env:"BILLSPLIT_SERVER_URL"`

	// LogFile receives logs while the terminal UI owns the screen.
	// Logging is discarded when empty.
	LogFile string `env:"BILLSPLIT_LOG_FILE"`

	// RequestTimeout bounds each call to the server in remote mode.
	RequestTimeout time.Duration `env:"BILLSPLIT_REQUEST_TIMEOUT" envDefault:"5s"`
}

// LoadDotEnv reads a .env file into the environment if one exists.
// Variables already set are not overridden.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// LoadServer parses the server configuration.
func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// LoadClient parses the terminal client configuration.
func LoadClient() (ClientConfig, error) {
	var cfg ClientConfig
	if err := ParseEnv(&cfg); err != nil {
		return ClientConfig{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks that the server configuration is usable.
func (c ServerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("SESSION_TTL must not be negative, got %s", c.SessionTTL)
	}
	if c.SessionTTL > 0 && c.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive when SESSION_TTL is set, got %s", c.SweepInterval)
	}
	if c.MaxSessions < 0 {
		return fmt.Errorf("MAX_SESSIONS must not be negative, got %d", c.MaxSessions)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// Addr returns the listen address for the configured port.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
