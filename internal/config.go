package internal

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Env           string              `mapstructure:"env"`
	Server        ServerConfig        `mapstructure:"http_server"`
	Session       SessionConfig       `mapstructure:"session"`
	Uploads       UploadConfig        `mapstructure:"uploads"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	BaseURL           string        `mapstructure:"base_url"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
}

// SessionConfig controls how the current-actor session bootstraps.
// DefaultActorEmail picks the actor the session resolves to once
// initialization completes; InitDelay mimics the original's async
// load and may be zero.
type SessionConfig struct {
	DefaultActorEmail string        `mapstructure:"default_actor_email"`
	InitDelay         time.Duration `mapstructure:"init_delay"`
}

type UploadConfig struct {
	MaxReceiptSizeMB int64 `mapstructure:"max_receipt_size_mb"`
}

type ObservabilityConfig struct {
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MaxReceiptSizeBytes returns the configured receipt limit in bytes,
// defaulting to 5 MB when unset.
func (c *UploadConfig) MaxReceiptSizeBytes() int64 {
	mb := c.MaxReceiptSizeMB
	if mb <= 0 {
		mb = 5
	}
	return mb * 1024 * 1024
}

func (c *Config) Validate() error {
	var errs []string

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("server config: %v", err))
	}

	if err := c.Session.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("session config: %v", err))
	}

	if err := c.Uploads.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("uploads config: %v", err))
	}

	if err := c.Observability.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("observability config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *ServerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.ReadTimeout < c.ReadHeaderTimeout {
		return errors.New("read_timeout must be >= read_header_timeout")
	}
	return nil
}

func (c *SessionConfig) Validate() error {
	if c.DefaultActorEmail == "" {
		return errors.New("default_actor_email is required")
	}
	if c.InitDelay < 0 {
		return errors.New("init_delay cannot be negative")
	}
	return nil
}

func (c *UploadConfig) Validate() error {
	if c.MaxReceiptSizeMB < 0 {
		return errors.New("max_receipt_size_mb cannot be negative")
	}
	return nil
}

func (c *ObservabilityConfig) Validate() error {
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return errors.New("metrics path is required when metrics are enabled")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("invalid log format %q", c.Logging.Format)
	}
	return nil
}
