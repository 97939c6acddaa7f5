// Package config loads the invoice words service configuration
// from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/purposeinplay/go-invoicewords/httpserver"
	"github.com/purposeinplay/go-invoicewords/invoice"
	"github.com/purposeinplay/go-invoicewords/logger"
)

// ErrInvalidConfig is returned when a loaded configuration
// does not pass validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the service configuration.
type Config struct {
	Service string        `yaml:"service"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
	Invoice InvoiceConfig `yaml:"invoice"`
	CORS    CORSConfig    `yaml:"cors"`
	Sentry  SentryConfig  `yaml:"sentry"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Mode logger.Mode `yaml:"mode"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Address         string              `yaml:"address"`
	ShutdownTimeout time.Duration       `yaml:"shutdown_timeout"`
	Timeouts        httpserver.Timeouts `yaml:"timeouts"`
}

// InvoiceConfig holds the settings of the legal mention.
type InvoiceConfig struct {
	CurrencyLabel string `yaml:"currency_label"`
}

// CORSConfig lists the origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// SentryConfig enables error reporting when DSN is set.
type SentryConfig struct {
	DSN         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
	Release     string `yaml:"release"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Service: "invoicewords",
		Log: LogConfig{
			Mode: logger.ModeProduction,
		},
		Server: ServerConfig{
			Address:         ":8080",
			ShutdownTimeout: 30 * time.Second,
			Timeouts:        httpserver.DefaultTimeouts(),
		},
		Invoice: InvoiceConfig{
			CurrencyLabel: invoice.DefaultCurrencyLabel,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load reads the YAML file at path.
// An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	defer func() { _ = f.Close() }()

	return Read(f)
}

// Read decodes a YAML document, fills the missing values with
// the defaults and validates the result.
func Read(r io.Reader) (Config, error) {
	var cfg Config

	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&cfg); err != nil &&
		!errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) withDefaults() Config {
	d := Default()

	if c.Service == "" {
		c.Service = d.Service
	}

	if c.Log.Mode == "" {
		c.Log.Mode = d.Log.Mode
	}

	if c.Server.Address == "" {
		c.Server.Address = d.Server.Address
	}

	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}

	c.Server.Timeouts = timeoutsWithDefaults(c.Server.Timeouts, d.Server.Timeouts)

	if c.Invoice.CurrencyLabel == "" {
		c.Invoice.CurrencyLabel = d.Invoice.CurrencyLabel
	}

	if c.CORS.AllowedOrigins == nil {
		c.CORS.AllowedOrigins = d.CORS.AllowedOrigins
	}

	return c
}

func timeoutsWithDefaults(t, d httpserver.Timeouts) httpserver.Timeouts {
	for _, p := range []struct{ v, d *time.Duration }{
		{&t.Write, &d.Write},
		{&t.Read, &d.Read},
		{&t.Idle, &d.Idle},
		{&t.ReadHeader, &d.ReadHeader},
	} {
		if *p.v == 0 {
			*p.v = *p.d
		}
	}

	return t
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	switch {
	case c.Service == "":
		return fmt.Errorf("%w: empty service name", ErrInvalidConfig)

	case c.Server.Address == "":
		return fmt.Errorf("%w: empty server address", ErrInvalidConfig)

	case c.Server.ShutdownTimeout <= 0:
		return fmt.Errorf(
			"%w: shutdown timeout must be positive, got %s",
			ErrInvalidConfig,
			c.Server.ShutdownTimeout,
		)

	case c.Server.Timeouts.Write < 0,
		c.Server.Timeouts.Read < 0,
		c.Server.Timeouts.Idle < 0,
		c.Server.Timeouts.ReadHeader < 0:
		return fmt.Errorf("%w: negative server timeout", ErrInvalidConfig)

	case c.Invoice.CurrencyLabel == "":
		return fmt.Errorf("%w: empty currency label", ErrInvalidConfig)
	}

	switch c.Log.Mode {
	case logger.ModeDevelopment, logger.ModeProduction:
	default:
		return fmt.Errorf("%w: unknown log mode %q", ErrInvalidConfig, c.Log.Mode)
	}

	return nil
}
