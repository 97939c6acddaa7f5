package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/purposeinplay/go-invoicewords/config"
	"github.com/purposeinplay/go-invoicewords/logger"
)

func TestRead(t *testing.T) {
	t.Parallel()

	t.Run("OverridesDefaults", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		cfg, err := config.Read(strings.NewReader(`
service: factures
log:
  mode: development
server:
  address: 127.0.0.1:9090
  shutdown_timeout: 5s
invoice:
  currency_label: francs CFA BEAC
`))
		i.NoErr(err)

		i.Equal("factures", cfg.Service)
		i.Equal(logger.ModeDevelopment, cfg.Log.Mode)
		i.Equal("127.0.0.1:9090", cfg.Server.Address)
		i.Equal(5*time.Second, cfg.Server.ShutdownTimeout)
		i.Equal("francs CFA BEAC", cfg.Invoice.CurrencyLabel)
		i.Equal([]string{"*"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		cfg, err := config.Read(strings.NewReader(""))
		i.NoErr(err)

		i.Equal(config.Default(), cfg)
	})

	t.Run("UnknownField", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		_, err := config.Read(strings.NewReader("colour: blue\n"))
		i.True(err != nil)
	})

	t.Run("InvalidLogMode", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		_, err := config.Read(strings.NewReader("log:\n  mode: verbose\n"))
		i.True(errors.Is(err, config.ErrInvalidConfig))
	})

	t.Run("PartialTimeouts", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		cfg, err := config.Read(strings.NewReader(`
server:
  timeouts:
    write: 30s
`))
		i.NoErr(err)

		i.Equal(30*time.Second, cfg.Server.Timeouts.Write)
		i.Equal(config.Default().Server.Timeouts.Read, cfg.Server.Timeouts.Read)
		i.Equal(config.Default().Server.Timeouts.ReadHeader, cfg.Server.Timeouts.ReadHeader)
	})

	t.Run("NegativeShutdownTimeout", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		_, err := config.Read(strings.NewReader("server:\n  shutdown_timeout: -1s\n"))
		i.True(errors.Is(err, config.ErrInvalidConfig))
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("NoPath", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		cfg, err := config.Load("")
		i.NoErr(err)

		i.Equal(config.Default(), cfg)
	})

	t.Run("File", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		path := filepath.Join(t.TempDir(), "config.yaml")
		i.NoErr(os.WriteFile(path, []byte("server:\n  address: :8181\n"), 0o600))

		cfg, err := config.Load(path)
		i.NoErr(err)

		i.Equal(":8181", cfg.Server.Address)
	})

	t.Run("MissingFile", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		i.True(errors.Is(err, os.ErrNotExist))
	})
}
