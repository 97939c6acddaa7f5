package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/oklog/run"
	"github.com/purposeinplay/go-invoicewords/config"
	"github.com/purposeinplay/go-invoicewords/httpapi"
	"github.com/purposeinplay/go-invoicewords/httpserver"
	"github.com/purposeinplay/go-invoicewords/invoice"
	"github.com/purposeinplay/go-invoicewords/logger"
	"github.com/purposeinplay/go-invoicewords/sentry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the amount in words HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration file")

	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Service)
	if err != nil {
		return fmt.Errorf("new logger: %w", err)
	}

	defer func() { _ = log.Sync() }()

	mentioner := invoice.NewMentioner(
		invoice.WithCurrencyLabel(cfg.Invoice.CurrencyLabel),
		invoice.WithLogger(log),
	)

	var apiOptions []httpapi.Option

	if cfg.Sentry.DSN != "" {
		reporter, err := sentry.NewClient(cfg.Sentry.DSN, cfg.Sentry.Environment, cfg.Sentry.Release)
		if err != nil {
			return fmt.Errorf("new sentry client: %w", err)
		}

		defer func() {
			if err := reporter.Close(); err != nil {
				log.Warn("flush sentry events", zap.Error(err))
			}
		}()

		apiOptions = append(apiOptions, httpapi.WithReporter(reporter))
	}

	server := httpserver.NewDefaultServer(
		ctx,
		log,
		httpapi.New(log, mentioner, apiOptions...).Handler(cfg.CORS.AllowedOrigins),
		cfg.Server.Address,
		httpserver.WithTimeouts(cfg.Server.Timeouts),
	)

	var g run.Group

	g.Add(server.ListenAndServe, func(error) {
		if err := server.Shutdown(cfg.Server.ShutdownTimeout); err != nil {
			log.Error("failed to shutdown server in time", zap.Error(err))
		}
	})

	g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))

	err = g.Run()

	var signalErr run.SignalError
	if errors.As(err, &signalErr) {
		log.Info("received shut down signal", zap.Stringer("signal", signalErr.Signal))

		return nil
	}

	return err
}
