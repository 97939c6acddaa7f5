// Package sentry reports the server errors of the API to Sentry.
package sentry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5/middleware"
)

// Errors returned by the Client's methods.
var (
	ErrNoClientOrScopeAvailable = errors.New("no client or hub available")
	ErrDidNotFullyFlush         = errors.New("not fully flushed")
)

// Client reports errors to the Sentry project of its DSN.
type Client struct {
	flushTimeout time.Duration
}

// NewClient initializes the Sentry SDK. An empty dsn initializes a
// client that drops every event.
func NewClient(dsn, environment, release string) (*Client, error) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Release:     release,
	})
	if err != nil {
		return nil, fmt.Errorf("sentry init: %w", err)
	}

	return &Client{flushTimeout: time.Second}, nil
}

// ReportError reports an error to Sentry, tagged with the
// request id found in ctx, if any.
func (*Client) ReportError(ctx context.Context, err error) error {
	hub := hubFromContext(ctx)

	if hub.Client() == nil {
		return ErrNoClientOrScopeAvailable
	}

	hub.WithScope(func(scope *sentry.Scope) {
		if reqID := middleware.GetReqID(ctx); reqID != "" {
			scope.SetTag("req.id", reqID)
		}

		hub.CaptureException(err)
	})

	return nil
}

// Close flushes the buffered events.
func (c *Client) Close() error {
	if !sentry.Flush(c.flushTimeout) {
		return ErrDidNotFullyFlush
	}

	return nil
}

// hubFromContext returns either a hub stored in the context or the current hub.
// The return value is guaranteed to be non-nil, unlike GetHubFromContext.
func hubFromContext(ctx context.Context) *sentry.Hub {
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		return hub
	}

	return sentry.CurrentHub()
}
