package httpserver

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeouts suit small JSON requests.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Write:      10 * time.Second,
		Read:       5 * time.Second,
		Idle:       60 * time.Second,
		ReadHeader: 2 * time.Second,
	}
}

// NewDefaultServer returns a Server listening on address with the
// default timeouts. The request contexts are derived from ctx and
// cancelled on shutdown.
//
// options are applied after the defaults and may override them.
func NewDefaultServer(
	ctx context.Context,
	log *zap.Logger,
	handler http.Handler,
	address string,
	options ...Option,
) *Server {
	defaults := []Option{
		WithAddress(address),
		WithTimeouts(DefaultTimeouts()),
		WithBaseContext(ctx, true),
	}

	return New(log, handler, append(defaults, options...)...)
}
