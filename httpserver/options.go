package httpserver

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// An Option configures a Server using the functional options paradigm
// popularized by Rob Pike. If you're unfamiliar with this style, see
// https://commandcenter.blogspot.com/2014/01/self-referential-functions-and-design.html
// and
// https://github.com/uber-go/guide/blob/master/style.md#functional-options
type Option interface {
	fmt.Stringer

	apply(*Server)
}

type addressOption string

func (o addressOption) apply(s *Server) {
	s.httpServer.Addr = string(o)
	s.info.Addr = string(o)
}

func (o addressOption) String() string {
	return fmt.Sprintf("server.Address: %s", string(o))
}

// WithAddress will set the address field of the server.
func WithAddress(address string) Option {
	return addressOption(address)
}

// Timeouts of the underlying HTTP server. A zero value means no timeout.
type Timeouts struct {
	// Write is the maximum duration before timing out writes of the response.
	Write time.Duration `yaml:"write"`
	// Read is the maximum duration for reading the entire request, including the body.
	Read time.Duration `yaml:"read"`
	// Idle is the maximum amount of time to wait for the next request
	// when keep-alive is enabled.
	Idle time.Duration `yaml:"idle"`
	// ReadHeader is the amount of time allowed to read request headers.
	ReadHeader time.Duration `yaml:"read_header"`
}

type timeoutsOption Timeouts

func (o timeoutsOption) String() string {
	return fmt.Sprintf("server.WriteTimeout: %s\n"+
		"server.ReadTimeout: %s\n"+
		"server.IdleTimeout: %s\n"+
		"server.ReadHeaderTimeout: %s",
		o.Write,
		o.Read,
		o.Idle,
		o.ReadHeader)
}

func (o timeoutsOption) apply(s *Server) {
	s.httpServer.WriteTimeout = o.Write
	s.httpServer.ReadTimeout = o.Read
	s.httpServer.IdleTimeout = o.Idle
	s.httpServer.ReadHeaderTimeout = o.ReadHeader
}

// WithTimeouts will set the timeouts for the underlying HTTP server.
func WithTimeouts(timeouts Timeouts) Option {
	return timeoutsOption(timeouts)
}

type baseContextOption struct {
	ctx                     context.Context
	cancelContextOnShutdown bool
}

func (o baseContextOption) apply(s *Server) {
	ctx := o.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	if o.cancelContextOnShutdown {
		var cancel context.CancelFunc

		ctx, cancel = context.WithCancel(ctx)

		s.httpServer.RegisterOnShutdown(cancel)
	}

	s.httpServer.BaseContext = func(_ net.Listener) context.Context {
		return ctx
	}
}

var spewConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
}

func (o baseContextOption) String() string {
	return fmt.Sprintf("server.BaseContext: %s"+
		"server.CancelContextOnShutdown: %t", spewConfig.Sdump(o.ctx), o.cancelContextOnShutdown)
}

// WithBaseContext sets a predefined base context for all incoming http requests.
//
// If cancelContextOnShutdown is set to true the base context is cancelled
// as soon as Server.Shutdown() is called, so handlers selecting on the
// request context return without waiting for the shutdown timeout.
func WithBaseContext(ctx context.Context, cancelContextOnShutdown bool) Option {
	return baseContextOption{
		ctx:                     ctx,
		cancelContextOnShutdown: cancelContextOnShutdown,
	}
}
