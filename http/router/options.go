package router

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/purposeinplay/go-invoicewords/http/httperr"
	"github.com/purposeinplay/go-invoicewords/logs"
	"go.uber.org/zap"
)

// Option configures a Router.
type Option func(r *Router)

// DefaultCorsOptions allow read and JSON write requests from any origin.
var DefaultCorsOptions = cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	ExposedHeaders: []string{"X-Request-Id"},
}

// WithCors handles CORS requests with the given options.
func WithCors(options cors.Options) Option {
	return func(r *Router) {
		r.Use(cors.Handler(options))
	}
}

// WithHealthcheck answers GET requests on path with handler,
// or with Healthcheck when handler is nil.
func WithHealthcheck(path string, handler http.HandlerFunc) Option {
	return func(r *Router) {
		if handler == nil {
			handler = Healthcheck()
		}

		r.Chi.Get(path, handler)
	}
}

// WithRecoverer turns panics into 500 responses.
func WithRecoverer() Option {
	return func(r *Router) {
		r.Use(Recoverer)
	}
}

// WithRequestID sets a request id on every request context.
func WithRequestID() Option {
	return func(r *Router) {
		r.Use(middleware.RequestID)
	}
}

// WithRealIP sets the request RemoteAddr from the proxy headers.
func WithRealIP() Option {
	return func(r *Router) {
		r.Use(middleware.RealIP)
	}
}

// WithLogger logs every request with logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Router) {
		r.Use(logs.NewLoggerMiddleware(logger))
	}
}

// WithErrorReporter sends the 5xx errors to rep.
func WithErrorReporter(rep httperr.Reporter) Option {
	return func(r *Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(httperr.WithReporter(req.Context(), rep)))
			})
		})
	}
}
