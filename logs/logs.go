// Package logs carries the request scoped zap logger
// through chi's request logger middleware.
package logs

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ middleware.LogFormatter = (*StructuredLogger)(nil)

// StructuredLogger creates a StructuredLoggerEntry for every request.
type StructuredLogger struct {
	Logger *zap.Logger
}

// NewLoggerMiddleware returns a chi middleware logging the start and the
// completion of every request with logger.
func NewLoggerMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return middleware.RequestLogger(&StructuredLogger{Logger: logger})
}

// NewLogEntry implements the middleware.LogFormatter interface.
func (l *StructuredLogger) NewLogEntry(r *http.Request) middleware.LogEntry {
	fields := make([]zapcore.Field, 0, 8)

	if reqID := middleware.GetReqID(r.Context()); reqID != "" {
		fields = append(fields, zap.String("req.id", reqID))
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	fields = append(fields,
		zap.String("http_scheme", scheme),
		zap.String("http_proto", r.Proto),
		zap.String("http_method", r.Method),
		zap.String("remote_addr", r.RemoteAddr),
		zap.String("user_agent", r.UserAgent()),
		zap.String("uri", fmt.Sprintf("%s://%s%s", scheme, r.Host, r.RequestURI)),
	)

	entry := &StructuredLoggerEntry{Logger: l.Logger.With(fields...)}

	entry.Logger.Debug("request started")

	return entry
}

// StructuredLoggerEntry is the request scoped logger.
type StructuredLoggerEntry struct {
	Logger *zap.Logger
}

// Write implements the middleware.LogEntry interface.
func (l *StructuredLoggerEntry) Write(
	status, bytes int,
	_ http.Header,
	elapsed time.Duration,
	_ interface{},
) {
	l.Logger.Info(
		"request complete",
		zap.Int("status", status),
		zap.Int("bytes_length", bytes),
		zap.Float64("duration_ms", float64(elapsed.Nanoseconds())/float64(time.Millisecond)),
	)
}

// Panic implements the middleware.LogEntry interface.
func (l *StructuredLoggerEntry) Panic(v interface{}, stack []byte) {
	l.Logger = l.Logger.With(
		zap.String("stack", string(stack)),
		zap.String("panic", fmt.Sprintf("%+v", v)),
	)
}

// GetLogEntry returns the request scoped logger, or the global zap
// logger when the request did not go through NewLoggerMiddleware.
func GetLogEntry(r *http.Request) *zap.Logger {
	entry, _ := middleware.GetLogEntry(r).(*StructuredLoggerEntry)
	if entry == nil {
		return zap.L()
	}

	return entry.Logger
}
