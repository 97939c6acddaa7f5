// Package httperr maps handler errors to JSON error responses.
package httperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/purposeinplay/go-invoicewords/http/render"
	"github.com/purposeinplay/go-invoicewords/logs"
	"go.uber.org/zap"
)

// BadRequestError returns a 400 HTTPError.
func BadRequestError(fmtString string, args ...interface{}) *HTTPError {
	return httpError(http.StatusBadRequest, fmtString, args...)
}

// InternalServerError returns a 500 HTTPError.
func InternalServerError(fmtString string, args ...interface{}) *HTTPError {
	return httpError(http.StatusInternalServerError, fmtString, args...)
}

// NotFoundError returns a 404 HTTPError.
func NotFoundError(fmtString string, args ...interface{}) *HTTPError {
	return httpError(http.StatusNotFound, fmtString, args...)
}

// RequestEntityTooLargeError returns a 413 HTTPError.
func RequestEntityTooLargeError(fmtString string, args ...interface{}) *HTTPError {
	return httpError(http.StatusRequestEntityTooLarge, fmtString, args...)
}

// UnprocessableEntityError returns a 422 HTTPError.
func UnprocessableEntityError(fmtString string, args ...interface{}) *HTTPError {
	return httpError(http.StatusUnprocessableEntity, fmtString, args...)
}

// HTTPError is an error with a message and an HTTP status code.
type HTTPError struct {
	Code            int    `json:"code"`
	Message         string `json:"msg"`
	InternalError   error  `json:"-"`
	InternalMessage string `json:"-"`
	ErrorID         string `json:"error_id,omitempty"`
}

func (e *HTTPError) Error() string {
	if e.InternalMessage != "" {
		return e.InternalMessage
	}

	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Cause returns the root cause error.
func (e *HTTPError) Cause() error {
	if e.InternalError != nil {
		return e.InternalError
	}

	return e
}

// Unwrap returns the internal error.
func (e *HTTPError) Unwrap() error {
	return e.InternalError
}

// WithInternalError adds internal error information to the error.
func (e *HTTPError) WithInternalError(err error) *HTTPError {
	e.InternalError = err

	return e
}

// WithInternalMessage adds internal message information to the error.
func (e *HTTPError) WithInternalMessage(fmtString string, args ...interface{}) *HTTPError {
	e.InternalMessage = fmt.Sprintf(fmtString, args...)

	return e
}

func httpError(code int, fmtString string, args ...interface{}) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: fmt.Sprintf(fmtString, args...),
	}
}

// Reporter receives the errors answered with a 5xx status.
type Reporter interface {
	ReportError(ctx context.Context, err error) error
}

type reporterKey struct{}

// WithReporter returns a copy of ctx carrying rep.
func WithReporter(ctx context.Context, rep Reporter) context.Context {
	return context.WithValue(ctx, reporterKey{}, rep)
}

func reporterFromContext(ctx context.Context) Reporter {
	rep, _ := ctx.Value(reporterKey{}).(Reporter)

	return rep
}

// HandleError writes err to w. HTTPErrors are sent as they are, any
// other error is logged and answered with a generic 500 response.
// 5xx errors are also sent to the Reporter of the request context.
func HandleError(err error, w http.ResponseWriter, r *http.Request) {
	log := logs.GetLogEntry(r)
	errorID := middleware.GetReqID(r.Context())

	var httpErr *HTTPError

	if !errors.As(err, &httpErr) {
		// hide real error details from response to prevent info leaks
		httpErr = &HTTPError{
			Code:          http.StatusInternalServerError,
			Message:       "Internal server error",
			InternalError: err,
		}
	}

	if httpErr.Code >= http.StatusInternalServerError {
		httpErr.ErrorID = errorID

		log.Error(httpErr.Error(), zap.Error(httpErr.Cause()))

		if rep := reporterFromContext(r.Context()); rep != nil {
			if repErr := rep.ReportError(r.Context(), httpErr.Cause()); repErr != nil {
				log.Warn("report error", zap.Error(repErr))
			}
		}
	} else {
		log.Warn(httpErr.Error(), zap.Error(httpErr.Cause()))
	}

	if jsonErr := render.SendJSON(w, httpErr.Code, httpErr); jsonErr != nil {
		log.Error("send error response", zap.Error(jsonErr))
	}
}
