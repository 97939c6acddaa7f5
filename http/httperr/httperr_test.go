package httperr_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/purposeinplay/go-invoicewords/http/httperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reporterFunc func(ctx context.Context, err error) error

func (f reporterFunc) ReportError(ctx context.Context, err error) error {
	return f(ctx, err)
}

func TestHandleError(t *testing.T) {
	t.Parallel()

	t.Run("HTTPError", func(t *testing.T) {
		t.Parallel()

		rr := httptest.NewRecorder()

		httperr.HandleError(
			httperr.UnprocessableEntityError("amount too large"),
			rr,
			httptest.NewRequest(http.MethodGet, "/", nil),
		)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.JSONEq(t, `{"code":422,"msg":"amount too large"}`, rr.Body.String())
	})

	t.Run("WrappedHTTPError", func(t *testing.T) {
		t.Parallel()

		rr := httptest.NewRecorder()

		err := httperr.BadRequestError("bad amount")

		httperr.HandleError(
			errors.Join(errors.New("handler"), err),
			rr,
			httptest.NewRequest(http.MethodGet, "/", nil),
		)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("HidesInternalErrors", func(t *testing.T) {
		t.Parallel()

		var reported error

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(httperr.WithReporter(
			req.Context(),
			reporterFunc(func(_ context.Context, err error) error {
				reported = err

				return nil
			}),
		))

		rr := httptest.NewRecorder()

		internal := errors.New("database password is hunter2")

		httperr.HandleError(internal, rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "hunter2")

		var body httperr.HTTPError

		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Internal server error", body.Message)

		assert.Same(t, internal, reported)
	})

	t.Run("ReportsCause", func(t *testing.T) {
		t.Parallel()

		var reported error

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(httperr.WithReporter(
			req.Context(),
			reporterFunc(func(_ context.Context, err error) error {
				reported = err

				return nil
			}),
		))

		cause := errors.New("cause")

		httperr.HandleError(
			httperr.InternalServerError("failed").WithInternalError(cause),
			httptest.NewRecorder(),
			req,
		)

		assert.Same(t, cause, reported)
	})
}
