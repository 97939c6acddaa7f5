package router

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/purposeinplay/go-invoicewords/http/httperr"
	"github.com/purposeinplay/go-invoicewords/http/render"
	"go.uber.org/zap"
)

// Recoverer is a middleware that recovers from panics, logs the panic (and a
// backtrace), and returns a HTTP 500 (Internal Server Error) status if
// possible.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}

			// net/http relies on this panic to abort the response.
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			if entry := middleware.GetLogEntry(r); entry != nil {
				entry.Panic(rvr, debug.Stack())
			}

			httperr.HandleError(
				httperr.InternalServerError(http.StatusText(http.StatusInternalServerError)).
					WithInternalError(fmt.Errorf("panic: %v", rvr)),
				w,
				r,
			)
		}()

		next.ServeHTTP(w, r)
	})
}

// Healthcheck answers {"status":"ok"}.
func Healthcheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := render.SendJSON(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
			zap.L().Error("send healthcheck", zap.Error(err))
		}
	}
}
