// Package router wraps a chi router with handlers that return errors.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/purposeinplay/go-invoicewords/http/httperr"
)

// Router is a chi router whose handlers return errors,
// which are written with httperr.HandleError.
type Router struct {
	Chi chi.Router
}

// New creates a Router and applies the options in order.
func New(opts ...Option) *Router {
	r := &Router{Chi: chi.NewRouter()}

	for _, o := range opts {
		o(r)
	}

	return r
}

// Route mounts a sub-Router along a pattern string.
func (r *Router) Route(pattern string, fn func(*Router)) {
	r.Chi.Route(pattern, func(c chi.Router) {
		fn(&Router{Chi: c})
	})
}

// Group adds a new inline-Router along the current routing path.
func (r *Router) Group(fn func(*Router)) {
	r.Chi.Group(func(c chi.Router) {
		fn(&Router{Chi: c})
	})
}

// Get routes GET requests matching pattern to fn.
func (r *Router) Get(pattern string, fn HandlerErrorFunc) {
	r.Chi.Get(pattern, fn.ServeHTTP)
}

// Post routes POST requests matching pattern to fn.
func (r *Router) Post(pattern string, fn HandlerErrorFunc) {
	r.Chi.Post(pattern, fn.ServeHTTP)
}

// Use appends middlewares to the router stack.
func (r *Router) Use(middlewares ...func(http.Handler) http.Handler) {
	r.Chi.Use(middlewares...)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.Chi.ServeHTTP(w, req)
}

// HandlerErrorFunc is an http handler returning an error.
type HandlerErrorFunc func(w http.ResponseWriter, r *http.Request) error

// ServeHTTP implements the http.Handler interface.
func (h HandlerErrorFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h(w, r); err != nil {
		httperr.HandleError(err, w, r)
	}
}
