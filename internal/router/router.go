// Package router wraps http.ServeMux with middleware chains, groups and
// path prefixes.
package router

import (
	"net/http"
	"slices"
)

// Middleware is a function that wraps an http.Handler
type Middleware func(http.Handler) http.Handler

// Router registers method patterns on a shared ServeMux. Sub-routers
// created by Group and Route share the mux and extend the chain or prefix.
type Router struct {
	mux    *http.ServeMux
	chain  []Middleware
	prefix string
}

// New creates a Router whose routes all run behind middleware, outermost first.
func New(middleware ...Middleware) *Router {
	return &Router{
		mux:   http.NewServeMux(),
		chain: middleware,
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *Router) Get(pattern string, handler http.HandlerFunc, middleware ...Middleware) {
	r.Handle(http.MethodGet, pattern, handler, middleware...)
}

func (r *Router) Post(pattern string, handler http.HandlerFunc, middleware ...Middleware) {
	r.Handle(http.MethodPost, pattern, handler, middleware...)
}

func (r *Router) Put(pattern string, handler http.HandlerFunc, middleware ...Middleware) {
	r.Handle(http.MethodPut, pattern, handler, middleware...)
}

func (r *Router) Delete(pattern string, handler http.HandlerFunc, middleware ...Middleware) {
	r.Handle(http.MethodDelete, pattern, handler, middleware...)
}

// Handle registers handler for method and the prefixed pattern. Route
// middleware runs inside the router's chain.
func (r *Router) Handle(method, pattern string, handler http.Handler, middleware ...Middleware) {
	r.mux.Handle(method+" "+r.prefix+pattern, r.wrap(handler, middleware))
}

// wrap builds chain(middleware(handler)) so middleware runs in the order listed.
func (r *Router) wrap(handler http.Handler, middleware []Middleware) http.Handler {
	combined := append(slices.Clone(r.chain), middleware...)
	for i := len(combined) - 1; i >= 0; i-- {
		handler = combined[i](handler)
	}
	return handler
}

// Group returns a sub-router that adds middleware to every route it registers.
func (r *Router) Group(middleware ...Middleware) *Router {
	return &Router{
		mux:    r.mux,
		chain:  append(slices.Clone(r.chain), middleware...),
		prefix: r.prefix,
	}
}

// Route calls fn with a sub-router whose patterns are relative to prefix.
// An empty pattern registers the prefix itself.
func (r *Router) Route(prefix string, fn func(r *Router)) {
	fn(&Router{
		mux:    r.mux,
		chain:  slices.Clone(r.chain),
		prefix: r.prefix + prefix,
	})
}

// NotFound answers every request no registered pattern matches. It still
// runs behind the router's chain, so CORS preflights reach their middleware.
func (r *Router) NotFound(handler http.HandlerFunc) {
	r.mux.Handle("/", r.wrap(handler, nil))
}
