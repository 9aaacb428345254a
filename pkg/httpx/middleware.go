// Package httpx holds the HTTP plumbing shared by handlers: JSON response
// helpers, a middleware chain, bearer authentication, and rate limiting.
package httpx

import "net/http"

// Middleware wraps an http.Handler with additional behaviour.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares to h so the first middleware listed is the
// outermost one at request time.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
