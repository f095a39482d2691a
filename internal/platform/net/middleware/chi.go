// Package middleware holds the HTTP middleware of the API stack
// chi and go-chi/cors do the work; callers only see func(http.Handler) http.Handler
package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Middleware is the standard net/http middleware shape
type Middleware = func(http.Handler) http.Handler

var (
	// RequestID takes X-Request-Id from the request or mints one, and puts it on the context
	RequestID Middleware = chimw.RequestID
	// RealIP rewrites RemoteAddr from True-Client-IP, X-Real-IP or X-Forwarded-For
	RealIP Middleware = chimw.RealIP
	// NoCache marks every reply uncacheable; match results follow the live upstream lists
	NoCache Middleware = chimw.NoCache
	// StripSlashes routes /groups/search/ like /groups/search
	StripSlashes Middleware = chimw.StripSlashes
)

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// Compress negotiates gzip or deflate at level
func Compress(level int) Middleware { return chimw.NewCompressor(level).Handler }

// AllowContentType answers 415 to bodies of any other content type
func AllowContentType(ct ...string) Middleware { return chimw.AllowContentType(ct...) }

// Throttle caps requests in flight, limit <= 0 means no cap
func Throttle(limit int) Middleware {
	if limit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return chimw.Throttle(limit)
}

// Heartbeat answers GET and HEAD on path with 200 before routing
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// Defaults is the baseline every API stack starts with, outermost first
// request id and client ip reach the request logger before anything can panic
func Defaults() []Middleware {
	return []Middleware{RequestID, RealIP, LogContext, RecoverJSON, NoCache}
}
