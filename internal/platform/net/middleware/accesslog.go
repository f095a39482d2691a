package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"netmatch/internal/platform/logger"
)

// AccessLogOptions configures AccessLogZerolog
type AccessLogOptions struct {
	// Slow bumps requests at or over this duration to warn, 0 turns it off
	Slow time.Duration
	// Log replaces the request scoped logger
	Log *logger.Logger
}

// AccessLogZerolog emits a "request done" line after the handler returns
// the raw query is kept so a surprising match can be replayed
func AccessLogZerolog(opt AccessLogOptions) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			took := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			l := opt.Log
			if l == nil {
				l = logger.C(r.Context())
			}
			l.WithLevel(accessLevel(status, took, opt.Slow)).
				Bool("slow", opt.Slow > 0 && took >= opt.Slow).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("query", r.URL.RawQuery).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", took).
				Msg("request done")
		})
	}
}

func accessLevel(status int, took, slow time.Duration) zerolog.Level {
	if status >= http.StatusInternalServerError {
		return zerolog.ErrorLevel
	}
	if slow > 0 && took >= slow {
		return zerolog.WarnLevel
	}
	return zerolog.InfoLevel
}
