package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	perr "netmatch/internal/platform/errors"
	"netmatch/internal/platform/logger"
	pnet "netmatch/internal/platform/net"
)

// RecoverJSON turns a panic into the standard 500 envelope
// the panic value and stack go to the request logger, never to the client
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}

			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(pnet.Failure(perr.PanicErrf("panic recovered"), reqID))
		}()
		next.ServeHTTP(w, r)
	})
}
