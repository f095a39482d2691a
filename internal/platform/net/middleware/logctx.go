package middleware

import (
	"net"
	"net/http"

	"netmatch/internal/platform/logger"
	pnet "netmatch/internal/platform/net"
)

// LogContext copies the request id and client ip onto the request scoped logger
// Mount after RequestID and RealIP so both values are settled
func LogContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}
		ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()), ip)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
