package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"netmatch/internal/platform/logger"
	"netmatch/internal/platform/net/middleware"
	kit "netmatch/internal/platform/testkit"
)

func TestLogContext_EnrichesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := logger.C(r.Context()).Output(&buf).Level(zerolog.DebugLevel)
		l.Info().Msg("inside")
		w.WriteHeader(http.StatusNoContent)
	})

	h := middleware.RequestID(middleware.LogContext(next))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:5555"
	req.Header.Set("X-Request-Id", "rid-7")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rr.Code)
	}
	out := buf.String()
	kit.MustContain(t, out, `"request_id":"rid-7"`)
	kit.MustContain(t, out, `"remote_ip":"192.0.2.10"`)
}
