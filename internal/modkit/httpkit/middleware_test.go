package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"netmatch/internal/platform/net/middleware"
)

func wrapAll(h http.Handler, stack []middleware.Middleware) http.Handler {
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}
	return h
}

func TestCommonStack_Health(t *testing.T) {
	t.Parallel()

	h := wrapAll(http.NotFoundHandler(), CommonStack())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/health = %d %s", rec.Code, rec.Body.String())
	}
}

func TestCommonStack_RequestShape(t *testing.T) {
	t.Parallel()

	var (
		calls    int
		path     string
		deadline bool
	)
	h := wrapAll(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		path = r.URL.Path
		_, deadline = r.Context().Deadline()
		w.WriteHeader(http.StatusNoContent)
	}), CommonStack(StackOptions{
		CORS:    middleware.CORSOptions{AllowedOrigins: []string{"https://ops.example"}},
		Timeout: time.Second,
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/networks/", nil)
	req.Header.Set("Origin", "https://ops.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if calls != 1 || rec.Code != http.StatusNoContent {
		t.Fatalf("calls=%d code=%d", calls, rec.Code)
	}
	if path != "/api/v1/networks" {
		t.Fatalf("trailing slash kept: %q", path)
	}
	if !deadline {
		t.Fatalf("no request deadline")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://ops.example" {
		t.Fatalf("allow origin = %q", got)
	}
	if rec.Header().Get("Cache-Control") == "" {
		t.Fatalf("no-cache default missing: %v", rec.Header())
	}
}
