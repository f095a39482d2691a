package middleware_test

import (
	"compress/flate"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	pnet "netmatch/internal/platform/net"
	"netmatch/internal/platform/net/middleware"
)

func run(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func noContent(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }

func TestRequestID_KeepsOrMints(t *testing.T) {
	t.Parallel()

	var seen []string
	h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, pnet.RequestID(r.Context()))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "from-client")
	run(h, req)
	run(h, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen[0] != "from-client" {
		t.Fatalf("client id replaced: %q", seen[0])
	}
	if seen[1] == "" {
		t.Fatalf("no id minted")
	}
}

func TestThrottle_ZeroIsPassthrough(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(noContent)
	rec := run(middleware.Throttle(0)(next), httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	rec = run(middleware.Throttle(4)(next), httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("throttled status = %d", rec.Code)
	}
}

func TestTimeout_SetsDeadline(t *testing.T) {
	t.Parallel()

	var left time.Duration
	h := middleware.Timeout(time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := r.Context().Deadline()
		if ok {
			left = time.Until(d)
		}
	}))
	run(h, httptest.NewRequest(http.MethodGet, "/", nil))
	if left <= 0 || left > time.Minute {
		t.Fatalf("deadline in %v", left)
	}
}

func TestAllowContentType(t *testing.T) {
	t.Parallel()

	h := middleware.AllowContentType("application/json")(http.HandlerFunc(noContent))

	form := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("q=x"))
	form.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if rec := run(h, form); rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("form body status = %d", rec.Code)
	}

	js := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"substring":"x"}`))
	js.Header.Set("Content-Type", "application/json; charset=utf-8")
	if rec := run(h, js); rec.Code != http.StatusNoContent {
		t.Fatalf("json body status = %d", rec.Code)
	}
}

func TestCompress_Gzip(t *testing.T) {
	t.Parallel()

	body := strings.Repeat(`{"name":"Easy Media"},`, 200)
	h := middleware.Compress(flate.BestSpeed)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := run(h, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("Content-Encoding = %q", rec.Header().Get("Content-Encoding"))
	}
	if rec.Body.Len() >= len(body) {
		t.Fatalf("body not compressed: %d >= %d", rec.Body.Len(), len(body))
	}
}

func TestStripSlashesAndHeartbeat(t *testing.T) {
	t.Parallel()

	var path string
	h := middleware.Heartbeat("/health")(middleware.StripSlashes(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
	})))

	if rec := run(h, httptest.NewRequest(http.MethodGet, "/health", nil)); rec.Code != http.StatusOK || path != "" {
		t.Fatalf("heartbeat code=%d reached=%q", rec.Code, path)
	}
	run(h, httptest.NewRequest(http.MethodGet, "/groups/search/", nil))
	if path != "/groups/search" {
		t.Fatalf("path = %q", path)
	}
}

func TestCORS(t *testing.T) {
	t.Parallel()

	h := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"https://ops.example"}})(http.HandlerFunc(noContent))

	preflight := func(method string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/groups/search", nil)
		req.Header.Set("Origin", "https://ops.example")
		req.Header.Set("Access-Control-Request-Method", method)
		return run(h, req)
	}

	if got := preflight(http.MethodPost).Header().Get("Access-Control-Allow-Methods"); got != http.MethodPost {
		t.Fatalf("POST preflight allow methods = %q", got)
	}
	if got := preflight(http.MethodDelete).Header().Get("Access-Control-Allow-Methods"); got != "" {
		t.Fatalf("DELETE preflight allowed: %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/networks", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	if got := run(h, req).Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("foreign origin allowed: %q", got)
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	var remote, reqID string
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remote = r.RemoteAddr
		reqID = pnet.RequestID(r.Context())
		if r.URL.Path == "/boom" {
			panic("boom")
		}
		w.WriteHeader(http.StatusNoContent)
	})
	stack := middleware.Defaults()
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	rec := run(h, req)
	if rec.Code != http.StatusNoContent || remote != "203.0.113.7" || reqID == "" {
		t.Fatalf("code=%d remote=%q id=%q", rec.Code, remote, reqID)
	}
	if !strings.Contains(rec.Header().Get("Cache-Control"), "no-cache") {
		t.Fatalf("Cache-Control = %q", rec.Header().Get("Cache-Control"))
	}

	rec = run(h, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("panic status = %d", rec.Code)
	}
	var w pnet.Wire
	if err := json.Unmarshal(rec.Body.Bytes(), &w); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w.RequestID == "" || w.RequestID != reqID {
		t.Fatalf("envelope request id = %q, want %q", w.RequestID, reqID)
	}
}
