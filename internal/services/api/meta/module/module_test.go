package module

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"netmatch/internal/adapters/upstream/upstreamtest"
	"netmatch/internal/core/fuzzy"
	modkit "netmatch/internal/modkit"
	phttp "netmatch/internal/platform/net/http"
	"netmatch/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestModule_Routes(t *testing.T) {
	t.Parallel()

	m := New(modkit.Deps{Upstream: &upstreamtest.Fake{}, Matcher: fuzzy.New(70)})
	if m.Name() != "meta" || m.Ports() != nil {
		t.Fatalf("name=%q ports=%v", m.Name(), m.Ports())
	}

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: `"message":"Welcome to Network Name Matcher API"`},
		{path: "/meta/health", want: `"service":"netmatch-api"`},
		{path: "/meta/ready", want: `"status":"ok"`},
		{path: "/meta/matcher", want: `"threshold":70`},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d", tc.path, rec.Code)
		}
		testkit.MustContain(t, rec.Body.String(), tc.want)
	}
}

func TestModule_WithoutUpstream(t *testing.T) {
	t.Parallel()

	mux := chi.NewRouter()
	New(modkit.Deps{}).MountRoutes(phttp.AdaptChi(mux))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meta/ready", nil))
	testkit.MustContain(t, rec.Body.String(), `"status":"skipped"`)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meta/matcher", nil))
	testkit.MustContain(t, rec.Body.String(), `"threshold":50`)
}
