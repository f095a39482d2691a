package module

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"netmatch/internal/adapters/upstream"
	"netmatch/internal/adapters/upstream/upstreamtest"
	modkit "netmatch/internal/modkit"
	phttp "netmatch/internal/platform/net/http"
	"netmatch/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestModule_SearchRoundTrip(t *testing.T) {
	t.Parallel()

	fake := &upstreamtest.Fake{Lists: map[upstream.Kind][]upstream.Entity{
		upstream.KindSources: upstreamtest.Entities(t, `[{"id":7,"name":"PushHouse","type":"push"},{"id":8,"name":"Native One"}]`),
	}}
	m := New(modkit.Deps{Upstream: fake})
	if m.Name() != "sources" {
		t.Fatalf("name = %q", m.Name())
	}

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sources/search?substring=%D0%BF%D1%83%D1%88&source_type=push", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	testkit.MustContain(t, rec.Body.String(), `"sources":[{"id":7,"name":"PushHouse","type":"push"}]`)
	testkit.MustContain(t, rec.Body.String(), `Found 1 traffic source matching 'пуш': PushHouse`)

	if calls := fake.Calls(); len(calls) != 1 || calls[0].Filter != "push" {
		t.Fatalf("calls = %+v", calls)
	}
}

func TestModule_Ports(t *testing.T) {
	t.Parallel()

	m := New(modkit.Deps{Upstream: &upstreamtest.Fake{}})
	if p := modkit.MustPortsOf[Ports](m); p.Searcher == nil {
		t.Fatalf("Searcher port missing")
	}
}

func TestModule_RequiresUpstream(t *testing.T) {
	t.Parallel()
	testkit.MustPanic(t, func() { _ = New(modkit.Deps{}) })
}
