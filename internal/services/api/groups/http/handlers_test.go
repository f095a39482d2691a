package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	perr "netmatch/internal/platform/errors"
	phttp "netmatch/internal/platform/net/http"
	"netmatch/internal/platform/testkit"
	"netmatch/internal/services/api/groups/domain"

	"github.com/go-chi/chi/v5"
)

type fakeSvc struct {
	calls int
	got   domain.SearchInput
	err   error
}

func (f *fakeSvc) Search(_ context.Context, in domain.SearchInput) (domain.SearchResult, error) {
	f.calls++
	f.got = in
	return domain.SearchResult{Count: 0, Message: "Found 0 groups containing '" + in.Query() + "'"}, f.err
}

func get(s domain.ServicePort, target string) *httptest.ResponseRecorder {
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), s)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, target, nil))
	return rec
}

func TestSearch_BindsQuery(t *testing.T) {
	t.Parallel()

	svc := &fakeSvc{}
	rec := get(svc, "/search?substring=%D0%B8%D0%B7%D0%B8&group_type=offers")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if svc.got.Query() != "изи" || svc.got.GroupType != "offers" {
		t.Fatalf("bound %+v", svc.got)
	}
	testkit.MustContain(t, rec.Body.String(), `"message":"Found 0 groups containing 'изи'"`)
}

func TestSearch_EmptySubstringAllowed(t *testing.T) {
	t.Parallel()

	svc := &fakeSvc{}
	if rec := get(svc, "/search?substring="); rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if svc.calls != 1 {
		t.Fatalf("service not called")
	}
}

func TestSearch_MissingSubstringIs400(t *testing.T) {
	t.Parallel()

	svc := &fakeSvc{}
	rec := get(svc, "/search?group_type=campaigns")
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	testkit.MustContain(t, rec.Body.String(), "substring")
	if svc.calls != 0 {
		t.Fatalf("service called without substring")
	}
}

func TestSearch_UpstreamFailureIs502(t *testing.T) {
	t.Parallel()

	rec := get(&fakeSvc{err: perr.Upstreamf("failed to fetch groups: boom")}, "/search?substring=x")
	if rec.Code != stdhttp.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
	testkit.MustContain(t, rec.Body.String(), "failed to fetch groups: boom")
}
