package httpkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "netmatch/internal/platform/errors"
	phttp "netmatch/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type lookup struct {
	Name string `json:"name" validate:"required"`
}

type search struct {
	Substring *string `query:"substring" validate:"required"`
	Type      string  `query:"group_type"`
}

func newRouter() (Router, *chi.Mux) {
	m := chi.NewRouter()
	return phttp.AdaptChi(m), m
}

func do(t *testing.T, h http.Handler, method, target, body string) (int, Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return rec.Code, env
}

func TestPostJSON(t *testing.T) {
	t.Parallel()

	r, m := newRouter()
	var got string
	PostJSON(r, "/find", func(_ *http.Request, in lookup) (any, error) {
		got = in.Name
		return map[string]string{"match": "Google Ads"}, nil
	})

	code, env := do(t, m, http.MethodPost, "/find", `{"name":"gugl"}`)
	if code != http.StatusOK || got != "gugl" {
		t.Fatalf("code=%d got=%q", code, got)
	}
	if data, _ := env.Data.(map[string]any); data["match"] != "Google Ads" {
		t.Fatalf("data = %#v", env.Data)
	}

	got = ""
	code, env = do(t, m, http.MethodPost, "/find", `{}`)
	if code != http.StatusBadRequest || env.Code != perr.ErrorCodeValidation || env.Error != "name is a required field" || got != "" {
		t.Fatalf("code=%d env=%+v", code, env)
	}
}

func TestGetQuery(t *testing.T) {
	t.Parallel()

	r, m := newRouter()
	var got search
	GetQuery(r, "/search", func(_ *http.Request, in search) (any, error) {
		got = in
		return []string{}, nil
	})

	if code, _ := do(t, m, http.MethodGet, "/search?substring=%D0%B3%D1%83%D0%B3%D0%BB&group_type=offers", ""); code != http.StatusOK {
		t.Fatalf("code = %d", code)
	}
	if got.Substring == nil || *got.Substring != "гугл" || got.Type != "offers" {
		t.Fatalf("bound %+v", got)
	}

	code, env := do(t, m, http.MethodGet, "/search", "")
	if code != http.StatusBadRequest || env.Error != "substring is a required field" {
		t.Fatalf("code=%d env=%+v", code, env)
	}
}

func TestGet_ErrorsAndResponses(t *testing.T) {
	t.Parallel()

	r, m := newRouter()
	Get(r, "/boom", func(*http.Request) (any, error) {
		return nil, perr.Upstreamf("failed to fetch networks: down")
	})
	Get(r, "/teapot", func(*http.Request) (any, error) {
		return Response{Status: http.StatusTeapot, Body: "short and stout"}, nil
	})

	code, env := do(t, m, http.MethodGet, "/boom", "")
	if code != http.StatusBadGateway || env.Code != perr.ErrorCodeUpstream || env.Error != "failed to fetch networks: down" {
		t.Fatalf("code=%d env=%+v", code, env)
	}

	code, env = do(t, m, http.MethodGet, "/teapot", "")
	if code != http.StatusTeapot || env.Data != "short and stout" {
		t.Fatalf("code=%d env=%+v", code, env)
	}
}

func TestMountAPIV1_ScopesMiddleware(t *testing.T) {
	t.Parallel()

	r, m := newRouter()
	tag := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Scope", "api")
			next.ServeHTTP(w, req)
		})
	}
	MountAPIV1(r, []func(http.Handler) http.Handler{tag}, func(api Router) {
		MountUnder(api, "/meta", nil, func(meta Router) {
			Get(meta, "/version", func(*http.Request) (any, error) { return "v1.2.3", nil })
		})
	})
	r.Get("/outside", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, APIPrefix+"/meta/version", nil))
	if rec.Code != http.StatusOK || rec.Header().Get("X-Scope") != "api" {
		t.Fatalf("code=%d scope=%q", rec.Code, rec.Header().Get("X-Scope"))
	}

	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/outside", nil))
	if rec.Code != http.StatusNoContent || rec.Header().Get("X-Scope") != "" {
		t.Fatalf("api middleware leaked: code=%d scope=%q", rec.Code, rec.Header().Get("X-Scope"))
	}
}
