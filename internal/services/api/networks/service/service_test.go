package service

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"netmatch/internal/adapters/upstream"
	"netmatch/internal/core/fuzzy"
	perr "netmatch/internal/platform/errors"
	"netmatch/internal/platform/testkit"
	"netmatch/internal/services/api/networks/domain"
)

type fakeSource struct {
	list []upstream.Entity
	err  error
}

func (f fakeSource) Networks(context.Context) ([]upstream.Entity, error) { return f.list, f.err }

func entities(t *testing.T, raw string) []upstream.Entity {
	t.Helper()
	var out []upstream.Entity
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return out
}

func TestFind_TransliteratedQuery(t *testing.T) {
	t.Parallel()

	src := fakeSource{list: entities(t, `[{"id":7,"name":"Facebook Ads"},{"id":42,"name":"Google Ads"}]`)}
	got, err := New(src, nil).Find(context.Background(), domain.FindInput{Name: "Гугл Адс"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got.Match == nil || *got.Match != "Google Ads" {
		t.Fatalf("match = %v", got.Match)
	}
	if got.Similarity == nil || *got.Similarity < fuzzy.DefaultThreshold {
		t.Fatalf("similarity = %v", got.Similarity)
	}
	if string(got.NetworkID) != "42" {
		t.Fatalf("network_id = %s", got.NetworkID)
	}
	want := "Найдено: Google Ads (схожесть: " + strconv.Itoa(*got.Similarity) + "%)"
	if got.Message != want {
		t.Fatalf("message = %q, want %q", got.Message, want)
	}
}

func TestFind_NoMatchIsNotAnError(t *testing.T) {
	t.Parallel()

	src := fakeSource{list: entities(t, `[{"id":1,"name":"Google Ads"},{"id":2,"name":"Facebook Ads"}]`)}
	got, err := New(src, nil).Find(context.Background(), domain.FindInput{Name: "xyzxyz"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got.Match != nil || got.Similarity != nil || got.NetworkID != nil {
		t.Fatalf("expected nulls, got %+v", got)
	}
	if got.Message != "Название не найдено" {
		t.Fatalf("message = %q", got.Message)
	}

	b, _ := json.Marshal(got)
	if string(b) != `{"match":null,"similarity":null,"network_id":null,"message":"Название не найдено"}` {
		t.Fatalf("wire = %s", b)
	}
}

func TestFind_ThresholdFromMatcher(t *testing.T) {
	t.Parallel()

	src := fakeSource{list: entities(t, `[{"id":1,"name":"Facebook Ads"},{"id":2,"name":"Google Ads"}]`)}
	got, err := New(src, fuzzy.New(95)).Find(context.Background(), domain.FindInput{Name: "Гугл Адс"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got.Match != nil {
		t.Fatalf("strict matcher accepted %q", *got.Match)
	}
}

func TestFind_EmptyList(t *testing.T) {
	t.Parallel()

	got, err := New(fakeSource{list: []upstream.Entity{}}, nil).Find(context.Background(), domain.FindInput{Name: "google"})
	if err != nil || got.Match != nil {
		t.Fatalf("Find on empty list = %+v, %v", got, err)
	}
}

func TestFind_MissingIDStaysNull(t *testing.T) {
	t.Parallel()

	src := fakeSource{list: entities(t, `[{"name":"Google Ads"}]`)}
	got, err := New(src, nil).Find(context.Background(), domain.FindInput{Name: "google ads"})
	if err != nil || got.Match == nil {
		t.Fatalf("Find = %+v, %v", got, err)
	}
	if got.NetworkID != nil {
		t.Fatalf("network_id = %s, want null", got.NetworkID)
	}
}

func TestFind_UpstreamErrorPropagates(t *testing.T) {
	t.Parallel()

	src := fakeSource{err: perr.Upstreamf("failed to fetch networks: down")}
	_, err := New(src, nil).Find(context.Background(), domain.FindInput{Name: "x"})
	if !perr.IsUpstream(err) {
		t.Fatalf("want upstream error, got %v", err)
	}
}

func TestNew_NilSourcePanics(t *testing.T) {
	t.Parallel()
	testkit.MustPanic(t, func() { New(nil, nil) })
}

