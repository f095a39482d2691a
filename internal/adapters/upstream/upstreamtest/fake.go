// Package upstreamtest provides an in memory entity source for tests
package upstreamtest

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"netmatch/internal/adapters/upstream"
)

// Call records one fetch made against a Fake
type Call struct {
	Kind   upstream.Kind
	Filter string
}

// Fake serves fixed entity lists and records every call
// a nil map entry yields an empty list
type Fake struct {
	Lists   map[upstream.Kind][]upstream.Entity
	Err     error
	PingErr error
	State   string

	mu    sync.Mutex
	calls []Call
}

// Networks implements the entity source port
func (f *Fake) Networks(ctx context.Context) ([]upstream.Entity, error) {
	return f.fetch(upstream.KindNetworks, "")
}

// Groups implements the entity source port
func (f *Fake) Groups(ctx context.Context, groupType string) ([]upstream.Entity, error) {
	return f.fetch(upstream.KindGroups, groupType)
}

// Sources implements the entity source port
func (f *Fake) Sources(ctx context.Context, sourceType string) ([]upstream.Entity, error) {
	return f.fetch(upstream.KindSources, sourceType)
}

// Ping implements the entity source port
func (f *Fake) Ping(context.Context) error { return f.PingErr }

// BreakerState implements the entity source port
func (f *Fake) BreakerState() string {
	if f.State == "" {
		return "closed"
	}
	return f.State
}

// Calls returns a copy of the recorded calls in order
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

func (f *Fake) fetch(kind upstream.Kind, filter string) ([]upstream.Entity, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Kind: kind, Filter: filter})
	f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	list := f.Lists[kind]
	if list == nil {
		list = []upstream.Entity{}
	}
	return list, nil
}

// Entities decodes a JSON array fixture or fails the test
func Entities(t testing.TB, raw string) []upstream.Entity {
	t.Helper()
	var out []upstream.Entity
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("entity fixture: %v", err)
	}
	return out
}

// Named builds entities with sequential numeric ids from names
func Named(t testing.TB, names ...string) []upstream.Entity {
	t.Helper()
	out := make([]upstream.Entity, 0, len(names))
	for i, n := range names {
		b, err := json.Marshal(map[string]any{"id": i + 1, "name": n})
		if err != nil {
			t.Fatalf("entity fixture: %v", err)
		}
		e, err := upstream.NewEntity(b)
		if err != nil {
			t.Fatalf("entity fixture: %v", err)
		}
		out = append(out, e)
	}
	return out
}
