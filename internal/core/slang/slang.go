// Package slang expands search tokens through a small bidirectional slang table
package slang

import (
	"sort"
	"strings"
)

// forward maps an informal token to its canonical english form
var forward = map[string]string{
	"изи":   "easy",
	"еазы":  "easy",
	"легко": "easy",
}

// reverse indexes every canonical value back to its informal keys, sorted
var reverse = func() map[string][]string {
	out := make(map[string][]string, len(forward))
	for k, v := range forward {
		out[v] = append(out[v], k)
	}
	for v := range out {
		sort.Strings(out[v])
	}
	return out
}()

// Expand returns the tokens equivalent to token, one hop in both directions
// The forward value comes first, then the reverse keys in sorted order
// nil is returned when token is not in the table
func Expand(token string) []string {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return nil
	}
	var out []string
	if v, ok := forward[t]; ok {
		out = append(out, v)
	}
	if keys, ok := reverse[t]; ok {
		out = append(out, keys...)
	}
	return out
}

// Entry is one row of the slang table
type Entry struct {
	Slang     string `json:"slang"`
	Canonical string `json:"canonical"`
}

// Entries returns a sorted copy of the table
func Entries() []Entry {
	out := make([]Entry, 0, len(forward))
	for k, v := range forward {
		out = append(out, Entry{Slang: k, Canonical: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slang < out[j].Slang })
	return out
}
