// Package testkit holds assertions shared by the test suites
package testkit

import (
	"strings"
	"testing"
)

// MustPanic fails t unless fn panics, and returns what it panicked with
func MustPanic(t testing.TB, fn func()) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
	return nil
}

// MustContain fails t unless haystack contains every needle
func MustContain(t testing.TB, haystack string, needles ...string) {
	t.Helper()
	for _, n := range needles {
		if !strings.Contains(haystack, n) {
			t.Fatalf("expected %q in:\n%s", n, haystack)
		}
	}
}
