package testkit

import "testing"

func TestMustPanic_ReturnsValue(t *testing.T) {
	t.Parallel()

	if got := MustPanic(t, func() { panic("upstream is required") }); got != "upstream is required" {
		t.Fatalf("recovered = %v", got)
	}
}

func TestMustContain(t *testing.T) {
	t.Parallel()

	MustContain(t, "Found 2 groups matching 'ads'", "Found 2", "'ads'")
}
