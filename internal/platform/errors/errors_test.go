package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	t.Parallel()

	for code, want := range map[ErrorCode]int{
		ErrorCodeUnknown:         http.StatusInternalServerError,
		ErrorCodePanic:           http.StatusInternalServerError,
		ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
		ErrorCodeValidation:      http.StatusBadRequest,
		ErrorCodeJSON:            http.StatusBadRequest,
		ErrorCodeUpstream:        http.StatusBadGateway,
		ErrorCode(999):           http.StatusInternalServerError,
	} {
		if got := HTTPStatusCode(code); got != want {
			t.Fatalf("HTTPStatusCode(%d) = %d, want %d", code, got, want)
		}
	}
}

func TestWireCodesAreStable(t *testing.T) {
	t.Parallel()

	if ErrorCodePanic != 1 || ErrorCodeValidation != 6 || ErrorCodeUpstream != 9 {
		t.Fatalf("wire codes moved: panic=%d validation=%d upstream=%d", ErrorCodePanic, ErrorCodeValidation, ErrorCodeUpstream)
	}
}

func TestError_MessageAndCause(t *testing.T) {
	t.Parallel()

	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil render = %q", nilErr.Error())
	}

	cause := stderrs.New("dial tcp: connection refused")
	err := WrapUpstream(cause, "failed to fetch %s", "networks")
	if err.Error() != "failed to fetch networks: dial tcp: connection refused" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !stderrs.Is(err, cause) {
		t.Fatal("cause lost")
	}
	// the cause stays server side
	if w := WireFrom(err); w.Code != ErrorCodeUpstream || w.Message != "failed to fetch networks" {
		t.Fatalf("wire = %+v", w)
	}
}

func TestWireFrom(t *testing.T) {
	t.Parallel()

	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("nil = %+v", w)
	}
	if w := WireFrom(stderrs.New("plain")); w.Code != ErrorCodeUnknown || w.Message != "plain" {
		t.Fatalf("foreign = %+v", w)
	}
	detail := `failed to fetch groups: {"error":"Invalid API key"}`
	if w := WireFrom(fmt.Errorf("service: %w", Upstreamf("%s", detail))); w.Message != detail {
		t.Fatalf("wrapped upstream = %+v", w)
	}
}

func TestWithField_CopiesOnWrite(t *testing.T) {
	t.Parallel()

	base := Validationf("substring is a required field")
	named := WithField(base, "substring")
	if e, _ := As(named); e.Field() != "substring" {
		t.Fatalf("field = %q", e.Field())
	}
	if e, _ := As(base); e.Field() != "" {
		t.Fatal("original mutated")
	}
	plain := stderrs.New("x")
	if WithField(plain, "f") != plain {
		t.Fatal("foreign error replaced")
	}
}

func TestCodeHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want ErrorCode
	}{
		{InvalidArgf("x"), ErrorCodeInvalidArgument},
		{Validationf("x"), ErrorCodeValidation},
		{JSONErrf("x"), ErrorCodeJSON},
		{PanicErrf("x"), ErrorCodePanic},
		{Upstreamf("x"), ErrorCodeUpstream},
		{Newf(ErrorCodeTooManyRequests, "x"), ErrorCodeTooManyRequests},
		{stderrs.New("x"), ErrorCodeUnknown},
		{nil, ErrorCodeUnknown},
	}
	for _, tc := range tests {
		if got := CodeOf(tc.err); got != tc.want || !IsCode(tc.err, tc.want) {
			t.Fatalf("CodeOf(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
	if !IsUpstream(fmt.Errorf("wrap: %w", Upstreamf("x"))) || IsUpstream(Validationf("x")) {
		t.Fatal("IsUpstream misclassified")
	}
	if HTTPStatus(Upstreamf("x")) != http.StatusBadGateway || HTTPStatus(stderrs.New("x")) != http.StatusInternalServerError {
		t.Fatal("HTTPStatus mismatch")
	}
}
