package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	perr "netmatch/internal/platform/errors"
)

// MaxBody caps how much of a JSON body is read
const MaxBody = 1 << 20

// ParseJSON decodes the request body into T and validates it
// unknown fields, trailing data and an empty body are rejected
func ParseJSON[T any](r *http.Request) (T, error) {
	var zero, dst T
	if r.Body == nil {
		return zero, perr.JSONErrf("empty body")
	}
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, perr.JSONErrf("empty body")
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if err := Get().Struct(dst); err != nil {
		return zero, err
	}
	return dst, nil
}
