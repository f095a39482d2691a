// Package http carries the chi server, the Router seam and the envelope writers
package http

import (
	"encoding/json"
	stdhttp "net/http"

	pnet "netmatch/internal/platform/net"
)

// Envelope wraps every body the API writes
type Envelope = pnet.Wire

// JSON encodes v with status as application/json
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is the return value of a handler
// an error Body picks status and code from the error, anything else becomes Data
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// OK is a 200 carrying data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error is a failure response for err
func Error(err error) Response { return Response{Body: err} }

// Handle serves whatever h returns, wrapped in the envelope
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		resp := h(r)
		for k, vs := range resp.Header {
			k = stdhttp.CanonicalHeaderKey(k)
			w.Header()[k] = append(w.Header()[k], vs...)
		}
		env := resp.envelope(pnet.RequestID(r.Context()))
		JSON(w, env.StatusCode, env)
	}
}

func (resp Response) envelope(reqID string) Envelope {
	if err, ok := resp.Body.(error); ok && err != nil {
		return pnet.Failure(err, reqID)
	}
	if resp.Status == 0 {
		resp.Status = stdhttp.StatusOK
	}
	return pnet.Success(resp.Status, resp.Body, reqID)
}
