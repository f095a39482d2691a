// Package httpkit is what modules mount handlers with
// it binds input, calls the handler and wraps the result in the envelope
package httpkit

import (
	"net/http"

	phttp "netmatch/internal/platform/net/http"
	"netmatch/internal/platform/net/http/bind"
)

type (
	// Envelope is the reply body every endpoint answers with
	Envelope = phttp.Envelope
	// Response is what return-style handlers produce
	Response = phttp.Response
	// Handler is the plain handler func
	Handler = phttp.Handler
	// Router is the routing seam modules mount against
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Error returns a response whose status comes from err
func Error(err error) Response { return phttp.Error(err) }

// JSON binds and validates a JSON body into T before calling fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return wrap(fn(r, in))
	})
}

// Query binds and validates the query string into T before calling fn
func Query[T any](fn func(*http.Request, T) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) Response {
		in, err := bind.ParseQuery[T](r)
		if err != nil {
			return Error(err)
		}
		return wrap(fn(r, in))
	})
}

// Call adapts a handler without input
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) Response { return wrap(fn(r)) })
}

// a handler may return a ready Response to pick its own status or headers
func wrap(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
