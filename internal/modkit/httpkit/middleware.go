package httpkit

import (
	"compress/flate"
	"time"

	"netmatch/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack, zero fields keep the defaults
type StackOptions struct {
	CORS        middleware.CORSOptions
	Timeout     time.Duration // 30s
	MaxInFlight int           // unlimited
	SlowRequest time.Duration // 2s
}

// CommonStack is the middleware every API router starts with, outermost first
func CommonStack(opts ...StackOptions) []middleware.Middleware {
	o := StackOptions{Timeout: 30 * time.Second, SlowRequest: 2 * time.Second}
	if len(opts) > 0 {
		o.CORS = opts[0].CORS
		o.MaxInFlight = opts[0].MaxInFlight
		if opts[0].Timeout > 0 {
			o.Timeout = opts[0].Timeout
		}
		if opts[0].SlowRequest > 0 {
			o.SlowRequest = opts[0].SlowRequest
		}
	}

	return append(middleware.Defaults(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		middleware.CORS(o.CORS),
		middleware.Throttle(o.MaxInFlight),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes,
		middleware.Timeout(o.Timeout),
	)
}
