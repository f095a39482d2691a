// Package upstream provides the HTTP client for the tracker admin API that
// lists affiliate networks, campaign groups and traffic sources
package upstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"netmatch/internal/core/version"
	perr "netmatch/internal/platform/errors"
	"netmatch/internal/platform/logger"
	pnet "netmatch/internal/platform/net"
)

const (
	defaultTimeout         = 15 * time.Second
	defaultRPS             = 10
	defaultBurst           = 5
	defaultBreakerFailures = 5
	defaultBreakerCooldown = 30 * time.Second

	maxBodyBytes  = 16 << 20
	maxErrorBytes = 2048
)

// Options configures the Client
type Options struct {
	BaseURL   string
	APIKey    string
	UserAgent string
	Timeout   time.Duration

	// Client side token bucket in front of every request
	RPS   float64
	Burst int

	// Consecutive transport or 5xx failures that open the breaker and how long it stays open
	BreakerFailures uint32
	BreakerCooldown time.Duration

	// HTTPClient overrides the default client; Timeout is ignored when set
	HTTPClient *http.Client
}

// Client is a rate limited, circuit broken client for the entity API
// No request is retried; failures are surfaced to the caller as upstream errors
type Client struct {
	http    *http.Client
	opts    Options
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	log     logger.Logger
	now     func() time.Time
	newID   func() string
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	o.BaseURL = strings.TrimRight(strings.TrimSpace(o.BaseURL), "/")
	if o.UserAgent == "" {
		o.UserAgent = version.UserAgent()
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.RPS <= 0 {
		o.RPS = defaultRPS
	}
	if o.Burst <= 0 {
		o.Burst = defaultBurst
	}
	if o.BreakerFailures == 0 {
		o.BreakerFailures = defaultBreakerFailures
	}
	if o.BreakerCooldown <= 0 {
		o.BreakerCooldown = defaultBreakerCooldown
	}

	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}

	c := &Client{
		http:    hc,
		opts:    o,
		limiter: rate.NewLimiter(rate.Limit(o.RPS), o.Burst),
		log:     *logger.Named("upstream"),
		now:     time.Now,
		newID:   uuid.NewString,
	}

	failures := o.BreakerFailures
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "upstream",
		MaxRequests: 1,
		Timeout:     o.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("upstream breaker state changed")
		},
	})
	return c
}

// BaseURL returns the configured API root
func (c *Client) BaseURL() string { return c.opts.BaseURL }

// BreakerState reports the circuit breaker state (closed, half-open, open)
func (c *Client) BreakerState() string { return c.breaker.State().String() }

// Close releases idle keep-alive connections
func (c *Client) Close() { c.http.CloseIdleConnections() }

// response is a fully read upstream reply
type response struct {
	status int
	body   []byte
}

// serverError marks a 5xx reply so the breaker counts it
type serverError struct{ res *response }

func (e *serverError) Error() string { return http.StatusText(e.res.status) }

// Do issues a GET for path and returns the status and body
// Transport failures and an open breaker come back as upstream errors tagged with what
// Any reply, 5xx included, is returned for the caller to classify; 5xx still counts against the breaker
func (c *Client) Do(ctx context.Context, what, path string) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, perr.WrapUpstream(err, "failed to fetch %s: rate limit wait aborted", what)
	}

	out, err := c.breaker.Execute(func() (any, error) {
		res, err := c.roundTrip(ctx, path)
		if err != nil {
			return nil, err
		}
		if res.status >= http.StatusInternalServerError {
			return nil, &serverError{res: res}
		}
		return res, nil
	})

	var se *serverError
	switch {
	case err == nil:
		res := out.(*response)
		return res.status, res.body, nil
	case errors.As(err, &se):
		return se.res.status, se.res.body, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		c.log.Warn().Str("path", path).Str("breaker", c.BreakerState()).Msg("upstream request rejected by breaker")
		return 0, nil, perr.WrapUpstream(err, "failed to fetch %s: upstream unavailable", what)
	default:
		c.log.Error().Err(err).Str("path", path).Msg("upstream transport error")
		return 0, nil, perr.WrapUpstream(err, "failed to fetch %s: upstream unreachable", what)
	}
}

func (c *Client) roundTrip(ctx context.Context, path string) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("Api-Key", c.opts.APIKey)
	req.Header.Set("User-Agent", c.opts.UserAgent)
	reqID := pnet.RequestID(ctx)
	if reqID == "" {
		reqID = c.newID()
	}
	req.Header.Set("X-Request-ID", reqID)

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("upstream close body failed")
		}
	}()

	limit := int64(maxBodyBytes)
	if resp.StatusCode != http.StatusOK {
		// a small head of the body is enough for diagnostics
		limit = maxErrorBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, err
	}
	lat := c.now().Sub(start)

	c.log.Debug().
		Str("path", path).
		Str("request_id", reqID).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("latency", lat).
		Msg("upstream http response")

	return &response{status: resp.StatusCode, body: body}, nil
}
