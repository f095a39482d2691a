// Package http serves the meta routes: welcome, health, readiness, version and matcher tables
package http

import (
	"context"
	"net/http"
	"time"

	"netmatch/internal/core/slang"
	"netmatch/internal/core/translit"
	"netmatch/internal/core/version"
	"netmatch/internal/modkit/httpkit"
	"netmatch/internal/modkit/swaggerkit"
)

// WelcomeMessage is the body of the API root
const WelcomeMessage = "Welcome to Network Name Matcher API"

// Upstream is the part of the entity client readiness needs
type Upstream interface {
	Ping(context.Context) error
	BreakerState() string
}

// Deps feed the meta handlers; Upstream may be nil
type Deps struct {
	ServiceName  string
	StartedAt    time.Time
	Upstream     Upstream
	Threshold    int
	ReadyTimeout time.Duration
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// RegisterWelcome mounts GET / on r
func RegisterWelcome(r httpkit.Router) {
	httpkit.Get(r, "/", func(*http.Request) (any, error) {
		return WelcomeResponse{Message: WelcomeMessage}, nil
	})
}

// Register mounts health, ready, version, service and matcher on r
func Register(r httpkit.Router, d Deps) {
	if d.ReadyTimeout <= 0 {
		d.ReadyTimeout = 2 * time.Second
	}

	// @Summary Health check
	// @Tags Meta
	// @Success 200 {object} HealthResponse
	// @Router /meta/health [get]
	httpkit.Get(r, "/health", func(*http.Request) (any, error) {
		return HealthResponse{OK: true, Service: d.ServiceName, Started: stamp(d.StartedAt), Now: stamp(time.Now())}, nil
	})

	// @Summary Readiness probe against the upstream API
	// @Tags Meta
	// @Success 200 {object} ReadyResponse
	// @Router /meta/ready [get]
	httpkit.Get(r, "/ready", func(req *http.Request) (any, error) {
		ctx, cancel := context.WithTimeout(req.Context(), d.ReadyTimeout)
		defer cancel()
		c := probe(ctx, d.Upstream)
		return ReadyResponse{Status: rollup(c), Checks: []Check{c}, Now: stamp(time.Now())}, nil
	})

	// @Summary Build and version info
	// @Tags Meta
	// @Success 200 {object} version.BuildInfo
	// @Router /meta/version [get]
	httpkit.Get(r, "/version", func(*http.Request) (any, error) { return version.Info(), nil })

	// @Summary Service info and uptime
	// @Tags Meta
	// @Success 200 {object} ServiceResponse
	// @Router /meta/service [get]
	httpkit.Get(r, "/service", func(*http.Request) (any, error) {
		return ServiceResponse{
			Name:    d.ServiceName,
			Started: stamp(d.StartedAt),
			Uptime:  int64(time.Since(d.StartedAt).Seconds()),
		}, nil
	})

	// @Summary Matcher threshold and lookup tables
	// @Tags Meta
	// @Success 200 {object} MatcherResponse
	// @Router /meta/matcher [get]
	httpkit.Get(r, "/matcher", func(*http.Request) (any, error) {
		return MatcherResponse{Threshold: d.Threshold, Slang: slang.Entries(), TranslitMap: translit.Size()}, nil
	})
}

func probe(ctx context.Context, up Upstream) Check {
	c := Check{Name: "upstream", Status: "skipped"}
	if up == nil {
		return c
	}
	c.Breaker = up.BreakerState()
	if err := up.Ping(ctx); err != nil {
		c.Status, c.Error = "fail", err.Error()
		return c
	}
	c.Status = "ok"
	return c
}

// rollup: a failed probe fails the service, a skipped probe or a half-open breaker degrades it
func rollup(c Check) string {
	switch {
	case c.Status == "fail":
		return "fail"
	case c.Status == "skipped", c.Breaker == "half-open":
		return "degraded"
	}
	return "ok"
}

// Docs describes the meta routes for the OpenAPI document
func Docs() []swaggerkit.SpecMutator {
	routes := []struct{ path, id, summary string }{
		{"/", "metaWelcome", "API root greeting"},
		{"/meta/health", "metaHealth", "Health check"},
		{"/meta/ready", "metaReady", "Readiness probe against the upstream API"},
		{"/meta/version", "metaVersion", "Build and version info"},
		{"/meta/service", "metaService", "Service info and uptime"},
		{"/meta/matcher", "metaMatcher", "Matcher threshold and lookup tables"},
	}
	out := make([]swaggerkit.SpecMutator, 0, len(routes))
	for _, rt := range routes {
		out = append(out, swaggerkit.Operation("GET", rt.path, map[string]any{
			"operationId": rt.id,
			"summary":     rt.summary,
			"tags":        []string{"Meta"},
			"responses": map[string]any{
				"200": swaggerkit.JSONBody("ok", map[string]any{"type": "object"}),
			},
		}))
	}
	return out
}
