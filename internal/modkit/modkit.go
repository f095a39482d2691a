// Package modkit is how API modules are declared, wired and mounted
package modkit

import (
	"context"

	"netmatch/internal/adapters/upstream"
	"netmatch/internal/core/fuzzy"
	"netmatch/internal/modkit/httpkit"
	"netmatch/internal/platform/config"
	"netmatch/internal/platform/logger"
)

// Module is what the API mounts
type Module interface {
	Name() string
	MountRoutes(r httpkit.Router)
	// Ports is the module's port set, nil when it exports none
	Ports() any
}

// EntitySource lists entities from the upstream tracker API
// *upstream.Client satisfies it, tests use upstreamtest.Fake
type EntitySource interface {
	Networks(ctx context.Context) ([]upstream.Entity, error)
	Groups(ctx context.Context, groupType string) ([]upstream.Entity, error)
	Sources(ctx context.Context, sourceType string) ([]upstream.Entity, error)
	Ping(ctx context.Context) error
	BreakerState() string
}

var _ EntitySource = (*upstream.Client)(nil)

// Deps are the shared dependencies handed to every module
type Deps struct {
	Log      logger.Logger
	Cfg      config.Conf
	Upstream EntitySource
	Matcher  *fuzzy.Matcher
}

// MatcherOrDefault returns Matcher, or one at the default threshold
func (d Deps) MatcherOrDefault() *fuzzy.Matcher {
	if d.Matcher != nil {
		return d.Matcher
	}
	return fuzzy.New(fuzzy.DefaultThreshold)
}
