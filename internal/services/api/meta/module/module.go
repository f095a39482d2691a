// Package module wires the meta endpoints into the API
package module

import (
	"time"

	"netmatch/internal/core/version"
	modkit "netmatch/internal/modkit"
	"netmatch/internal/modkit/httpkit"
	metahttp "netmatch/internal/services/api/meta/http"
)

// Module serves the welcome route plus health, readiness and service info under /meta
type Module struct {
	modkit.Base
}

// New builds the module; deps.Upstream is optional and readiness reports it skipped without one
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	hd := metahttp.Deps{
		ServiceName:  version.Info().Service,
		StartedAt:    time.Now(),
		Threshold:    deps.MatcherOrDefault().Threshold,
		ReadyTimeout: deps.Cfg.MayDuration("READY_TIMEOUT", 2*time.Second),
	}
	// keep the interface nil rather than holding a typed nil
	if deps.Upstream != nil {
		hd.Upstream = deps.Upstream
	}

	m := &Module{}
	m.Base = modkit.NewBase(
		func(r httpkit.Router) { metahttp.Register(r, hd) },
		metahttp.Docs(),
		append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...,
	)
	return m
}

// MountRoutes adds the welcome route at the root of r before the /meta routes
func (m *Module) MountRoutes(r httpkit.Router) {
	metahttp.RegisterWelcome(r)
	m.Base.MountRoutes(r)
}

// Ports is nil, meta exports nothing
func (m *Module) Ports() any { return nil }
