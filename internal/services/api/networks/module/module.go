// Package module wires network lookups into the API
package module

import (
	modkit "netmatch/internal/modkit"
	"netmatch/internal/modkit/httpkit"
	"netmatch/internal/platform/net/middleware"
	netshttp "netmatch/internal/services/api/networks/http"
	netssvc "netmatch/internal/services/api/networks/service"
)

// Module is the networks API module
type Module struct {
	modkit.Base
	svc netssvc.Service
}

// New builds the module; deps.Upstream is required
// find only accepts JSON bodies
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{svc: netssvc.New(deps.Upstream, deps.MatcherOrDefault())}
	m.Base = modkit.NewBase(
		func(r httpkit.Router) { netshttp.Register(r, m.svc) },
		netshttp.Docs(),
		append([]modkit.Option{
			modkit.WithName("networks"),
			modkit.WithPrefix("/networks"),
			modkit.WithMiddlewares(middleware.AllowContentType("application/json")),
		}, opts...)...,
	)
	return m
}
