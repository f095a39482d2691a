// Package module wires traffic source search into the API
package module

import (
	modkit "netmatch/internal/modkit"
	"netmatch/internal/modkit/httpkit"
	sourceshttp "netmatch/internal/services/api/sources/http"
	sourcessvc "netmatch/internal/services/api/sources/service"
)

// Module is the traffic sources API module
type Module struct {
	modkit.Base
	svc sourcessvc.Service
}

// New builds the module; deps.Upstream is required
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{svc: sourcessvc.New(deps.Upstream)}
	m.Base = modkit.NewBase(
		func(r httpkit.Router) { sourceshttp.Register(r, m.svc) },
		sourceshttp.Docs(),
		append([]modkit.Option{modkit.WithName("sources"), modkit.WithPrefix("/sources")}, opts...)...,
	)
	return m
}
