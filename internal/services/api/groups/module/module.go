// Package module wires group search into the API
package module

import (
	modkit "netmatch/internal/modkit"
	"netmatch/internal/modkit/httpkit"
	groupshttp "netmatch/internal/services/api/groups/http"
	groupssvc "netmatch/internal/services/api/groups/service"
)

// Module is the groups API module
type Module struct {
	modkit.Base
	svc groupssvc.Service
}

// New builds the module; deps.Upstream is required
// DEFAULT_GROUP_TYPE under deps.Cfg overrides the group type used when a request names none
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{
		svc: groupssvc.New(deps.Upstream, deps.Cfg.MayString("DEFAULT_GROUP_TYPE", groupssvc.DefaultGroupType)),
	}
	m.Base = modkit.NewBase(
		func(r httpkit.Router) { groupshttp.Register(r, m.svc) },
		groupshttp.Docs(),
		append([]modkit.Option{modkit.WithName("groups"), modkit.WithPrefix("/groups")}, opts...)...,
	)
	return m
}
