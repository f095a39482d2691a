// Package api assembles the HTTP API from its modules
package api

import (
	"netmatch/internal/core/fuzzy"
	"netmatch/internal/modkit"
	"netmatch/internal/modkit/httpkit"
	"netmatch/internal/modkit/swaggerkit"
	"netmatch/internal/platform/config"
	"netmatch/internal/platform/logger"
	phttp "netmatch/internal/platform/net/http"

	groupsmod "netmatch/internal/services/api/groups/module"
	metamod "netmatch/internal/services/api/meta/module"
	netsmod "netmatch/internal/services/api/networks/module"
	sourcesmod "netmatch/internal/services/api/sources/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Upstream       modkit.EntitySource
	Matcher        *fuzzy.Matcher
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	Stack          httpkit.StackOptions
}

// Mount mounts docs, the profiler and every module under /api/v1
// Upstream is required; a nil Matcher means the default threshold
func Mount(r phttp.Router, opt Options) {
	l := opt.Logger
	if l == nil {
		l = logger.Get()
	}

	deps := modkit.Deps{
		Log:      *l,
		Cfg:      opt.Config,
		Upstream: opt.Upstream,
		Matcher:  opt.Matcher,
	}
	sw := modkit.WithSwagger(opt.EnableSwagger)
	mods := []modkit.Module{
		metamod.New(deps, sw),
		netsmod.New(deps, sw),
		groupsmod.New(deps, sw),
		sourcesmod.New(deps, sw),
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		for _, m := range mods {
			modkit.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
			l.Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})
}
