package modkit

import (
	"net/http"

	"netmatch/internal/modkit/httpkit"
	"netmatch/internal/modkit/swaggerkit"
	str "netmatch/internal/platform/strings"
)

// Option tunes a module at construction
type Option func(*settings)

type settings struct {
	name    string
	prefix  string
	mw      []func(http.Handler) http.Handler
	swagger bool
}

// WithName names the module in logs and the port registry
func WithName(name string) Option { return func(s *settings) { s.name = name } }

// WithPrefix sets the path the module is mounted under
func WithPrefix(prefix string) Option { return func(s *settings) { s.prefix = prefix } }

// WithMiddlewares appends per module middleware, applied in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(s *settings) { s.mw = append(s.mw, mw...) }
}

// WithSwagger publishes the module's operations in the served OpenAPI document
func WithSwagger(enabled bool) Option { return func(s *settings) { s.swagger = enabled } }

// Base carries what every module shares; modules embed it and add Ports
type Base struct {
	name   string
	prefix string
	mw     []func(http.Handler) http.Handler
	routes func(httpkit.Router)
}

// NewBase applies opts in order, later ones win, and registers docs when swagger is on
func NewBase(routes func(httpkit.Router), docs []swaggerkit.SpecMutator, opts ...Option) Base {
	var s settings
	for _, o := range opts {
		o(&s)
	}
	if s.swagger {
		for _, d := range docs {
			swaggerkit.Register(d)
		}
	}
	if routes == nil {
		routes = func(httpkit.Router) {}
	}
	return Base{name: s.name, prefix: s.prefix, mw: s.mw, routes: routes}
}

// Name panics when the module was built without one
func (b Base) Name() string { return str.MustString(b.name, "module name") }

// Prefix is the normalized mount path, e.g. /groups
func (b Base) Prefix() string { return str.MustPrefix(b.prefix) }

// Middlewares returns the per module middleware
func (b Base) Middlewares() []func(http.Handler) http.Handler { return b.mw }

// MountRoutes mounts the module's routes under Prefix with its middleware
func (b Base) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, b.Prefix(), b.mw, b.routes)
}
