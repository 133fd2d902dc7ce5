// Package module wires resolution into the API using modkit
package module

import (
	"net/http"

	modkit "lingo/internal/modkit"
	"lingo/internal/modkit/httpkit"
	str "lingo/internal/platform/strings"
	resolutionhttp "lingo/internal/services/api/resolution/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs a resolution module with the provided dependencies and options
// callers must inject Ports carrying the resolve service surfaces
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("resolution"), modkit.WithPrefix("/resolve")}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Resolver == nil || ports.Maintenance == nil {
		panic("resolution module requires Ports{Resolver, Maintenance}")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		ports:     ports,
		subrouter: b.Subrouter,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		resolutionhttp.Register(r, ports.Resolver, ports.Maintenance)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
