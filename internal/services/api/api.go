// Package api provides the HTTP API for the application
package api

import (
	"context"

	"lingo/internal/platform/config"
	"lingo/internal/platform/logger"
	phttp "lingo/internal/platform/net/http"
	"lingo/internal/platform/store"

	"lingo/internal/modkit"
	"lingo/internal/modkit/httpkit"
	"lingo/internal/modkit/module"

	metamod "lingo/internal/services/api/meta/module"
	resolutionmod "lingo/internal/services/api/resolution/module"

	// Resolve worker module (owns the Resolver and Maintenance ports)
	resolvemod "lingo/internal/services/resolve/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableProfiler bool
}

// Mount mounts the API service onto the given router and returns a cleanup
// function that flushes background workers
func Mount(r phttp.Router, opt Options) func() {
	// shared deps for modules
	deps := modkit.Deps{
		Log: *opt.Logger,
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// Construct the resolve worker module first and extract its ports
	resolver := resolvemod.New(deps, resolvemod.Options{})
	ports := module.MustPortsOf[resolvemod.Ports](resolver)

	// load the static tier snapshot before taking traffic
	if err := resolver.Warm(context.Background()); err != nil {
		opt.Logger.Error().Err(err).Msg("static tier warmup failed, continuing with empty snapshot")
	}

	// Inject the resolver ports into the API resolution module
	resolution := resolutionmod.New(
		deps,
		modkit.WithPorts(resolutionmod.Ports{
			Resolver:    ports.Resolver,
			Maintenance: ports.Maintenance,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		resolver,   // include worker so its ports are registered
		resolution, // API module that depends on the worker's ports
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	return func() { resolver.Close() }
}
