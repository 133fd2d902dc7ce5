// Package module wires the resolve service tiers and exposes their ports
package module

import (
	"context"

	"lingo/internal/core/langdetect"
	"lingo/internal/core/similarity"
	"lingo/internal/modkit"
	"lingo/internal/modkit/httpkit"
	"lingo/internal/services/resolve/cache"
	"lingo/internal/services/resolve/domain"
	"lingo/internal/services/resolve/events"
	"lingo/internal/services/resolve/genai"
	"lingo/internal/services/resolve/service"
	"lingo/internal/services/resolve/static"
)

// Ports exposes the resolve service surfaces for cross wiring
type Ports struct {
	Resolver    domain.ResolverPort
	Maintenance domain.MaintenancePort
}

// Module defines the resolve worker module, it mounts no routes of its own
type Module struct {
	deps   modkit.Deps
	ports  Ports
	static *static.Tier
	events *events.Recorder
}

// New constructs the resolve module with its tiers wired
func New(deps modkit.Deps, overrides Options) *Module {
	// Load defaults, then apply non-zero overrides
	opts := FromConfig(deps.Cfg)

	if overrides.MatchThreshold != 0 {
		opts.MatchThreshold = overrides.MatchThreshold
	}
	if overrides.CacheTTL != 0 {
		opts.CacheTTL = overrides.CacheTTL
	}
	if overrides.BatchConcurrency != 0 {
		opts.BatchConcurrency = overrides.BatchConcurrency
	}
	if overrides.FallbackLang != "" {
		opts.FallbackLang = overrides.FallbackLang
	}
	if overrides.DefaultConfidence != 0 {
		opts.DefaultConfidence = overrides.DefaultConfidence
	}
	if overrides.RateLimitedConfidence != 0 {
		opts.RateLimitedConfidence = overrides.RateLimitedConfidence
	}
	if overrides.AIEndpoint != "" {
		opts.AIEndpoint = overrides.AIEndpoint
	}
	if overrides.AIAPIKey != "" {
		opts.AIAPIKey = overrides.AIAPIKey
	}
	if overrides.AIModel != "" {
		opts.AIModel = overrides.AIModel
	}

	matcher := similarity.New(similarity.WithThreshold(opts.MatchThreshold))
	staticTier := static.New(deps.PG, static.NewPG(), matcher)
	cacheTier := cache.New(deps.PG, cache.NewPG(), opts.CacheTTL)

	client := genai.NewClient(genai.Config{
		Endpoint:    opts.AIEndpoint,
		APIKey:      opts.AIAPIKey,
		Model:       opts.AIModel,
		Temperature: opts.AITemperature,
		Timeout:     opts.AITimeout,
	})
	genTier := genai.New(client, cacheTier, genai.Options{
		Provider:              opts.AIProvider,
		Model:                 opts.AIModel,
		DefaultConfidence:     opts.DefaultConfidence,
		RateLimitedConfidence: opts.RateLimitedConfidence,
	})

	recorder := events.New(deps.CH)
	svc := service.New(
		staticTier,
		cacheTier,
		genTier,
		langdetect.NewScript(opts.FallbackLang),
		recorder,
		service.Options{BatchConcurrency: opts.BatchConcurrency},
	)

	m := &Module{deps: deps, static: staticTier, events: recorder}
	m.ports = Ports{Resolver: svc, Maintenance: svc}
	return m
}

// Warm loads the static snapshot, call once at startup
func (m *Module) Warm(ctx context.Context) error {
	return m.static.Reload(ctx)
}

// Close flushes the event recorder
func (m *Module) Close() { m.events.Close() }

// Ports returns the module ports (Resolver, Maintenance)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "resolve" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
