// Package http provides http transport for resolution
package http

import (
	stdhttp "net/http"

	"lingo/internal/modkit/httpkit"
	dto "lingo/internal/services/api/resolution/domain"
	resolvedom "lingo/internal/services/resolve/domain"
)

// Register mounts resolution endpoints on the given router
func Register(r httpkit.Router, resolver resolvedom.ResolverPort, maint resolvedom.MaintenancePort) {
	h := &handlers{resolver: resolver, maint: maint}
	httpkit.PostJSON[dto.ResolveInput](r, "/", h.resolve)
	httpkit.PostJSON[dto.BatchInput](r, "/batch", h.resolveBatch)
	httpkit.Get(r, "/stats", h.stats)
	httpkit.Post(r, "/sweep", h.sweep)
}

type handlers struct {
	resolver resolvedom.ResolverPort
	maint    resolvedom.MaintenancePort
}

func (h *handlers) resolve(r *stdhttp.Request, in dto.ResolveInput) (any, error) {
	res := h.resolver.Resolve(r.Context(), resolvedom.Request{
		Text:         in.Text,
		SourceLang:   in.SourceLang,
		TargetLang:   in.TargetLang,
		Context:      in.Context,
		ForceRefresh: in.ForceRefresh,
	})
	return toDTO(res), nil
}

func (h *handlers) resolveBatch(r *stdhttp.Request, in dto.BatchInput) (any, error) {
	results := h.resolver.ResolveBatch(r.Context(), resolvedom.BatchRequest{
		Texts:        in.Texts,
		SourceLang:   in.SourceLang,
		TargetLang:   in.TargetLang,
		Context:      in.Context,
		ForceRefresh: in.ForceRefresh,
	})
	out := make([]dto.Resolution, 0, len(results))
	for _, res := range results {
		out = append(out, toDTO(res))
	}
	return out, nil
}

func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	s, err := h.maint.Stats(r.Context())
	if err != nil {
		return nil, err
	}
	return dto.StatsOut{
		StaticEntries:  s.StaticEntries,
		CacheEntries:   s.CacheEntries,
		TotalUsage:     s.TotalUsage,
		MeanConfidence: s.MeanConfidence,
	}, nil
}

func (h *handlers) sweep(r *stdhttp.Request) (any, error) {
	n, err := h.maint.SweepExpired(r.Context())
	if err != nil {
		return nil, err
	}
	return dto.SweepOut{Deleted: n}, nil
}

func toDTO(res resolvedom.Result) dto.Resolution {
	return dto.Resolution{
		Input:      res.Input,
		Output:     res.Output,
		SourceLang: res.SourceLang,
		TargetLang: res.TargetLang,
		Source:     string(res.Source),
		Confidence: res.Confidence,
		Cached:     res.Cached,
		ElapsedMS:  res.ElapsedMS,
	}
}
