// Package service orchestrates the resolution tiers
// strict order static then cache then generative, first hit wins, and the
// caller always gets a result back
package service

import (
	"context"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"lingo/internal/platform/logger"
	"lingo/internal/services/resolve/domain"
)

// DefaultBatchConcurrency bounds the batch fan-out
const DefaultBatchConcurrency = 8

// StaticTier is the first tier seam
type StaticTier interface {
	Lookup(ctx context.Context, text, targetLang string) *domain.Result
}

// CacheTier is the second tier seam
type CacheTier interface {
	Get(ctx context.Context, text, sourceLang, targetLang string, forceRefresh bool) *domain.Result
}

// GenTier is the last tier seam
type GenTier interface {
	Generate(ctx context.Context, req domain.Request) *domain.Result
}

// Maintainer covers the sweep and stats surface, the cache tier provides it
type Maintainer interface {
	SweepExpired(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

// Service defines the full resolution contract
type Service interface {
	domain.ResolverPort
	domain.MaintenancePort
}

// Options tunes the orchestrator
type Options struct {
	BatchConcurrency int
}

// Svc implements Service over the three tiers
type Svc struct {
	static StaticTier
	cache  CacheTier
	gen    GenTier
	detect domain.Detector
	events domain.Recorder

	batchLimit int
	log        *logger.Logger
}

// New creates the orchestrator
// static, cache, and gen may individually be nil in tests, a nil tier is a miss
func New(st StaticTier, ca CacheTier, gen GenTier, detect domain.Detector, events domain.Recorder, opts Options) *Svc {
	if opts.BatchConcurrency <= 0 {
		opts.BatchConcurrency = DefaultBatchConcurrency
	}
	return &Svc{
		static:     st,
		cache:      ca,
		gen:        gen,
		detect:     detect,
		events:     events,
		batchLimit: opts.BatchConcurrency,
		log:        logger.Named("resolve"),
	}
}

// Resolve walks the tiers for one request, it never returns an error
// a panic inside a tier degrades that call to the fallback result
func (s *Svc) Resolve(ctx context.Context, req domain.Request) (res domain.Result) {
	start := time.Now()
	defer func() {
		if v := recover(); v != nil {
			s.log.Error().
				Interface("panic", v).
				Str("target_lang", req.TargetLang).
				Msgf("resolution panicked\n%s", debug.Stack())
			res = s.fallback(req, 0)
			res.ElapsedMS = sinceMS(start)
		}
	}()

	if strings.TrimSpace(req.Text) == "" {
		res = s.fallback(req, 0)
		res.ElapsedMS = sinceMS(start)
		return res
	}

	if req.SourceLang == "" && s.detect != nil {
		req.SourceLang = s.detect.Detect(req.Text)
	}

	res = s.resolveTiers(ctx, req)
	res.ElapsedMS = sinceMS(start)
	if s.events != nil {
		s.events.Record(ctx, res)
	}
	return res
}

func (s *Svc) resolveTiers(ctx context.Context, req domain.Request) domain.Result {
	if s.static != nil {
		if hit := s.static.Lookup(ctx, req.Text, req.TargetLang); hit != nil {
			hit.SourceLang = req.SourceLang
			return *hit
		}
	}
	if s.cache != nil {
		if hit := s.cache.Get(ctx, req.Text, req.SourceLang, req.TargetLang, req.ForceRefresh); hit != nil {
			return *hit
		}
	}
	if s.gen != nil {
		if out := s.gen.Generate(ctx, req); out != nil {
			return *out
		}
	}
	// every tier declined, hand the input back rather than failing
	s.log.Warn().Str("target_lang", req.TargetLang).Msg("all tiers missed, echoing input")
	return s.fallback(req, 0)
}

// ResolveBatch resolves req.Texts concurrently, output is index-aligned
func (s *Svc) ResolveBatch(ctx context.Context, req domain.BatchRequest) []domain.Result {
	out := make([]domain.Result, len(req.Texts))
	if len(req.Texts) == 0 {
		return out
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchLimit)
	for i, text := range req.Texts {
		g.Go(func() error {
			out[i] = s.Resolve(ctx, domain.Request{
				Text:         text,
				SourceLang:   req.SourceLang,
				TargetLang:   req.TargetLang,
				Context:      req.Context,
				ForceRefresh: req.ForceRefresh,
			})
			return nil
		})
	}
	_ = g.Wait() // items never return errors
	return out
}

// ResolveTexts is the convenience form of ResolveBatch returning only the
// resolved outputs, index-aligned with req.Texts
func (s *Svc) ResolveTexts(ctx context.Context, req domain.BatchRequest) []string {
	results := s.ResolveBatch(ctx, req)
	out := make([]string, len(results))
	for i, res := range results {
		out[i] = res.Output
	}
	return out
}

// Stats reports the maintenance snapshot
func (s *Svc) Stats(ctx context.Context) (domain.Stats, error) {
	m, ok := s.cache.(Maintainer)
	if !ok {
		return domain.Stats{}, nil
	}
	return m.Stats(ctx)
}

// SweepExpired deletes expired cache rows and reports the count
func (s *Svc) SweepExpired(ctx context.Context) (int64, error) {
	m, ok := s.cache.(Maintainer)
	if !ok {
		return 0, nil
	}
	n, err := m.SweepExpired(ctx)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int64("deleted", n).Msg("expired cache rows swept")
	return n, nil
}

func (s *Svc) fallback(req domain.Request, confidence float64) domain.Result {
	return domain.Result{
		Input:      req.Text,
		Output:     req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		Source:     domain.SourceFallback,
		Confidence: confidence,
	}
}

func sinceMS(start time.Time) int64 { return time.Since(start).Milliseconds() }
