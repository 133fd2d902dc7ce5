package genai

import (
	"context"
	"fmt"

	perr "lingo/internal/platform/errors"
	"lingo/internal/platform/logger"
	"lingo/internal/services/resolve/domain"
)

// CacheWriter receives successful generations for reuse on later requests
type CacheWriter interface {
	Put(ctx context.Context, res domain.Result, provider, model string)
}

// Options tunes the tier's result shaping
type Options struct {
	Provider string
	Model    string

	// DefaultConfidence is attached to fresh generations, kept below 1
	DefaultConfidence float64

	// RateLimitedConfidence is attached to the degraded echo result
	RateLimitedConfidence float64
}

// Tier turns completion calls into resolution results
// rate limiting degrades to an echo of the input, it never retries in-line
type Tier struct {
	completer domain.Completer
	cache     CacheWriter
	opts      Options
	log       *logger.Logger
}

// New constructs the generative tier, cache may be nil to skip write-back
func New(completer domain.Completer, cache CacheWriter, opts Options) *Tier {
	if completer == nil {
		panic("genai.Tier requires a non nil Completer")
	}
	if opts.DefaultConfidence <= 0 || opts.DefaultConfidence >= 1 {
		opts.DefaultConfidence = 0.9
	}
	if opts.RateLimitedConfidence <= 0 {
		opts.RateLimitedConfidence = 0.1
	}
	return &Tier{completer: completer, cache: cache, opts: opts, log: logger.Named("genai")}
}

// Generate resolves req through the completion provider
// nil means miss, a non-nil result is always usable by the caller
func (t *Tier) Generate(ctx context.Context, req domain.Request) *domain.Result {
	out, err := t.completer.Complete(ctx, systemPrompt(req), req.Text)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeTooManyRequests) {
			t.log.Warn().Str("target_lang", req.TargetLang).Msg("provider rate limited, degrading to echo")
			return &domain.Result{
				Input:      req.Text,
				Output:     req.Text,
				SourceLang: req.SourceLang,
				TargetLang: req.TargetLang,
				Source:     domain.SourceFallback,
				Confidence: t.opts.RateLimitedConfidence,
			}
		}
		t.log.Error().Err(err).Str("target_lang", req.TargetLang).Msg("completion failed")
		return nil
	}

	res := &domain.Result{
		Input:      req.Text,
		Output:     out,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		Source:     domain.SourceGenerative,
		Confidence: t.opts.DefaultConfidence,
	}
	if t.cache != nil {
		t.cache.Put(ctx, *res, t.opts.Provider, t.opts.Model)
	}
	return res
}

// systemPrompt frames the task for the provider, context rides along when present
func systemPrompt(req domain.Request) string {
	p := fmt.Sprintf(
		"You are a precise translation engine. Translate the user's text from %s to %s. "+
			"Reply with the translation only, no commentary.",
		langOrAny(req.SourceLang), langOrAny(req.TargetLang),
	)
	if req.Context != "" {
		p += fmt.Sprintf(" Context for disambiguation: %s.", req.Context)
	}
	return p
}

func langOrAny(lang string) string {
	if lang == "" {
		return "the detected language"
	}
	return lang
}
