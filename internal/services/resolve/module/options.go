package module

import (
	"time"

	"lingo/internal/platform/config"
	"lingo/internal/services/resolve/cache"
)

// Options controls the resolve service
type Options struct {
	MatchThreshold        float64
	CacheTTL              time.Duration
	BatchConcurrency      int
	FallbackLang          string
	DefaultConfidence     float64
	RateLimitedConfidence float64

	AIEndpoint    string
	AIAPIKey      string
	AIModel       string
	AIProvider    string
	AITemperature float64
	AITimeout     time.Duration
}

// FromConfig reads with RESOLVE_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("RESOLVE_")
	return Options{
		MatchThreshold:        c.MayFloat64("MATCH_THRESHOLD", 0.7),
		CacheTTL:              c.MayDuration("CACHE_TTL", cache.DefaultTTL),
		BatchConcurrency:      c.MayInt("BATCH_CONCURRENCY", 8),
		FallbackLang:          c.MayString("FALLBACK_LANG", "en"),
		DefaultConfidence:     c.MayFloat64("AI_CONFIDENCE", 0.9),
		RateLimitedConfidence: c.MayFloat64("RATE_LIMITED_CONFIDENCE", 0.1),

		AIEndpoint:    c.MayString("AI_ENDPOINT", ""),
		AIAPIKey:      c.MayString("AI_API_KEY", ""),
		AIModel:       c.MayString("AI_MODEL", "gpt-4o-mini"),
		AIProvider:    c.MayString("AI_PROVIDER", "openai"),
		AITemperature: c.MayFloat64("AI_TEMPERATURE", 0.3),
		AITimeout:     c.MayDuration("AI_TIMEOUT", 30*time.Second),
	}
}
