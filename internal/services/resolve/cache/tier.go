package cache

import (
	"context"
	"time"

	"lingo/internal/core/normalize"
	"lingo/internal/modkit/repokit"
	"lingo/internal/platform/logger"
	"lingo/internal/services/resolve/domain"
)

// DefaultTTL is how long a cached resolution stays live
const DefaultTTL = 365 * 24 * time.Hour

// Tier reads and writes the persistent cache with fail-open semantics,
// storage trouble degrades to a miss and never propagates to callers
type Tier struct {
	repo Repo
	ttl  time.Duration
	log  *logger.Logger
}

// New constructs the cache tier, ttl <= 0 selects DefaultTTL
func New(db repokit.TxRunner, binder repokit.Binder[Repo], ttl time.Duration) *Tier {
	if db == nil {
		panic("cache.Tier requires a non nil TxRunner")
	}
	if binder == nil {
		panic("cache.Tier requires a non nil Repo binder")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Tier{repo: binder.Bind(db), ttl: ttl, log: logger.Named("cache")}
}

// TTL reports the configured retention
func (t *Tier) TTL() time.Duration { return t.ttl }

// Get returns the cached resolution for the key or nil on miss
// forceRefresh skips the read entirely so the caller regenerates
func (t *Tier) Get(ctx context.Context, text, sourceLang, targetLang string, forceRefresh bool) *domain.Result {
	if forceRefresh {
		return nil
	}
	key := normalize.Key(text)
	if key == "" {
		return nil
	}

	e, err := t.repo.GetAndTouch(ctx, key, sourceLang, targetLang)
	if err != nil {
		t.log.Warn().Err(err).Str("target_lang", targetLang).Msg("cache read failed, treating as miss")
		return nil
	}
	if e == nil {
		return nil
	}
	return &domain.Result{
		Input:      text,
		Output:     e.TargetText,
		SourceLang: sourceLang,
		TargetLang: targetLang,
		Source:     domain.SourceCache,
		Confidence: e.Confidence,
		Cached:     true,
	}
}

// Put stores a generated resolution, failures are logged and swallowed
func (t *Tier) Put(ctx context.Context, res domain.Result, provider, model string) {
	key := normalize.Key(res.Input)
	if key == "" || res.Output == "" {
		return
	}
	err := t.repo.Upsert(ctx, domain.CacheEntry{
		SourceText: key,
		SourceLang: res.SourceLang,
		TargetLang: res.TargetLang,
		TargetText: res.Output,
		Confidence: res.Confidence,
		Provider:   provider,
		Model:      model,
	}, t.ttl)
	if err != nil {
		t.log.Warn().Err(err).Str("target_lang", res.TargetLang).Msg("cache write failed, dropping entry")
	}
}

// SweepExpired deletes dead rows and reports the count
func (t *Tier) SweepExpired(ctx context.Context) (int64, error) {
	return t.repo.SweepExpired(ctx)
}

// Stats returns the maintenance snapshot
func (t *Tier) Stats(ctx context.Context) (domain.Stats, error) {
	return t.repo.Stats(ctx)
}
