package static

import (
	"context"
	"strings"
	"sync"

	"lingo/internal/core/normalize"
	"lingo/internal/core/similarity"
	"lingo/internal/modkit/repokit"
	"lingo/internal/platform/logger"
	"lingo/internal/services/resolve/domain"
)

// Tier holds a concurrent-read snapshot of active entries grouped by target language
type Tier struct {
	db      repokit.TxRunner
	repo    Repo
	matcher *similarity.Matcher

	mu     sync.RWMutex
	byLang map[string][]domain.StaticEntry
}

// New constructs the static tier, call Reload before first use
func New(db repokit.TxRunner, binder repokit.Binder[Repo], matcher *similarity.Matcher) *Tier {
	if db == nil {
		panic("static.Tier requires a non nil TxRunner")
	}
	if binder == nil {
		panic("static.Tier requires a non nil Repo binder")
	}
	if matcher == nil {
		matcher = similarity.New()
	}
	return &Tier{
		db:      db,
		repo:    binder.Bind(db),
		matcher: matcher,
		byLang:  map[string][]domain.StaticEntry{},
	}
}

// Reload replaces the snapshot with the current active rows
func (t *Tier) Reload(ctx context.Context) error {
	entries, err := t.repo.Active(ctx)
	if err != nil {
		return err
	}
	byLang := make(map[string][]domain.StaticEntry, 8)
	for _, e := range entries {
		e.Key = normalize.Key(e.Key)
		byLang[e.TargetLang] = append(byLang[e.TargetLang], e)
	}
	t.mu.Lock()
	t.byLang = byLang
	t.mu.Unlock()
	logger.Named("static").Debug().Int("entries", len(entries)).Msg("snapshot reloaded")
	return nil
}

// Size reports the snapshot entry count for the given target language
func (t *Tier) Size(targetLang string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byLang[targetLang])
}

// Lookup scores the snapshot against text and returns a result on a
// sufficiently close match, nil means miss and is never an error
func (t *Tier) Lookup(_ context.Context, text, targetLang string) *domain.Result {
	in := normalize.Key(text)
	if in == "" {
		return nil
	}

	t.mu.RLock()
	entries := t.byLang[targetLang]
	t.mu.RUnlock()
	if len(entries) == 0 {
		return nil
	}

	// coarse substring pre-filter keeps the matcher off obviously unrelated keys
	cands := make([]similarity.Candidate, 0, 16)
	idx := make([]int, 0, 16)
	for i, e := range entries {
		if !prefilter(in, e.Key) {
			continue
		}
		cands = append(cands, similarity.Candidate{Key: e.Key, Priority: e.Priority})
		idx = append(idx, i)
	}
	if len(cands) == 0 {
		return nil
	}

	best, score, ok := t.matcher.Match(in, cands)
	if !ok {
		return nil
	}
	e := entries[idx[best]]
	if score > 1 {
		score = 1
	}
	return &domain.Result{
		Input:      text,
		Output:     e.Output,
		TargetLang: targetLang,
		Source:     domain.SourceStatic,
		Confidence: score,
		Cached:     true,
	}
}

// prefilter passes when either normalized string contains the other's first token
func prefilter(in, key string) bool {
	kTok, _, _ := strings.Cut(key, " ")
	if kTok != "" && strings.Contains(in, kTok) {
		return true
	}
	iTok, _, _ := strings.Cut(in, " ")
	return iTok != "" && strings.Contains(key, iTok)
}
