package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"lingo/internal/modkit/repokit"
	"lingo/internal/platform/store"
	"lingo/internal/services/resolve/domain"
)

type fakeTx struct{}

func (fakeTx) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	var z store.CommandTag
	return z, nil
}
func (fakeTx) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (fakeTx) QueryRow(context.Context, string, ...any) store.Row        { return nil }
func (fakeTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	return fn(fakeTx{})
}

type fakeRepo struct {
	entry   *domain.CacheEntry
	getErr  error
	putErr  error
	gets    int
	puts    []domain.CacheEntry
	lastTTL time.Duration
}

func (f *fakeRepo) GetAndTouch(_ context.Context, text, sourceLang, targetLang string) (*domain.CacheEntry, error) {
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.entry, nil
}

func (f *fakeRepo) Upsert(_ context.Context, e domain.CacheEntry, ttl time.Duration) error {
	f.puts = append(f.puts, e)
	f.lastTTL = ttl
	return f.putErr
}

func (f *fakeRepo) SweepExpired(context.Context) (int64, error) { return 3, nil }

func (f *fakeRepo) Stats(context.Context) (domain.Stats, error) {
	return domain.Stats{CacheEntries: 1}, nil
}

func newTier(repo *fakeRepo, ttl time.Duration) *Tier {
	binder := repokit.BindFunc[Repo](func(repokit.Queryer) Repo { return repo })
	return New(fakeTx{}, binder, ttl)
}

func TestGet_Hit(t *testing.T) {
	repo := &fakeRepo{entry: &domain.CacheEntry{TargetText: "Bonjour", Confidence: 0.92}}
	tier := newTier(repo, 0)

	res := tier.Get(context.Background(), "Hello", "en", "fr", false)
	if res == nil {
		t.Fatal("expected hit")
	}
	if res.Output != "Bonjour" || res.Source != domain.SourceCache || !res.Cached {
		t.Fatalf("got %+v", res)
	}
	if res.Confidence != 0.92 {
		t.Fatalf("Confidence = %v", res.Confidence)
	}
}

func TestGet_ForceRefreshSkipsRead(t *testing.T) {
	repo := &fakeRepo{entry: &domain.CacheEntry{TargetText: "Bonjour"}}
	tier := newTier(repo, 0)

	if res := tier.Get(context.Background(), "Hello", "en", "fr", true); res != nil {
		t.Fatalf("forceRefresh must miss, got %+v", res)
	}
	if repo.gets != 0 {
		t.Fatalf("repo read despite forceRefresh, gets = %d", repo.gets)
	}
}

func TestGet_StorageErrorDegradesToMiss(t *testing.T) {
	repo := &fakeRepo{getErr: errors.New("connection refused")}
	tier := newTier(repo, 0)

	if res := tier.Get(context.Background(), "Hello", "en", "fr", false); res != nil {
		t.Fatalf("storage error must read as miss, got %+v", res)
	}
}

func TestGet_BlankInputMisses(t *testing.T) {
	repo := &fakeRepo{entry: &domain.CacheEntry{TargetText: "x"}}
	tier := newTier(repo, 0)
	if res := tier.Get(context.Background(), "  ", "en", "fr", false); res != nil {
		t.Fatal("blank input must miss")
	}
	if repo.gets != 0 {
		t.Fatal("blank input must not touch storage")
	}
}

func TestPut_NormalizesKeyAndAppliesTTL(t *testing.T) {
	repo := &fakeRepo{}
	tier := newTier(repo, 48*time.Hour)

	tier.Put(context.Background(), domain.Result{
		Input:      "  Hello  World ",
		Output:     "Bonjour le monde",
		SourceLang: "en",
		TargetLang: "fr",
		Confidence: 0.85,
	}, "openai", "gpt-4o-mini")

	if len(repo.puts) != 1 {
		t.Fatalf("puts = %d", len(repo.puts))
	}
	e := repo.puts[0]
	if e.SourceText != "hello world" {
		t.Fatalf("SourceText = %q, want normalized key", e.SourceText)
	}
	if e.Provider != "openai" || e.Model != "gpt-4o-mini" {
		t.Fatalf("provider/model = %q/%q", e.Provider, e.Model)
	}
	if repo.lastTTL != 48*time.Hour {
		t.Fatalf("ttl = %v", repo.lastTTL)
	}
}

func TestPut_SwallowsWriteError(t *testing.T) {
	repo := &fakeRepo{putErr: errors.New("disk full")}
	tier := newTier(repo, 0)

	// must not panic or surface the error anywhere
	tier.Put(context.Background(), domain.Result{
		Input: "hello", Output: "bonjour", TargetLang: "fr",
	}, "openai", "m")
}

func TestPut_SkipsEmptyOutput(t *testing.T) {
	repo := &fakeRepo{}
	tier := newTier(repo, 0)
	tier.Put(context.Background(), domain.Result{Input: "hello", Output: ""}, "p", "m")
	if len(repo.puts) != 0 {
		t.Fatal("empty output must not be cached")
	}
}

func TestDefaultTTL(t *testing.T) {
	tier := newTier(&fakeRepo{}, 0)
	if tier.TTL() != DefaultTTL {
		t.Fatalf("TTL = %v, want %v", tier.TTL(), DefaultTTL)
	}
}

func TestSweepAndStatsPassThrough(t *testing.T) {
	tier := newTier(&fakeRepo{}, 0)
	n, err := tier.SweepExpired(context.Background())
	if err != nil || n != 3 {
		t.Fatalf("sweep = %d, %v", n, err)
	}
	s, err := tier.Stats(context.Background())
	if err != nil || s.CacheEntries != 1 {
		t.Fatalf("stats = %+v, %v", s, err)
	}
}
