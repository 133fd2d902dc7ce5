// Package cache is the second resolution tier, a persistent Postgres-backed
// store of prior resolutions with per-row expiry
package cache

import (
	"context"
	stdsql "database/sql"
	"errors"
	"time"

	"lingo/internal/modkit/repokit"
	"lingo/internal/services/resolve/domain"
)

// Repo defines the repository contract for the resolution cache
type Repo interface {
	// GetAndTouch returns the live row for the key and bumps its usage
	// counter in the same statement, nil without error means miss
	GetAndTouch(ctx context.Context, text, sourceLang, targetLang string) (*domain.CacheEntry, error)

	// Upsert writes a resolution keyed (source_text, target_lang) with a
	// fresh expiry of now plus ttl
	Upsert(ctx context.Context, e domain.CacheEntry, ttl time.Duration) error

	// SweepExpired deletes rows past their expiry and reports how many went
	SweepExpired(ctx context.Context) (int64, error)

	// Stats aggregates the maintenance counters across both tiers' tables
	Stats(ctx context.Context) (domain.Stats, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) GetAndTouch(ctx context.Context, text, sourceLang, targetLang string) (*domain.CacheEntry, error) {
	const sql = `
update resolution_cache
set usage_count = usage_count + 1, updated_at = now()
where source_text = $1 and source_lang = $2 and target_lang = $3 and expires_at > now()
returning target_text, confidence, usage_count, provider, model, created_at, updated_at, expires_at
`
	e := domain.CacheEntry{SourceText: text, SourceLang: sourceLang, TargetLang: targetLang}
	err := r.q.QueryRow(ctx, sql, text, sourceLang, targetLang).Scan(
		&e.TargetText,
		&e.Confidence,
		&e.UsageCount,
		&e.Provider,
		&e.Model,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.ExpiresAt,
	)
	if errors.Is(err, stdsql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *queries) Upsert(ctx context.Context, e domain.CacheEntry, ttl time.Duration) error {
	const sql = `
insert into resolution_cache
  (source_text, source_lang, target_lang, target_text, confidence, usage_count, provider, model,
   created_at, updated_at, expires_at)
values ($1, $2, $3, $4, $5, 0, $6, $7, now(), now(), now() + make_interval(secs => $8))
on conflict (source_text, target_lang) do update set
  source_lang = excluded.source_lang,
  target_text = excluded.target_text,
  confidence  = excluded.confidence,
  provider    = excluded.provider,
  model       = excluded.model,
  updated_at  = now(),
  expires_at  = excluded.expires_at
`
	_, err := r.q.Exec(ctx, sql,
		e.SourceText, e.SourceLang, e.TargetLang, e.TargetText,
		e.Confidence, e.Provider, e.Model, ttl.Seconds(),
	)
	return err
}

func (r *queries) SweepExpired(ctx context.Context) (int64, error) {
	const sql = `delete from resolution_cache where expires_at < now()`
	tag, err := r.q.Exec(ctx, sql)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *queries) Stats(ctx context.Context) (domain.Stats, error) {
	const sql = `
select
  (select count(*) from static_entries where active),
  count(*) filter (where expires_at > now()),
  coalesce(sum(usage_count) filter (where expires_at > now()), 0),
  coalesce(avg(confidence) filter (where expires_at > now()), 0)
from resolution_cache
`
	var s domain.Stats
	err := r.q.QueryRow(ctx, sql).Scan(
		&s.StaticEntries,
		&s.CacheEntries,
		&s.TotalUsage,
		&s.MeanConfidence,
	)
	if err != nil {
		return domain.Stats{}, err
	}
	return s, nil
}
