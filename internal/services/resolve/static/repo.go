// Package static is the first resolution tier, an admin-managed lookup table
// snapshotted in memory and scored with the similarity matcher
package static

import (
	"context"

	"lingo/internal/modkit/repokit"
	"lingo/internal/services/resolve/domain"
)

// Repo defines the repository contract for static entries
type Repo interface {
	Active(ctx context.Context) ([]domain.StaticEntry, error)
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

func (r *queries) Active(ctx context.Context) ([]domain.StaticEntry, error) {
	const sql = `
select id::text, key, output, target_lang, category, priority
from static_entries
where active
order by priority desc, key
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.StaticEntry
	for rows.Next() {
		var e domain.StaticEntry
		if err := rows.Scan(&e.ID, &e.Key, &e.Output, &e.TargetLang, &e.Category, &e.Priority); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
