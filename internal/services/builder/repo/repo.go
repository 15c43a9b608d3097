// Package repo provides Postgres bindings for domain.Repo
package repo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"segmenter/internal/modkit/repokit"
	perr "segmenter/internal/platform/errors"
	"segmenter/internal/services/builder/domain"
)

type (
	// PG is a Postgres binder for domain.Repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// Compile-time assertion: queries implements domain.Repo
var _ domain.Repo = (*queries)(nil)

// NewPG returns a Postgres binder for Repo
func NewPG() repokit.Binder[domain.Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.Repo { return &queries{q: q} }

// Upsert writes a named filter, replacing any previous spec under that name
func (r *queries) Upsert(ctx context.Context, name string, spec domain.FilterSpec) error {
	raw, err := json.Marshal(spec)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "encode filter spec")
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO saved_filters (name, spec, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (name) DO UPDATE
		SET spec = EXCLUDED.spec, updated_at = now()
	`, name, raw)
	if err != nil {
		return perr.MapDB(err, "upsert saved filter")
	}
	return nil
}

// Get reads one saved filter by name
func (r *queries) Get(ctx context.Context, name string) (domain.SavedFilter, error) {
	var (
		out domain.SavedFilter
		raw []byte
	)
	err := r.q.QueryRow(ctx, `
		SELECT name, spec, updated_at
		FROM saved_filters
		WHERE name = $1
	`, name).Scan(&out.Name, &raw, &out.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.SavedFilter{}, perr.NotFoundf("saved filter %q not found", name)
	}
	if err != nil {
		return domain.SavedFilter{}, perr.MapDB(err, "get saved filter")
	}
	if err := json.Unmarshal(raw, &out.Spec); err != nil {
		return domain.SavedFilter{}, perr.Wrap(err, perr.ErrorCodeJSON, "decode filter spec")
	}
	return out, nil
}

// List returns all saved filters, most recently updated first
func (r *queries) List(ctx context.Context) ([]domain.SavedFilter, error) {
	rows, err := r.q.Query(ctx, `
		SELECT name, spec, updated_at
		FROM saved_filters
		ORDER BY updated_at DESC, name
	`)
	if err != nil {
		return nil, perr.MapDB(err, "list saved filters")
	}
	defer rows.Close()

	var out []domain.SavedFilter
	for rows.Next() {
		var (
			f   domain.SavedFilter
			raw []byte
		)
		if err := rows.Scan(&f.Name, &raw, &f.UpdatedAt); err != nil {
			return nil, perr.MapDB(err, "scan saved filter")
		}
		if err := json.Unmarshal(raw, &f.Spec); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeJSON, "decode filter spec")
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.MapDB(err, "iterate saved filters")
	}
	return out, nil
}

// Delete removes a saved filter by name, missing names are reported not found
func (r *queries) Delete(ctx context.Context, name string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM saved_filters WHERE name = $1`, name)
	if err != nil {
		return perr.MapDB(err, "delete saved filter")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("saved filter %q not found", name)
	}
	return nil
}
