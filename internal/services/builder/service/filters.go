package service

import (
	"context"

	"segmenter/internal/core/normalize"
	"segmenter/internal/modkit/repokit"
	perr "segmenter/internal/platform/errors"
	"segmenter/internal/services/builder/domain"
)

// Saved filter operations. Names are operator-chosen and normalized the same
// way region input is, so "  My  Filter " and "My Filter" address one row.

func (s *Svc) requireDB() error {
	if s.db == nil || s.binder == nil {
		return perr.Newf(perr.ErrorCodeUnavailable, "saved filters are not configured")
	}
	return nil
}

func (s *Svc) getSaved(ctx context.Context, name string) (domain.SavedFilter, error) {
	if err := s.requireDB(); err != nil {
		return domain.SavedFilter{}, err
	}
	return s.binder.Bind(s.db).Get(ctx, normalize.Input(name))
}

// SaveFilter compiles a session's current state and stores it under name.
// The session stays open, saving is not a commit.
func (s *Svc) SaveFilter(ctx context.Context, name, sessionID string) (domain.SavedFilter, error) {
	if err := s.requireDB(); err != nil {
		return domain.SavedFilter{}, err
	}
	name = normalize.Input(name)
	if name == "" {
		return domain.SavedFilter{}, perr.WithField(perr.Validationf("filter name must not be empty"), "name")
	}

	s.mu.Lock()
	st, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return domain.SavedFilter{}, perr.NotFoundf("session %s not found", sessionID)
	}

	spec := domain.Compile(st)
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		return s.binder.Bind(q).Upsert(ctx, name, spec)
	})
	if err != nil {
		return domain.SavedFilter{}, err
	}
	return s.binder.Bind(s.db).Get(ctx, name)
}

// GetFilter returns one saved filter by name
func (s *Svc) GetFilter(ctx context.Context, name string) (domain.SavedFilter, error) {
	return s.getSaved(ctx, name)
}

// ListFilters returns every saved filter, most recently updated first
func (s *Svc) ListFilters(ctx context.Context) ([]domain.SavedFilter, error) {
	if err := s.requireDB(); err != nil {
		return nil, err
	}
	return s.binder.Bind(s.db).List(ctx)
}

// DeleteFilter removes a saved filter by name
func (s *Svc) DeleteFilter(ctx context.Context, name string) error {
	if err := s.requireDB(); err != nil {
		return err
	}
	return repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		return s.binder.Bind(q).Delete(ctx, normalize.Input(name))
	})
}
