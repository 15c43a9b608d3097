// Package service implements the filter builder session service
package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"segmenter/internal/modkit/repokit"
	"segmenter/internal/platform/clock"
	perr "segmenter/internal/platform/errors"
	"segmenter/internal/platform/logger"
	"segmenter/internal/services/builder/domain"
)

// Svc owns the open builder sessions and the saved filter store.
//
// A session is one open/close lifecycle of the builder drawer: it starts
// empty (or hydrated from a saved filter), absorbs facet mutations, and ends
// either with Apply, which publishes exactly one FilterSpec, or with Discard,
// which drops everything. Uncommitted edits never leave the session.
type Svc struct {
	log    logger.Logger
	clk    clock.Clock
	db     repokit.TxRunner
	binder repokit.Binder[domain.Repo]
	query  domain.QueryPort

	mu       sync.Mutex
	sessions map[string]domain.Store
}

// Config carries the service dependencies
type Config struct {
	Log    logger.Logger
	Clock  clock.Clock
	DB     repokit.TxRunner
	Binder repokit.Binder[domain.Repo]
	Query  domain.QueryPort
}

// New constructs the builder service
func New(cfg Config) *Svc {
	if cfg.Clock == nil {
		cfg.Clock = clock.System{}
	}
	return &Svc{
		log:      cfg.Log,
		clk:      cfg.Clock,
		db:       cfg.DB,
		binder:   cfg.Binder,
		query:    cfg.Query,
		sessions: make(map[string]domain.Store),
	}
}

// Session is the state a caller sees after any operation: the facet store
// rendered as its chip row, plus the session id
type Session struct {
	ID    string       `json:"id"`
	Tags  []domain.Tag `json:"tags"`
	Store domain.Store `json:"-"`
}

func (s *Svc) view(id string, st domain.Store) Session {
	return Session{ID: id, Tags: domain.DeriveTags(st), Store: st}
}

// Open starts a fresh session. When fromFilter names a saved filter the new
// session is hydrated from it, unknown backend keys are dropped with a
// warning and hydration continues.
func (s *Svc) Open(ctx context.Context, fromFilter string) (Session, error) {
	var st domain.Store
	if fromFilter != "" {
		saved, err := s.getSaved(ctx, fromFilter)
		if err != nil {
			return Session{}, err
		}
		var unknown []string
		st, unknown = domain.Hydrate(saved.Spec)
		for _, k := range unknown {
			logger.C(ctx).Warn().
				Str("filter", fromFilter).
				Str("key", k).
				Msg("dropping unrecognized facet key during hydration")
		}
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = st
	s.mu.Unlock()

	logger.Named("builder").Debug().Str("session_id", id).Msg("session opened")
	return s.view(id, st), nil
}

// Get returns the current chip row for a session
func (s *Svc) Get(_ context.Context, id string) (Session, error) {
	s.mu.Lock()
	st, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return Session{}, perr.NotFoundf("session %s not found", id)
	}
	return s.view(id, st), nil
}

// update applies a pure transition to a session under the lock
func (s *Svc) update(id string, fn func(domain.Store) (domain.Store, error)) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[id]
	if !ok {
		return Session{}, perr.NotFoundf("session %s not found", id)
	}
	next, err := fn(st)
	if err != nil {
		return s.view(id, st), err
	}
	s.sessions[id] = next
	return s.view(id, next), nil
}

// SetDateRange sets a manual date window on a session
func (s *Svc) SetDateRange(_ context.Context, id string, from, to *time.Time) (Session, error) {
	return s.update(id, func(st domain.Store) (domain.Store, error) {
		return st.SetDateRange(from, to)
	})
}

// ToggleDateBucket checks or unchecks a relative date checkbox
func (s *Svc) ToggleDateBucket(_ context.Context, id string, b domain.DateBucket) (Session, error) {
	return s.update(id, func(st domain.Store) (domain.Store, error) {
		return st.ToggleDateBucket(b, s.clk.Now()), nil
	})
}

// SetTimeRange sets a manual time-of-day window
func (s *Svc) SetTimeRange(_ context.Context, id string, from, to *domain.ClockTime) (Session, error) {
	return s.update(id, func(st domain.Store) (domain.Store, error) {
		return st.SetTimeRange(from, to)
	})
}

// ToggleTimeBucket checks or unchecks a time-of-day checkbox
func (s *Svc) ToggleTimeBucket(_ context.Context, id string, b domain.TimeBucket) (Session, error) {
	return s.update(id, func(st domain.Store) (domain.Store, error) {
		return st.ToggleTimeBucket(b), nil
	})
}

// AddRegion adds a region chip, duplicates are silent no-ops
func (s *Svc) AddRegion(_ context.Context, id, text string) (Session, error) {
	return s.update(id, func(st domain.Store) (domain.Store, error) {
		return st.AddRegion(text), nil
	})
}

// TogglePageVisits flips a page visit bucket
func (s *Svc) TogglePageVisits(_ context.Context, id string, v domain.PageVisits) (Session, error) {
	return s.update(id, func(st domain.Store) (domain.Store, error) {
		return st.TogglePageVisits(v), nil
	})
}

// ToggleDwellTime flips a dwell time bucket
func (s *Svc) ToggleDwellTime(_ context.Context, id string, v domain.DwellTime) (Session, error) {
	return s.update(id, func(st domain.Store) (domain.Store, error) {
		return st.ToggleDwellTime(v), nil
	})
}

// ToggleFunnelStage flips a funnel stage
func (s *Svc) ToggleFunnelStage(_ context.Context, id string, v domain.FunnelStage) (Session, error) {
	return s.update(id, func(st domain.Store) (domain.Store, error) {
		return st.ToggleFunnelStage(v), nil
	})
}

// ToggleCustomerStatus flips a customer status
func (s *Svc) ToggleCustomerStatus(_ context.Context, id string, v domain.CustomerStatus) (Session, error) {
	return s.update(id, func(st domain.Store) (domain.Store, error) {
		return st.ToggleCustomerStatus(v), nil
	})
}

// SetRecurringVisits sets the radio style visit count
func (s *Svc) SetRecurringVisits(_ context.Context, id string, v domain.RecurringVisits) (Session, error) {
	return s.update(id, func(st domain.Store) (domain.Store, error) {
		return st.SetRecurringVisits(v), nil
	})
}

// SetFreeText replaces the free text query
func (s *Svc) SetFreeText(_ context.Context, id, text string) (Session, error) {
	return s.update(id, func(st domain.Store) (domain.Store, error) {
		return st.SetFreeText(text), nil
	})
}

// ApplyQuickPreset activates or toggles a quick filter
func (s *Svc) ApplyQuickPreset(_ context.Context, id string, p domain.Preset) (Session, error) {
	return s.update(id, func(st domain.Store) (domain.Store, error) {
		return st.ApplyQuickPreset(p, s.clk.Now()), nil
	})
}

// RemoveTag retracts one chip, the only deletion path for chip state
func (s *Svc) RemoveTag(_ context.Context, id string, tag domain.Tag) (Session, error) {
	return s.update(id, func(st domain.Store) (domain.Store, error) {
		return domain.RemoveTag(st, tag), nil
	})
}

// ClearAll resets every facet of a session
func (s *Svc) ClearAll(_ context.Context, id string) (Session, error) {
	return s.update(id, func(st domain.Store) (domain.Store, error) {
		return st.Clear(), nil
	})
}

// Apply commits a session: compiles the FilterSpec, hands it to the query
// port without awaiting the result, and closes the session. This is the only
// point where facet state leaves the builder.
func (s *Svc) Apply(ctx context.Context, id string) (domain.FilterSpec, error) {
	s.mu.Lock()
	st, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()
	if !ok {
		return domain.FilterSpec{}, perr.NotFoundf("session %s not found", id)
	}

	spec := domain.Compile(st)
	if s.query != nil {
		bg := context.WithoutCancel(ctx)
		go func() {
			if err := s.query.Submit(bg, spec); err != nil {
				s.log.Error().Err(err).Str("session_id", id).Msg("query submit failed")
			}
		}()
	}
	logger.C(ctx).Info().Str("session_id", id).Msg("filter applied")
	return spec, nil
}

// Discard closes a session without publishing anything
func (s *Svc) Discard(_ context.Context, id string) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return perr.NotFoundf("session %s not found", id)
	}
	return nil
}
