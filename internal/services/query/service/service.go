// Package service receives committed filter specs for audience queries
package service

import (
	"context"
	"sync"
	"time"

	"segmenter/internal/platform/clock"
	"segmenter/internal/platform/logger"
	"segmenter/internal/services/builder/domain"
)

// Submission is one committed FilterSpec with its arrival time
type Submission struct {
	Spec domain.FilterSpec `json:"spec"`
	At   time.Time         `json:"at"`
}

// Svc is the in-process query endpoint. It accepts FilterSpecs from the
// builder, logs them, and keeps a bounded history of recent submissions for
// the dashboard.
type Svc struct {
	log logger.Logger
	clk clock.Clock
	max int

	mu     sync.Mutex
	recent []Submission
}

// New constructs the query service keeping up to max recent submissions
func New(log logger.Logger, clk clock.Clock, max int) *Svc {
	if clk == nil {
		clk = clock.System{}
	}
	if max <= 0 {
		max = 50
	}
	return &Svc{log: log, clk: clk, max: max}
}

// Submit implements domain.QueryPort
func (s *Svc) Submit(_ context.Context, spec domain.FilterSpec) error {
	sub := Submission{Spec: spec, At: s.clk.Now()}

	s.mu.Lock()
	s.recent = append(s.recent, sub)
	if len(s.recent) > s.max {
		s.recent = s.recent[len(s.recent)-s.max:]
	}
	s.mu.Unlock()

	s.log.Info().
		Int("regions", len(spec.Regions)).
		Int("funnel_stages", len(spec.FunnelStages)).
		Bool("has_dates", spec.FromDate != nil || spec.ToDate != nil).
		Msg("filter spec accepted for query")
	return nil
}

// Recent returns the retained submissions, newest first
func (s *Svc) Recent(_ context.Context) []Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Submission, len(s.recent))
	for i, sub := range s.recent {
		out[len(s.recent)-1-i] = sub
	}
	return out
}
