package domain

import (
	"time"

	"segmenter/internal/core/normalize"
	perr "segmenter/internal/platform/errors"
)

// All transitions are pure: they take a Store by value and return the new
// Store, leaving the receiver untouched. Slices are copied on write so an
// emitted Store never aliases a later one.

func cloneSlice[T any](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// toggleValue removes v when present, appends it when absent.
// Removing the last element collapses the slice to nil so an emptied
// multi-select is indistinguishable from one never touched.
func toggleValue[T comparable](in []T, v T) []T {
	for i, have := range in {
		if have == v {
			if len(in) == 1 {
				return nil
			}
			out := make([]T, 0, len(in)-1)
			out = append(out, in[:i]...)
			out = append(out, in[i+1:]...)
			return out
		}
	}
	out := make([]T, 0, len(in)+1)
	out = append(out, in...)
	out = append(out, v)
	return out
}

// deactivatePreset clears the quick filter and everything it owns.
// Manual selections made before the preset are not restored.
func (s Store) deactivatePreset() Store {
	s.Preset = PresetNone
	s.Date = DateWindow{Source: SourceNone}
	s.DateBucket = BucketNone
	s.FunnelStages = nil
	return s
}

// SetDateRange sets a manual date window. A reversed range is rejected and
// the prior window kept. Setting a manual window while a quick filter is
// active first deactivates the quick filter.
func (s Store) SetDateRange(from, to *time.Time) (Store, error) {
	if from != nil && to != nil && from.After(*to) {
		return s, perr.WithField(perr.Validationf("date range start is after end"), "dateWindow")
	}
	if s.Preset != PresetNone {
		s = s.deactivatePreset()
	}
	s.DateBucket = BucketNone
	if from == nil && to == nil {
		s.Date = DateWindow{Source: SourceNone}
		return s, nil
	}
	s.Date = DateWindow{From: from, To: to, Source: SourceManual}
	return s, nil
}

// ToggleDateBucket checks or unchecks a relative date checkbox.
// Checking resolves the bucket against now and installs the window as a
// manual selection. Unchecking clears the date window entirely.
func (s Store) ToggleDateBucket(b DateBucket, now time.Time) Store {
	if s.DateBucket == b {
		s, _ = s.SetDateRange(nil, nil)
		return s
	}
	w := DateBucketWindow(b, now)
	if w.Source == SourceNone {
		return s
	}
	next, err := s.SetDateRange(w.From, w.To)
	if err != nil {
		return s
	}
	next.DateBucket = b
	return next
}

// SetTimeRange sets a manual time-of-day window, independent of the date
// window. A reversed range is rejected like a reversed date range.
func (s Store) SetTimeRange(from, to *ClockTime) (Store, error) {
	if from != nil && to != nil {
		if from.Hour > to.Hour || (from.Hour == to.Hour && from.Minute > to.Minute) {
			return s, perr.WithField(perr.Validationf("time range start is after end"), "timeOfDay")
		}
	}
	s.TimeBucket = TimeBucketNone
	s.Time = TimeWindow{From: from, To: to}
	return s, nil
}

// ToggleTimeBucket checks or unchecks a time-of-day checkbox
func (s Store) ToggleTimeBucket(b TimeBucket) Store {
	if s.TimeBucket == b {
		s.Time = TimeWindow{}
		s.TimeBucket = TimeBucketNone
		return s
	}
	w := TimeBucketWindow(b)
	if w.Empty() {
		return s
	}
	s.Time = w
	s.TimeBucket = b
	return s
}

// AddRegion appends a region tag. Empty input and exact duplicates are
// silent no-ops, so the region list behaves as an ordered set.
func (s Store) AddRegion(text string) Store {
	text = normalize.Input(text)
	if text == "" {
		return s
	}
	for _, have := range s.Regions {
		if have == text {
			return s
		}
	}
	out := make([]string, 0, len(s.Regions)+1)
	out = append(out, s.Regions...)
	out = append(out, text)
	s.Regions = out
	return s
}

// RemoveRegion drops a region tag by exact match
func (s Store) RemoveRegion(text string) Store {
	for i, have := range s.Regions {
		if have == text {
			if len(s.Regions) == 1 {
				s.Regions = nil
				return s
			}
			out := make([]string, 0, len(s.Regions)-1)
			out = append(out, s.Regions[:i]...)
			out = append(out, s.Regions[i+1:]...)
			s.Regions = out
			return s
		}
	}
	return s
}

// TogglePageVisits flips one page visit bucket
func (s Store) TogglePageVisits(v PageVisits) Store {
	s.PageVisits = toggleValue(s.PageVisits, v)
	return s
}

// ToggleDwellTime flips one dwell time bucket
func (s Store) ToggleDwellTime(v DwellTime) Store {
	s.DwellTimes = toggleValue(s.DwellTimes, v)
	return s
}

// ToggleFunnelStage flips one funnel stage. While a quick filter owns the
// funnel facet a manual edit first deactivates the quick filter, matching
// the manual date edit rule.
func (s Store) ToggleFunnelStage(v FunnelStage) Store {
	if s.Preset != PresetNone {
		s = s.deactivatePreset()
	}
	s.FunnelStages = toggleValue(s.FunnelStages, v)
	return s
}

// ToggleCustomerStatus flips one customer status
func (s Store) ToggleCustomerStatus(v CustomerStatus) Store {
	s.Statuses = toggleValue(s.Statuses, v)
	return s
}

// SetRecurringVisits sets the radio style visit count, RecurringNone unsets
func (s Store) SetRecurringVisits(v RecurringVisits) Store {
	s.Recurring = v
	return s
}

// SetFreeText replaces the free text query
func (s Store) SetFreeText(text string) Store {
	s.FreeText = normalize.Input(text)
	return s
}

// ApplyQuickPreset activates a quick filter. A different preset replaces the
// current one atomically. The same preset toggles off and resets the date
// window and funnel stage to empty rather than restoring prior manual values.
func (s Store) ApplyQuickPreset(p Preset, now time.Time) Store {
	if p == PresetNone || s.Preset == p {
		return s.deactivatePreset()
	}
	stage, ok := QuickFilterStage(p)
	if !ok {
		return s
	}
	s.Preset = p
	s.Date = QuickFilterWindow(now)
	s.DateBucket = BucketNone
	s.FunnelStages = []FunnelStage{stage}
	return s
}

// Clear resets every facet to its default value
func (s Store) Clear() Store {
	return Store{}
}

// Snapshot returns a deep copy so callers can hold a Store across later
// mutations without aliasing its slices
func (s Store) Snapshot() Store {
	s.Regions = cloneSlice(s.Regions)
	s.PageVisits = cloneSlice(s.PageVisits)
	s.DwellTimes = cloneSlice(s.DwellTimes)
	s.FunnelStages = cloneSlice(s.FunnelStages)
	s.Statuses = cloneSlice(s.Statuses)
	return s
}
