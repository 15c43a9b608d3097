package domain

import "time"

// Hydrate rebuilds a Store from a saved FilterSpec, best effort. Backend keys
// that are no longer recognized are dropped and reported back so the caller
// can log them, hydration continues for the remaining facets.
//
// The time-of-day facet is not recoverable: compile folds it into the date
// endpoints, so a hydrated store carries the merged instants as a plain date
// window.
func Hydrate(spec FilterSpec) (Store, []string) {
	var s Store
	var unknown []string

	lift := func(facet, key string, ok bool) bool {
		if !ok {
			unknown = append(unknown, facet+": "+key)
		}
		return ok
	}

	if spec.FromDate != nil {
		t := time.Unix(*spec.FromDate, 0)
		s.Date.From = &t
	}
	if spec.ToDate != nil {
		t := time.Unix(*spec.ToDate, 0)
		s.Date.To = &t
	}
	if !s.Date.Empty() {
		s.Date.Source = SourceManual
	}

	if spec.Preset != nil {
		if p, ok := presetByKey[*spec.Preset]; lift("preset", deref(spec.Preset), ok) {
			s.Preset = p
			s.Date.Source = SourcePreset
		}
	}

	if len(spec.Regions) > 0 {
		s.Regions = append([]string(nil), spec.Regions...)
	}
	for _, k := range spec.PageVisits {
		if v, ok := pageVisitByKey[k]; lift("pageVisits", k, ok) {
			s.PageVisits = append(s.PageVisits, v)
		}
	}
	for _, k := range spec.DwellTimes {
		if v, ok := dwellTimeByKey[k]; lift("dwellTimes", k, ok) {
			s.DwellTimes = append(s.DwellTimes, v)
		}
	}
	for _, k := range spec.FunnelStages {
		if v, ok := funnelStageByKey[k]; lift("funnelStages", k, ok) {
			s.FunnelStages = append(s.FunnelStages, v)
		}
	}
	for _, k := range spec.CustomerStatuses {
		if v, ok := customerStatusByKey[k]; lift("customerStatuses", k, ok) {
			s.Statuses = append(s.Statuses, v)
		}
	}

	if spec.RecurringVisits != nil {
		if v, ok := recurringByKey[*spec.RecurringVisits]; lift("recurringVisits", *spec.RecurringVisits, ok) {
			s.Recurring = v
		}
	}

	s.FreeText = spec.FreeText
	return s, unknown
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
