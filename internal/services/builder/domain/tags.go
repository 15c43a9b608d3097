package domain

import "fmt"

// Chip labels for every enum facet. DeriveTags renders through these and
// RemoveTag resolves back through their inverses, so the chip row and the
// facet state cannot drift apart.

const dateLabelLayout = "Jan 2, 2006"

var pageVisitLabels = map[PageVisits]string{
	VisitsOne:           "1 page",
	VisitsTwo:           "2 pages",
	VisitsThree:         "3 pages",
	VisitsMoreThanThree: "More than 3 pages",
}

var dwellTimeLabels = map[DwellTime]string{
	DwellUnder10: "Under 10 min",
	Dwell10To30:  "10-30 min",
	Dwell30To60:  "30-60 min",
	DwellOver60:  "Over 60 min",
}

var funnelStageLabels = map[FunnelStage]string{
	StageConverted:     "Converted",
	StageVisitor:       "Visitor",
	StageAddedToCart:   "Added to cart",
	StageCartAbandoned: "Cart abandoned",
}

var customerStatusLabels = map[CustomerStatus]string{
	StatusNew:      "New",
	StatusExisting: "Existing",
	StatusAll:      "All",
}

var presetLabels = map[Preset]string{
	PresetAbandonedCart:     "Abandoned cart",
	PresetConvertersSales:   "Converters sales",
	PresetReturningVisitors: "Returning visitors",
	PresetLandedToCart:      "Landed to cart",
}

func invert[K comparable, V comparable](in map[K]V) map[V]K {
	out := make(map[V]K, len(in))
	for k, v := range in {
		out[v] = k
	}
	return out
}

var (
	pageVisitByLabel      = invert(pageVisitLabels)
	dwellTimeByLabel      = invert(dwellTimeLabels)
	funnelStageByLabel    = invert(funnelStageLabels)
	customerStatusByLabel = invert(customerStatusLabels)
)

func dateWindowLabel(w DateWindow) string {
	switch {
	case w.From != nil && w.To != nil:
		return w.From.Format(dateLabelLayout) + " - " + w.To.Format(dateLabelLayout)
	case w.From != nil:
		return "From " + w.From.Format(dateLabelLayout)
	case w.To != nil:
		return "Until " + w.To.Format(dateLabelLayout)
	default:
		return ""
	}
}

func clockLabel(c ClockTime) string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

func timeWindowLabel(w TimeWindow) string {
	switch {
	case w.From != nil && w.To != nil:
		return clockLabel(*w.From) + " - " + clockLabel(*w.To)
	case w.From != nil:
		return "From " + clockLabel(*w.From)
	case w.To != nil:
		return "Until " + clockLabel(*w.To)
	default:
		return ""
	}
}

func recurringLabel(v RecurringVisits) string {
	if v == RecurringOne {
		return "1 visit"
	}
	return string(v) + " visits"
}

// DeriveTags renders the ordered chip row for a store. Pure: the result is a
// function of the store alone, ordered by facet declaration then insertion
// order within a facet.
func DeriveTags(s Store) []Tag {
	var tags []Tag
	add := func(f FacetName, label string) {
		tags = append(tags, Tag{Facet: f, Label: label})
	}

	if !s.Date.Empty() {
		add(FacetDateWindow, dateWindowLabel(s.Date))
	}
	if !s.Time.Empty() {
		add(FacetTimeOfDay, timeWindowLabel(s.Time))
	}
	if s.Preset != PresetNone {
		add(FacetQuickPreset, presetLabels[s.Preset])
	}
	for _, r := range s.Regions {
		add(FacetRegions, r)
	}
	for _, v := range s.PageVisits {
		add(FacetPageVisits, pageVisitLabels[v])
	}
	for _, v := range s.DwellTimes {
		add(FacetDwellTime, dwellTimeLabels[v])
	}
	for _, v := range s.FunnelStages {
		add(FacetFunnelStage, funnelStageLabels[v])
	}
	for _, v := range s.Statuses {
		add(FacetCustomerStatus, customerStatusLabels[v])
	}
	if s.Recurring != RecurringNone {
		add(FacetRecurringVisits, recurringLabel(s.Recurring))
	}
	if s.FreeText != "" {
		add(FacetFreeText, s.FreeText)
	}
	return tags
}

// RemoveTag is the single retraction path for chips. It dispatches the tag
// back to the facet that produced it, so a removed chip always takes its
// backing value with it. Unknown labels are no-ops.
func RemoveTag(s Store, t Tag) Store {
	switch t.Facet {
	case FacetDateWindow:
		if s.Preset != PresetNone {
			return s.deactivatePreset()
		}
		next, _ := s.SetDateRange(nil, nil)
		return next

	case FacetTimeOfDay:
		next, _ := s.SetTimeRange(nil, nil)
		next.TimeBucket = TimeBucketNone
		return next

	case FacetQuickPreset:
		return s.deactivatePreset()

	case FacetRegions:
		return s.RemoveRegion(t.Label)

	case FacetPageVisits:
		if v, ok := pageVisitByLabel[t.Label]; ok && contains(s.PageVisits, v) {
			return s.TogglePageVisits(v)
		}
		return s

	case FacetDwellTime:
		if v, ok := dwellTimeByLabel[t.Label]; ok && contains(s.DwellTimes, v) {
			return s.ToggleDwellTime(v)
		}
		return s

	case FacetFunnelStage:
		if s.Preset != PresetNone {
			// the stage chip belongs to the quick filter, removing it
			// retracts the whole preset
			return s.deactivatePreset()
		}
		if v, ok := funnelStageByLabel[t.Label]; ok && contains(s.FunnelStages, v) {
			return s.ToggleFunnelStage(v)
		}
		return s

	case FacetCustomerStatus:
		if v, ok := customerStatusByLabel[t.Label]; ok && contains(s.Statuses, v) {
			return s.ToggleCustomerStatus(v)
		}
		return s

	case FacetRecurringVisits:
		return s.SetRecurringVisits(RecurringNone)

	case FacetFreeText:
		return s.SetFreeText("")

	default:
		return s
	}
}

func contains[T comparable](in []T, v T) bool {
	for _, have := range in {
		if have == v {
			return true
		}
	}
	return false
}
