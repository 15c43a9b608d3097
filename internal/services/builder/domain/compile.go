package domain

import (
	"segmenter/internal/platform/clock"
)

// FilterSpec is the committed, immutable query handed to the audience query
// endpoint. Every field is always present on the wire, absence carries no
// meaning, only null and empty values do.
type FilterSpec struct {
	FromDate         *int64   `json:"fromDate"`
	ToDate           *int64   `json:"toDate"`
	Regions          []string `json:"regions"`
	PageVisits       []string `json:"pageVisits"`
	DwellTimes       []string `json:"dwellTimes"`
	FunnelStages     []string `json:"funnelStages"`
	CustomerStatuses []string `json:"customerStatuses"`
	RecurringVisits  *string  `json:"recurringVisits"`
	FreeText         string   `json:"freeText"`
	Preset           *string  `json:"preset"`
}

// Backend vocabulary. The chip row speaks operator labels, the query endpoint
// speaks these keys.

var pageVisitKeys = map[PageVisits]string{
	VisitsOne:           "one_page",
	VisitsTwo:           "two_pages",
	VisitsThree:         "three_pages",
	VisitsMoreThanThree: "more_than_three_pages",
}

var dwellTimeKeys = map[DwellTime]string{
	DwellUnder10: "under_10_min",
	Dwell10To30:  "10_to_30_min",
	Dwell30To60:  "30_to_60_min",
	DwellOver60:  "over_60_min",
}

var funnelStageKeys = map[FunnelStage]string{
	StageConverted:     "converted",
	StageVisitor:       "visitor",
	StageAddedToCart:   "added_to_cart",
	StageCartAbandoned: "cart_abandoned",
}

var customerStatusKeys = map[CustomerStatus]string{
	StatusNew:      "new_customers",
	StatusExisting: "existing_customers",
	StatusAll:      "all_customers",
}

var recurringKeys = map[RecurringVisits]string{
	RecurringOne:      "1",
	RecurringTwo:      "2",
	RecurringThree:    "3",
	RecurringFour:     "4",
	RecurringFourPlus: "4_plus",
}

var presetKeys = map[Preset]string{
	PresetAbandonedCart:     "abandoned_cart",
	PresetConvertersSales:   "converters_sales",
	PresetReturningVisitors: "returning_visitors",
	PresetLandedToCart:      "landed_to_cart",
}

var (
	pageVisitByKey      = invert(pageVisitKeys)
	dwellTimeByKey      = invert(dwellTimeKeys)
	funnelStageByKey    = invert(funnelStageKeys)
	customerStatusByKey = invert(customerStatusKeys)
	recurringByKey      = invert(recurringKeys)
	presetByKey         = invert(presetKeys)
)

func flatten[T comparable](in []T, keys map[T]string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if k, ok := keys[v]; ok {
			out = append(out, k)
		}
	}
	return out
}

// Compile flattens a store into a FilterSpec snapshot. It never fails:
// values without a backend key are compiled as empty for that facet.
//
// The time-of-day facet has no anchor of its own, it is merged onto the
// resolved date endpoints. With no date resolved the time selection is
// discarded.
func Compile(s Store) FilterSpec {
	spec := FilterSpec{
		Regions:          append([]string{}, s.Regions...),
		PageVisits:       flatten(s.PageVisits, pageVisitKeys),
		DwellTimes:       flatten(s.DwellTimes, dwellTimeKeys),
		FunnelStages:     flatten(s.FunnelStages, funnelStageKeys),
		CustomerStatuses: flatten(s.Statuses, customerStatusKeys),
		FreeText:         s.FreeText,
	}

	from, to := s.Date.From, s.Date.To
	if !s.Date.Empty() && !s.Time.Empty() {
		if from != nil && s.Time.From != nil {
			t := clock.OnDay(*from, s.Time.From.Hour, s.Time.From.Minute)
			from = &t
		}
		if to != nil && s.Time.To != nil {
			t := clock.OnDay(*to, s.Time.To.Hour, s.Time.To.Minute)
			to = &t
		}
	}
	if from != nil {
		sec := from.Unix()
		spec.FromDate = &sec
	}
	if to != nil {
		sec := to.Unix()
		spec.ToDate = &sec
	}

	if k, ok := recurringKeys[s.Recurring]; ok && s.Recurring != RecurringNone {
		spec.RecurringVisits = &k
	}
	if k, ok := presetKeys[s.Preset]; ok && s.Preset != PresetNone {
		spec.Preset = &k
	}
	return spec
}
