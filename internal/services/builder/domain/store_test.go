package domain

import (
	"testing"
	"time"

	"segmenter/internal/platform/clock"
)

// a mid-year afternoon so relative windows cross a month boundary
var now = time.Date(2024, 6, 30, 15, 4, 5, 0, time.UTC)

func mustSetDateRange(t *testing.T, s Store, from, to *time.Time) Store {
	t.Helper()
	next, err := s.SetDateRange(from, to)
	if err != nil {
		t.Fatalf("set date range: %v", err)
	}
	return next
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestSetDateRange_RejectsReversedOrder(t *testing.T) {
	s := mustSetDateRange(t, Store{}, day(2024, 1, 5), day(2024, 1, 10))

	got, err := s.SetDateRange(day(2024, 1, 10), day(2024, 1, 5))
	if err == nil {
		t.Fatalf("expected reversed range to be rejected")
	}
	if !got.Date.From.Equal(*s.Date.From) || !got.Date.To.Equal(*s.Date.To) {
		t.Fatalf("prior window must survive a rejected edit: %+v", got.Date)
	}
}

func TestSetDateRange_ClearsActivePreset(t *testing.T) {
	s := Store{}.ApplyQuickPreset(PresetAbandonedCart, now)
	if s.Preset != PresetAbandonedCart {
		t.Fatalf("preset not active")
	}

	s = mustSetDateRange(t, s, day(2024, 2, 1), day(2024, 2, 14))
	if s.Preset != PresetNone {
		t.Fatalf("manual date edit must clear the preset, got %q", s.Preset)
	}
	if s.Date.Source != SourceManual {
		t.Fatalf("source = %q, want manual", s.Date.Source)
	}
	if len(s.FunnelStages) != 0 {
		t.Fatalf("preset-owned funnel stage must not survive: %v", s.FunnelStages)
	}
}

func TestToggleDateBucket_Last30Days(t *testing.T) {
	s := Store{}.ToggleDateBucket(BucketLast30Days, now)

	wantFrom := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	wantTo := clock.EndOfDay(now)
	if s.Date.From == nil || !s.Date.From.Equal(wantFrom) {
		t.Fatalf("from = %v, want %v", s.Date.From, wantFrom)
	}
	if s.Date.To == nil || !s.Date.To.Equal(wantTo) {
		t.Fatalf("to = %v, want %v", s.Date.To, wantTo)
	}
	if s.Date.Source != SourceManual {
		t.Fatalf("source = %q, want manual", s.Date.Source)
	}
	if s.DateBucket != BucketLast30Days {
		t.Fatalf("bucket = %q", s.DateBucket)
	}
}

func TestToggleDateBucket_UncheckClearsWindow(t *testing.T) {
	s := Store{}.ToggleDateBucket(BucketLastWeek, now)
	s = s.ToggleDateBucket(BucketLastWeek, now)

	if !s.Date.Empty() || s.DateBucket != BucketNone {
		t.Fatalf("uncheck must clear the window entirely: %+v", s.Date)
	}
	if s.Date.Source != SourceNone {
		t.Fatalf("source = %q, want none", s.Date.Source)
	}
}

func TestToggleDateBucket_AllTimeHasOpenStart(t *testing.T) {
	s := Store{}.ToggleDateBucket(BucketAllTime, now)
	if s.Date.From != nil {
		t.Fatalf("allTime must leave from open, got %v", s.Date.From)
	}
	if s.Date.To == nil {
		t.Fatalf("allTime must close at end of today")
	}
}

func TestAddRegion_DuplicateIsNoOp(t *testing.T) {
	s := Store{}.AddRegion("Texas").AddRegion("Texas")
	if len(s.Regions) != 1 {
		t.Fatalf("regions = %v, want one entry", s.Regions)
	}

	// case sensitive, so a different casing is a second entry
	s = s.AddRegion("texas")
	if len(s.Regions) != 2 {
		t.Fatalf("matching is case sensitive, regions = %v", s.Regions)
	}
}

func TestAddRegion_EmptyAndWhitespaceIgnored(t *testing.T) {
	s := Store{}.AddRegion("").AddRegion("   ")
	if len(s.Regions) != 0 {
		t.Fatalf("regions = %v, want none", s.Regions)
	}
}

func TestAddRegion_PreservesInsertionOrder(t *testing.T) {
	s := Store{}.AddRegion("Texas").AddRegion("Alberta").AddRegion("Bavaria")
	want := []string{"Texas", "Alberta", "Bavaria"}
	for i, r := range want {
		if s.Regions[i] != r {
			t.Fatalf("regions = %v, want %v", s.Regions, want)
		}
	}
}

func TestToggleMultiSelect_LastRemovalResetsFacet(t *testing.T) {
	s := Store{}.ToggleCustomerStatus(StatusNew)
	s = s.ToggleCustomerStatus(StatusNew)
	if s.Statuses != nil {
		t.Fatalf("emptied facet must collapse to nil, got %#v", s.Statuses)
	}
	if !s.Empty() {
		t.Fatalf("store should be empty again")
	}
}

func TestToggleMultiSelect_AccumulatesValues(t *testing.T) {
	s := Store{}.TogglePageVisits(VisitsOne).TogglePageVisits(VisitsMoreThanThree)
	if len(s.PageVisits) != 2 {
		t.Fatalf("pageVisits = %v", s.PageVisits)
	}
	s = s.TogglePageVisits(VisitsOne)
	if len(s.PageVisits) != 1 || s.PageVisits[0] != VisitsMoreThanThree {
		t.Fatalf("pageVisits = %v, want only moreThanThree", s.PageVisits)
	}
}

func TestApplyQuickPreset_SetsWindowAndStage(t *testing.T) {
	s := Store{}.ApplyQuickPreset(PresetAbandonedCart, now)

	if s.Date.Source != SourcePreset {
		t.Fatalf("source = %q, want preset", s.Date.Source)
	}
	if len(s.FunnelStages) != 1 || s.FunnelStages[0] != StageCartAbandoned {
		t.Fatalf("funnel = %v, want CartAbandoned only", s.FunnelStages)
	}
	wantFrom := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if s.Date.From == nil || !s.Date.From.Equal(wantFrom) {
		t.Fatalf("from = %v, want %v", s.Date.From, wantFrom)
	}
}

func TestApplyQuickPreset_ReplacesManualFunnelSelection(t *testing.T) {
	s := Store{}.ToggleFunnelStage(StageVisitor).ToggleFunnelStage(StageConverted)
	s = s.ApplyQuickPreset(PresetLandedToCart, now)
	if len(s.FunnelStages) != 1 || s.FunnelStages[0] != StageAddedToCart {
		t.Fatalf("preset must replace manual stages, got %v", s.FunnelStages)
	}
}

func TestApplyQuickPreset_DifferentPresetReplacesAtomically(t *testing.T) {
	s := Store{}.ApplyQuickPreset(PresetAbandonedCart, now)
	s = s.ApplyQuickPreset(PresetConvertersSales, now)
	if s.Preset != PresetConvertersSales {
		t.Fatalf("preset = %q", s.Preset)
	}
	if len(s.FunnelStages) != 1 || s.FunnelStages[0] != StageConverted {
		t.Fatalf("funnel = %v, want Converted only", s.FunnelStages)
	}
}

func TestApplyQuickPreset_SamePresetTogglesOff(t *testing.T) {
	s := Store{}.ApplyQuickPreset(PresetConvertersSales, now)
	s = s.ApplyQuickPreset(PresetConvertersSales, now)

	if s.Preset != PresetNone {
		t.Fatalf("preset = %q, want none", s.Preset)
	}
	if !s.Date.Empty() || len(s.FunnelStages) != 0 {
		t.Fatalf("toggle off must reset window and funnel: %+v", s)
	}
}

func TestSetTimeRange_RejectsReversedOrder(t *testing.T) {
	s := Store{}
	got, err := s.SetTimeRange(&ClockTime{Hour: 18}, &ClockTime{Hour: 9})
	if err == nil {
		t.Fatalf("expected reversed time range to be rejected")
	}
	if !got.Time.Empty() {
		t.Fatalf("time window must stay empty after rejection: %+v", got.Time)
	}
}

func TestToggleTimeBucket_IndependentOfDateSource(t *testing.T) {
	s := Store{}.ApplyQuickPreset(PresetReturningVisitors, now)
	s = s.ToggleTimeBucket(TimeBucketMorning)

	if s.Preset != PresetReturningVisitors {
		t.Fatalf("time selection must not disturb the preset")
	}
	if s.Time.From == nil || s.Time.From.Hour != 6 {
		t.Fatalf("time window = %+v", s.Time)
	}
}

func TestSetRecurringVisits_RadioSemantics(t *testing.T) {
	s := Store{}.SetRecurringVisits(RecurringTwo).SetRecurringVisits(RecurringFourPlus)
	if s.Recurring != RecurringFourPlus {
		t.Fatalf("recurring = %q", s.Recurring)
	}
	s = s.SetRecurringVisits(RecurringNone)
	if s.Recurring != RecurringNone {
		t.Fatalf("unset failed")
	}
}

func TestClear_ResetsEverything(t *testing.T) {
	s := Store{}.
		AddRegion("Texas").
		TogglePageVisits(VisitsTwo).
		ApplyQuickPreset(PresetAbandonedCart, now).
		SetFreeText("boots")
	s = s.Clear()
	if !s.Empty() {
		t.Fatalf("clear must return the empty store: %+v", s)
	}
}

func TestMutations_DoNotAliasPriorStores(t *testing.T) {
	base := Store{}.AddRegion("Texas")
	next := base.AddRegion("Alberta")

	if len(base.Regions) != 1 {
		t.Fatalf("prior store mutated: %v", base.Regions)
	}
	if len(next.Regions) != 2 {
		t.Fatalf("next store missing value: %v", next.Regions)
	}
}
