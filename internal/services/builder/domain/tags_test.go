package domain

import "testing"

func tagsFor(s Store, f FacetName) []Tag {
	var out []Tag
	for _, t := range DeriveTags(s) {
		if t.Facet == f {
			out = append(out, t)
		}
	}
	return out
}

func TestDeriveTags_EmptyStoreHasNoChips(t *testing.T) {
	if tags := DeriveTags(Store{}); len(tags) != 0 {
		t.Fatalf("empty store derived %v", tags)
	}
}

func TestDeriveTags_OrderFollowsFacetDeclaration(t *testing.T) {
	s := Store{}.
		SetFreeText("boots").
		ToggleCustomerStatus(StatusNew).
		AddRegion("Texas").
		ToggleDateBucket(BucketLastWeek, now)

	tags := DeriveTags(s)
	wantOrder := []FacetName{FacetDateWindow, FacetRegions, FacetCustomerStatus, FacetFreeText}
	if len(tags) != len(wantOrder) {
		t.Fatalf("tags = %v", tags)
	}
	for i, f := range wantOrder {
		if tags[i].Facet != f {
			t.Fatalf("tag %d facet = %q, want %q (all: %v)", i, tags[i].Facet, f, tags)
		}
	}
}

func TestDeriveTags_StableWithinFacet(t *testing.T) {
	s := Store{}.AddRegion("Texas").AddRegion("Alberta")
	got := tagsFor(s, FacetRegions)
	if len(got) != 2 || got[0].Label != "Texas" || got[1].Label != "Alberta" {
		t.Fatalf("region chips = %v", got)
	}
}

// every non-empty facet must surface at least one chip and every chip must
// vanish when removed, until the store is empty again
func TestChipStateDuality(t *testing.T) {
	s := Store{}.
		ToggleDateBucket(BucketLast30Days, now).
		ToggleTimeBucket(TimeBucketEvening).
		AddRegion("Texas").
		TogglePageVisits(VisitsTwo).
		ToggleDwellTime(Dwell10To30).
		ToggleFunnelStage(StageVisitor).
		ToggleCustomerStatus(StatusExisting).
		SetRecurringVisits(RecurringFourPlus).
		SetFreeText("winter boots")

	tags := DeriveTags(s)
	if len(tags) != 9 {
		t.Fatalf("expected one chip per active facet, got %v", tags)
	}

	for i := 0; len(tags) > 0; i++ {
		if i > 20 {
			t.Fatalf("removal did not converge, still have %v", tags)
		}
		target := tags[0]
		s = RemoveTag(s, target)
		tags = DeriveTags(s)
		for _, remaining := range tags {
			if remaining == target {
				t.Fatalf("chip %+v survived its removal", target)
			}
		}
	}
	if !s.Empty() {
		t.Fatalf("all chips removed but store is not empty: %+v", s)
	}
}

func TestRemoveTag_DateChipWhilePresetActive(t *testing.T) {
	s := Store{}.ApplyQuickPreset(PresetAbandonedCart, now)
	dateTags := tagsFor(s, FacetDateWindow)
	if len(dateTags) != 1 {
		t.Fatalf("expected a date chip for the preset window, got %v", DeriveTags(s))
	}

	s = RemoveTag(s, dateTags[0])
	if s.Preset != PresetNone || !s.Empty() {
		t.Fatalf("removing the preset window must retract the preset: %+v", s)
	}
}

func TestRemoveTag_StageChipWhilePresetActive(t *testing.T) {
	s := Store{}.ApplyQuickPreset(PresetLandedToCart, now)
	stageTags := tagsFor(s, FacetFunnelStage)
	if len(stageTags) != 1 {
		t.Fatalf("expected a stage chip, got %v", DeriveTags(s))
	}

	s = RemoveTag(s, stageTags[0])
	if s.Preset != PresetNone || len(s.FunnelStages) != 0 {
		t.Fatalf("removing the preset stage must retract the preset: %+v", s)
	}
}

func TestRemoveTag_CustomerStatusChip(t *testing.T) {
	s := Store{}.ToggleCustomerStatus(StatusNew).ToggleCustomerStatus(StatusAll)

	s = RemoveTag(s, Tag{Facet: FacetCustomerStatus, Label: "New"})
	if len(s.Statuses) != 1 || s.Statuses[0] != StatusAll {
		t.Fatalf("statuses = %v, want All only", s.Statuses)
	}
}

func TestRemoveTag_UnknownLabelIsNoOp(t *testing.T) {
	s := Store{}.ToggleDwellTime(DwellOver60)
	got := RemoveTag(s, Tag{Facet: FacetDwellTime, Label: "no such bucket"})
	if len(got.DwellTimes) != 1 {
		t.Fatalf("unknown label must not change state: %v", got.DwellTimes)
	}
}

func TestRemoveTag_TimeChipClearsBucket(t *testing.T) {
	s := Store{}.ToggleTimeBucket(TimeBucketNight)
	s = RemoveTag(s, tagsFor(s, FacetTimeOfDay)[0])
	if !s.Time.Empty() || s.TimeBucket != TimeBucketNone {
		t.Fatalf("time facet not fully cleared: %+v", s)
	}
}
