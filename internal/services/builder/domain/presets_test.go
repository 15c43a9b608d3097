package domain

import (
	"testing"
	"time"
)

func TestDateBucketWindow_TrailingWindowsIncludeToday(t *testing.T) {
	cases := []struct {
		bucket   DateBucket
		wantFrom time.Time
	}{
		{BucketLastWeek, time.Date(2024, 6, 24, 0, 0, 0, 0, time.UTC)},
		{BucketLast30Days, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{BucketLast6Months, time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC)},
	}
	wantTo := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)

	for _, tc := range cases {
		w := DateBucketWindow(tc.bucket, now)
		if w.From == nil || !w.From.Equal(tc.wantFrom) {
			t.Fatalf("%s: from = %v, want %v", tc.bucket, w.From, tc.wantFrom)
		}
		if w.To == nil || !w.To.Equal(wantTo) {
			t.Fatalf("%s: to = %v, want %v", tc.bucket, w.To, wantTo)
		}
	}
}

func TestDateBucketWindow_AllTime(t *testing.T) {
	w := DateBucketWindow(BucketAllTime, now)
	if w.From != nil {
		t.Fatalf("allTime from = %v, want open", w.From)
	}
	if w.To == nil {
		t.Fatalf("allTime must close at end of today")
	}
}

func TestDateBucketWindow_UnknownBucket(t *testing.T) {
	w := DateBucketWindow(BucketNone, now)
	if !w.Empty() || w.Source != SourceNone {
		t.Fatalf("unknown bucket must resolve empty: %+v", w)
	}
}

func TestTimeBucketWindow(t *testing.T) {
	cases := []struct {
		bucket   TimeBucket
		from, to ClockTime
	}{
		{TimeBucketNight, ClockTime{0, 0}, ClockTime{6, 0}},
		{TimeBucketMorning, ClockTime{6, 0}, ClockTime{12, 0}},
		{TimeBucketAfternoon, ClockTime{12, 0}, ClockTime{18, 0}},
		{TimeBucketEvening, ClockTime{18, 0}, ClockTime{23, 59}},
	}
	for _, tc := range cases {
		w := TimeBucketWindow(tc.bucket)
		if w.From == nil || *w.From != tc.from || w.To == nil || *w.To != tc.to {
			t.Fatalf("%s: window = %+v", tc.bucket, w)
		}
	}
}

func TestQuickFilterStage_Mapping(t *testing.T) {
	cases := map[Preset]FunnelStage{
		PresetAbandonedCart:     StageCartAbandoned,
		PresetConvertersSales:   StageConverted,
		PresetReturningVisitors: StageVisitor,
		PresetLandedToCart:      StageAddedToCart,
	}
	for p, want := range cases {
		got, ok := QuickFilterStage(p)
		if !ok || got != want {
			t.Fatalf("%s: stage = %q, want %q", p, got, want)
		}
	}
	if _, ok := QuickFilterStage(PresetNone); ok {
		t.Fatalf("none must not map to a stage")
	}
}

func TestQuickFilterWindow_SharedThirtyDayLookback(t *testing.T) {
	w := QuickFilterWindow(now)
	if w.Source != SourcePreset {
		t.Fatalf("source = %q, want preset", w.Source)
	}
	manual := DateBucketWindow(BucketLast30Days, now)
	if !w.From.Equal(*manual.From) || !w.To.Equal(*manual.To) {
		t.Fatalf("quick filter window %v-%v differs from last30Days %v-%v",
			w.From, w.To, manual.From, manual.To)
	}
}
