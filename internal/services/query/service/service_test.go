package service

import (
	"context"
	"testing"
	"time"

	"segmenter/internal/platform/clock"
	"segmenter/internal/platform/logger"
	"segmenter/internal/services/builder/domain"
)

func TestSubmit_KeepsNewestFirstBoundedHistory(t *testing.T) {
	clk := clock.Fixed{T: time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)}
	svc := New(*logger.Named("test"), clk, 3)
	ctx := context.Background()

	for _, region := range []string{"a", "b", "c", "d"} {
		spec := domain.Compile(domain.Store{}.AddRegion(region))
		if err := svc.Submit(ctx, spec); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	recent := svc.Recent(ctx)
	if len(recent) != 3 {
		t.Fatalf("history = %d entries, want 3", len(recent))
	}
	// newest first, oldest submission evicted
	want := []string{"d", "c", "b"}
	for i, region := range want {
		if recent[i].Spec.Regions[0] != region {
			t.Fatalf("recent[%d] = %v, want %s", i, recent[i].Spec.Regions, region)
		}
	}
}

func TestRecent_EmptyHistory(t *testing.T) {
	svc := New(*logger.Named("test"), nil, 0)
	if got := svc.Recent(context.Background()); len(got) != 0 {
		t.Fatalf("recent = %v", got)
	}
}
