package domain

import (
	"time"

	"segmenter/internal/platform/clock"
)

// DateBucketWindow resolves a date checkbox into an absolute window relative to now.
// Trailing windows include today, so last30Days spans exactly 30 calendar days
// ending with the current one.
func DateBucketWindow(b DateBucket, now time.Time) DateWindow {
	to := clock.EndOfDay(now)
	switch b {
	case BucketLastWeek:
		from := clock.StartOfDay(now.AddDate(0, 0, -6))
		return DateWindow{From: &from, To: &to, Source: SourceManual}
	case BucketLast30Days:
		from := clock.StartOfDay(now.AddDate(0, 0, -29))
		return DateWindow{From: &from, To: &to, Source: SourceManual}
	case BucketLast6Months:
		from := clock.StartOfDay(now.AddDate(0, -6, 0))
		return DateWindow{From: &from, To: &to, Source: SourceManual}
	case BucketAllTime:
		return DateWindow{To: &to, Source: SourceManual}
	default:
		return DateWindow{Source: SourceNone}
	}
}

// TimeBucketWindow resolves a time checkbox into a time-of-day range
func TimeBucketWindow(b TimeBucket) TimeWindow {
	span := func(fh, fm, th, tm int) TimeWindow {
		return TimeWindow{From: &ClockTime{Hour: fh, Minute: fm}, To: &ClockTime{Hour: th, Minute: tm}}
	}
	switch b {
	case TimeBucketNight:
		return span(0, 0, 6, 0)
	case TimeBucketMorning:
		return span(6, 0, 12, 0)
	case TimeBucketAfternoon:
		return span(12, 0, 18, 0)
	case TimeBucketEvening:
		return span(18, 0, 23, 59)
	default:
		return TimeWindow{}
	}
}

// QuickFilterStage maps a quick filter preset to its single funnel stage
func QuickFilterStage(p Preset) (FunnelStage, bool) {
	switch p {
	case PresetAbandonedCart:
		return StageCartAbandoned, true
	case PresetConvertersSales:
		return StageConverted, true
	case PresetReturningVisitors:
		return StageVisitor, true
	case PresetLandedToCart:
		return StageAddedToCart, true
	default:
		return "", false
	}
}

// QuickFilterWindow is the fixed 30 day lookback shared by every quick filter
func QuickFilterWindow(now time.Time) DateWindow {
	w := DateBucketWindow(BucketLast30Days, now)
	w.Source = SourcePreset
	return w
}
