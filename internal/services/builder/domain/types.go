// Package domain defines the core facet state types for the audience filter builder
package domain

import "time"

// DateSource records how the date window got its value
type DateSource string

const (
	// SourceNone means no date window is set
	SourceNone DateSource = "none"

	// SourcePreset means a quick filter preset owns the window
	SourcePreset DateSource = "preset"

	// SourceManual means the operator picked the window directly or via a date checkbox
	SourceManual DateSource = "manual"
)

// DateWindow is an absolute date range with seconds resolution
// either endpoint may be open (nil)
type DateWindow struct {
	From   *time.Time
	To     *time.Time
	Source DateSource
}

// Empty reports whether no window is set
func (w DateWindow) Empty() bool { return w.From == nil && w.To == nil }

// ClockTime is a wall-clock time of day without a date anchor
type ClockTime struct {
	Hour   int
	Minute int
}

// TimeWindow is a time-of-day range, independent of the date window
type TimeWindow struct {
	From *ClockTime
	To   *ClockTime
}

// Empty reports whether no time range is set
func (w TimeWindow) Empty() bool { return w.From == nil && w.To == nil }

// Preset is a quick filter button
type Preset string

const (
	// PresetNone means no quick filter is active
	PresetNone Preset = ""

	// PresetAbandonedCart targets visitors who abandoned a cart in the last 30 days
	PresetAbandonedCart Preset = "AbandonedCart"

	// PresetConvertersSales targets visitors who converted in the last 30 days
	PresetConvertersSales Preset = "ConvertersSales"

	// PresetReturningVisitors targets plain visitors in the last 30 days
	PresetReturningVisitors Preset = "ReturningVisitors"

	// PresetLandedToCart targets visitors who added to cart in the last 30 days
	PresetLandedToCart Preset = "LandedToCart"
)

// DateBucket is a relative date checkbox in the date section
type DateBucket string

const (
	// BucketNone means no date checkbox is checked
	BucketNone DateBucket = ""

	// BucketLastWeek is the trailing 7 day window including today
	BucketLastWeek DateBucket = "lastWeek"

	// BucketLast30Days is the trailing 30 day window including today
	BucketLast30Days DateBucket = "last30Days"

	// BucketLast6Months is the trailing 6 month window
	BucketLast6Months DateBucket = "last6Months"

	// BucketAllTime is an open start with today as the end
	BucketAllTime DateBucket = "allTime"
)

// TimeBucket is a time-of-day checkbox in the time section
type TimeBucket string

const (
	// TimeBucketNone means no time checkbox is checked
	TimeBucketNone TimeBucket = ""

	// TimeBucketNight covers 00:00 to 06:00
	TimeBucketNight TimeBucket = "night"

	// TimeBucketMorning covers 06:00 to 12:00
	TimeBucketMorning TimeBucket = "morning"

	// TimeBucketAfternoon covers 12:00 to 18:00
	TimeBucketAfternoon TimeBucket = "afternoon"

	// TimeBucketEvening covers 18:00 to 24:00
	TimeBucketEvening TimeBucket = "evening"
)

// PageVisits is a page visit count bucket
type PageVisits string

const (
	// VisitsOne is exactly one page
	VisitsOne PageVisits = "one"

	// VisitsTwo is exactly two pages
	VisitsTwo PageVisits = "two"

	// VisitsThree is exactly three pages
	VisitsThree PageVisits = "three"

	// VisitsMoreThanThree is four or more pages
	VisitsMoreThanThree PageVisits = "moreThanThree"
)

// DwellTime is a session dwell time bucket
type DwellTime string

const (
	// DwellUnder10 is under 10 minutes
	DwellUnder10 DwellTime = "under10"

	// Dwell10To30 is 10 to 30 minutes
	Dwell10To30 DwellTime = "10to30"

	// Dwell30To60 is 30 to 60 minutes
	Dwell30To60 DwellTime = "30to60"

	// DwellOver60 is over 60 minutes
	DwellOver60 DwellTime = "over60"
)

// FunnelStage is a conversion funnel position
type FunnelStage string

const (
	// StageConverted completed a purchase
	StageConverted FunnelStage = "Converted"

	// StageVisitor browsed without cart activity
	StageVisitor FunnelStage = "Visitor"

	// StageAddedToCart put something in the cart
	StageAddedToCart FunnelStage = "AddedToCart"

	// StageCartAbandoned left with a non-empty cart
	StageCartAbandoned FunnelStage = "CartAbandoned"
)

// CustomerStatus is the relationship of the visitor to the shop
type CustomerStatus string

const (
	// StatusNew is a first time customer
	StatusNew CustomerStatus = "New"

	// StatusExisting has purchased before
	StatusExisting CustomerStatus = "Existing"

	// StatusAll matches every customer
	StatusAll CustomerStatus = "All"
)

// RecurringVisits is a single-select visit count, radio semantics
type RecurringVisits string

const (
	// RecurringNone means the facet is unset
	RecurringNone RecurringVisits = ""

	// RecurringOne is one visit
	RecurringOne RecurringVisits = "1"

	// RecurringTwo is two visits
	RecurringTwo RecurringVisits = "2"

	// RecurringThree is three visits
	RecurringThree RecurringVisits = "3"

	// RecurringFour is four visits
	RecurringFour RecurringVisits = "4"

	// RecurringFourPlus is more than four visits
	RecurringFourPlus RecurringVisits = "4+"
)

// FacetName identifies one filter dimension, used to address tags back to facets
type FacetName string

const (
	// FacetDateWindow is the absolute date range facet
	FacetDateWindow FacetName = "dateWindow"

	// FacetTimeOfDay is the time-of-day range facet
	FacetTimeOfDay FacetName = "timeOfDay"

	// FacetQuickPreset is the quick filter facet
	FacetQuickPreset FacetName = "quickPreset"

	// FacetRegions is the geographic region facet
	FacetRegions FacetName = "regions"

	// FacetPageVisits is the page visit bucket facet
	FacetPageVisits FacetName = "pageVisitBucket"

	// FacetDwellTime is the dwell time bucket facet
	FacetDwellTime FacetName = "dwellTimeBucket"

	// FacetFunnelStage is the funnel stage facet
	FacetFunnelStage FacetName = "funnelStage"

	// FacetCustomerStatus is the customer status facet
	FacetCustomerStatus FacetName = "customerStatus"

	// FacetRecurringVisits is the recurring visits facet
	FacetRecurringVisits FacetName = "recurringVisits"

	// FacetFreeText is the free text search facet
	FacetFreeText FacetName = "freeText"
)

// Tag is the removable chip representation of one active facet value
// always derived from a Store, never stored independently
type Tag struct {
	Facet FacetName `json:"facet"`
	Label string    `json:"label"`
}

// Store holds the canonical typed value of every facet
// the zero value is the empty store, every facet at its default
type Store struct {
	Date       DateWindow
	DateBucket DateBucket
	Time       TimeWindow
	TimeBucket TimeBucket
	Preset     Preset

	Regions      []string // ordered set, insertion order preserved
	PageVisits   []PageVisits
	DwellTimes   []DwellTime
	FunnelStages []FunnelStage
	Statuses     []CustomerStatus

	Recurring RecurringVisits
	FreeText  string
}

// Empty reports whether every facet is at its default value
func (s Store) Empty() bool {
	return s.Date.Empty() && s.Time.Empty() &&
		s.Preset == PresetNone &&
		len(s.Regions) == 0 && len(s.PageVisits) == 0 &&
		len(s.DwellTimes) == 0 && len(s.FunnelStages) == 0 &&
		len(s.Statuses) == 0 &&
		s.Recurring == RecurringNone && s.FreeText == ""
}
