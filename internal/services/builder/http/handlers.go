// Package http provides the filter builder session endpoints
package http

import (
	"net/http"
	"time"

	"segmenter/internal/modkit/httpkit"
	perr "segmenter/internal/platform/errors"
	"segmenter/internal/services/builder/domain"
	"segmenter/internal/services/builder/service"
)

type handlers struct {
	svc *service.Svc
}

// Register mounts the builder routes
func Register(r httpkit.Router, svc *service.Svc) {
	h := &handlers{svc: svc}

	httpkit.PostJSON(r, "/sessions", h.open)
	httpkit.Get(r, "/sessions/{id}", h.get)
	httpkit.Delete(r, "/sessions/{id}", h.discard)
	httpkit.Get(r, "/sessions/{id}/tags", h.tags)

	httpkit.PostJSON(r, "/sessions/{id}/date-range", h.setDateRange)
	httpkit.PostJSON(r, "/sessions/{id}/date-bucket", h.toggleDateBucket)
	httpkit.PostJSON(r, "/sessions/{id}/time-range", h.setTimeRange)
	httpkit.PostJSON(r, "/sessions/{id}/time-bucket", h.toggleTimeBucket)
	httpkit.PostJSON(r, "/sessions/{id}/regions", h.addRegion)
	httpkit.PostJSON(r, "/sessions/{id}/page-visits", h.togglePageVisits)
	httpkit.PostJSON(r, "/sessions/{id}/dwell-time", h.toggleDwellTime)
	httpkit.PostJSON(r, "/sessions/{id}/funnel-stage", h.toggleFunnelStage)
	httpkit.PostJSON(r, "/sessions/{id}/customer-status", h.toggleCustomerStatus)
	httpkit.PostJSON(r, "/sessions/{id}/recurring-visits", h.setRecurringVisits)
	httpkit.PostJSON(r, "/sessions/{id}/free-text", h.setFreeText)
	httpkit.PostJSON(r, "/sessions/{id}/preset", h.applyPreset)
	httpkit.PostJSON(r, "/sessions/{id}/tags/remove", h.removeTag)
	httpkit.Post(r, "/sessions/{id}/clear", h.clearAll)
	httpkit.Post(r, "/sessions/{id}/apply", h.apply)

	httpkit.PutJSON(r, "/filters/{name}", h.saveFilter)
	httpkit.Get(r, "/filters", h.listFilters)
	httpkit.Get(r, "/filters/{name}", h.getFilter)
	httpkit.Delete(r, "/filters/{name}", h.deleteFilter)
}

//
// Request DTOs
//

// OpenRequest starts a session, optionally hydrated from a saved filter
type OpenRequest struct {
	FromFilter string `json:"from_filter" validate:"omitempty,max=200"`
}

// DateRangeRequest carries RFC3339 endpoints, either side may be null
type DateRangeRequest struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

// DateBucketRequest toggles one relative date checkbox
type DateBucketRequest struct {
	Bucket string `json:"bucket" validate:"required,oneof=lastWeek last30Days last6Months allTime"`
}

// TimeRangeRequest carries HH:MM endpoints, either side may be null
type TimeRangeRequest struct {
	From *string `json:"from" validate:"omitempty,len=5"`
	To   *string `json:"to" validate:"omitempty,len=5"`
}

// TimeBucketRequest toggles one time-of-day checkbox
type TimeBucketRequest struct {
	Bucket string `json:"bucket" validate:"required,oneof=night morning afternoon evening"`
}

// RegionRequest adds a region chip
type RegionRequest struct {
	Text string `json:"text" validate:"required,max=200"`
}

// PageVisitsRequest toggles a page visit bucket
type PageVisitsRequest struct {
	Value string `json:"value" validate:"required,oneof=one two three moreThanThree"`
}

// DwellTimeRequest toggles a dwell time bucket
type DwellTimeRequest struct {
	Value string `json:"value" validate:"required,oneof=under10 10to30 30to60 over60"`
}

// FunnelStageRequest toggles a funnel stage
type FunnelStageRequest struct {
	Value string `json:"value" validate:"required,oneof=Converted Visitor AddedToCart CartAbandoned"`
}

// CustomerStatusRequest toggles a customer status
type CustomerStatusRequest struct {
	Value string `json:"value" validate:"required,oneof=New Existing All"`
}

// RecurringVisitsRequest sets the visit count radio, empty value unsets it
type RecurringVisitsRequest struct {
	Value string `json:"value" validate:"omitempty,oneof=1 2 3 4 4+"`
}

// FreeTextRequest replaces the free text query
type FreeTextRequest struct {
	Text string `json:"text" validate:"max=500"`
}

// PresetRequest activates or toggles a quick filter
type PresetRequest struct {
	Preset string `json:"preset" validate:"required,oneof=AbandonedCart ConvertersSales ReturningVisitors LandedToCart"`
}

// RemoveTagRequest retracts one chip
type RemoveTagRequest struct {
	Facet string `json:"facet" validate:"required"`
	Label string `json:"label" validate:"required"`
}

// SaveFilterRequest stores a session's current state under the path name
type SaveFilterRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid4"`
}

func parseClock(s *string) (*domain.ClockTime, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse("15:04", *s)
	if err != nil {
		return nil, perr.Validationf("time must be HH:MM, got %q", *s)
	}
	return &domain.ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

//
// Handlers
//

// @Summary Open a builder session
// @Tags Builder
// @Accept json
// @Produce json
// @Success 200 {object} service.Session
// @Router /builder/sessions [post]
func (h *handlers) open(r *http.Request, req OpenRequest) (any, error) {
	return h.svc.Open(r.Context(), req.FromFilter)
}

// @Summary Get a session's chip row
// @Tags Builder
// @Produce json
// @Success 200 {object} service.Session
// @Router /builder/sessions/{id} [get]
func (h *handlers) get(r *http.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.Param(r, "id"))
}

// @Summary Discard a session without applying
// @Tags Builder
// @Success 200
// @Router /builder/sessions/{id} [delete]
func (h *handlers) discard(r *http.Request) (any, error) {
	return nil, h.svc.Discard(r.Context(), httpkit.Param(r, "id"))
}

// @Summary List the derived chips for a session
// @Tags Builder
// @Produce json
// @Success 200 {array} domain.Tag
// @Router /builder/sessions/{id}/tags [get]
func (h *handlers) tags(r *http.Request) (any, error) {
	sess, err := h.svc.Get(r.Context(), httpkit.Param(r, "id"))
	if err != nil {
		return nil, err
	}
	return sess.Tags, nil
}

// @Summary Set a manual date window
// @Tags Builder
// @Accept json
// @Produce json
// @Success 200 {object} service.Session
// @Router /builder/sessions/{id}/date-range [post]
func (h *handlers) setDateRange(r *http.Request, req DateRangeRequest) (any, error) {
	return h.svc.SetDateRange(r.Context(), httpkit.Param(r, "id"), req.From, req.To)
}

// @Summary Toggle a relative date checkbox
// @Tags Builder
// @Accept json
// @Produce json
// @Success 200 {object} service.Session
// @Router /builder/sessions/{id}/date-bucket [post]
func (h *handlers) toggleDateBucket(r *http.Request, req DateBucketRequest) (any, error) {
	return h.svc.ToggleDateBucket(r.Context(), httpkit.Param(r, "id"), domain.DateBucket(req.Bucket))
}

// @Summary Set a manual time-of-day window
// @Tags Builder
// @Accept json
// @Produce json
// @Success 200 {object} service.Session
// @Router /builder/sessions/{id}/time-range [post]
func (h *handlers) setTimeRange(r *http.Request, req TimeRangeRequest) (any, error) {
	from, err := parseClock(req.From)
	if err != nil {
		return nil, err
	}
	to, err := parseClock(req.To)
	if err != nil {
		return nil, err
	}
	return h.svc.SetTimeRange(r.Context(), httpkit.Param(r, "id"), from, to)
}

// @Summary Toggle a time-of-day checkbox
// @Tags Builder
// @Accept json
// @Produce json
// @Success 200 {object} service.Session
// @Router /builder/sessions/{id}/time-bucket [post]
func (h *handlers) toggleTimeBucket(r *http.Request, req TimeBucketRequest) (any, error) {
	return h.svc.ToggleTimeBucket(r.Context(), httpkit.Param(r, "id"), domain.TimeBucket(req.Bucket))
}

// @Summary Add a region chip
// @Tags Builder
// @Accept json
// @Produce json
// @Success 200 {object} service.Session
// @Router /builder/sessions/{id}/regions [post]
func (h *handlers) addRegion(r *http.Request, req RegionRequest) (any, error) {
	return h.svc.AddRegion(r.Context(), httpkit.Param(r, "id"), req.Text)
}

// @Summary Toggle a page visit bucket
// @Tags Builder
// @Accept json
// @Produce json
// @Success 200 {object} service.Session
// @Router /builder/sessions/{id}/page-visits [post]
func (h *handlers) togglePageVisits(r *http.Request, req PageVisitsRequest) (any, error) {
	return h.svc.TogglePageVisits(r.Context(), httpkit.Param(r, "id"), domain.PageVisits(req.Value))
}

// @Summary Toggle a dwell time bucket
// @Tags Builder
// @Accept json
// @Produce json
// @Success 200 {object} service.Session
// @Router /builder/sessions/{id}/dwell-time [post]
func (h *handlers) toggleDwellTime(r *http.Request, req DwellTimeRequest) (any, error) {
	return h.svc.ToggleDwellTime(r.Context(), httpkit.Param(r, "id"), domain.DwellTime(req.Value))
}

// @Summary Toggle a funnel stage
// @Tags Builder
// @Accept json
// @Produce json
// @Success 200 {object} service.Session
// @Router /builder/sessions/{id}/funnel-stage [post]
func (h *handlers) toggleFunnelStage(r *http.Request, req FunnelStageRequest) (any, error) {
	return h.svc.ToggleFunnelStage(r.Context(), httpkit.Param(r, "id"), domain.FunnelStage(req.Value))
}

// @Summary Toggle a customer status
// @Tags Builder
// @Accept json
// @Produce json
// @Success 200 {object} service.Session
// @Router /builder/sessions/{id}/customer-status [post]
func (h *handlers) toggleCustomerStatus(r *http.Request, req CustomerStatusRequest) (any, error) {
	return h.svc.ToggleCustomerStatus(r.Context(), httpkit.Param(r, "id"), domain.CustomerStatus(req.Value))
}

// @Summary Set the recurring visits radio
// @Tags Builder
// @Accept json
// @Produce json
// @Success 200 {object} service.Session
// @Router /builder/sessions/{id}/recurring-visits [post]
func (h *handlers) setRecurringVisits(r *http.Request, req RecurringVisitsRequest) (any, error) {
	return h.svc.SetRecurringVisits(r.Context(), httpkit.Param(r, "id"), domain.RecurringVisits(req.Value))
}

// @Summary Replace the free text query
// @Tags Builder
// @Accept json
// @Produce json
// @Success 200 {object} service.Session
// @Router /builder/sessions/{id}/free-text [post]
func (h *handlers) setFreeText(r *http.Request, req FreeTextRequest) (any, error) {
	return h.svc.SetFreeText(r.Context(), httpkit.Param(r, "id"), req.Text)
}

// @Summary Activate or toggle a quick filter preset
// @Tags Builder
// @Accept json
// @Produce json
// @Success 200 {object} service.Session
// @Router /builder/sessions/{id}/preset [post]
func (h *handlers) applyPreset(r *http.Request, req PresetRequest) (any, error) {
	return h.svc.ApplyQuickPreset(r.Context(), httpkit.Param(r, "id"), domain.Preset(req.Preset))
}

// @Summary Remove one chip
// @Tags Builder
// @Accept json
// @Produce json
// @Success 200 {object} service.Session
// @Router /builder/sessions/{id}/tags/remove [post]
func (h *handlers) removeTag(r *http.Request, req RemoveTagRequest) (any, error) {
	tag := domain.Tag{Facet: domain.FacetName(req.Facet), Label: req.Label}
	return h.svc.RemoveTag(r.Context(), httpkit.Param(r, "id"), tag)
}

// @Summary Reset every facet of a session
// @Tags Builder
// @Produce json
// @Success 200 {object} service.Session
// @Router /builder/sessions/{id}/clear [post]
func (h *handlers) clearAll(r *http.Request) (any, error) {
	return h.svc.ClearAll(r.Context(), httpkit.Param(r, "id"))
}

// @Summary Apply a session, producing its FilterSpec and closing it
// @Tags Builder
// @Produce json
// @Success 200 {object} domain.FilterSpec
// @Router /builder/sessions/{id}/apply [post]
func (h *handlers) apply(r *http.Request) (any, error) {
	return h.svc.Apply(r.Context(), httpkit.Param(r, "id"))
}

// @Summary Save a session's current state as a named filter
// @Tags Filters
// @Accept json
// @Produce json
// @Success 200 {object} domain.SavedFilter
// @Router /builder/filters/{name} [put]
func (h *handlers) saveFilter(r *http.Request, req SaveFilterRequest) (any, error) {
	return h.svc.SaveFilter(r.Context(), httpkit.Param(r, "name"), req.SessionID)
}

// @Summary List saved filters
// @Tags Filters
// @Produce json
// @Success 200 {array} domain.SavedFilter
// @Router /builder/filters [get]
func (h *handlers) listFilters(r *http.Request) (any, error) {
	return h.svc.ListFilters(r.Context())
}

// @Summary Get one saved filter
// @Tags Filters
// @Produce json
// @Success 200 {object} domain.SavedFilter
// @Router /builder/filters/{name} [get]
func (h *handlers) getFilter(r *http.Request) (any, error) {
	return h.svc.GetFilter(r.Context(), httpkit.Param(r, "name"))
}

// @Summary Delete a saved filter
// @Tags Filters
// @Success 200
// @Router /builder/filters/{name} [delete]
func (h *handlers) deleteFilter(r *http.Request) (any, error) {
	return nil, h.svc.DeleteFilter(r.Context(), httpkit.Param(r, "name"))
}
