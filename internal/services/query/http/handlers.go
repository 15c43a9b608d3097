// Package http provides read endpoints over accepted query submissions
package http

import (
	"net/http"

	"segmenter/internal/modkit/httpkit"
	"segmenter/internal/services/query/service"
)

type handlers struct {
	svc *service.Svc
}

// Register mounts the query routes
func Register(r httpkit.Router, svc *service.Svc) {
	h := &handlers{svc: svc}
	httpkit.Get(r, "/recent", h.recent)
}

// @Summary List recently applied filter specs
// @Tags Query
// @Produce json
// @Success 200 {array} service.Submission
// @Router /query/recent [get]
func (h *handlers) recent(r *http.Request) (any, error) {
	return h.svc.Recent(r.Context()), nil
}
