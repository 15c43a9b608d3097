// Package module wires the query endpoint into the API
package module

import (
	"net/http"

	modkit "segmenter/internal/modkit"
	"segmenter/internal/modkit/httpkit"
	str "segmenter/internal/platform/strings"

	"segmenter/internal/services/builder/domain"
	queryhttp "segmenter/internal/services/query/http"
	"segmenter/internal/services/query/service"
)

// Ports are the capabilities this module offers to other modules
type Ports struct {
	// Query accepts committed FilterSpecs
	Query domain.QueryPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *service.Svc
}

// New constructs the query module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("query"),
		modkit.WithPrefix("/query"),
	}, opts...)...)

	svc := service.New(deps.Log, deps.Clock, 50)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		queryhttp.Register(r, svc)
		if external != nil {
			external(r)
		}
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "query") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return Ports{Query: m.svc} }
