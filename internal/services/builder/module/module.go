// Package module wires the filter builder into the API
package module

import (
	"net/http"

	modkit "segmenter/internal/modkit"
	"segmenter/internal/modkit/httpkit"
	str "segmenter/internal/platform/strings"

	"segmenter/internal/services/builder/domain"
	builderhttp "segmenter/internal/services/builder/http"
	"segmenter/internal/services/builder/repo"
	"segmenter/internal/services/builder/service"
)

// Ports are the cross-module dependencies the builder consumes
type Ports struct {
	// Query receives committed FilterSpecs, wired from the query module
	Query domain.QueryPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	name      string
	prefix    string
	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *service.Svc
}

// New constructs the builder module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("builder"),
		modkit.WithPrefix("/builder"),
	}, opts...)...)

	var query domain.QueryPort
	if p, ok := b.Ports.(Ports); ok {
		query = p.Query
	}

	svc := service.New(service.Config{
		Log:    deps.Log,
		Clock:  deps.Clock,
		DB:     deps.PG,
		Binder: repo.NewPG(),
		Query:  query,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		builderhttp.Register(r, svc)
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
func (m *Module) Name() string { return str.MustString(m.name, "builder") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }

// Service exposes the session service for in-process callers
func (m *Module) Service() *service.Svc { return m.svc }
