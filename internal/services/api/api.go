// Package api provides the HTTP API for the application
package api

import (
	"segmenter/internal/platform/clock"
	"segmenter/internal/platform/config"
	"segmenter/internal/platform/logger"
	phttp "segmenter/internal/platform/net/http"
	"segmenter/internal/platform/store"

	modkit "segmenter/internal/modkit"
	"segmenter/internal/modkit/httpkit"
	"segmenter/internal/modkit/module"
	"segmenter/internal/modkit/swaggerkit"

	metamod "segmenter/internal/services/api/meta/module"
	buildermod "segmenter/internal/services/builder/module"
	querymod "segmenter/internal/services/query/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        logger.Logger
	Clock         clock.Clock
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log:   opt.Logger,
		Cfg:   opt.Config,
		PG:    opt.Store.PG,
		Clock: opt.Clock,
	}

	// the query module owns the port that receives committed specs,
	// the builder consumes it
	query := querymod.New(deps)
	qports := module.MustPortsOf[querymod.Ports](query)

	builder := buildermod.New(
		deps,
		modkit.WithPorts(buildermod.Ports{
			Query: qports.Query,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		query,
		builder,
	}

	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)

		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
