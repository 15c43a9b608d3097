// @title         Segmenter API
// @version       0.1.0
// @description   Faceted audience filter builder for the marketing dashboard

package main

import (
	"context"

	"segmenter/internal/platform/clock"
	"segmenter/internal/platform/config"
	"segmenter/internal/platform/logger"
	phttp "segmenter/internal/platform/net/http"
	"segmenter/internal/platform/store"

	"segmenter/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// open the platform store (postgres for saved filters)
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "segmenter-api",
			PG: store.PGConfig{
				Enabled:     pgCfg.MayBool("ENABLED", true),
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:        apiCfg,
			Store:         st,
			Logger:        *l,
			Clock:         clock.System{},
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
		},
	)

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
