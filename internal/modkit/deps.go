package modkit

import (
	"segmenter/internal/modkit/repokit"
	"segmenter/internal/platform/clock"
	"segmenter/internal/platform/config"
	"segmenter/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	PG    repokit.TxRunner
	Clock clock.Clock
}
