package batch

import (
	"github.com/nguyentantai21042004/subtitle-lines/internal/config"
	"github.com/nguyentantai21042004/subtitle-lines/internal/export"
	"github.com/nguyentantai21042004/subtitle-lines/internal/extractor"
	"github.com/nguyentantai21042004/subtitle-lines/internal/logger"
)

type implRunner struct {
	cfg       *config.Config
	extractor extractor.Extractor
	exporter  export.Exporter // nil disables transcript export
	logger    logger.Logger
}

// New creates a new Runner instance. exporter may be nil.
func New(cfg *config.Config, ext extractor.Extractor, exporter export.Exporter, log logger.Logger) Runner {
	return &implRunner{
		cfg:       cfg,
		extractor: ext,
		exporter:  exporter,
		logger:    log,
	}
}
