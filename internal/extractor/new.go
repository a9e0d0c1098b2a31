package extractor

import (
	"github.com/nguyentantai21042004/subtitle-lines/internal/logger"
)

const (
	utteranceTag = "s"
	tokenTag     = "w"
)

type implExtractor struct {
	logger logger.Logger
}

// New creates a new Extractor instance
func New(log logger.Logger) Extractor {
	return &implExtractor{logger: log}
}
