package export

import (
	"github.com/nguyentantai21042004/subtitle-lines/internal/logger"
)

type implDocx struct {
	dir    string
	logger logger.Logger
}

// NewDocx creates an Exporter that writes <dir>/<id>.docx transcripts
func NewDocx(dir string, log logger.Logger) Exporter {
	return &implDocx{
		dir:    dir,
		logger: log,
	}
}
