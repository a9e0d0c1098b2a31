package export

import "context"

// Exporter writes a review copy of a document's extracted lines
type Exporter interface {
	Export(ctx context.Context, id string, lines []string) (string, error)
}
