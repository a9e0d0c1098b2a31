package extractor

import "context"

// Extractor turns one subtitle document into a cleaned line file
type Extractor interface {
	Extract(ctx context.Context, docPath, outDir string, overwrite bool) (Result, error)
}

// Result describes what a single extraction did
type Result struct {
	ID         string
	OutputPath string
	Lines      []string // lines written, in order
	Utterances int      // sentence nodes seen, qualifying or not
	Skipped    bool     // output already existed and overwrite was off
}
