package batch

import "context"

// Runner drives extraction over a whole language tree
type Runner interface {
	// Run discovers and extracts every document. Only discovery and output
	// directory failures are returned; per-file failures land in the Report.
	Run(ctx context.Context) (Report, error)
	// ProcessFile extracts a single document, isolating its failure
	ProcessFile(ctx context.Context, path string) Outcome
}
