package batch

import (
	"time"

	"github.com/nguyentantai21042004/subtitle-lines/internal/extractor"
)

// Kind tags the outcome of one file
type Kind int

const (
	KindOK Kind = iota
	KindSkipped
	KindParseError
	KindExtractionError
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindSkipped:
		return "skipped"
	case KindParseError:
		return "parse error"
	case KindExtractionError:
		return "extraction error"
	}
	return "unknown"
}

// Failed reports whether the kind is an error
func (k Kind) Failed() bool {
	return k == KindParseError || k == KindExtractionError
}

// Outcome is the tagged result for one discovered file
type Outcome struct {
	Path   string
	Kind   Kind
	Result extractor.Result
	Err    error
}

// Report summarizes a batch
type Report struct {
	RunID    string
	Total    int // files discovered
	Outcomes []Outcome
	Stopped  bool // interrupted before every file was visited
	Duration time.Duration
}

// Count returns how many outcomes carry kind
func (r Report) Count(kind Kind) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// Failures returns the failed outcomes in processing order
func (r Report) Failures() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Kind.Failed() {
			out = append(out, o)
		}
	}
	return out
}
