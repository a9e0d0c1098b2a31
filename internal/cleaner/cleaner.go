// Package cleaner normalizes reconstructed subtitle lines.
package cleaner

import (
	"regexp"
	"strings"
)

var (
	reParens = regexp.MustCompile(`\(.+?\)`)
	reBraces = regexp.MustCompile(`\{.+?\}`)
)

// Clean applies the fixed cleanup pipeline to a joined utterance.
//
// The double-space collapses run once each and never to a fixpoint, so
// "a   b" comes out as "a  b".
func Clean(text string) string {
	t := strings.Trim(text, "-")
	t = strings.ToLower(t)
	t = strings.Trim(t, `"`)
	t = reParens.ReplaceAllString(t, "")
	t = collapse(t)
	t = reBraces.ReplaceAllString(t, "")
	t = collapse(t)
	t = strings.ReplaceAll(t, "~", "")
	t = strings.Trim(t, " ")
	return t
}

// collapse replaces every non-overlapping double space with one space, single pass.
func collapse(s string) string {
	return strings.ReplaceAll(s, "  ", " ")
}

// Qualifies reports whether a cleaned line should be written out.
// Empty lines, bracketed cues like "[music]" and speaker labels ending in ':' are dropped.
func Qualifies(line string) bool {
	if line == "" {
		return false
	}
	return line[0] != '[' && line[len(line)-1] != ':'
}
