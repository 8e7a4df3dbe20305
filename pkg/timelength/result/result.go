// Package result holds the output shape produced by a parse: the total
// number of seconds, the ordered (value, scale) pairs that contributed
// to it, and the ordered fragments that were rejected along the way.
package result

import (
	"strconv"
	"strings"

	"timelength/pkg/timelength/locale"
)

// Valid is one successfully bound (value, scale) pair.
type Valid struct {
	Value float64
	Scale locale.Scale
}

// Invalid is a rejected fragment tagged with the reasons it failed.
// Fragment holds the offending source text; when the parser rejected a
// bare numeric value instead of text (e.g. a trailing LONELY_VALUE) the
// fragment is the value's decimal text, matching how the value would
// have printed if it had bound to a scale.
type Invalid struct {
	Fragment string
	Flags    locale.FailureFlag
	// Pos is the rune offset into the normalized input this fragment
	// was rejected at. It exists to let the parser merge the scanner's
	// and the combiner's invalid lists back into source order; callers
	// comparing Invalid values by fragment and flags alone can ignore it.
	Pos int
}

// Parsed is the outcome of a single parse call.
type Parsed struct {
	Success bool
	Seconds float64
	Valid   []Valid
	Invalid []Invalid
}

// NumberFragment formats a bare numeric value the way an Invalid
// fragment expects when the source text itself isn't the best
// representation, e.g. a value synthesized by fraction or thousand
// folding. Whole numbers keep a trailing ".0", matching how the
// original stores these as floats rather than integers.
func NumberFragment(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
