// Package timelength parses free-form, human-written duration
// expressions into a total number of seconds plus a structured
// breakdown of the values and scales (and failures) that produced it.
package timelength

import (
	"timelength/pkg/timelength/locale"
	"timelength/pkg/timelength/parser"
	"timelength/pkg/timelength/result"
)

// TimeLength is the public container around a single parse: the raw
// content, whether it runs in pedantic (Strict) mode, the locale it
// was parsed against, and the most recent Result.
type TimeLength struct {
	Content string
	Strict  bool
	Locale  *locale.Locale
	Result  result.Parsed
}

// New parses content against loc in tolerant mode.
func New(content string, loc *locale.Locale) *TimeLength {
	tl := &TimeLength{Content: content, Locale: loc}
	tl.Parse()
	return tl
}

// NewStrict parses content against loc in pedantic mode: any recorded
// failure flag, not just the locale's configured mask, forces failure.
func NewStrict(content string, loc *locale.Locale) *TimeLength {
	tl := &TimeLength{Content: content, Strict: true, Locale: loc}
	tl.Parse()
	return tl
}

// Parse re-runs the parser over t.Content against t.Locale, honoring
// t.Strict, and stores the outcome in t.Result. Call this again after
// mutating Content or Strict to refresh Result.
func (t *TimeLength) Parse() {
	mask := t.Locale.Flags
	if t.Strict {
		mask = locale.FailureAll
	}
	t.Result = parser.Parse(t.Locale.WithFlags(mask), t.Content)
}
