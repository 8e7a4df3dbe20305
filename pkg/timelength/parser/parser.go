// Package parser orchestrates the duration parser's two passes: the
// scanner (Pass A) and the combiner (Pass B), then applies the
// finalizer's strictness-mask success predicate.
package parser

import (
	"sort"

	"timelength/pkg/timelength/combiner"
	"timelength/pkg/timelength/locale"
	"timelength/pkg/timelength/result"
	"timelength/pkg/timelength/scanner"
	"timelength/pkg/timelength/token"
)

// Parse runs content through the tokenizer and semantic combiner
// against loc, which supplies both the vocabulary and the tolerance
// settings and strictness mask to apply. loc is read, never mutated.
func Parse(loc *locale.Locale, content string) result.Parsed {
	tokens, scanInvalid := scanner.Scan(loc)(content)
	valid, combineInvalid, seconds := combiner.Run(loc, loc.Settings, tokens)

	// Pass A and Pass B each build their own invalid list, and the two
	// lists are independent: a Pass B fragment can sit earlier in the
	// input than a Pass A fragment discovered later in the scan (e.g. a
	// lonely leading scale followed by a malformed number), and Pass B
	// itself may record a segment-wide fragment after a later one (an
	// unused operator before the lonely value it followed). Merge and
	// sort by position rather than concatenating by pass so the combined
	// list stays in true source order.
	invalid := make([]result.Invalid, 0, len(scanInvalid)+len(combineInvalid))
	for _, inv := range scanInvalid {
		invalid = append(invalid, result.Invalid{Fragment: inv.Fragment, Flags: inv.Flags, Pos: inv.Pos})
	}
	invalid = append(invalid, combineInvalid...)
	sort.SliceStable(invalid, func(i, j int) bool {
		return invalid[i].Pos < invalid[j].Pos
	})

	mask := effectiveMask(loc)
	success := len(valid) > 0
	if success {
		for _, inv := range invalid {
			if inv.Flags.Intersects(mask) {
				success = false
				break
			}
		}
	}

	return result.Parsed{
		Success: success,
		Seconds: seconds,
		Valid:   valid,
		Invalid: invalid,
	}
}

// effectiveMask folds a setting that implies its own strictness —
// disabling duplicate scales — into the locale's configured mask, so
// a caller who opted out of tolerating duplicates gets a failed parse
// rather than a silently accepted one.
func effectiveMask(loc *locale.Locale) locale.FailureFlag {
	mask := loc.Flags
	if !loc.Settings.AllowDuplicateScales {
		mask |= locale.FailureDuplicateScale
	}
	return mask
}

// Tokens exposes the raw Pass A token stream for diagnostics and
// testing; the public API only needs Parse.
func Tokens(loc *locale.Locale, content string) ([]token.Token, []token.Invalid) {
	return scanner.Scan(loc)(content)
}
