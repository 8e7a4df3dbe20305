package scanner

import (
	"strconv"
	"strings"

	"timelength/pkg/timelength/locale"
)

// segResult is the outcome of re-validating a raw number segment
// against the decimal, thousand-grouped, or clock-group shapes.
type segResult struct {
	ok          bool
	isClock     bool
	value       float64
	clockValues []float64
	flags       locale.FailureFlag
}

func validateSegment(loc *locale.Locale, settings locale.Settings, raw []rune) segResult {
	parts := splitOnSet(raw, loc.IsHHMMSS)
	if len(parts) > 1 {
		return validateClock(loc, settings, parts)
	}
	v, flags, ok := validateDecimalOrThousand(loc, settings, parts[0])
	return segResult{ok: ok, value: v, flags: flags}
}

func validateClock(loc *locale.Locale, settings locale.Settings, parts [][]rune) segResult {
	numScales := loc.NumScales()
	if len(parts) > numScales {
		return segResult{ok: false, flags: locale.FailureMalformedHHMMSS}
	}
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, f, ok := validateDecimalOrThousand(loc, settings, p)
		if !ok {
			return segResult{ok: false, flags: f | locale.FailureMalformedHHMMSS}
		}
		values = append(values, v)
	}
	return segResult{ok: true, isClock: true, clockValues: values}
}

// validateDecimalOrThousand re-walks a single number segment (no
// hhmmss delimiters) and accepts it only if it is a plain decimal or a
// thousand-grouped number (optionally followed by a decimal part), per
// the loosening settings.
func validateDecimalOrThousand(loc *locale.Locale, settings locale.Settings, part []rune) (float64, locale.FailureFlag, bool) {
	var digits strings.Builder
	hasDecimal := false
	hasAnyDigit := false

	i := 0
	for i < len(part) {
		ch := part[i]
		chStr := string(ch)
		switch {
		case isDigit(ch):
			digits.WriteRune(ch)
			hasAnyDigit = true
			i++
		case loc.IsDecimal(chStr):
			if hasDecimal {
				return 0, locale.FailureMalformedDecimal, false
			}
			hasFollowing := i+1 < len(part) && isDigit(part[i+1])
			if !hasFollowing && !settings.AllowDecimalsLackingDigits {
				return 0, locale.FailureMalformedDecimal, false
			}
			hasDecimal = true
			digits.WriteByte('.')
			i++
		case loc.IsThousand(chStr):
			if hasDecimal || !hasAnyDigit {
				return 0, locale.FailureMalformedThousand, false
			}
			following := 0
			for i+1+following < len(part) && isDigit(part[i+1+following]) {
				following++
			}
			need := 3
			if settings.AllowThousandsLackingDigits {
				need = 1
			}
			if following < need {
				return 0, locale.FailureMalformedThousand, false
			}
			if following > 3 && !settings.AllowThousandsExtraDigits {
				return 0, locale.FailureMalformedThousand, false
			}
			take := 3
			if settings.AllowThousandsExtraDigits {
				take = following
			} else if following < 3 {
				take = following
			}
			for k := 0; k < take; k++ {
				digits.WriteRune(part[i+1+k])
			}
			i += 1 + take
		case loc.IsConnector(chStr):
			i++
		default:
			return 0, locale.FailureMalformedContent, false
		}
	}

	if !hasAnyDigit {
		return 0, locale.FailureMalformedContent, false
	}
	str := digits.String()
	if strings.HasSuffix(str, ".") {
		str += "0"
	}
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, locale.FailureMalformedContent, false
	}
	return v, locale.FailureNone, true
}

func splitOnSet(raw []rune, pred func(string) bool) [][]rune {
	var parts [][]rune
	var cur []rune
	for _, ch := range raw {
		if pred(string(ch)) {
			parts = append(parts, cur)
			cur = nil
			continue
		}
		cur = append(cur, ch)
	}
	parts = append(parts, cur)
	return parts
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
