// Package scanner implements Pass A of the duration parser: a
// character-class walk that groups the input into a token stream,
// with a number-segment sub-lexer for decimals, thousand grouping,
// fractions, and HH:MM:SS clock groups.
package scanner

import (
	"strings"
	"unicode"

	"timelength/pkg/timelength/locale"
	"timelength/pkg/timelength/token"
)

type charClass uint8

const (
	classNumber charClass = iota
	classAlpha
	classOther
)

func classify(r rune) charClass {
	switch {
	case isDigit(r):
		return classNumber
	case unicode.IsLetter(r):
		return classAlpha
	default:
		return classOther
	}
}

// Scanner walks normalized input once, left to right, producing a
// token stream and a list of rejected fragments.
type Scanner struct {
	loc      *locale.Locale
	settings locale.Settings
	runes    []rune
	pos      int

	tokens        []token.Token
	invalids      []token.Invalid
	hadClockGroup bool
}

// Scan tokenizes content against loc, stripping diacritics first so
// matching is accent-insensitive.
func Scan(loc *locale.Locale) func(content string) ([]token.Token, []token.Invalid) {
	return func(content string) ([]token.Token, []token.Invalid) {
		s := &Scanner{
			loc:      loc,
			settings: loc.Settings,
			runes:    []rune(StripDiacritics(content)),
		}
		s.run()
		return s.tokens, s.invalids
	}
}

func (s *Scanner) run() {
	for s.pos < len(s.runes) {
		ch := s.runes[s.pos]
		if isDigit(ch) || s.isLeadingDecimal(s.pos) {
			s.lexNumberContext()
			continue
		}
		switch classify(ch) {
		case classAlpha:
			s.lexAlpha()
		default:
			s.lexOther()
		}
	}
}

func (s *Scanner) isLeadingDecimal(pos int) bool {
	ch := s.runes[pos]
	if !s.loc.IsDecimal(string(ch)) {
		return false
	}
	if pos+1 >= len(s.runes) || !isDigit(s.runes[pos+1]) {
		return false
	}
	if pos > 0 && isDigit(s.runes[pos-1]) {
		return false
	}
	return true
}

func (s *Scanner) lexAlpha() {
	start := s.pos
	for s.pos < len(s.runes) && classify(s.runes[s.pos]) == classAlpha {
		s.pos++
	}
	raw := string(s.runes[start:s.pos])
	text := strings.ToLower(raw)

	if sc := s.loc.ScaleByTerm(text); sc != nil {
		s.tokens = append(s.tokens, token.Token{Kind: token.Scale, Text: raw, Sc: sc, Pos: start})
		return
	}
	if num := s.loc.NumeralByTerm(text); num != nil {
		s.tokens = append(s.tokens, token.Token{Kind: token.Numeral, Text: raw, Numeral: num, Pos: start})
		return
	}
	if s.isKnownSpecialTerm(text) {
		s.tokens = append(s.tokens, token.Token{Kind: token.Special, Text: raw, Pos: start})
		return
	}
	s.tokens = append(s.tokens, token.Token{Kind: token.Unknown, Text: raw, Pos: start})
}

func (s *Scanner) lexOther() {
	start := s.pos
	ch := s.runes[s.pos]
	s.pos++
	text := string(ch)
	if s.isKnownSpecialTerm(text) {
		s.tokens = append(s.tokens, token.Token{Kind: token.Special, Text: text, Pos: start})
		return
	}
	s.tokens = append(s.tokens, token.Token{Kind: token.Unknown, Text: text, Pos: start})
}

func (s *Scanner) isKnownSpecialTerm(text string) bool {
	return s.loc.IsSpecial(text) ||
		s.loc.IsConnector(text) ||
		s.loc.IsSegmentor(text) ||
		s.loc.IsAllowedTerm(text) ||
		s.loc.IsDecimal(text) ||
		s.loc.IsThousand(text) ||
		s.loc.IsHHMMSS(text)
}

// greedyNumberSegmentEnd extends from pos while the current character
// could plausibly belong to a number segment: a digit, a decimal or
// thousand delimiter, an hhmmss delimiter, or a connector.
func (s *Scanner) greedyNumberSegmentEnd(pos int) int {
	i := pos
	for i < len(s.runes) {
		ch := s.runes[i]
		chStr := string(ch)
		if isDigit(ch) || s.loc.IsDecimal(chStr) || s.loc.IsThousand(chStr) ||
			s.loc.IsHHMMSS(chStr) || s.loc.IsConnector(chStr) {
			i++
			continue
		}
		break
	}
	return i
}

func (s *Scanner) lexNumberContext() {
	start := s.pos
	leadingZero := s.isLeadingDecimal(s.pos)
	end := s.greedyNumberSegmentEnd(s.pos)
	raw := s.runes[start:end]
	text := string(raw)
	if leadingZero {
		raw = append([]rune{'0'}, raw...)
	}

	res := validateSegment(s.loc, s.settings, raw)
	if !res.ok {
		s.invalids = append(s.invalids, token.Invalid{Fragment: strings.TrimSpace(text), Flags: res.flags, Pos: start})
		s.pos = end
		return
	}
	if res.isClock {
		s.emitClockGroup(res.clockValues, text, start)
		s.pos = end
		return
	}

	if consumedEnd, ok := s.tryFraction(start, end, res.value); ok {
		s.pos = consumedEnd
		return
	}

	s.tokens = append(s.tokens, token.Token{Kind: token.Number, Text: strings.TrimSpace(text), Num: res.value, Pos: start})
	s.pos = end
}

// tryFraction looks past a plain number segment for "/ <number>",
// tolerating connectors on either side of the slash, and folds the two
// operands into a single NUMBER token carrying their quotient. It
// reports ok=false when no fraction is present at all, leaving the
// caller to emit segA as an ordinary number.
func (s *Scanner) tryFraction(start, segAEnd int, segAVal float64) (int, bool) {
	j := segAEnd
	for j < len(s.runes) && s.loc.IsConnector(string(s.runes[j])) {
		j++
	}
	if j >= len(s.runes) || string(s.runes[j]) != "/" {
		return 0, false
	}
	k := j + 1
	for k < len(s.runes) && s.loc.IsConnector(string(s.runes[k])) {
		k++
	}
	if k >= len(s.runes) || !isDigit(s.runes[k]) {
		return 0, false
	}

	bEnd := s.greedyNumberSegmentEnd(k)
	bRaw := s.runes[k:bEnd]
	bRes := validateSegment(s.loc, s.settings, bRaw)
	fragText := strings.TrimSpace(string(s.runes[start:bEnd]))

	if !bRes.ok || bRes.isClock || bRes.value == 0 || strings.Count(fragText, "/") > 1 {
		s.invalids = append(s.invalids, token.Invalid{Fragment: fragText, Flags: locale.FailureMalformedFraction, Pos: start})
		return bEnd, true
	}

	value := segAVal / bRes.value
	s.tokens = append(s.tokens, token.Token{Kind: token.Number, Text: fragText, Num: value, Pos: start})
	return bEnd, true
}

// emitClockGroup expands a validated HH:MM:SS clock group into
// alternating NUMBER/SCALE tokens, as if the user had spelled out each
// unit by name, per the smallest-N-scales binding rule.
func (s *Scanner) emitClockGroup(values []float64, text string, start int) {
	if !s.settings.AllowDuplicateScales && s.hadClockGroup {
		s.invalids = append(s.invalids, token.Invalid{Fragment: strings.TrimSpace(text), Flags: locale.FailureDuplicateScale, Pos: start})
		return
	}
	s.hadClockGroup = true

	enabled := s.loc.EnabledScales()
	n := len(values)
	numScales := len(enabled)

	var scalesUsed []locale.Scale
	if n == numScales {
		scalesUsed = enabled[:n]
	} else {
		scalesUsed = enabled[1 : 1+n]
	}

	for idx := 0; idx < n; idx++ {
		scaleIdx := len(scalesUsed) - 1 - idx
		sc := scalesUsed[scaleIdx]
		s.tokens = append(s.tokens, token.Token{Kind: token.Number, Num: values[idx], Pos: start})
		s.tokens = append(s.tokens, token.Token{Kind: token.Scale, Text: sc.Singular, Sc: &scalesUsed[scaleIdx], Pos: start})
	}
}
