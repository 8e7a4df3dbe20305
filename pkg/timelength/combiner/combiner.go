// Package combiner implements Pass B of the duration parser: a state
// machine that folds numerals and numbers into running values, binds
// each value to the next scale it meets, and emits the valid and
// invalid fragments of the parse.
package combiner

import (
	"strings"

	"timelength/pkg/timelength/locale"
	"timelength/pkg/timelength/result"
	"timelength/pkg/timelength/token"
)

// pendingOp is an operator token ("of") that hasn't yet been folded
// into a value or confirmed used by a following scale, carried along
// with its source position so a later UNUSED_OPERATOR invalid reports
// where the operator actually sat in the input.
type pendingOp struct {
	text string
	pos  int
}

type specialCategory uint8

const (
	catConnector specialCategory = iota
	catSegmentor
	catAllowed
	catOther
)

// state holds everything the combiner tracks for the segment currently
// being accumulated, plus the handful of counters that persist across
// the whole token stream.
type state struct {
	loc      *locale.Locale
	settings locale.Settings

	// segment-scoped
	parsedValue    float64
	hasValue       bool
	segmentValue   float64
	segModifier    float64
	hasModifier    bool
	lastKind       locale.NumeralKind
	hadHundredOrK  bool
	highestK       float64
	pendingOps     []pendingOp
	segmentParts   []string
	multiplierRun  int
	tokensInSeg    int
	foldPending    bool
	// segStartPos is the source position of the first token of the
	// segment currently being accumulated, used to position invalid
	// fragments that span the whole segment (e.g. LONELY_VALUE,
	// AMBIGUOUS_MULTIPLIER) at the segment's start rather than wherever
	// the triggering token happens to sit.
	segStartPos int

	// parse-scoped
	seenScale map[float64]bool
	valid     []result.Valid
	invalid   []result.Invalid
	seconds   float64

	lastSpecialText string
	lastSpecialCat  specialCategory
	specialRun      int
}

// Run executes Pass B over tokens and returns the accumulated parse
// outcome, excluding the success verdict (the caller applies the
// strictness mask).
func Run(loc *locale.Locale, settings locale.Settings, tokens []token.Token) ([]result.Valid, []result.Invalid, float64) {
	s := &state{
		loc:       loc,
		settings:  settings,
		seenScale: make(map[float64]bool),
	}

	singleToken := len(tokens) == 1

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if !s.segmentActive() {
			s.segStartPos = t.Pos
		}
		if t.Kind != token.Special {
			// any non-special token breaks a run of consecutive specials
			s.specialRun = 0
		}
		switch t.Kind {
		case token.Number:
			s.handleNumber(t)
		case token.Scale:
			s.handleScale(t)
		case token.Numeral:
			s.handleNumeral(t, tokens, i)
		case token.Special:
			s.handleSpecial(t)
		case token.Unknown:
			s.invalid = append(s.invalid, result.Invalid{Fragment: t.Text, Flags: locale.FailureUnknownTerm, Pos: t.Pos})
		}
	}

	s.finishTail(singleToken)

	return s.valid, s.invalid, s.seconds
}

func (s *state) addText(text string) {
	if text == "" {
		return
	}
	s.segmentParts = append(s.segmentParts, text)
}

func (s *state) segmentText() string {
	return strings.Join(s.segmentParts, " ")
}

func (s *state) segmentActive() bool {
	return s.hasValue || s.segmentValue != 0 || s.hasModifier || len(s.pendingOps) > 0 || s.tokensInSeg > 0
}

// hasRealValue reports whether the segment has an actual numeric
// contribution pending, as opposed to only dangling operator tokens.
func (s *state) hasRealValue() bool {
	return s.hasValue || s.segmentValue != 0 || s.hasModifier
}

func (s *state) resetSegment() {
	s.parsedValue = 0
	s.hasValue = false
	s.segmentValue = 0
	s.segModifier = 1
	s.hasModifier = false
	s.lastKind = locale.NumeralNone
	s.hadHundredOrK = false
	s.highestK = 0
	s.pendingOps = nil
	s.segmentParts = nil
	s.multiplierRun = 0
	s.tokensInSeg = 0
	s.foldPending = false
}

// effectiveValue folds the current segment's open value, closed
// sub-total, and modifier into the total that would bind to a scale,
// treating a lone modifier as the value itself.
func (s *state) effectiveValue() float64 {
	base := s.segmentValue
	if s.hasValue {
		base += s.parsedValue
	}
	if !s.hasModifier {
		return base
	}
	if base == 0 {
		return s.segModifier
	}
	return base * s.segModifier
}

func (s *state) setOrFlushValue(v float64) {
	if s.hasValue {
		s.invalid = append(s.invalid, result.Invalid{Fragment: result.NumberFragment(s.parsedValue), Flags: locale.FailureLonelyValue, Pos: s.segStartPos})
	}
	s.parsedValue = v
	s.hasValue = true
}

func (s *state) handleNumber(t token.Token) {
	s.tokensInSeg++
	s.addText(t.Text)
	s.multiplierRun = 0
	if s.foldPending {
		s.foldPending = false
		s.parsedValue *= t.Num
		s.lastKind = locale.NumeralNone
		return
	}
	s.setOrFlushValue(t.Num)
	s.lastKind = locale.NumeralNone
}

func (s *state) handleScale(t token.Token) {
	leading := !s.segmentActive()
	s.tokensInSeg++
	if leading {
		s.invalid = append(s.invalid, result.Invalid{Fragment: t.Text, Flags: locale.FailureLonelyScale, Pos: t.Pos})
		s.resetSegment()
		return
	}

	total := s.effectiveValue()
	s.addText(t.Text)

	if !s.settings.AllowDuplicateScales && s.seenScale[t.Sc.SecondsPerUnit] {
		s.invalid = append(s.invalid, result.Invalid{Fragment: s.segmentText(), Flags: locale.FailureDuplicateScale, Pos: s.segStartPos})
		s.resetSegment()
		return
	}

	s.seenScale[t.Sc.SecondsPerUnit] = true
	s.flushPendingOperators(true)
	s.valid = append(s.valid, result.Valid{Value: total, Scale: *t.Sc})
	s.seconds += total * t.Sc.SecondsPerUnit
	s.resetSegment()
}

func (s *state) flushPendingOperators(used bool) {
	if used {
		s.pendingOps = nil
		return
	}
	for _, op := range s.pendingOps {
		s.invalid = append(s.invalid, result.Invalid{Fragment: op.text, Flags: locale.FailureUnusedOperator, Pos: op.pos})
	}
	s.pendingOps = nil
}

func (s *state) handleNumeral(t token.Token, tokens []token.Token, idx int) {
	s.tokensInSeg++
	n := t.Numeral
	switch n.Kind {
	case locale.NumeralOperator:
		s.addText(t.Text)
		next := peekMeaningful(tokens, idx)
		foldable := next != nil && (next.Kind == token.Number ||
			(next.Kind == token.Numeral && isNumberLikeKind(next.Numeral.Kind)))
		if (s.hasValue || s.segmentValue != 0) && foldable {
			s.foldPending = true
		} else {
			s.pendingOps = append(s.pendingOps, pendingOp{text: t.Text, pos: t.Pos})
		}
		// multiplierRun is deliberately left untouched: an operator like
		// "of" is a pure connective between two multipliers, and must not
		// hide a "half of half"-style chain from AMBIGUOUS_MULTIPLIER.
	case locale.NumeralMultiplier:
		s.addText(t.Text)
		if s.multiplierRun >= 1 {
			s.invalid = append(s.invalid, result.Invalid{Fragment: s.segmentText(), Flags: locale.FailureAmbiguousMultiplier, Pos: s.segStartPos})
			s.hasModifier = false
			s.segModifier = 1
		} else {
			if s.hasModifier {
				s.segModifier *= n.Value
			} else {
				s.segModifier = n.Value
				s.hasModifier = true
			}
		}
		s.multiplierRun++
	default:
		s.addText(t.Text)
		s.multiplierRun = 0
		s.combineNumeral(n, tokens, idx)
	}
}

func (s *state) combineNumeral(n *locale.Numeral, tokens []token.Token, idx int) {
	if s.foldPending {
		s.foldPending = false
		s.parsedValue *= n.Value
		s.hasValue = true
		s.lastKind = n.Kind
		return
	}
	if n.Kind == locale.NumeralThousand {
		s.cascadeThousand(n, tokens, idx)
		return
	}

	prev := s.lastKind
	switch prev {
	case locale.NumeralNone:
		s.parsedValue = n.Value
		s.hasValue = true
	case locale.NumeralDigit:
		switch n.Kind {
		case locale.NumeralDigit, locale.NumeralTeen, locale.NumeralTen:
			if s.hadHundredOrK {
				s.setOrFlushValue(n.Value)
			} else {
				magnitude := magnitudeOf(n.Kind, n.Value)
				s.parsedValue = s.parsedValue*magnitude + n.Value
			}
		case locale.NumeralHundred:
			s.parsedValue = applyHundred(s.parsedValue, n.Value)
			s.hadHundredOrK = true
		}
	case locale.NumeralTeen:
		switch n.Kind {
		case locale.NumeralDigit:
			s.setOrFlushValue(n.Value)
		case locale.NumeralTeen, locale.NumeralTen:
			if s.hadHundredOrK {
				s.setOrFlushValue(n.Value)
			} else {
				magnitude := magnitudeOf(n.Kind, n.Value)
				s.parsedValue = s.parsedValue*magnitude + n.Value
			}
		case locale.NumeralHundred:
			s.parsedValue += n.Value
			s.hadHundredOrK = true
		}
	case locale.NumeralTen:
		switch n.Kind {
		case locale.NumeralDigit:
			s.parsedValue += n.Value
		case locale.NumeralTeen, locale.NumeralTen:
			s.setOrFlushValue(n.Value)
		case locale.NumeralHundred:
			s.parsedValue += n.Value
			s.hadHundredOrK = true
		}
	case locale.NumeralHundred:
		switch n.Kind {
		case locale.NumeralDigit, locale.NumeralTeen, locale.NumeralTen:
			s.parsedValue += n.Value
		case locale.NumeralHundred:
			s.parsedValue = applyHundred(s.parsedValue, n.Value)
		}
	case locale.NumeralThousand:
		s.parsedValue += n.Value
		if n.Kind == locale.NumeralHundred {
			s.hadHundredOrK = true
		}
	}
	s.hasValue = true
	s.lastKind = n.Kind
}

func magnitudeOf(kind locale.NumeralKind, value float64) float64 {
	if kind == locale.NumeralDigit {
		return 10
	}
	return 100
}

func applyHundred(prevValue, hundredValue float64) float64 {
	if hundredValue == 100 {
		base := prevValue
		if base == 0 {
			base = 1
		}
		return base * 100
	}
	return prevValue + hundredValue
}

// cascadeThousand implements the THOUSAND-cascade rule: peek past
// specials for the next meaningful token; if it can still contribute a
// number, multiply and nest into the segment sub-total respecting
// monotonicity, otherwise just scale parsedValue in place.
func (s *state) cascadeThousand(n *locale.Numeral, tokens []token.Token, idx int) {
	base := s.parsedValue
	if !s.hasValue {
		base = 1
	}
	value := base * n.Value

	next := peekMeaningful(tokens, idx)
	continues := next != nil && (next.Kind == token.Number ||
		(next.Kind == token.Numeral && isNumberLikeKind(next.Numeral.Kind)))

	if !continues {
		s.parsedValue = value
		s.hasValue = true
		s.lastKind = locale.NumeralThousand
		s.hadHundredOrK = true
		return
	}

	if s.highestK == 0 || n.Value < s.highestK {
		s.segmentValue += value
	} else {
		if s.segmentValue != 0 {
			s.invalid = append(s.invalid, result.Invalid{Fragment: result.NumberFragment(s.segmentValue), Flags: locale.FailureLonelyValue, Pos: s.segStartPos})
		}
		s.segmentValue = value
	}
	s.highestK = n.Value
	s.parsedValue = 0
	s.hasValue = false
	s.lastKind = locale.NumeralThousand
	s.hadHundredOrK = true
}

func isNumberLikeKind(k locale.NumeralKind) bool {
	switch k {
	case locale.NumeralDigit, locale.NumeralTeen, locale.NumeralTen, locale.NumeralHundred:
		return true
	default:
		return false
	}
}

func peekMeaningful(tokens []token.Token, idx int) *token.Token {
	for j := idx + 1; j < len(tokens); j++ {
		if tokens[j].Kind == token.Special {
			continue
		}
		return &tokens[j]
	}
	return nil
}

func categorize(loc *locale.Locale, text string) specialCategory {
	switch {
	case loc.IsConnector(text):
		return catConnector
	case loc.IsSegmentor(text):
		return catSegmentor
	case loc.IsAllowedTerm(text):
		return catAllowed
	default:
		return catOther
	}
}

func (s *state) handleSpecial(t token.Token) {
	cat := categorize(s.loc, t.Text)
	s.trackConsecutive(t.Text, cat, t.Pos)

	switch cat {
	case catConnector:
		// pure glue; no structural effect
	case catSegmentor:
		s.closeOnSegmentor()
	case catAllowed:
		if s.settings.LimitAllowedTerms && s.segmentActive() {
			s.invalid = append(s.invalid, result.Invalid{Fragment: s.segmentText(), Flags: locale.FailureMisplacedAllowedTerm, Pos: s.segStartPos})
			s.resetSegment()
		}
	default:
		s.invalid = append(s.invalid, result.Invalid{Fragment: t.Text, Flags: locale.FailureMisplacedSpecial, Pos: t.Pos})
	}
}

func (s *state) trackConsecutive(text string, cat specialCategory, pos int) {
	if cat == s.lastSpecialCat && text == s.lastSpecialText {
		s.specialRun++
	} else {
		s.specialRun = 1
		s.lastSpecialCat = cat
		s.lastSpecialText = text
	}

	switch {
	case cat == catConnector && s.specialRun == 3:
		s.invalid = append(s.invalid, result.Invalid{Fragment: strings.Repeat(text, 3), Flags: locale.FailureConsecutiveConnector, Pos: pos})
	case cat == catSegmentor && s.specialRun == 2:
		s.invalid = append(s.invalid, result.Invalid{Fragment: strings.Repeat(text, 2), Flags: locale.FailureConsecutiveSegmentor, Pos: pos})
	case cat == catOther && s.specialRun == 2:
		s.invalid = append(s.invalid, result.Invalid{Fragment: strings.Repeat(text, 2), Flags: locale.FailureConsecutiveSpecial, Pos: pos})
	}
}

func (s *state) closeOnSegmentor() {
	if !s.segmentActive() {
		return
	}
	if !s.hasRealValue() {
		s.flushPendingOperators(false)
		s.resetSegment()
		return
	}
	v := s.effectiveValue()
	s.flushPendingOperators(false)
	s.invalid = append(s.invalid, result.Invalid{Fragment: result.NumberFragment(v), Flags: locale.FailureLonelyValue, Pos: s.segStartPos})
	s.resetSegment()
}

func (s *state) finishTail(singleToken bool) {
	if !s.segmentActive() {
		return
	}
	if !s.hasRealValue() {
		s.flushPendingOperators(false)
		return
	}
	v := s.effectiveValue()

	assume := false
	switch s.settings.AssumeSeconds {
	case locale.AssumeSecondsLast:
		assume = true
	case locale.AssumeSecondsSingle:
		assume = singleToken || (len(s.valid) == 0 && len(s.invalid) == 0 && len(s.pendingOps) == 0)
	case locale.AssumeSecondsNever:
		assume = false
	}

	if assume {
		sc := s.loc.SecondScale()
		s.flushPendingOperators(true)
		s.valid = append(s.valid, result.Valid{Value: v, Scale: sc})
		s.seconds += v * sc.SecondsPerUnit
		return
	}

	s.flushPendingOperators(false)
	s.invalid = append(s.invalid, result.Invalid{Fragment: result.NumberFragment(v), Flags: locale.FailureLonelyValue, Pos: s.segStartPos})
}
