// Package token defines the token stream produced by the tokenizer
// (Pass A) and consumed by the semantic combiner (Pass B).
package token

import "timelength/pkg/timelength/locale"

// Kind classifies a token in the stream the combiner walks.
type Kind uint8

const (
	// Number is a literal real value, e.g. from "3.5" or an expanded
	// HH:MM:SS clock group.
	Number Kind = iota
	// Numeral carries a reference into the locale's numeral table,
	// e.g. "twenty", "half", "of".
	Numeral
	// Scale carries a reference into the locale's scale table, e.g.
	// "minutes".
	Scale
	// Special is a single delimiter, connector, segmentor, allowed
	// term, or other punctuation character.
	Special
	// Unknown is an alphabetic run, or a single non-letter character,
	// that matched none of the locale's tables.
	Unknown
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "NUMBER"
	case Numeral:
		return "NUMERAL"
	case Scale:
		return "SCALE"
	case Special:
		return "SPECIAL"
	default:
		return "UNKNOWN"
	}
}

// Token is one item of the stream between the tokenizer and the
// combiner. At most one of Num, Numeral, or Sc is meaningful,
// depending on Kind.
type Token struct {
	Kind    Kind
	Text    string
	Num     float64
	Numeral *locale.Numeral
	Sc      *locale.Scale
	// Pos is the rune offset into the normalized input where this
	// token begins, used downstream to merge the scanner's and the
	// combiner's invalid fragments back into source order.
	Pos int
}

// Invalid is a rejected fragment of input tagged with the failure
// reasons that caused it to be rejected.
type Invalid struct {
	Fragment string
	Flags    locale.FailureFlag
	// Pos is the rune offset into the normalized input this fragment
	// was rejected at.
	Pos int
}
