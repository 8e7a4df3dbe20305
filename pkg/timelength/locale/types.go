// Package locale holds the data model the duration parser is built
// against: scales, numerals, and the sets of punctuation that give
// them meaning. Locale values are loaded once and treated as
// immutable; the parser never mutates them.
package locale

// Scale is a unit of time expressed in seconds, together with the
// surface terms that name it ("minute", "minutes", "m", "min", ...).
type Scale struct {
	SecondsPerUnit float64
	Singular       string
	Plural         string
	Terms          []string
}

// Enabled reports whether every field required to use the Scale during
// parsing and conversion is populated. A Scale with any field empty or
// zero is treated as absent from the locale.
func (s Scale) Enabled() bool {
	return s.SecondsPerUnit != 0 && s.Singular != "" && s.Plural != "" && len(s.Terms) > 0
}

// Equal reports whether two scales denote the same unit. Scales compare
// equal by their seconds-per-unit value alone, which is how the parser
// detects a duplicate scale binding regardless of which surface term
// was used to reach it.
func (s Scale) Equal(other Scale) bool {
	return s.SecondsPerUnit == other.SecondsPerUnit
}

func (s Scale) String() string {
	return s.Singular
}

// NumeralKind classifies how a Numeral combines with its neighbors in
// the semantic combiner.
type NumeralKind uint8

const (
	// NumeralNone is the zero value, never attached to a real Numeral.
	NumeralNone NumeralKind = iota
	// NumeralDigit covers 0-9 ("zero" .. "nine").
	NumeralDigit
	// NumeralTeen covers 10-19 ("ten" .. "nineteen").
	NumeralTeen
	// NumeralTen covers the tens 20, 30, ..., 90 ("twenty" .. "ninety").
	NumeralTen
	// NumeralHundred covers "hundred" and standalone hundred-valued
	// numerals (200, 300, ...).
	NumeralHundred
	// NumeralThousand covers thousand, million, billion, ... by value.
	NumeralThousand
	// NumeralMultiplier covers fractional multiplier words: half,
	// third, quarter.
	NumeralMultiplier
	// NumeralOperator covers pure linking words with no numeric value
	// of their own, such as "of".
	NumeralOperator
)

func (k NumeralKind) String() string {
	switch k {
	case NumeralDigit:
		return "DIGIT"
	case NumeralTeen:
		return "TEEN"
	case NumeralTen:
		return "TEN"
	case NumeralHundred:
		return "HUNDRED"
	case NumeralThousand:
		return "THOUSAND"
	case NumeralMultiplier:
		return "MULTIPLIER"
	case NumeralOperator:
		return "OPERATOR"
	default:
		return "NONE"
	}
}

// Numeral is a word that denotes a number or a modifier of one.
type Numeral struct {
	Name  string
	Kind  NumeralKind
	Value float64
	Terms []string
}

// Enabled reports whether the Numeral has everything needed to
// participate in parsing.
func (n Numeral) Enabled() bool {
	return n.Name != "" && n.Kind != NumeralNone && len(n.Terms) > 0
}

func (n Numeral) String() string {
	return n.Name
}
