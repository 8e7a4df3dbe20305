package locale

// AssumeSeconds controls how a trailing value with no scale is
// resolved by the finalizer.
type AssumeSeconds uint8

const (
	// AssumeSecondsSingle assumes seconds for a trailing value only
	// when the input was a single token, or produced no valid and no
	// invalid entries before that trailing value and left no unused
	// operator in its segment. This is the default.
	AssumeSecondsSingle AssumeSeconds = iota
	// AssumeSecondsLast always assumes seconds for a trailing value
	// with no scale.
	AssumeSecondsLast
	// AssumeSecondsNever never assumes seconds; a trailing value with
	// no scale always becomes a LONELY_VALUE failure.
	AssumeSecondsNever
)

// Settings tunes how tolerant the parser is about ambiguous or
// irregular input. The zero value is not valid; use DefaultSettings.
type Settings struct {
	AssumeSeconds               AssumeSeconds
	LimitAllowedTerms           bool
	AllowDuplicateScales        bool
	AllowThousandsExtraDigits   bool
	AllowThousandsLackingDigits bool
	AllowDecimalsLackingDigits  bool
}

// DefaultSettings returns the parser's default tolerance settings.
func DefaultSettings() Settings {
	return Settings{
		AssumeSeconds:               AssumeSecondsSingle,
		LimitAllowedTerms:           true,
		AllowDuplicateScales:        true,
		AllowThousandsExtraDigits:   false,
		AllowThousandsLackingDigits: false,
		AllowDecimalsLackingDigits:  true,
	}
}
