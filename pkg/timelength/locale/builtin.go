package locale

import _ "embed"

//go:embed data/en.yaml
var englishData []byte

//go:embed data/es.yaml
var spanishData []byte

// English loads the built-in English locale with the given settings
// and strictness mask.
func English(settings Settings, flags FailureFlag) *Locale {
	loc := MustLoad(englishData, settings, flags)
	loc.Name = "english"
	return loc
}

// Spanish loads the built-in Spanish locale with the given settings
// and strictness mask.
func Spanish(settings Settings, flags FailureFlag) *Locale {
	loc := MustLoad(spanishData, settings, flags)
	loc.Name = "spanish"
	return loc
}

// Registry lists the built-in locale constructors, used by Guess to
// try each in turn.
func Registry() map[string]func(Settings, FailureFlag) *Locale {
	return map[string]func(Settings, FailureFlag) *Locale{
		"english": English,
		"spanish": Spanish,
	}
}
