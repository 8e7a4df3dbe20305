package locale

import (
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// config is the on-disk shape of a locale file. The `parser_file` key
// from the original data contract is accepted but ignored: this
// rewrite's parser is built in, not loaded from a side file.
type config struct {
	ParserFile         string                   `yaml:"parser_file"`
	Connectors         []string                 `yaml:"connectors"`
	Segmentors         []string                 `yaml:"segmentors"`
	DecimalDelimiters  []string                 `yaml:"decimal_delimiters"`
	ThousandDelimiters []string                 `yaml:"thousand_delimiters"`
	HHMMSSDelimiters   []string                 `yaml:"hhmmss_delimiters"`
	AllowedTerms       []string                 `yaml:"allowed_terms"`
	Specials           []string                 `yaml:"specials"`
	Scales             map[string]scaleConfig   `yaml:"scales"`
	Numerals           map[string]numeralConfig `yaml:"numerals"`
	ExtraData          map[string]interface{}   `yaml:"extra_data"`
}

type scaleConfig struct {
	Scale    float64  `yaml:"scale"`
	Singular string   `yaml:"singular"`
	Plural   string   `yaml:"plural"`
	Terms    []string `yaml:"terms"`
}

type numeralConfig struct {
	Type  string   `yaml:"type"`
	Value float64  `yaml:"value"`
	Terms []string `yaml:"terms"`
}

// Locale is an immutable, loaded set of scales, numerals, and
// punctuation classes the parser consumes. Build one with Load or
// MustLoad; the zero value is not usable.
type Locale struct {
	Name string

	Scales   []Scale
	Numerals []Numeral

	Connectors         []string
	Segmentors         []string
	DecimalDelimiters  []string
	ThousandDelimiters []string
	HHMMSSDelimiters   []string
	AllowedTerms       []string
	Specials           []string

	Settings Settings
	Flags    FailureFlag // strictness mask: flags here force success=false

	ExtraData map[string]interface{}

	scaleByTerm   map[string]*Scale
	numeralByTerm map[string]*Numeral
	specialSet    map[string]bool
	connectorSet  map[string]bool
	segmentorSet  map[string]bool
	decimalSet    map[string]bool
	thousandSet   map[string]bool
	hhmmssSet     map[string]bool
	allowedSet    map[string]bool
}

var numeralKindByName = map[string]NumeralKind{
	"DIGIT":      NumeralDigit,
	"TEEN":       NumeralTeen,
	"TEN":        NumeralTen,
	"HUNDRED":    NumeralHundred,
	"THOUSAND":   NumeralThousand,
	"MULTIPLIER": NumeralMultiplier,
	"OPERATOR":   NumeralOperator,
}

// canonicalScaleOrder fixes the position of the ten built-in scales so
// that HH:MM:SS expansion (smallest-N binding) is deterministic;
// locale-specific extra scales are appended after them, sorted by name
// for determinism.
var canonicalScaleOrder = []string{
	"millisecond", "second", "minute", "hour", "day",
	"week", "month", "year", "decade", "century",
}

// Load decodes a YAML locale document, validates it, and builds the
// derived lookup indexes the parser relies on.
func Load(data []byte, settings Settings, flags FailureFlag) (*Locale, error) {
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "locale: decode yaml")
	}

	if overlap(cfg.Connectors, cfg.Segmentors) {
		return nil, ConfigError("connectors and segmentors overlap")
	}
	if overlap(cfg.DecimalDelimiters, cfg.ThousandDelimiters) {
		return nil, ConfigError("decimal and thousand delimiters overlap")
	}

	loc := &Locale{
		Connectors:         cfg.Connectors,
		Segmentors:         cfg.Segmentors,
		DecimalDelimiters:  cfg.DecimalDelimiters,
		ThousandDelimiters: cfg.ThousandDelimiters,
		HHMMSSDelimiters:   cfg.HHMMSSDelimiters,
		AllowedTerms:       cfg.AllowedTerms,
		Specials:           cfg.Specials,
		Settings:           settings,
		Flags:              flags,
		ExtraData:          cfg.ExtraData,
	}

	names := make([]string, 0, len(cfg.Scales))
	for name := range cfg.Scales {
		names = append(names, name)
	}
	sort.Strings(names)
	ordered := append(append([]string{}, canonicalScaleOrder...), extras(names, canonicalScaleOrder)...)

	for _, name := range ordered {
		sc, ok := cfg.Scales[name]
		if !ok {
			loc.Scales = append(loc.Scales, Scale{})
			continue
		}
		loc.Scales = append(loc.Scales, Scale{
			SecondsPerUnit: sc.Scale,
			Singular:       sc.Singular,
			Plural:         sc.Plural,
			Terms:          sc.Terms,
		})
	}

	if len(cfg.Numerals) == 0 {
		return nil, ConfigError("no numerals configured")
	}
	numeralNames := make([]string, 0, len(cfg.Numerals))
	for name := range cfg.Numerals {
		numeralNames = append(numeralNames, name)
	}
	sort.Strings(numeralNames)
	for _, name := range numeralNames {
		nc := cfg.Numerals[name]
		kind, ok := numeralKindByName[nc.Type]
		if !ok {
			return nil, ConfigError("numeral " + name + " has unrecognized type " + nc.Type)
		}
		loc.Numerals = append(loc.Numerals, Numeral{
			Name:  name,
			Kind:  kind,
			Value: nc.Value,
			Terms: nc.Terms,
		})
	}

	loc.buildIndexes()

	anyEnabled := false
	for _, s := range loc.Scales {
		if s.Enabled() {
			anyEnabled = true
			break
		}
	}
	if !anyEnabled {
		return nil, ErrNoValidScales
	}

	return loc, nil
}

// MustLoad is Load, panicking on error. Intended for package-level
// locale construction from embedded data known to be well-formed.
func MustLoad(data []byte, settings Settings, flags FailureFlag) *Locale {
	loc, err := Load(data, settings, flags)
	if err != nil {
		panic(err)
	}
	return loc
}

func (l *Locale) buildIndexes() {
	l.scaleByTerm = make(map[string]*Scale)
	for i := range l.Scales {
		s := &l.Scales[i]
		if !s.Enabled() {
			continue
		}
		for _, term := range s.Terms {
			l.scaleByTerm[term] = s
		}
	}

	l.numeralByTerm = make(map[string]*Numeral)
	for i := range l.Numerals {
		n := &l.Numerals[i]
		for _, term := range n.Terms {
			l.numeralByTerm[term] = n
		}
	}

	l.specialSet = toSet(l.Specials)
	l.connectorSet = toSet(l.Connectors)
	l.segmentorSet = toSet(l.Segmentors)
	l.decimalSet = toSet(l.DecimalDelimiters)
	l.thousandSet = toSet(l.ThousandDelimiters)
	l.hhmmssSet = toSet(l.HHMMSSDelimiters)
	l.allowedSet = toSet(l.AllowedTerms)
}

// ScaleByTerm looks up the Scale whose term set contains text, or nil.
func (l *Locale) ScaleByTerm(text string) *Scale { return l.scaleByTerm[text] }

// NumeralByTerm looks up the Numeral whose term set contains text, or nil.
func (l *Locale) NumeralByTerm(text string) *Numeral { return l.numeralByTerm[text] }

func (l *Locale) IsSpecial(ch string) bool    { return l.specialSet[ch] }
func (l *Locale) IsConnector(ch string) bool  { return l.connectorSet[ch] }
func (l *Locale) IsSegmentor(ch string) bool  { return l.segmentorSet[ch] }
func (l *Locale) IsDecimal(ch string) bool    { return l.decimalSet[ch] }
func (l *Locale) IsThousand(ch string) bool   { return l.thousandSet[ch] }
func (l *Locale) IsHHMMSS(ch string) bool     { return l.hhmmssSet[ch] }
func (l *Locale) IsAllowedTerm(s string) bool { return l.allowedSet[s] }

// SecondScale returns the locale's second scale if enabled, otherwise
// the smallest enabled scale. Used by the finalizer's "assume seconds"
// rule when the second scale itself has been disabled.
func (l *Locale) SecondScale() Scale {
	for _, s := range l.Scales {
		if s.Enabled() && s.SecondsPerUnit == 1 {
			return s
		}
	}
	for _, s := range l.Scales {
		if s.Enabled() {
			return s
		}
	}
	return Scale{}
}

// NumScales returns the number of enabled scales, used to decide how
// many positions an HH:MM:SS clock group binds against.
func (l *Locale) NumScales() int {
	n := 0
	for _, s := range l.Scales {
		if s.Enabled() {
			n++
		}
	}
	return n
}

// WithFlags returns a shallow copy of the locale with a different
// strictness mask. The derived lookup indexes are shared with the
// original since they are never mutated after construction.
func (l *Locale) WithFlags(flags FailureFlag) *Locale {
	cp := *l
	cp.Flags = flags
	return &cp
}

// ScaleNamed looks up an enabled scale by its canonical key in the
// locale data (e.g. "second", "hour", shared by every locale) or by its
// locale-specific singular name.
func (l *Locale) ScaleNamed(name string) (Scale, bool) {
	for i, s := range l.Scales {
		if !s.Enabled() {
			continue
		}
		if s.Singular == name || (i < len(canonicalScaleOrder) && canonicalScaleOrder[i] == name) {
			return s, true
		}
	}
	return Scale{}, false
}

// EnabledScales returns only the enabled scales, in their configured
// order (smallest unit first for the canonical ten).
func (l *Locale) EnabledScales() []Scale {
	out := make([]Scale, 0, len(l.Scales))
	for _, s := range l.Scales {
		if s.Enabled() {
			out = append(out, s)
		}
	}
	return out
}

func overlap(a, b []string) bool {
	set := toSet(a)
	for _, x := range b {
		if set[x] {
			return true
		}
	}
	return false
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

func extras(all, canonical []string) []string {
	known := toSet(canonical)
	out := make([]string, 0)
	for _, name := range all {
		if !known[name] {
			out = append(out, name)
		}
	}
	return out
}
