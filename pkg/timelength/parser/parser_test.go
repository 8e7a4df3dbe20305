package parser

import (
	"testing"

	"timelength/pkg/timelength/locale"
)

func english(t *testing.T, settings locale.Settings, flags locale.FailureFlag) *locale.Locale {
	t.Helper()
	return locale.English(settings, flags)
}

func TestParseWorkedExamples(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		settings    func(locale.Settings) locale.Settings
		strict      bool
		wantSuccess bool
		wantSeconds float64
		wantValid   int
		wantInvalid int
	}{
		{
			name:        "clock shorthand",
			content:     "1h5m30s",
			wantSuccess: true,
			wantSeconds: 3930,
			wantValid:   3,
		},
		{
			name:        "mixed words and ampersand ms",
			content:     "1 hour, 5 minutes, and 30 seconds & 7ms",
			wantSuccess: true,
			wantSeconds: 3930.007,
			wantValid:   4,
		},
		{
			name:        "hundred thousand multiplier chain",
			content:     "twenty-five hundred minutes and half of one million two hundred and fifty-six thousand seconds",
			wantSuccess: true,
			wantSeconds: 778000,
			wantValid:   2,
		},
		{
			name:        "hhmmss with fractional seconds",
			content:     "12:30:15.25",
			wantSuccess: true,
			wantSeconds: 45015.25,
			wantValid:   3,
		},
		{
			name:        "fraction of a scale",
			content:     "1/2 of a min",
			wantSuccess: true,
			wantSeconds: 30,
			wantValid:   1,
		},
		{
			name:        "fraction with zero denominator",
			content:     "1/0 sec",
			wantSuccess: false,
			wantSeconds: 0,
			wantValid:   0,
			wantInvalid: 2,
		},
		{
			name:        "strict trailing lonely value",
			content:     "5 seconds 3",
			strict:      true,
			wantSuccess: false,
			wantSeconds: 5,
			wantValid:   1,
			wantInvalid: 1,
		},
		{
			name:    "duplicate scales disallowed",
			content: "2 minutes and 3 minutes, 5 minutes",
			settings: func(s locale.Settings) locale.Settings {
				s.AllowDuplicateScales = false
				return s
			},
			wantSuccess: false,
			wantSeconds: 120,
			wantValid:   1,
			wantInvalid: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := locale.DefaultSettings()
			if tt.settings != nil {
				settings = tt.settings(settings)
			}
			mask := locale.FailureNone
			if tt.strict {
				mask = locale.FailureAll
			}
			loc := english(t, settings, mask)

			got := Parse(loc, tt.content)
			if got.Success != tt.wantSuccess {
				t.Errorf("Success = %v, want %v (invalid=%v)", got.Success, tt.wantSuccess, got.Invalid)
			}
			if got.Seconds != tt.wantSeconds {
				t.Errorf("Seconds = %v, want %v", got.Seconds, tt.wantSeconds)
			}
			if len(got.Valid) != tt.wantValid {
				t.Errorf("len(Valid) = %d, want %d (%+v)", len(got.Valid), tt.wantValid, got.Valid)
			}
			if len(got.Invalid) != tt.wantInvalid {
				t.Errorf("len(Invalid) = %d, want %d (%+v)", len(got.Invalid), tt.wantInvalid, got.Invalid)
			}
		})
	}
}

func TestParseDiacriticInsensitive(t *testing.T) {
	loc := english(t, locale.DefaultSettings(), locale.FailureNone)
	plain := Parse(loc, "3 hours")
	accented := Parse(loc, "3 hoürs")
	if accented.Seconds != plain.Seconds {
		t.Errorf("diacritic-bearing input diverged: got %v want %v", accented.Seconds, plain.Seconds)
	}
}

func TestParseUnusedOperator(t *testing.T) {
	loc := english(t, locale.DefaultSettings(), locale.FailureNone)

	got := Parse(loc, "2 of")
	if got.Success {
		t.Fatalf("expected failure, got success with seconds=%v", got.Seconds)
	}
	if len(got.Invalid) != 2 {
		t.Fatalf("expected 2 invalid entries, got %+v", got.Invalid)
	}
	if got.Invalid[1].Flags&locale.FailureUnusedOperator == 0 {
		t.Errorf("expected second invalid (source order, after the lonely 2) to carry UNUSED_OPERATOR, got %v", got.Invalid[1].Flags)
	}

	got = Parse(loc, "one half minutes of")
	if !got.Success {
		t.Fatalf("expected success, got failure with invalid=%+v", got.Invalid)
	}
	if len(got.Valid) != 1 || got.Valid[0].Value != 0.5 {
		t.Fatalf("expected a single (0.5, minute) pair, got %+v", got.Valid)
	}
	if len(got.Invalid) != 1 || got.Invalid[0].Flags&locale.FailureUnusedOperator == 0 {
		t.Fatalf("expected a lone UNUSED_OPERATOR invalid, got %+v", got.Invalid)
	}
}

func TestParseInvalidOrderMatchesSource(t *testing.T) {
	loc := english(t, locale.DefaultSettings(), locale.FailureNone)

	got := Parse(loc, "min 1.2.3")
	if got.Success {
		t.Fatalf("expected failure, got success")
	}
	if len(got.Invalid) != 2 {
		t.Fatalf("expected 2 invalid entries, got %+v", got.Invalid)
	}
	if got.Invalid[0].Flags&locale.FailureLonelyScale == 0 {
		t.Errorf("expected LONELY_SCALE first (source order), got %+v", got.Invalid[0])
	}
	if got.Invalid[1].Flags&locale.FailureMalformedDecimal == 0 {
		t.Errorf("expected MALFORMED_DECIMAL second (source order), got %+v", got.Invalid[1])
	}
}

func TestParseAmbiguousMultiplierKeepsUnmultipliedScale(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantFragment string
	}{
		{
			name:         "adjacent multipliers",
			content:      "half half twenty three min",
			wantFragment: "half half",
		},
		{
			name:         "multipliers separated by an operator",
			content:      "half of half twenty three min",
			wantFragment: "half of half",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := english(t, locale.DefaultSettings(), locale.FailureNone)

			got := Parse(loc, tt.content)
			if !got.Success {
				t.Fatalf("expected success, got failure with invalid=%+v", got.Invalid)
			}
			if got.Seconds != 1380 {
				t.Errorf("Seconds = %v, want 1380", got.Seconds)
			}
			if len(got.Valid) != 1 || got.Valid[0].Value != 23 {
				t.Fatalf("expected a single (23, minute) pair, got %+v", got.Valid)
			}
			var ambiguous *locale.FailureFlag
			for i, inv := range got.Invalid {
				if inv.Flags&locale.FailureAmbiguousMultiplier != 0 {
					ambiguous = &got.Invalid[i].Flags
					if got.Invalid[i].Fragment != tt.wantFragment {
						t.Errorf("AMBIGUOUS_MULTIPLIER fragment = %q, want %q", got.Invalid[i].Fragment, tt.wantFragment)
					}
				}
			}
			if ambiguous == nil {
				t.Errorf("expected an AMBIGUOUS_MULTIPLIER invalid entry, got %+v", got.Invalid)
			}
		})
	}
}
