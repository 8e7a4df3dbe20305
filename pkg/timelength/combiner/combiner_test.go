package combiner

import (
	"testing"

	"timelength/pkg/timelength/locale"
	"timelength/pkg/timelength/scanner"
)

func run(t *testing.T, content string) ([]float64, []locale.FailureFlag, float64) {
	t.Helper()
	return runWith(t, locale.DefaultSettings(), content)
}

func runWith(t *testing.T, settings locale.Settings, content string) ([]float64, []locale.FailureFlag, float64) {
	t.Helper()
	loc := locale.English(settings, locale.FailureNone)
	toks, scanInvalid := scanner.Scan(loc)(content)
	valid, invalid, seconds := Run(loc, loc.Settings, toks)
	if len(scanInvalid) != 0 {
		t.Fatalf("unexpected scanner invalids for %q: %+v", content, scanInvalid)
	}
	var values []float64
	for _, v := range valid {
		values = append(values, v.Value)
	}
	var flags []locale.FailureFlag
	for _, inv := range invalid {
		flags = append(flags, inv.Flags)
	}
	return values, flags, seconds
}

func TestCombineDigitTeenTenConcatenation(t *testing.T) {
	values, flags, seconds := run(t, "twenty three minutes")
	if len(flags) != 0 {
		t.Fatalf("unexpected invalid flags: %v", flags)
	}
	if len(values) != 1 || values[0] != 23 {
		t.Fatalf("expected a single value 23, got %v", values)
	}
	if seconds != 23*60 {
		t.Errorf("seconds = %v, want %v", seconds, 23*60)
	}
}

func TestCombineHundredAsMultiplier(t *testing.T) {
	values, _, _ := run(t, "three hundred seconds")
	if len(values) != 1 || values[0] != 300 {
		t.Fatalf("expected 300, got %v", values)
	}
}

func TestCombineLeadingScaleIsLonely(t *testing.T) {
	_, flags, _ := run(t, "minutes 5")
	found := false
	for _, f := range flags {
		if f&locale.FailureLonelyScale != 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected LONELY_SCALE, got flags=%v", flags)
	}
}

func TestCombineDuplicateScaleFlagged(t *testing.T) {
	settings := locale.DefaultSettings()
	settings.AllowDuplicateScales = false
	values, flags, seconds := runWith(t, settings, "2 minutes and 3 minutes")
	if len(values) != 1 || values[0] != 2 {
		t.Fatalf("expected only the first minutes binding to survive, got %v", values)
	}
	found := false
	for _, f := range flags {
		if f&locale.FailureDuplicateScale != 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected DUPLICATE_SCALE, got flags=%v", flags)
	}
	if seconds != 120 {
		t.Errorf("seconds = %v, want 120", seconds)
	}
}

func TestCombineModifierAsValue(t *testing.T) {
	values, flags, seconds := run(t, "half an hour")
	if len(flags) != 0 {
		t.Fatalf("unexpected invalid flags: %v", flags)
	}
	if len(values) != 1 || values[0] != 0.5 {
		t.Fatalf("expected 0.5, got %v", values)
	}
	if seconds != 1800 {
		t.Errorf("seconds = %v, want 1800", seconds)
	}
}

func TestCombineOperatorFoldsFlankingNumbers(t *testing.T) {
	values, flags, seconds := run(t, "1/2 of a minute")
	if len(flags) != 0 {
		t.Fatalf("unexpected invalid flags: %v", flags)
	}
	if len(values) != 1 || values[0] != 0.5 {
		t.Fatalf("expected 0.5, got %v", values)
	}
	if seconds != 30 {
		t.Errorf("seconds = %v, want 30", seconds)
	}
}
