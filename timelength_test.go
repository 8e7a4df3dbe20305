package timelength

import (
	"testing"

	"timelength/pkg/timelength/locale"
)

func TestNewParsesOnConstruction(t *testing.T) {
	loc := locale.English(locale.DefaultSettings(), locale.FailureNone)
	tl := New("1 hour, 5 minutes, and 30 seconds", loc)
	if !tl.Result.Success {
		t.Fatalf("expected success, got invalid=%+v", tl.Result.Invalid)
	}
	if tl.Result.Seconds != 3930 {
		t.Errorf("Seconds = %v, want 3930", tl.Result.Seconds)
	}
}

func TestNewStrictFailsOnTrailingLonelyValue(t *testing.T) {
	loc := locale.English(locale.DefaultSettings(), locale.FailureNone)
	tl := NewStrict("5 seconds 3", loc)
	if tl.Result.Success {
		t.Fatalf("expected strict failure, got success")
	}
	if tl.Result.Seconds != 5 {
		t.Errorf("Seconds = %v, want 5", tl.Result.Seconds)
	}
}

func TestConversionHelpers(t *testing.T) {
	loc := locale.English(locale.DefaultSettings(), locale.FailureNone)
	tl := New("2 hours", loc)

	minutes, err := tl.ToMinutes(2)
	if err != nil {
		t.Fatalf("ToMinutes: %v", err)
	}
	if minutes != 120 {
		t.Errorf("ToMinutes() = %v, want 120", minutes)
	}

	seconds, err := tl.ToSeconds(0)
	if err != nil {
		t.Fatalf("ToSeconds: %v", err)
	}
	if seconds != 7200 {
		t.Errorf("ToSeconds() = %v, want 7200", seconds)
	}
}

func TestConversionRejectsDisabledScale(t *testing.T) {
	loc := locale.English(locale.DefaultSettings(), locale.FailureNone)
	tl := New("2 hours", loc)
	if _, err := tl.toScale("fortnight", 0); err == nil {
		t.Fatal("expected ErrDisabledScale for an unconfigured scale name")
	}
}

func TestGuessPicksMatchingLocale(t *testing.T) {
	tl, err := Guess("2 horas y treinta minutos", locale.DefaultSettings())
	if err != nil {
		t.Fatalf("Guess: %v", err)
	}
	if tl.Locale.Name != "spanish" {
		t.Errorf("Locale.Name = %q, want spanish", tl.Locale.Name)
	}
	if tl.Result.Seconds != 9000 {
		t.Errorf("Seconds = %v, want 9000", tl.Result.Seconds)
	}
}

func TestGuessReturnsErrorWhenNoLocaleMatches(t *testing.T) {
	_, err := Guess("###???", locale.DefaultSettings())
	if err != ErrNoLocaleMatched {
		t.Fatalf("err = %v, want ErrNoLocaleMatched", err)
	}
}
