package timelength

import (
	"math"

	"github.com/pkg/errors"
)

// ErrDisabledScale is returned by a unit-conversion helper when the
// requested scale is not enabled in the locale the result was parsed
// against.
var ErrDisabledScale = errors.New("timelength: scale disabled in locale")

func round(v float64, precision int) float64 {
	factor := math.Pow(10, float64(precision))
	return math.Round(v*factor) / factor
}

func (t *TimeLength) toScale(name string, precision int) (float64, error) {
	sc, ok := t.Locale.ScaleNamed(name)
	if !ok {
		return 0, errors.Wrap(ErrDisabledScale, name)
	}
	return round(t.Result.Seconds/sc.SecondsPerUnit, precision), nil
}

// ToMilliseconds converts the parsed total to milliseconds, rounded to precision digits.
func (t *TimeLength) ToMilliseconds(precision int) (float64, error) { return t.toScale("millisecond", precision) }

// ToSeconds converts the parsed total to seconds, rounded to precision digits.
func (t *TimeLength) ToSeconds(precision int) (float64, error) { return t.toScale("second", precision) }

// ToMinutes converts the parsed total to minutes, rounded to precision digits.
func (t *TimeLength) ToMinutes(precision int) (float64, error) { return t.toScale("minute", precision) }

// ToHours converts the parsed total to hours, rounded to precision digits.
func (t *TimeLength) ToHours(precision int) (float64, error) { return t.toScale("hour", precision) }

// ToDays converts the parsed total to days, rounded to precision digits.
func (t *TimeLength) ToDays(precision int) (float64, error) { return t.toScale("day", precision) }

// ToWeeks converts the parsed total to weeks, rounded to precision digits.
func (t *TimeLength) ToWeeks(precision int) (float64, error) { return t.toScale("week", precision) }

// ToMonths converts the parsed total to months (30.5-day months), rounded to precision digits.
func (t *TimeLength) ToMonths(precision int) (float64, error) { return t.toScale("month", precision) }

// ToYears converts the parsed total to years (365-day years), rounded to precision digits.
func (t *TimeLength) ToYears(precision int) (float64, error) { return t.toScale("year", precision) }

// ToDecades converts the parsed total to decades, rounded to precision digits.
func (t *TimeLength) ToDecades(precision int) (float64, error) { return t.toScale("decade", precision) }

// ToCenturies converts the parsed total to centuries, rounded to precision digits.
func (t *TimeLength) ToCenturies(precision int) (float64, error) { return t.toScale("century", precision) }
