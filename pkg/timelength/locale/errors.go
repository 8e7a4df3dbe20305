package locale

import "github.com/pkg/errors"

// ErrConfigMalformed is returned when a locale's raw configuration is
// missing a required key or has overlapping delimiter sets.
var ErrConfigMalformed = errors.New("locale: malformed configuration")

// ErrNoValidScales is returned when a locale has no enabled scales at
// all, making it useless for parsing or conversion.
var ErrNoValidScales = errors.New("locale: no enabled scales configured")

// ConfigError wraps ErrConfigMalformed with the offending key or
// condition, the way a loader reports a bad config file.
func ConfigError(reason string) error {
	return errors.Wrap(ErrConfigMalformed, reason)
}
