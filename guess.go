package timelength

import (
	"github.com/pkg/errors"

	"timelength/pkg/timelength/locale"
)

// ErrNoLocaleMatched is returned by Guess when content fails to parse
// successfully under every registered locale.
var ErrNoLocaleMatched = errors.New("timelength: no locale parsed content successfully")

// Guess tries content against each built-in locale, first in strict
// mode and then in tolerant mode, and returns the first successful
// parse. If none succeed, it returns the last attempted TimeLength
// alongside ErrNoLocaleMatched so the caller can still inspect why
// parsing failed.
func Guess(content string, settings locale.Settings) (*TimeLength, error) {
	var last *TimeLength
	for _, strict := range []bool{true, false} {
		for _, name := range []string{"english", "spanish"} {
			ctor := locale.Registry()[name]
			loc := ctor(settings, locale.FailureNone)
			tl := New
			if strict {
				tl = NewStrict
			}
			last = tl(content, loc)
			if last.Result.Success {
				return last, nil
			}
		}
	}
	return last, ErrNoLocaleMatched
}
