package game

import (
	"errors"
	"fmt"
)

// ErrNoGamut is returned when a tonality without a gamut row is used to
// build a session. Only members of Tonalities are selectable.
var ErrNoGamut = errors.New("no gamut for tonality")

// ParseError reports a string that is not a valid pitch, note, tonality
// or exercise number.
type ParseError struct {
	Kind  string
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse %s %q", e.Kind, e.Input)
}
