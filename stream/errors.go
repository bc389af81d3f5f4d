package stream

import (
	"fmt"

	"github.com/npillmayer/pcomb"
)

// Error is the error type created by the streams of this package.
type Error struct {
	Source string    // name of the input, may be empty
	Pos    pcomb.Pos // position of the stream's cursor
	Msg    string
}

// Error renders an error as "source:line:column: message", leaving out
// unknown parts.
func (e *Error) Error() string {
	switch {
	case e.Pos.IsUnknown() && e.Source == "":
		return e.Msg
	case e.Pos.IsUnknown():
		return fmt.Sprintf("%s: %s", e.Source, e.Msg)
	case e.Source == "":
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s:%s: %s", e.Source, e.Pos, e.Msg)
}
