package parse

import (
	"errors"
	"fmt"
)

// Sentinel errors for match failures. Stream problems are not restated here:
// I/O errors pass through as returned by the stream, and end of input
// surfaces as io.EOF at a clean boundary or io.ErrUnexpectedEOF inside a
// value, following io.ReadFull.
var (
	// ErrInvalidByte signals a byte that does not match an expected sequence.
	ErrInvalidByte = errors.New("parse: byte does not match expected sequence")
	// ErrExpectedEOF signals leftover bytes where the layout says the input ends.
	ErrExpectedEOF = errors.New("parse: expected end of input")
	// ErrOverrun signals an element parser that read past the end of its region.
	ErrOverrun = errors.New("parse: read past end of region")
	// ErrInvalidCount signals a negative element count.
	ErrInvalidCount = errors.New("parse: invalid element count")
)

// Errorf mirrors fmt.Errorf with the package prefix applied.
func Errorf(format string, args ...any) error {
	return fmt.Errorf("parse: "+format, args...)
}
