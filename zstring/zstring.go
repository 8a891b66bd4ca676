// Package zstring provides a null-terminated byte string that plugs into the
// parse, writable and datasize contracts. It is a byte string rather than a
// text type: no encoding is assumed, and the terminator is never stored, only
// read and written at the boundary.
package zstring

import (
	"bytes"
	"io"

	"github.com/MinusGix/eyeutil"
	"github.com/MinusGix/eyeutil/parse"
	"github.com/MinusGix/eyeutil/writable"
)

// Terminator ends every serialized string.
const Terminator byte = 0x00

// ZString holds the content bytes of a null-terminated string, without the
// terminator. Conversions from []byte alias the given slice and are not
// checked for embedded terminators; a string containing one serializes into
// something that parses back shorter.
type ZString []byte

// FromString copies s into a ZString.
func FromString(s string) ZString {
	return ZString(s)
}

// Parse reads content bytes up to the terminator, which is consumed and
// excluded. The order is accepted so ZString composes with order-driven
// pipelines, and ignored. A stream that ends before a terminator fails with
// io.EOF when nothing was read and io.ErrUnexpectedEOF otherwise.
func Parse(f io.ReadSeeker, ord eyeutil.Order) (ZString, error) {
	data, err := parse.TakeUntil(f, Terminator, false)
	if err != nil {
		return nil, err
	}
	return ZString(data), nil
}

// WriteTo writes the content followed by the terminator.
func (z ZString) WriteTo(w io.Writer, ord eyeutil.Order) error {
	if err := writable.Bytes(w, z); err != nil {
		return err
	}
	return writable.Uint8(w, ord, Terminator)
}

// DataSize counts the content plus the terminator.
func (z ZString) DataSize(ord eyeutil.Order) int64 {
	return int64(len(z)) + 1
}

// Len returns the number of content bytes, excluding the terminator.
func (z ZString) Len() int { return len(z) }

// IsEmpty reports whether there are no content bytes.
func (z ZString) IsEmpty() bool { return len(z) == 0 }

// Bytes returns the content as a plain byte slice. The backing array is
// shared, so writes through it are visible to the ZString.
func (z ZString) Bytes() []byte { return z }

// String returns the content bytes as a string, terminator excluded.
func (z ZString) String() string { return string(z) }

// Equal reports whether both strings hold the same content bytes.
func (z ZString) Equal(other ZString) bool { return bytes.Equal(z, other) }
