// Package parse reads fixed binary layouts from seekable streams.
//
// Every operation takes the stream first and a context value second; for the
// scalar parsers the context is the byte order. Operations share one failure
// convention: a clean end of input is io.EOF, an end of input in the middle
// of a value is io.ErrUnexpectedEOF, and data that is present but wrong
// fails with one of this package's sentinel errors. Stream I/O errors pass
// through untouched.
//
// Func adapts any parsing function to the Parser contract, so composed
// layouts and the primitives here can be mixed freely:
//
//	counts, err := parse.Many(region, eyeutil.Little, parse.Uint16)
package parse

import (
	"fmt"
	"io"

	"github.com/MinusGix/eyeutil/stream"
)

// Parser reads one value of type T from a stream, guided by a context value
// of type D. Implementations advance the stream exactly past the bytes that
// make up the value, and only those.
type Parser[T, D any] interface {
	Parse(f io.ReadSeeker, data D) (T, error)
}

// Func adapts an ordinary function to the Parser contract, in the manner of
// http.HandlerFunc. The package's own parsing functions all fit this shape.
type Func[T, D any] func(f io.ReadSeeker, data D) (T, error)

// Parse calls fn.
func (fn Func[T, D]) Parse(f io.ReadSeeker, data D) (T, error) {
	return fn(f, data)
}

// Single reads exactly one byte. An empty stream reports io.EOF.
func Single(f io.ReadSeeker) (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(f, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Take reads exactly n bytes into a fresh slice. A stream that ends before
// delivering them reports io.EOF when nothing was read and
// io.ErrUnexpectedEOF otherwise.
func Take(f io.ReadSeeker, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// TakeUntil reads bytes until the first occurrence of terminator and leaves
// the stream positioned just past it. The terminator is part of the result
// only when include is set. A stream that ends before the terminator reports
// io.EOF when nothing was read and io.ErrUnexpectedEOF otherwise.
func TakeUntil(f io.ReadSeeker, terminator byte, include bool) ([]byte, error) {
	var out []byte
	var b [1]byte
	for {
		if _, err := io.ReadFull(f, b[:]); err != nil {
			if err == io.EOF && len(out) > 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		if b[0] == terminator {
			if include {
				out = append(out, terminator)
			}
			return out, nil
		}
		out = append(out, b[0])
	}
}

// Tag consumes len(expect) bytes and verifies they equal expect. The full
// length is consumed even when the first difference sits early, so after a
// failed match the stream is positioned exactly past the expected sequence
// and the caller can resynchronize from there. The error wraps
// ErrInvalidByte and reports the first differing index.
func Tag(f io.ReadSeeker, expect []byte) error {
	got := make([]byte, len(expect))
	if _, err := io.ReadFull(f, got); err != nil {
		return err
	}
	for i := range expect {
		if got[i] != expect[i] {
			return fmt.Errorf("%w: index %d, got %#02x, want %#02x",
				ErrInvalidByte, i, got[i], expect[i])
		}
	}
	return nil
}

// Many applies step repeatedly until the stream's region is exhausted and
// collects the results. The region length is measured once, up front, so
// steps that seek around do not confuse the loop. Three step behaviors fail
// the whole call: returning an error, finishing past the region end
// (ErrOverrun), and consuming nothing, which wraps io.ErrNoProgress instead
// of looping forever.
func Many[T, D any](f io.ReadSeeker, data D, step Func[T, D]) ([]T, error) {
	length, err := stream.Length(f)
	if err != nil {
		return nil, err
	}
	var out []T
	prev := int64(-1)
	for {
		pos, err := stream.Position(f)
		if err != nil {
			return nil, err
		}
		if pos > length {
			return nil, fmt.Errorf("%w: position %d, region length %d", ErrOverrun, pos, length)
		}
		if pos == length {
			return out, nil
		}
		if pos == prev {
			return nil, Errorf("step consumed no bytes at position %d: %w", pos, io.ErrNoProgress)
		}
		prev = pos

		v, err := step(f, data)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

// ManyParse is Many over a Parser.
func ManyParse[T, D any](f io.ReadSeeker, data D, p Parser[T, D]) ([]T, error) {
	return Many(f, data, p.Parse)
}

// Repeat applies step exactly count times and collects the results.
func Repeat[T, D any](f io.ReadSeeker, data D, count int, step Func[T, D]) ([]T, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	out := make([]T, 0, count)
	for i := 0; i < count; i++ {
		v, err := step(f, data)
		if err != nil {
			return nil, Errorf("element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Peek applies step and then restores the stream to where it was, whether
// the step succeeded or failed. If the restoring seek itself fails, that
// error is returned instead of the step's result and the position is
// undefined.
func Peek[T, D any](f io.ReadSeeker, data D, step Func[T, D]) (T, error) {
	var zero T
	pos, err := stream.Position(f)
	if err != nil {
		return zero, err
	}
	v, perr := step(f, data)
	if _, serr := f.Seek(pos, io.SeekStart); serr != nil {
		return zero, serr
	}
	if perr != nil {
		return zero, perr
	}
	return v, nil
}

// ExpectEOF fails with ErrExpectedEOF while bytes remain before the end of
// the stream. It does not consume anything.
func ExpectEOF(f io.ReadSeeker) error {
	pos, err := stream.Position(f)
	if err != nil {
		return err
	}
	length, err := stream.Length(f)
	if err != nil {
		return err
	}
	if pos != length {
		return fmt.Errorf("%w: %d bytes remain", ErrExpectedEOF, length-pos)
	}
	return nil
}
