// Package writable writes fixed binary layouts, mirroring package parse
// value for value: each writer emits exactly the bytes its parse counterpart
// consumes, so a written stream parses back to the written values.
//
// Sequence writers emit elements back to back with no length prefix or
// separator. Framing is deliberately the caller's concern; a layout that
// needs a count stores it as an ordinary scalar field.
package writable

import (
	"fmt"
	"io"
)

// Writable is implemented by values that can write their binary form,
// guided by a context value of type D.
type Writable[D any] interface {
	WriteTo(w io.Writer, data D) error
}

// Func is the shape shared by the scalar writers: destination, context,
// then the value to write.
type Func[T, D any] func(w io.Writer, data D, v T) error

// Errorf mirrors fmt.Errorf with the package prefix applied.
func Errorf(format string, args ...any) error {
	return fmt.Errorf("writable: "+format, args...)
}

// Bytes writes b as it is. The io.Writer contract makes a short write an
// error, so a nil error means every byte went out.
func Bytes(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}

// Slice writes each element of elems in order using elem. Errors are wrapped
// with the index of the element that failed.
func Slice[T, D any](w io.Writer, data D, elems []T, elem Func[T, D]) error {
	for i, v := range elems {
		if err := elem(w, data, v); err != nil {
			return Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// Values writes each Writable in order, sharing the same context value.
func Values[D any, T Writable[D]](w io.Writer, data D, elems []T) error {
	for i, v := range elems {
		if err := v.WriteTo(w, data); err != nil {
			return Errorf("element %d: %w", i, err)
		}
	}
	return nil
}
