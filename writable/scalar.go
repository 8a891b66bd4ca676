package writable

import (
	"io"
	"math"

	"github.com/MinusGix/eyeutil"
)

// Uint8 writes one unsigned byte. The order is accepted for signature
// uniformity and ignored, as a single byte has no order.
func Uint8(w io.Writer, ord eyeutil.Order, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

// Int8 writes one signed byte. The order is ignored.
func Int8(w io.Writer, ord eyeutil.Order, v int8) error {
	return Uint8(w, ord, uint8(v))
}

// Uint16 writes two bytes in ord's order.
func Uint16(w io.Writer, ord eyeutil.Order, v uint16) error {
	var b [2]byte
	ord.ByteOrder().PutUint16(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// Int16 writes two bytes in ord's order.
func Int16(w io.Writer, ord eyeutil.Order, v int16) error {
	return Uint16(w, ord, uint16(v))
}

// Uint32 writes four bytes in ord's order.
func Uint32(w io.Writer, ord eyeutil.Order, v uint32) error {
	var b [4]byte
	ord.ByteOrder().PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// Int32 writes four bytes in ord's order.
func Int32(w io.Writer, ord eyeutil.Order, v int32) error {
	return Uint32(w, ord, uint32(v))
}

// Uint64 writes eight bytes in ord's order.
func Uint64(w io.Writer, ord eyeutil.Order, v uint64) error {
	var b [8]byte
	ord.ByteOrder().PutUint64(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// Int64 writes eight bytes in ord's order.
func Int64(w io.Writer, ord eyeutil.Order, v int64) error {
	return Uint64(w, ord, uint64(v))
}

// Uint128 writes sixteen bytes in ord's order.
func Uint128(w io.Writer, ord eyeutil.Order, v eyeutil.Uint128) error {
	var b [16]byte
	ord.PutUint128(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// Int128 writes sixteen bytes in ord's order.
func Int128(w io.Writer, ord eyeutil.Order, v eyeutil.Int128) error {
	return Uint128(w, ord, v.ToUint128())
}

// Float32 writes four bytes of IEEE 754 bits in ord's order.
func Float32(w io.Writer, ord eyeutil.Order, v float32) error {
	return Uint32(w, ord, math.Float32bits(v))
}

// Float64 writes eight bytes of IEEE 754 bits in ord's order.
func Float64(w io.Writer, ord eyeutil.Order, v float64) error {
	return Uint64(w, ord, math.Float64bits(v))
}
