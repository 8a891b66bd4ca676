package parse

import (
	"io"
	"math"

	"github.com/MinusGix/eyeutil"
)

// Uint8 reads one unsigned byte. The order is accepted for signature
// uniformity and ignored, as a single byte has no order.
func Uint8(f io.ReadSeeker, ord eyeutil.Order) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(f, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Int8 reads one signed byte. The order is ignored.
func Int8(f io.ReadSeeker, ord eyeutil.Order) (int8, error) {
	v, err := Uint8(f, ord)
	return int8(v), err
}

// Uint16 reads two bytes in ord's order.
func Uint16(f io.ReadSeeker, ord eyeutil.Order) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(f, b[:]); err != nil {
		return 0, err
	}
	return ord.ByteOrder().Uint16(b[:]), nil
}

// Int16 reads two bytes in ord's order.
func Int16(f io.ReadSeeker, ord eyeutil.Order) (int16, error) {
	v, err := Uint16(f, ord)
	return int16(v), err
}

// Uint32 reads four bytes in ord's order.
func Uint32(f io.ReadSeeker, ord eyeutil.Order) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(f, b[:]); err != nil {
		return 0, err
	}
	return ord.ByteOrder().Uint32(b[:]), nil
}

// Int32 reads four bytes in ord's order.
func Int32(f io.ReadSeeker, ord eyeutil.Order) (int32, error) {
	v, err := Uint32(f, ord)
	return int32(v), err
}

// Uint64 reads eight bytes in ord's order.
func Uint64(f io.ReadSeeker, ord eyeutil.Order) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(f, b[:]); err != nil {
		return 0, err
	}
	return ord.ByteOrder().Uint64(b[:]), nil
}

// Int64 reads eight bytes in ord's order.
func Int64(f io.ReadSeeker, ord eyeutil.Order) (int64, error) {
	v, err := Uint64(f, ord)
	return int64(v), err
}

// Uint128 reads sixteen bytes in ord's order.
func Uint128(f io.ReadSeeker, ord eyeutil.Order) (eyeutil.Uint128, error) {
	var b [16]byte
	if _, err := io.ReadFull(f, b[:]); err != nil {
		return eyeutil.Uint128{}, err
	}
	return ord.Uint128(b[:]), nil
}

// Int128 reads sixteen bytes in ord's order.
func Int128(f io.ReadSeeker, ord eyeutil.Order) (eyeutil.Int128, error) {
	v, err := Uint128(f, ord)
	return v.ToInt128(), err
}

// Float32 reads four bytes in ord's order as IEEE 754 bits.
func Float32(f io.ReadSeeker, ord eyeutil.Order) (float32, error) {
	v, err := Uint32(f, ord)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// Float64 reads eight bytes in ord's order as IEEE 754 bits.
func Float64(f io.ReadSeeker, ord eyeutil.Order) (float64, error) {
	v, err := Uint64(f, ord)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
