package eyeutil

import (
	"encoding/binary"
	"fmt"
)

// Uint128 is an unsigned 128-bit value held as two 64-bit halves, so 16-byte
// fields can round-trip through the codec contract without a big.Int detour.
// Arithmetic is out of scope; only layout matters here.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// String renders the value as fixed-width hexadecimal.
func (v Uint128) String() string {
	return fmt.Sprintf("0x%016x%016x", v.Hi, v.Lo)
}

// IsZero reports whether both halves are zero.
func (v Uint128) IsZero() bool {
	return v.Hi == 0 && v.Lo == 0
}

// ToInt128 reinterprets the bits as a signed value.
func (v Uint128) ToInt128() Int128 {
	return Int128{Hi: int64(v.Hi), Lo: v.Lo}
}

// Uint128 decodes sixteen bytes from b in o's order, extending the
// binary.ByteOrder accessors one width up. It panics when b is shorter than
// sixteen bytes.
func (o Order) Uint128(b []byte) Uint128 {
	_ = b[15]
	if o == Big {
		return Uint128{
			Hi: binary.BigEndian.Uint64(b[0:8]),
			Lo: binary.BigEndian.Uint64(b[8:16]),
		}
	}
	return Uint128{
		Lo: binary.LittleEndian.Uint64(b[0:8]),
		Hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

// PutUint128 encodes v into the first sixteen bytes of b in o's order. It
// panics when b is shorter than sixteen bytes.
func (o Order) PutUint128(b []byte, v Uint128) {
	_ = b[15]
	if o == Big {
		binary.BigEndian.PutUint64(b[0:8], v.Hi)
		binary.BigEndian.PutUint64(b[8:16], v.Lo)
		return
	}
	binary.LittleEndian.PutUint64(b[0:8], v.Lo)
	binary.LittleEndian.PutUint64(b[8:16], v.Hi)
}

// Int128 is the signed counterpart of Uint128. The sign bit lives in the top
// bit of the high half.
type Int128 struct {
	Hi int64
	Lo uint64
}

// String renders the value as fixed-width hexadecimal of its raw halves.
func (v Int128) String() string {
	return fmt.Sprintf("0x%016x%016x", uint64(v.Hi), v.Lo)
}

// Sign returns -1 for negative values, 0 for zero and 1 for positive values.
func (v Int128) Sign() int {
	switch {
	case v.Hi < 0:
		return -1
	case v.Hi == 0 && v.Lo == 0:
		return 0
	default:
		return 1
	}
}

// ToUint128 reinterprets the bits as an unsigned value.
func (v Int128) ToUint128() Uint128 {
	return Uint128{Hi: uint64(v.Hi), Lo: v.Lo}
}
