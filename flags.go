package eyeutil

// Unsigned constrains the integer shapes the flag helpers accept.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Has reports whether any bit of mask is set in v. Field types decoded from
// flag words use this to expose named accessors without redefining the bit
// test each time.
func Has[T Unsigned](v, mask T) bool {
	return v&mask != 0
}

// HasBit reports whether bit n, counting from the least significant bit, is
// set in v.
func HasBit[T Unsigned](v T, n uint) bool {
	return v&(1<<n) != 0
}
