// Package datasize reports the exact byte footprint values occupy in their
// binary form, for sizing buffers and regions before writing. Scalar widths
// are compile-time constants; the Sizer contract covers values whose size
// depends on their content.
package datasize

// Widths of the scalar layouts, in bytes. These match what the parse and
// writable packages consume and emit for the same types.
const (
	Uint8   = 1
	Int8    = 1
	Uint16  = 2
	Int16   = 2
	Uint32  = 4
	Int32   = 4
	Uint64  = 8
	Int64   = 8
	Uint128 = 16
	Int128  = 16
	Float32 = 4
	Float64 = 8
)

// Sizer is implemented by values that know the byte count of their binary
// form, guided by a context value of type D. The reported size must equal
// exactly what the value's writer emits.
type Sizer[D any] interface {
	DataSize(data D) int64
}

// Slice sums the sizes of all elements, sharing the same context value.
func Slice[D any, T Sizer[D]](elems []T, data D) int64 {
	var total int64
	for _, v := range elems {
		total += v.DataSize(data)
	}
	return total
}

// Uniform returns the footprint of count elements of a fixed width.
func Uniform(count int, width int64) int64 {
	return int64(count) * width
}

// Bytes returns the footprint of raw bytes written as they are.
func Bytes(b []byte) int64 {
	return int64(len(b))
}
