// Package eyeutil is a toolkit for reading and writing fixed binary layouts
// from arbitrary seekable byte streams.
//
// The root package holds the small value types shared by the sub-packages:
// the byte-order selector threaded through every multi-byte codec operation,
// the 128-bit integer carriers, the invalid-enumeration error kind, and a
// pair of bitflag accessors.
//
// The interesting machinery lives below:
//
//   - stream:   position/length utilities and Slice, a bounded view over a
//     larger stream that can never read or seek outside its window
//   - parse:    the parse side of the codec contract, scalar parsers and
//     combinators for repeated and terminated fields
//   - writable: the write side of the codec contract
//   - datasize: byte-footprint estimation
//   - zstring:  null-terminated byte strings built on the primitives above
//
// A typical use parses an embedded sub-record by slicing a window over the
// containing stream and draining it:
//
//	sl, err := stream.At(f, int64(header.Size))
//	if err != nil {
//		return err
//	}
//	entries, err := parse.Many(sl, eyeutil.Little, parseEntry)
package eyeutil
