package stream

import (
	"errors"
	"fmt"
	"io"
	"math"
)

var (
	// ErrInvalidRange signals a window whose start is negative or past its end,
	// or a negative window length.
	ErrInvalidRange = errors.New("stream: invalid slice range")
	// ErrOutsideRange signals constructing a slice around a stream whose
	// position is not inside the requested window.
	ErrOutsideRange = errors.New("stream: stream position outside slice range")
	// ErrInvalidSeek signals seek arithmetic that overflowed or targeted a
	// negative position, or an unknown whence value.
	ErrInvalidSeek = errors.New("stream: invalid seek")
)

// Range is a half-open span [Start, End) of absolute byte offsets.
type Range struct {
	Start int64
	End   int64
}

// Len returns the number of offsets the span covers.
func (r Range) Len() int64 { return r.End - r.Start }

// Contains reports whether the absolute offset off lies within the span.
func (r Range) Contains(off int64) bool { return off >= r.Start && off < r.End }

// Slice is a view of a window of an underlying stream. Reads are capped at
// the window boundary and report end of stream there, seeks are interpreted
// relative to the window, and positions are reported relative to its start,
// so parsing code can treat an embedded region of a larger stream as if it
// were the whole stream.
//
// A Slice owns its stream's position for as long as it is in use: moving the
// wrapped stream directly breaks the window accounting. It never moves the
// position on its own, only in response to Read and Seek.
type Slice[F io.ReadSeeker] struct {
	inner F
	rng   Range
}

// New wraps inner in a Slice restricted to r. The stream's current position
// must already lie within the window; sitting exactly on r.End is allowed
// and is the ordinary at-end state. The position is not moved.
func New[F io.ReadSeeker](inner F, r Range) (*Slice[F], error) {
	if r.Start < 0 || r.Start > r.End {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, r.Start, r.End)
	}
	pos, err := Position(inner)
	if err != nil {
		return nil, err
	}
	if pos < r.Start || pos > r.End {
		return nil, fmt.Errorf("%w: position %d, window [%d, %d)", ErrOutsideRange, pos, r.Start, r.End)
	}
	return NewUnchecked(inner, r), nil
}

// NewUnchecked wraps inner without validating it against r. The caller
// asserts that r is well formed and that the stream's position lies within
// it; a Slice built from a violated assertion misbehaves on use rather than
// failing cleanly here.
func NewUnchecked[F io.ReadSeeker](inner F, r Range) *Slice[F] {
	return &Slice[F]{inner: inner, rng: r}
}

// At builds a Slice covering the next length bytes of inner, beginning at
// its current position. The end offset is computed with saturating addition,
// so a window near the top of the offset space pins to the maximum offset
// instead of overflowing.
func At[F io.ReadSeeker](inner F, length int64) (*Slice[F], error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidRange, length)
	}
	pos, err := Position(inner)
	if err != nil {
		return nil, err
	}
	return NewUnchecked(inner, Range{Start: pos, End: saturatingAdd(pos, length)}), nil
}

// Inner returns the wrapped stream. Reading or seeking it directly while the
// Slice is still in use desynchronizes the window accounting; the caller
// takes on that responsibility. To unwrap permanently, keep the returned
// stream and drop the Slice.
func (s *Slice[F]) Inner() F { return s.inner }

// Range returns the window of absolute offsets the Slice exposes.
func (s *Slice[F]) Range() Range { return s.rng }

// Start returns the window's first absolute offset.
func (s *Slice[F]) Start() int64 { return s.rng.Start }

// End returns the window's exclusive end offset.
func (s *Slice[F]) End() int64 { return s.rng.End }

// Last returns the window's last contained offset, one before End. For an
// empty window it lies before Start.
func (s *Slice[F]) Last() int64 { return s.rng.End - 1 }

// Contains reports whether the absolute offset off lies within the window.
func (s *Slice[F]) Contains(off int64) bool { return s.rng.Contains(off) }

// DistanceToEnd returns how many bytes separate the absolute offset abs from
// the window's end.
func (s *Slice[F]) DistanceToEnd(abs int64) int64 { return s.rng.End - abs }

// AbsolutePosition returns the wrapped stream's own position. It queries the
// stream directly rather than going through the Slice's seek handling.
func (s *Slice[F]) AbsolutePosition() (int64, error) {
	return Position(s.inner)
}

// Position returns the stream position relative to the window start.
func (s *Slice[F]) Position() (int64, error) {
	abs, err := s.AbsolutePosition()
	if err != nil {
		return 0, err
	}
	return abs - s.rng.Start, nil
}

// AtEnd reports whether the position sits exactly on the window's end.
func (s *Slice[F]) AtEnd() (bool, error) {
	abs, err := s.AbsolutePosition()
	if err != nil {
		return false, err
	}
	return abs == s.rng.End, nil
}

// Length reports the window's length in bytes, measured with the same
// seek-to-end-and-restore idiom as Length on a plain stream. The result is
// clamped to the configured window size, so an underlying stream that
// physically extends past the window does not inflate it.
func (s *Slice[F]) Length() (int64, error) {
	pos, err := s.Position()
	if err != nil {
		return 0, err
	}
	length, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if pos != length {
		if _, err := s.Seek(pos, io.SeekStart); err != nil {
			return 0, err
		}
	}
	if size := s.rng.Len(); length > size {
		length = size
	}
	return length, nil
}

// Read fills p with bytes from the window. At the window end it returns
// (0, io.EOF). Otherwise the request is capped to the bytes remaining before
// the boundary, so the underlying stream is never asked for bytes outside
// the window; a short read is possible even when more of the window remains,
// exactly as with any other stream.
func (s *Slice[F]) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	abs, err := s.AbsolutePosition()
	if err != nil {
		return 0, err
	}
	if abs >= s.rng.End {
		return 0, io.EOF
	}
	if rest := s.DistanceToEnd(abs); int64(len(p)) > rest {
		p = p[:rest]
	}
	return s.inner.Read(p)
}

// Seek repositions the stream within the window. The target is computed in
// window-relative space: io.SeekStart is relative to the window start,
// io.SeekCurrent to the relative position, and io.SeekEnd to the window end
// rather than the underlying stream's physical end. A target that is
// negative or overflows fails with ErrInvalidSeek and leaves the position
// alone. A target past the window does not fail: it clamps to the window
// end, where reads report io.EOF. The wrapped stream is repositioned with a
// single absolute seek, and the returned offset is relative to the window
// start.
func (s *Slice[F]) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		pos, err := s.Position()
		if err != nil {
			return 0, err
		}
		base = pos
	case io.SeekEnd:
		base = s.rng.Len()
	default:
		return 0, fmt.Errorf("%w: unknown whence %d", ErrInvalidSeek, whence)
	}

	rel, ok := addInt64(base, offset)
	if !ok || rel < 0 {
		return 0, fmt.Errorf("%w: base %d, offset %d", ErrInvalidSeek, base, offset)
	}
	abs, ok := addInt64(s.rng.Start, rel)
	if !ok {
		return 0, fmt.Errorf("%w: target %d does not fit the offset space", ErrInvalidSeek, rel)
	}
	if abs > s.rng.End {
		abs = s.rng.End
	}
	got, err := s.inner.Seek(abs, io.SeekStart)
	if err != nil {
		return 0, err
	}
	return got - s.rng.Start, nil
}

// addInt64 returns a+b and whether the sum stayed within int64.
func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// saturatingAdd returns a+b pinned to the maximum int64 on overflow. Both
// operands must be non-negative.
func saturatingAdd(a, b int64) int64 {
	if sum := a + b; sum >= a {
		return sum
	}
	return math.MaxInt64
}
