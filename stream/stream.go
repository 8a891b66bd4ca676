// Package stream provides position and length utilities for seekable byte
// streams, and Slice, a bounded view that restricts reads and seeks to a
// configured window of an underlying stream.
//
// Nothing here assumes more of a collaborator than byte-oriented reading and
// seeking; in particular, length is always measured with seeks rather than a
// native size query.
package stream

import (
	"errors"
	"io"
	"syscall"
)

// Position returns the stream's current absolute offset. It is implemented
// as a relative seek of zero bytes and must not change observable state.
func Position(s io.Seeker) (int64, error) {
	return s.Seek(0, io.SeekCurrent)
}

// Length measures the total byte length of s by seeking to its end. The
// original position is restored before returning, in both the already-at-end
// and the mid-stream case. When the stream is already at the end the
// restoring seek is skipped, which matters for streams with costly seeks.
func Length(s io.Seeker) (int64, error) {
	pos, err := Position(s)
	if err != nil {
		return 0, err
	}
	length, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	// Avoid a third seek if we were already at the end.
	if pos != length {
		if _, err := s.Seek(pos, io.SeekStart); err != nil {
			return 0, err
		}
	}
	return length, nil
}

// ReadToEnd reads r until end of stream and returns everything it saw.
// A read failing with an interrupted-I/O signal (EINTR) is silently retried;
// every other error is fatal to the call and returned alongside the bytes
// read so far. End of stream is a success, not an error.
func ReadToEnd(r io.Reader) ([]byte, error) {
	buf := make([]byte, 0, 512)
	for {
		n, err := r.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if err != nil {
			if errors.Is(err, io.EOF) {
				return buf, nil
			}
			if errors.Is(err, syscall.EINTR) {
				continue
			}
			return buf, err
		}
		if len(buf) == cap(buf) {
			// Reuse append's growth policy to extend the buffer.
			buf = append(buf, 0)[:len(buf)]
		}
	}
}
