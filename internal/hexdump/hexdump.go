// Package hexdump renders byte windows as offset-addressed hex rows with an
// ASCII gutter, for the command line tools.
package hexdump

import (
	"fmt"
	"io"
	"strings"
)

const rowWidth = 16

// Write renders data as rows of sixteen bytes each. base is added to the
// printed offsets, so a dump of a window deep inside a file shows positions
// in the enclosing stream rather than starting at zero.
func Write(w io.Writer, data []byte, base int64) error {
	for off := 0; off < len(data); off += rowWidth {
		end := off + rowWidth
		if end > len(data) {
			end = len(data)
		}
		if _, err := fmt.Fprintln(w, Row(data[off:end], base+int64(off))); err != nil {
			return err
		}
	}
	return nil
}

// Row renders a single row of at most sixteen bytes, without a newline.
// Shorter rows keep the gutter aligned.
func Row(row []byte, off int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%08x  ", off)
	for i := 0; i < rowWidth; i++ {
		if i == rowWidth/2 {
			b.WriteByte(' ')
		}
		if i < len(row) {
			fmt.Fprintf(&b, "%02x ", row[i])
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString(" |")
	for _, c := range row {
		if c < 0x20 || c > 0x7e {
			c = '.'
		}
		b.WriteByte(c)
	}
	b.WriteByte('|')
	return b.String()
}
