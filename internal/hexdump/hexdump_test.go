package hexdump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow(t *testing.T) {
	full := Row([]byte("0123456789abcdef"), 0)
	assert.Equal(t,
		"00000000  30 31 32 33 34 35 36 37  38 39 61 62 63 64 65 66  |0123456789abcdef|",
		full)

	partial := Row([]byte("GGUF"), 0x20)
	assert.True(t, strings.HasPrefix(partial, "00000020  47 47 55 46"))
	assert.True(t, strings.HasSuffix(partial, "|GGUF|"))
	// The gutter column lines up regardless of row fill.
	assert.Equal(t, strings.Index(full, "|"), strings.Index(partial, "|"))

	ctrl := Row([]byte{0x00, 0x1F, 0x7F, 'A'}, 0)
	assert.True(t, strings.HasSuffix(ctrl, "|...A|"))
}

func TestWrite(t *testing.T) {
	data := make([]byte, 20)
	for i := range data {
		data[i] = byte(i)
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, data, 0x100))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "00000100  00 01"))
	assert.True(t, strings.HasPrefix(lines[1], "00000110  10 11 12 13"))

	var empty bytes.Buffer
	require.NoError(t, Write(&empty, nil, 0))
	assert.Zero(t, empty.Len())
}
