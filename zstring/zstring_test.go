package zstring

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MinusGix/eyeutil"
	"github.com/MinusGix/eyeutil/datasize"
	"github.com/MinusGix/eyeutil/parse"
	"github.com/MinusGix/eyeutil/stream"
	"github.com/MinusGix/eyeutil/writable"
)

func TestWriteBack(t *testing.T) {
	src := []byte("HELLO\x00")

	z, err := Parse(bytes.NewReader(src), eyeutil.Little)
	require.NoError(t, err)
	assert.Equal(t, []byte("HELLO"), z.Bytes())
	assert.Equal(t, 5, z.Len())
	assert.False(t, z.IsEmpty())
	assert.Equal(t, int64(6), z.DataSize(eyeutil.Little))

	var out bytes.Buffer
	require.NoError(t, z.WriteTo(&out, eyeutil.Little))
	assert.Equal(t, src, out.Bytes())
}

func TestParseEdges(t *testing.T) {
	t.Run("empty string", func(t *testing.T) {
		r := bytes.NewReader([]byte{0x00, 'X'})
		z, err := Parse(r, eyeutil.Big)
		require.NoError(t, err)
		assert.True(t, z.IsEmpty())
		assert.Equal(t, int64(1), z.DataSize(eyeutil.Big))

		pos, err := r.Seek(0, io.SeekCurrent)
		require.NoError(t, err)
		assert.Equal(t, int64(1), pos, "the terminator is consumed")
	})

	t.Run("unterminated", func(t *testing.T) {
		_, err := Parse(bytes.NewReader([]byte("HELLO")), eyeutil.Little)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("empty stream", func(t *testing.T) {
		_, err := Parse(bytes.NewReader(nil), eyeutil.Little)
		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestEqual(t *testing.T) {
	assert.True(t, FromString("abc").Equal(ZString("abc")))
	assert.False(t, FromString("abc").Equal(FromString("abd")))
	assert.True(t, ZString(nil).Equal(FromString("")))
}

func TestStringTable(t *testing.T) {
	// A window holding three strings back to back, as a string table would,
	// with unrelated bytes after it.
	data := []byte("alpha\x00\x00gamma\x00tail")
	f := bytes.NewReader(data)
	region, err := stream.At(f, 13)
	require.NoError(t, err)

	got, err := parse.Many(region, eyeutil.Little, Parse)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "alpha", got[0].String())
	assert.True(t, got[1].IsEmpty())
	assert.Equal(t, "gamma", got[2].String())

	assert.Equal(t, int64(13), datasize.Slice(got, eyeutil.Little))

	var out bytes.Buffer
	require.NoError(t, writable.Values(&out, eyeutil.Little, got))
	assert.Equal(t, data[:13], out.Bytes())
}
