package datasize

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MinusGix/eyeutil"
	"github.com/MinusGix/eyeutil/writable"
)

// packet sizes a fixed header plus a variable body.
type packet struct {
	flags uint16
	body  []byte
}

func (p packet) DataSize(eyeutil.Order) int64 {
	return Uint16 + Bytes(p.body)
}

func TestWidthsMatchWriters(t *testing.T) {
	ord := eyeutil.Little
	var buf bytes.Buffer

	require.NoError(t, writable.Uint16(&buf, ord, 1))
	assert.Equal(t, Uint16, buf.Len())

	buf.Reset()
	require.NoError(t, writable.Uint128(&buf, ord, eyeutil.Uint128{}))
	assert.Equal(t, Uint128, buf.Len())

	buf.Reset()
	require.NoError(t, writable.Float64(&buf, ord, 2.5))
	assert.Equal(t, Float64, buf.Len())
}

func TestSlice(t *testing.T) {
	ps := []packet{
		{flags: 1, body: []byte("abc")},
		{flags: 2},
		{flags: 3, body: []byte("hello")},
	}
	assert.Equal(t, int64(2+3+2+0+2+5), Slice(ps, eyeutil.Little))
	assert.Zero(t, Slice([]packet{}, eyeutil.Little))
}

func TestUniform(t *testing.T) {
	assert.Equal(t, int64(40), Uniform(5, Uint64))
	assert.Zero(t, Uniform(0, Uint32))
	assert.Zero(t, Bytes(nil))
}
