package eyeutil

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderByteOrder(t *testing.T) {
	assert.Equal(t, binary.LittleEndian, Little.ByteOrder())
	assert.Equal(t, binary.BigEndian, Big.ByteOrder())
	// Out-of-range values degrade to little-endian rather than panicking.
	assert.Equal(t, binary.LittleEndian, Order(42).ByteOrder())
}

func TestOrderString(t *testing.T) {
	assert.Equal(t, "little", Little.String())
	assert.Equal(t, "big", Big.String())
	assert.Equal(t, "Order(7)", Order(7).String())
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    Order
		wantErr bool
	}{
		{in: "little", want: Little},
		{in: "LE", want: Little},
		{in: "Big", want: Big},
		{in: "be", want: Big},
		{in: "middle", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOrder(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidEnum))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnumError(t *testing.T) {
	err := EnumError(uint8(0x7f))
	assert.True(t, errors.Is(err, ErrInvalidEnum))
	assert.Contains(t, err.Error(), "127")
}

func TestFlagHelpers(t *testing.T) {
	const word = uint16(0b0000_0101)
	assert.True(t, Has(word, uint16(0b1)))
	assert.True(t, Has(word, uint16(0b100)))
	assert.False(t, Has(word, uint16(0b10)))

	assert.True(t, HasBit(word, 0))
	assert.False(t, HasBit(word, 1))
	assert.True(t, HasBit(word, 2))
	assert.False(t, HasBit(word, 15))
}

func TestUint128(t *testing.T) {
	assert.True(t, Uint128{}.IsZero())
	assert.False(t, Uint128{Lo: 1}.IsZero())

	v := Uint128{Hi: 0x0102030405060708, Lo: 0x090a0b0c0d0e0f10}
	assert.Equal(t, "0x0102030405060708090a0b0c0d0e0f10", v.String())
}

func TestInt128Sign(t *testing.T) {
	assert.Equal(t, 0, Int128{}.Sign())
	assert.Equal(t, 1, Int128{Lo: 1}.Sign())
	assert.Equal(t, 1, Int128{Hi: 1}.Sign())
	assert.Equal(t, -1, Int128{Hi: -1, Lo: 0xffffffffffffffff}.Sign())
}

func TestOrderUint128(t *testing.T) {
	raw := []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
	}

	le := Little.Uint128(raw)
	assert.Equal(t, Uint128{Hi: 0x100f0e0d0c0b0a09, Lo: 0x0807060504030201}, le)

	be := Big.Uint128(raw)
	assert.Equal(t, Uint128{Hi: 0x0102030405060708, Lo: 0x090a0b0c0d0e0f10}, be)

	for _, o := range []Order{Little, Big} {
		buf := make([]byte, 16)
		o.PutUint128(buf, o.Uint128(raw))
		assert.Equal(t, raw, buf)
	}
}

func TestInt128Reinterpret(t *testing.T) {
	u := Uint128{Hi: 0xffffffffffffffff, Lo: 0xfffffffffffffffe}
	i := u.ToInt128()
	assert.Equal(t, -1, i.Sign())
	assert.Equal(t, u, i.ToUint128())
}
