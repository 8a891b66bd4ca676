package eyeutil

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Order selects the byte order used to decompose and compose multi-byte
// values. It is passed by value into every codec operation that spans more
// than one byte; there is no platform-native default. The zero value is
// Little.
type Order int

const (
	// Little is least-significant-byte-first encoding.
	Little Order = iota
	// Big is most-significant-byte-first encoding.
	Big
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ByteOrder maps o onto the encoding/binary implementation that performs the
// actual byte (de)composition. Values outside the enumeration fall back to
// little-endian.
func (o Order) ByteOrder() binary.ByteOrder {
	if o == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// ParseOrder converts a flag or configuration spelling into an Order.
// Accepted are "little"/"le" and "big"/"be", case-insensitively. Anything
// else fails with ErrInvalidEnum.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "little", "le":
		return Little, nil
	case "big", "be":
		return Big, nil
	}
	return Little, EnumError(s)
}
