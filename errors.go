package eyeutil

import (
	"errors"
	"fmt"
)

// ErrInvalidEnum reports that a decoded value does not correspond to any
// member of a closed value set. The core codecs never return it themselves;
// it is the shared kind for collaborators that map raw integers onto their
// enumerations (ParseOrder does, and format parsers built on this module are
// expected to as well).
var ErrInvalidEnum = errors.New("eyeutil: invalid enumeration value")

// EnumError wraps ErrInvalidEnum with the offending value, so callers can
// match the kind with errors.Is and still report what was actually seen.
func EnumError(v any) error {
	return fmt.Errorf("%w: %v", ErrInvalidEnum, v)
}
