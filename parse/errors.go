package parse

import (
	"github.com/zeebo/errs/v2"

	"github.com/histdb/btoi/digit"
)

// Error is the reason a byte sequence could not be parsed. The zero value is
// not an error and is never returned.
type Error uint8

const (
	// Empty means there were no digits after removing an optional sign.
	Empty Error = iota + 1
	// InvalidDigit means a byte is not a digit in the requested radix.
	InvalidDigit
	// PosOverflow means the value is larger than the target type's maximum.
	PosOverflow
	// NegOverflow means the value is smaller than the target type's minimum.
	NegOverflow
)

func (e Error) Error() string {
	switch e {
	case Empty:
		return "cannot parse integer from empty slice"
	case InvalidDigit:
		return "invalid digit found in slice"
	case PosOverflow:
		return "number too large to fit in target type"
	case NegOverflow:
		return "number too small to fit in target type"
	default:
		return "unknown parse error"
	}
}

// checkRadix panics if radix is out of range. A bad radix is a bug in the
// caller, not bad input, so it is never reported as an Error.
func checkRadix(radix int) {
	if !digit.Valid(radix) {
		panic(errs.Errorf("radix must lie in the range [%d, %d]; found %d",
			digit.MinRadix, digit.MaxRadix, radix))
	}
}
