package parse

import (
	"github.com/histdb/btoi/digit"
	"github.com/histdb/btoi/num"
)

// magnitude accumulates b in radix without exceeding maxVal. It stops at the
// first invalid byte or at the first digit that would overflow, in which
// case it reports PosOverflow and leaves the rest of b unscanned. The value
// is only meaningful when the returned Error is zero.
func magnitude(b []byte, radix int, maxVal uint64) (v uint64, e Error) {
	if len(b) == 0 {
		return 0, Empty
	}

	r := uint64(radix)
	cutoff := maxVal / r

	for _, c := range b {
		d, ok := digit.Value(c, radix)
		if !ok {
			return 0, InvalidDigit
		} else if v > cutoff {
			return 0, PosOverflow
		}
		v *= r
		if v > maxVal-uint64(d) {
			return 0, PosOverflow
		}
		v += uint64(d)
	}

	return v, 0
}

// unsigned is magnitude for input that may not carry a sign. A lone sign
// still has no digits and is Empty, as it is for signed input.
func unsigned(b []byte, radix int, maxVal uint64) (uint64, Error) {
	if len(b) == 1 && (b[0] == '+' || b[0] == '-') {
		return 0, Empty
	}
	return magnitude(b, radix, maxVal)
}

// Uint parses b as an unsigned integer in the given radix. Overflow is
// reported as PosOverflow. It panics if radix is not in [2, 36].
func Uint[T num.Unsigned](b []byte, radix int) (T, error) {
	checkRadix(radix)

	v, e := unsigned(b, radix, uint64(num.MaxUnsigned[T]()))
	if e != 0 {
		return 0, e
	}
	return T(v), nil
}

// UintSaturating is like Uint but returns the maximum value of T on
// overflow. Bytes after the point of overflow are not examined.
func UintSaturating[T num.Unsigned](b []byte, radix int) (T, error) {
	checkRadix(radix)

	maxVal := num.MaxUnsigned[T]()
	v, e := unsigned(b, radix, uint64(maxVal))
	switch e {
	case 0:
		return T(v), nil
	case PosOverflow:
		return maxVal, nil
	default:
		return 0, e
	}
}
