package parse

import "github.com/histdb/btoi/num"

func splitSign(b []byte) (neg bool, mag []byte) {
	if len(b) > 0 {
		switch b[0] {
		case '-':
			return true, b[1:]
		case '+':
			return false, b[1:]
		}
	}
	return false, b
}

// signed parses the magnitude at the unsigned width of T and then fits it
// into the signed range. Overflow out of the unsigned width is classified by
// the sign.
func signed[T num.Signed](b []byte, radix int) (T, Error) {
	neg, b := splitSign(b)
	if len(b) == 0 {
		return 0, Empty
	}

	u, e := magnitude(b, radix, num.UnsignedMax[T]())
	maxVal := uint64(num.MaxSigned[T]())

	switch {
	case e == PosOverflow && neg:
		return 0, NegOverflow
	case e != 0:
		return 0, e

	case !neg && u > maxVal:
		return 0, PosOverflow
	case !neg:
		return T(u), 0

	// the magnitude of min is one more than max
	case u == maxVal+1:
		return num.MinSigned[T](), 0
	case u > maxVal+1:
		return 0, NegOverflow
	default:
		return -T(u), 0
	}
}

// Int parses b as a signed integer in the given radix with an optional
// leading '+' or '-'. It panics if radix is not in [2, 36].
func Int[T num.Signed](b []byte, radix int) (T, error) {
	checkRadix(radix)

	v, e := signed[T](b, radix)
	if e != 0 {
		return 0, e
	}
	return v, nil
}

// IntSaturating is like Int but returns the maximum or minimum value of T on
// overflow in the respective direction. Bytes after the point where the
// magnitude overflows are not examined.
func IntSaturating[T num.Signed](b []byte, radix int) (T, error) {
	checkRadix(radix)

	v, e := signed[T](b, radix)
	switch e {
	case 0:
		return v, nil
	case PosOverflow:
		return num.MaxSigned[T](), nil
	case NegOverflow:
		return num.MinSigned[T](), nil
	default:
		return 0, e
	}
}
