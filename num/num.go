package num

import "unsafe"

type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

type Integer interface {
	Unsigned | Signed
}

// Bits returns the width of T in bits.
func Bits[T Integer]() uint {
	var x T
	return uint(unsafe.Sizeof(x)) * 8
}

func MaxUnsigned[T Unsigned]() T { return ^T(0) }

// UnsignedMax returns the maximum of the unsigned type with the same width as T.
func UnsignedMax[T Signed]() uint64 { return uint64(1)<<Bits[T]() - 1 }

func MaxSigned[T Signed]() T { return T(UnsignedMax[T]() >> 1) }
func MinSigned[T Signed]() T { return ^MaxSigned[T]() }
