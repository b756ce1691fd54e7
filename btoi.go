// Package btoi parses integers directly from ASCII bytes, without converting
// them to a string first.
//
// Btoi and Btou parse radix 10 into int64 and uint64. The Radix forms take a
// radix in [2, 36] and panic for any other radix. The Saturating forms clamp
// to the bounds of the result type instead of reporting overflow. The
// FromString forms accept a string and never copy it.
//
// Parse errors are one of the ParseError values and may be compared with ==
// or errors.Is. For other widths use the generic functions in package parse.
package btoi

import "github.com/histdb/btoi/parse"

const radix10 = 10

func Btoi(b []byte) (int64, error)  { return parse.Int[int64](b, radix10) }
func Btou(b []byte) (uint64, error) { return parse.Uint[uint64](b, radix10) }

func BtoiRadix(b []byte, radix int) (int64, error)  { return parse.Int[int64](b, radix) }
func BtouRadix(b []byte, radix int) (uint64, error) { return parse.Uint[uint64](b, radix) }

func BtoiSaturating(b []byte) (int64, error) {
	return parse.IntSaturating[int64](b, radix10)
}

func BtouSaturating(b []byte) (uint64, error) {
	return parse.UintSaturating[uint64](b, radix10)
}

func BtoiSaturatingRadix(b []byte, radix int) (int64, error) {
	return parse.IntSaturating[int64](b, radix)
}

func BtouSaturatingRadix(b []byte, radix int) (uint64, error) {
	return parse.UintSaturating[uint64](b, radix)
}
