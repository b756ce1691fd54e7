package btoi

import "unsafe"

// bytesOf views the storage of s. The parsers only read their input, so the
// view is never written through.
func bytesOf(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func BtoiFromString(s string) (int64, error)  { return Btoi(bytesOf(s)) }
func BtouFromString(s string) (uint64, error) { return Btou(bytesOf(s)) }

func BtoiRadixFromString(s string, radix int) (int64, error) {
	return BtoiRadix(bytesOf(s), radix)
}

func BtouRadixFromString(s string, radix int) (uint64, error) {
	return BtouRadix(bytesOf(s), radix)
}

func BtoiSaturatingFromString(s string) (int64, error) {
	return BtoiSaturating(bytesOf(s))
}

func BtouSaturatingFromString(s string) (uint64, error) {
	return BtouSaturating(bytesOf(s))
}

func BtoiSaturatingRadixFromString(s string, radix int) (int64, error) {
	return BtoiSaturatingRadix(bytesOf(s), radix)
}

func BtouSaturatingRadixFromString(s string, radix int) (uint64, error) {
	return BtouSaturatingRadix(bytesOf(s), radix)
}
