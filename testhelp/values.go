package testhelp

import (
	"strconv"

	"github.com/zeebo/mwc"
)

var (
	valRng = mwc.Rand()
	encRng = mwc.Rand()
)

// Uint64 returns a random value with a random bit length so that short
// encodings are as common as long ones.
func Uint64() uint64 {
	return valRng.Uint64() >> valRng.Uint32n(64)
}

func Int64() int64 {
	return int64(valRng.Uint64()) >> valRng.Uint32n(64)
}

func Radix() int {
	return 2 + int(encRng.Uint32n(35))
}

// Encode appends the digits of v in radix with letters in a random case and
// up to three leading zeros.
func Encode(dst []byte, v uint64, radix int) []byte {
	for range encRng.Uint32n(4) {
		dst = append(dst, '0')
	}

	start := len(dst)
	dst = strconv.AppendUint(dst, v, radix)
	for i := start; i < len(dst); i++ {
		if c := dst[i]; 'a' <= c && c <= 'z' && encRng.Uint32n(2) == 0 {
			dst[i] = c - 'a' + 'A'
		}
	}

	return dst
}

// EncodeInt is like Encode but writes a '-' for negative values and
// sometimes a '+' for the others.
func EncodeInt(dst []byte, v int64, radix int) []byte {
	if v < 0 {
		// also correct for the minimum value
		return Encode(append(dst, '-'), uint64(-v), radix)
	}
	if encRng.Uint32n(2) == 0 {
		dst = append(dst, '+')
	}
	return Encode(dst, uint64(v), radix)
}

// Garbage returns a byte that is never a digit in any radix.
func Garbage() byte {
	const junk = "\x00\t\n !\"#$%&'()*,./:;<=>?@[\\]^_`{|}~\x7f\x80\xc3\xff"
	return junk[encRng.Uint32n(uint32(len(junk)))]
}
