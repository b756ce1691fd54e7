package btoi

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/zeebo/assert"

	"github.com/histdb/btoi/testhelp"
)

func TestDecimalRoundTrip(t *testing.T) {
	var buf []byte
	for range 10000 {
		iv := testhelp.Int64()
		buf = strconv.AppendInt(buf[:0], iv, 10)

		got, err := Btoi(buf)
		assert.NoError(t, err)
		assert.Equal(t, got, iv)

		rgot, rerr := BtoiRadix(buf, 10)
		assert.Equal(t, rgot, got)
		assert.Equal(t, rerr, err)

		uv := testhelp.Uint64()
		buf = strconv.AppendUint(buf[:0], uv, 10)

		ugot, err := Btou(buf)
		assert.NoError(t, err)
		assert.Equal(t, ugot, uv)
	}
}

func TestRadixRoundTrip(t *testing.T) {
	var buf []byte
	for range 10000 {
		radix := testhelp.Radix()

		iv := testhelp.Int64()
		buf = testhelp.EncodeInt(buf[:0], iv, radix)
		got, err := BtoiRadix(buf, radix)
		assert.NoError(t, err)
		assert.Equal(t, got, iv)

		uv := testhelp.Uint64()
		buf = testhelp.Encode(buf[:0], uv, radix)
		ugot, err := BtouRadix(buf, radix)
		assert.NoError(t, err)
		assert.Equal(t, ugot, uv)
	}
}

func TestBoundaries(t *testing.T) {
	v, err := Btoi([]byte("9223372036854775807"))
	assert.NoError(t, err)
	assert.Equal(t, v, int64(math.MaxInt64))

	_, err = Btoi([]byte("9223372036854775808"))
	assert.Equal(t, err, error(PosOverflow))

	v, err = BtoiSaturating([]byte("9223372036854775808"))
	assert.NoError(t, err)
	assert.Equal(t, v, int64(math.MaxInt64))

	v, err = Btoi([]byte("-9223372036854775808"))
	assert.NoError(t, err)
	assert.Equal(t, v, int64(math.MinInt64))

	_, err = Btoi([]byte("-9223372036854775809"))
	assert.Equal(t, err, error(NegOverflow))

	v, err = BtoiSaturating([]byte("-9223372036854775809"))
	assert.NoError(t, err)
	assert.Equal(t, v, int64(math.MinInt64))

	u, err := Btou([]byte("18446744073709551615"))
	assert.NoError(t, err)
	assert.Equal(t, u, uint64(math.MaxUint64))

	_, err = BtouRadix([]byte("18446744073709551616"), 10)
	assert.Equal(t, err, error(PosOverflow))

	u, err = BtouSaturating([]byte("18446744073709551616"))
	assert.NoError(t, err)
	assert.Equal(t, u, uint64(math.MaxUint64))

	v, err = BtoiSaturatingRadix([]byte("-9999999999999999999999"), 10)
	assert.NoError(t, err)
	assert.Equal(t, v, int64(math.MinInt64))

	u, err = BtouSaturatingRadix([]byte("1ffffffffffffffff"), 16)
	assert.NoError(t, err)
	assert.Equal(t, u, uint64(math.MaxUint64))
}

func TestScenarios(t *testing.T) {
	u, err := BtouRadix([]byte("ff"), 16)
	assert.NoError(t, err)
	assert.Equal(t, u, uint64(255))

	v, err := BtoiRadix([]byte("-101010"), 2)
	assert.NoError(t, err)
	assert.Equal(t, v, int64(-42))

	u, err = BtouRadix([]byte("zz"), 36)
	assert.NoError(t, err)
	assert.Equal(t, u, uint64(1295))

	_, err = BtoiRadix([]byte("42x"), 10)
	assert.Equal(t, err, error(InvalidDigit))
	assert.That(t, errors.Is(err, InvalidDigit))

	var perr ParseError
	assert.That(t, errors.As(err, &perr))
	assert.Equal(t, perr, InvalidDigit)
}

func TestEmpty(t *testing.T) {
	for _, in := range []string{"", "+", "-"} {
		_, err := Btoi([]byte(in))
		assert.Equal(t, err, error(Empty))

		_, err = BtoiSaturating([]byte(in))
		assert.Equal(t, err, error(Empty))

		_, err = BtoiFromString(in)
		assert.Equal(t, err, error(Empty))

		_, err = Btou([]byte(in))
		assert.Equal(t, err, error(Empty))

		_, err = BtouFromString(in)
		assert.Equal(t, err, error(Empty))

		for _, radix := range []int{2, 16, 36} {
			_, err = BtouSaturatingRadixFromString(in, radix)
			assert.Equal(t, err, error(Empty))

			_, err = BtoiSaturatingRadix([]byte(in), radix)
			assert.Equal(t, err, error(Empty))
		}
	}

	_, err := Btou(nil)
	assert.Equal(t, err, error(Empty))
}

func TestSaturatingKeepsErrors(t *testing.T) {
	_, err := BtoiSaturating([]byte("12a"))
	assert.Equal(t, err, error(InvalidDigit))

	_, err = BtouSaturating([]byte("-1"))
	assert.Equal(t, err, error(InvalidDigit))

	_, err = BtoiSaturatingRadix([]byte("-"), 36)
	assert.Equal(t, err, error(Empty))
}

func TestFromString(t *testing.T) {
	inputs := []string{
		"", "+", "-", "0", "-0", "+15", "42x", "ff", "FF", "-zz",
		"9223372036854775807", "9223372036854775808",
		"-9223372036854775808", "-9223372036854775809",
		"18446744073709551615", "18446744073709551616",
		"99999999999999999999999x",
	}

	type result struct {
		v   any
		err error
	}
	of := func(v any, err error) result { return result{v, err} }

	for _, in := range inputs {
		bs := []byte(in)

		assert.Equal(t, of(BtoiFromString(in)), of(Btoi(bs)))
		assert.Equal(t, of(BtouFromString(in)), of(Btou(bs)))
		assert.Equal(t, of(BtoiSaturatingFromString(in)), of(BtoiSaturating(bs)))
		assert.Equal(t, of(BtouSaturatingFromString(in)), of(BtouSaturating(bs)))

		for _, radix := range []int{2, 10, 16, 36} {
			assert.Equal(t, of(BtoiRadixFromString(in, radix)), of(BtoiRadix(bs, radix)))
			assert.Equal(t, of(BtouRadixFromString(in, radix)), of(BtouRadix(bs, radix)))
			assert.Equal(t, of(BtoiSaturatingRadixFromString(in, radix)), of(BtoiSaturatingRadix(bs, radix)))
			assert.Equal(t, of(BtouSaturatingRadixFromString(in, radix)), of(BtouSaturatingRadix(bs, radix)))
		}

		assert.Equal(t, string(bs), in)
	}
}

func TestRadixPanics(t *testing.T) {
	panics := func(fn func()) (ok bool) {
		defer func() { ok = recover() != nil }()
		fn()
		return false
	}

	for _, radix := range []int{0, 1, 37} {
		assert.That(t, panics(func() { _, _ = BtoiRadix([]byte("1"), radix) }))
		assert.That(t, panics(func() { _, _ = BtouRadix([]byte("1"), radix) }))
		assert.That(t, panics(func() { _, _ = BtoiSaturatingRadix([]byte("1"), radix) }))
		assert.That(t, panics(func() { _, _ = BtouSaturatingRadix([]byte("1"), radix) }))
		assert.That(t, panics(func() { _, _ = BtoiRadixFromString("", radix) }))
		assert.That(t, panics(func() { _, _ = BtouSaturatingRadixFromString("", radix) }))
	}
}
