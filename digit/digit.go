package digit

const (
	MinRadix = 2
	MaxRadix = 36
)

// none is larger than any radix so unmapped bytes fail the same bound check
// as digits that are out of range.
const none = 0xff

var values = func() (t [256]uint8) {
	for i := range t {
		t[i] = none
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = uint8(c - '0')
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = uint8(c-'a') + 10
		t[c-'a'+'A'] = uint8(c-'a') + 10
	}
	return t
}()

// Valid reports if radix is in [MinRadix, MaxRadix].
func Valid(radix int) bool {
	return MinRadix <= radix && radix <= MaxRadix
}

// Value returns the digit value of c under radix. The radix must be Valid.
func Value(c byte, radix int) (d uint8, ok bool) {
	d = values[c]
	if int(d) >= radix {
		return 0, false
	}
	return d, true
}
