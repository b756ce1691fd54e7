package fields

import (
	"bytes"
	"strconv"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/histdb/btoi/parse"
)

// Scanner walks the sep separated fields of a record. Spaces and tabs around
// each field are ignored. A trailing separator produces a final empty field.
// The zero value has no fields.
type Scanner struct {
	buf   []byte
	sep   byte
	pos   int
	idx   int
	more  bool
	field []byte
}

func (s *Scanner) Init(buf []byte, sep byte) {
	*s = Scanner{
		buf:  buf,
		sep:  sep,
		idx:  -1,
		more: len(buf) > 0,
	}
}

// Next advances to the next field and reports if there was one.
func (s *Scanner) Next() bool {
	if !s.more {
		s.field = nil
		return false
	}

	rest := s.buf[s.pos:]
	if i := bytes.IndexByte(rest, s.sep); i >= 0 {
		s.field = trim(rest[:i])
		s.pos += i + 1
	} else {
		s.field = trim(rest)
		s.pos = len(s.buf)
		s.more = false
	}

	s.idx++
	return true
}

// Field returns the current field. It aliases the scanned buffer.
func (s *Scanner) Field() []byte { return s.field }

// Index returns the zero based index of the current field.
func (s *Scanner) Index() int { return s.idx }

func (s *Scanner) Int(radix int) (int64, error) {
	v, err := parse.Int[int64](s.field, radix)
	return v, s.wrap(err)
}

func (s *Scanner) Uint(radix int) (uint64, error) {
	v, err := parse.Uint[uint64](s.field, radix)
	return v, s.wrap(err)
}

func (s *Scanner) IntSaturating(radix int) (int64, error) {
	v, err := parse.IntSaturating[int64](s.field, radix)
	return v, s.wrap(err)
}

func (s *Scanner) UintSaturating(radix int) (uint64, error) {
	v, err := parse.UintSaturating[uint64](s.field, radix)
	return v, s.wrap(err)
}

func (s *Scanner) wrap(err error) error {
	if err == nil {
		return nil
	}
	return &FieldError{Index: s.idx, Err: err}
}

// FieldError reports which field of a record failed to parse. Err is always a
// parse.Error and is reachable with errors.Is and errors.As.
type FieldError struct {
	Index int
	Err   error
}

func (e *FieldError) Error() string {
	return "field " + strconv.Itoa(e.Index) + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error { return e.Err }

func trim(x []byte) []byte {
	for len(x) > 0 && (x[0] == ' ' || x[0] == '\t') {
		x = x[1:]
	}
	for len(x) > 0 && (x[len(x)-1] == ' ' || x[len(x)-1] == '\t') {
		x = x[:len(x)-1]
	}
	return x
}

//
// whole records
//

// Ints parses every field of buf as a signed integer.
func Ints(buf []byte, sep byte, radix int) ([]int64, error) {
	var vs []int64
	var s Scanner
	s.Init(buf, sep)
	for s.Next() {
		v, err := s.Int(radix)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// Uints parses every field of buf as an unsigned integer.
func Uints(buf []byte, sep byte, radix int) ([]uint64, error) {
	var vs []uint64
	var s Scanner
	s.Init(buf, sep)
	for s.Next() {
		v, err := s.Uint(radix)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// IdSet parses every field of buf as a uint32 id and collects them.
func IdSet(buf []byte, sep byte, radix int) (*roaring.Bitmap, error) {
	bm := roaring.New()
	if err := AddIds(bm, buf, sep, radix); err != nil {
		return nil, err
	}
	return bm, nil
}

// AddIds is like IdSet but adds into an existing bitmap. If any field fails
// to parse, bm is left unchanged.
func AddIds(bm *roaring.Bitmap, buf []byte, sep byte, radix int) error {
	ids, err := Ids(nil, buf, sep, radix)
	if err != nil {
		return err
	}
	bm.AddMany(ids)
	return nil
}

// Ids appends every field of buf, parsed as a uint32 id, to dst.
func Ids(dst []uint32, buf []byte, sep byte, radix int) ([]uint32, error) {
	var s Scanner
	s.Init(buf, sep)
	for s.Next() {
		id, err := parse.Uint[uint32](s.Field(), radix)
		if err != nil {
			return dst, s.wrap(err)
		}
		dst = append(dst, id)
	}
	return dst, nil
}
