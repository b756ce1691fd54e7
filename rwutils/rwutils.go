package rwutils

import (
	"io"
	"strconv"

	"github.com/zeebo/errs/v2"
)

// maxDigits is the longest decimal rendering of a 64 bit integer, sign
// included.
const maxDigits = 20

// W buffers text output. The first write error is kept and every later write
// is dropped; Done reports it.
type W struct {
	buf []byte
	err error
	w   io.Writer
}

func (w *W) Init(wr io.Writer, buf []byte) {
	*w = W{
		buf: buf[:0],
		w:   wr,
	}
}

func (w *W) Done() error {
	w.flush()
	return w.err
}

func (w *W) Int(x int64) {
	if len(w.buf)+maxDigits > cap(w.buf) {
		w.flush()
	}
	w.buf = strconv.AppendInt(w.buf, x, 10)
}

func (w *W) Uint(x uint64) {
	if len(w.buf)+maxDigits > cap(w.buf) {
		w.flush()
	}
	w.buf = strconv.AppendUint(w.buf, x, 10)
}

func (w *W) Byte(x byte) {
	if len(w.buf)+1 > cap(w.buf) {
		w.flush()
	}
	w.buf = append(w.buf, x)
}

//go:noinline
func (w *W) flush() {
	if w.err == nil && len(w.buf) > 0 {
		_, err := w.w.Write(w.buf)
		w.err = errs.Wrap(err)
	}
	w.buf = w.buf[:0]
}
