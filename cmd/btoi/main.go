// Command btoi reads separated integers from stdin, one record per line, and
// writes them back in decimal. Records with a field that does not parse are
// logged and skipped.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/zeebo/errs/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/histdb/btoi/digit"
	"github.com/histdb/btoi/fields"
	"github.com/histdb/btoi/rwutils"
)

const maxRecord = 1 << 20

type config struct {
	radix    int
	unsigned bool
	saturate bool
	sep      byte
	distinct bool
	verbose  bool
}

func parseFlags(args []string) (cfg config, err error) {
	var sep string

	fs := flag.NewFlagSet("btoi", flag.ContinueOnError)
	fs.IntVar(&cfg.radix, "radix", 10, "radix of the input digits (2 to 36)")
	fs.BoolVar(&cfg.unsigned, "unsigned", false, "parse unsigned values")
	fs.BoolVar(&cfg.saturate, "saturate", false, "clamp out of range values instead of rejecting them")
	fs.StringVar(&sep, "sep", ",", "field separator (a single byte)")
	fs.BoolVar(&cfg.distinct, "distinct", false, "print only the number of distinct uint32 values")
	fs.BoolVar(&cfg.verbose, "v", false, "log every record")

	if err := fs.Parse(args); err != nil {
		return cfg, errs.Wrap(err)
	}

	switch {
	case !digit.Valid(cfg.radix):
		return cfg, errs.Errorf("radix must be in [%d, %d]: %d", digit.MinRadix, digit.MaxRadix, cfg.radix)
	case len(sep) != 1:
		return cfg, errs.Errorf("separator must be a single byte: %q", sep)
	case cfg.distinct && !cfg.unsigned:
		return cfg, errs.Errorf("-distinct requires -unsigned")
	case cfg.distinct && cfg.saturate:
		return cfg, errs.Errorf("-distinct cannot be combined with -saturate")
	}

	cfg.sep = sep[0]
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := zc.Build()
	return logger, errs.Wrap(err)
}

type printer struct {
	cfg   config
	s     fields.Scanner
	w     rwutils.W
	ints  []int64
	uints []uint64
	idbuf []uint32
	ids   *roaring.Bitmap
}

func (p *printer) record(rec []byte) (n int, err error) {
	if p.ids != nil {
		p.idbuf, err = fields.Ids(p.idbuf[:0], rec, p.cfg.sep, p.cfg.radix)
		if err != nil {
			return 0, err
		}
		p.ids.AddMany(p.idbuf)
		return len(p.idbuf), nil
	}

	parseInt, parseUint := (*fields.Scanner).Int, (*fields.Scanner).Uint
	if p.cfg.saturate {
		parseInt, parseUint = (*fields.Scanner).IntSaturating, (*fields.Scanner).UintSaturating
	}

	// parse the whole record before writing so that a bad field leaves no
	// partial output behind
	p.ints, p.uints = p.ints[:0], p.uints[:0]
	p.s.Init(rec, p.cfg.sep)
	for p.s.Next() {
		if p.cfg.unsigned {
			v, err := parseUint(&p.s, p.cfg.radix)
			if err != nil {
				return 0, err
			}
			p.uints = append(p.uints, v)
		} else {
			v, err := parseInt(&p.s, p.cfg.radix)
			if err != nil {
				return 0, err
			}
			p.ints = append(p.ints, v)
		}
	}

	for i, v := range p.ints {
		if i > 0 {
			p.w.Byte(p.cfg.sep)
		}
		p.w.Int(v)
	}
	for i, v := range p.uints {
		if i > 0 {
			p.w.Byte(p.cfg.sep)
		}
		p.w.Uint(v)
	}
	p.w.Byte('\n')

	return len(p.ints) + len(p.uints), nil
}

// run filters in to out and returns the number of records that were skipped.
func run(cfg config, in io.Reader, out io.Writer, log *zap.Logger) (skipped int, err error) {
	p := &printer{cfg: cfg}
	p.w.Init(out, make([]byte, 0, 64<<10))
	if cfg.distinct {
		p.ids = roaring.New()
	}

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64<<10), maxRecord)

	line := 0
	for sc.Scan() {
		line++

		n, err := p.record(sc.Bytes())
		if err != nil {
			skipped++
			log.Warn("skipping record", zap.Int("line", line), zap.Error(err))
			continue
		}
		log.Debug("record", zap.Int("line", line), zap.Int("fields", n))
	}
	if err := sc.Err(); err != nil {
		return skipped, errs.Wrap(err)
	}

	if p.ids != nil {
		p.w.Uint(p.ids.GetCardinality())
		p.w.Byte('\n')
	}

	log.Debug("done", zap.Int("records", line), zap.Int("skipped", skipped))
	return skipped, p.w.Done()
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	skipped, err := run(cfg, os.Stdin, os.Stdout, log)
	if err != nil {
		log.Error("failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	if skipped > 0 {
		_ = log.Sync()
		os.Exit(1)
	}
}
