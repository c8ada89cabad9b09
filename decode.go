package bencode

import (
	"bytes"
	"math/big"
	"strconv"
)

// Decode parses exactly one bencoded value from the front of b and
// returns it together with the unconsumed tail. cfg may be nil for
// DefaultConfig. On error no partial value is returned; every error is a
// *DecodeError wrapping one of the Err* decode kinds.
//
// Decoded byte strings handed to the configured constructors alias b;
// the default constructors copy.
func Decode(b []byte, cfg *Config) (any, []byte, error) {
	c := cfg.fill()
	d := decoder{buf: b, cfg: &c}
	v, err := d.value(0)
	if err != nil {
		return nil, nil, err
	}
	return v, b[d.off:], nil
}

type decoder struct {
	buf []byte
	off int
	cfg *Config
}

func (d *decoder) failAt(kind error, off int) error {
	return &DecodeError{Kind: kind, Offset: off}
}

func (d *decoder) fail(kind error) error {
	return d.failAt(kind, d.off)
}

// value parses one production, dispatching on the leading byte. depth
// counts open containers above this frame.
func (d *decoder) value(depth int) (any, error) {
	if d.off >= len(d.buf) {
		return nil, d.fail(ErrEmptyInput)
	}
	switch c := d.buf[d.off]; {
	case c == 'i':
		return d.integer()
	case c == 'l':
		return d.list(depth)
	case c == 'd':
		return d.dict(depth)
	case c >= '0' && c <= '9':
		raw, err := d.rawString()
		if err != nil {
			return nil, err
		}
		return d.cfg.ByteString.Make(raw)
	default:
		return nil, d.fail(ErrMissingTypeIndicator)
	}
}

func (d *decoder) integer() (any, error) {
	start := d.off
	end := bytes.IndexByte(d.buf[start:], 'e')
	if end < 0 {
		return nil, d.failAt(ErrUnterminatedInteger, start)
	}
	digits := d.buf[start+1 : start+end]
	if kind := checkInteger(digits); kind != nil {
		return nil, d.failAt(kind, start)
	}
	n, _ := new(big.Int).SetString(string(digits), 10)
	d.off = start + end + 1
	return d.cfg.Integer.Make(n)
}

// checkInteger enforces the canonical integer form: an optional '-'
// followed by at least one digit, no leading zero except the literal "0",
// and never "-0".
func checkInteger(digits []byte) error {
	s := digits
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if len(s) == 0 {
		return ErrUnterminatedInteger
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return ErrInvalidInteger
		}
	}
	if s[0] == '0' && (len(s) > 1 || digits[0] == '-') {
		return ErrInvalidInteger
	}
	return nil
}

// rawString parses a length-prefixed byte string and returns the raw run,
// aliasing the input buffer.
func (d *decoder) rawString() ([]byte, error) {
	start := d.off
	colon := bytes.IndexByte(d.buf[start:], ':')
	if colon < 0 {
		return nil, d.failAt(ErrInvalidStringLength, start)
	}
	n, err := strconv.Atoi(string(d.buf[start : start+colon]))
	if err != nil || n < 0 {
		return nil, d.failAt(ErrInvalidStringLength, start)
	}
	d.off = start + colon + 1
	if n > len(d.buf)-d.off {
		return nil, d.failAt(ErrTruncatedString, start)
	}
	raw := d.buf[d.off : d.off+n]
	d.off += n
	return raw, nil
}

func (d *decoder) list(depth int) (any, error) {
	if depth >= d.cfg.MaxDepth {
		return nil, d.fail(ErrMaxDepthExceeded)
	}
	d.off++ // 'l'
	var elems []any
	for {
		if d.off >= len(d.buf) {
			return nil, d.fail(ErrUnterminatedList)
		}
		if d.buf[d.off] == 'e' {
			d.off++
			return d.cfg.List.Make(elems)
		}
		v, err := d.value(depth + 1)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
}

// dict parses string/value pairs inline rather than through the list
// production, so a missing terminator, an odd item count and a non-string
// key are each caught where they occur.
func (d *decoder) dict(depth int) (any, error) {
	if depth >= d.cfg.MaxDepth {
		return nil, d.fail(ErrMaxDepthExceeded)
	}
	d.off++ // 'd'
	var pairs []KV
	for {
		if d.off >= len(d.buf) {
			return nil, d.fail(ErrUnterminatedDict)
		}
		switch c := d.buf[d.off]; {
		case c == 'e':
			d.off++
			return d.cfg.Dict.Make(pairs)
		case c >= '0' && c <= '9':
			// key follows
		case c == 'i' || c == 'l' || c == 'd':
			return nil, d.fail(ErrNonStringDictKey)
		default:
			return nil, d.fail(ErrMissingTypeIndicator)
		}
		key, err := d.rawString()
		if err != nil {
			return nil, err
		}
		if d.off >= len(d.buf) {
			return nil, d.fail(ErrUnterminatedDict)
		}
		if d.buf[d.off] == 'e' {
			return nil, d.fail(ErrOddDictItemCount)
		}
		v, err := d.value(depth + 1)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, KV{Key: key, Value: v})
	}
}
