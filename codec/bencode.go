package codec

import (
	"fmt"

	"github.com/unkn0wn-root/bencode"
)

// Bencode is a Codec[any] over the bencode core with strict framing:
// Decode fails when input bytes remain after the first value. Callers
// that expect a trailing payload should use bencode.Decode directly and
// keep the remainder.
//
// A nil Config selects bencode.DefaultConfig. The zero value is ready to
// use.
type Bencode struct {
	Config *bencode.Config
}

var _ Codec[any] = Bencode{}

func (c Bencode) Encode(v any) ([]byte, error) {
	return bencode.Encode(v, c.Config)
}

func (c Bencode) Decode(b []byte) (any, error) {
	v, rest, err := bencode.Decode(b, c.Config)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("bencode: %d trailing bytes after value", len(rest))
	}
	return v, nil
}
