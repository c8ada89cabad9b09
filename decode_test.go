package bencode

import (
	"bytes"
	"errors"
	"math/big"
	"reflect"
	"strings"
	"testing"
)

func mustDecode(t *testing.T, in string, cfg *Config) (any, []byte) {
	t.Helper()
	v, rest, err := Decode([]byte(in), cfg)
	if err != nil {
		t.Fatalf("Decode(%q) error: %v", in, err)
	}
	return v, rest
}

func TestDecodeLiterals(t *testing.T) {
	cases := []struct {
		in   string
		want any
	}{
		{"i42e", int64(42)},
		{"i-3e", int64(-3)},
		{"i0e", int64(0)},
		{"4:spam", "spam"},
		{"0:", ""},
		{"le", []any{}},
		{"de", map[string]any{}},
		{"l4:spam4:eggse", []any{"spam", "eggs"}},
		{"d3:agei2e4:name3:bobe", map[string]any{"age": int64(2), "name": "bob"}},
		{"ld1:ni1eeli2eee", []any{map[string]any{"n": int64(1)}, []any{int64(2)}}},
	}
	for _, tc := range cases {
		v, rest := mustDecode(t, tc.in, nil)
		if !reflect.DeepEqual(v, tc.want) {
			t.Fatalf("Decode(%q) = %#v, want %#v", tc.in, v, tc.want)
		}
		if len(rest) != 0 {
			t.Fatalf("Decode(%q) left %q", tc.in, rest)
		}
	}
}

func TestDecodeRemainder(t *testing.T) {
	cases := []struct {
		in, rest string
	}{
		{"4:spamextra", "extra"},
		{"i42e\x00\x01\x02", "\x00\x01\x02"},
		{"lei9e", "i9e"},
		{"d1:ai1ee4:tail", "4:tail"},
	}
	for _, tc := range cases {
		_, rest := mustDecode(t, tc.in, nil)
		if string(rest) != tc.rest {
			t.Fatalf("Decode(%q) rest = %q, want %q", tc.in, rest, tc.rest)
		}
	}

	// sequential extraction of several values from one buffer
	buf := []byte("i1ei2ei3e")
	var got []int64
	for len(buf) > 0 {
		v, rest, err := Decode(buf, nil)
		if err != nil {
			t.Fatalf("sequential decode: %v", err)
		}
		got = append(got, v.(int64))
		buf = rest
	}
	if !reflect.DeepEqual(got, []int64{1, 2, 3}) {
		t.Fatalf("sequential decode = %v", got)
	}
}

func TestDecodeBigInteger(t *testing.T) {
	v, _ := mustDecode(t, "i9223372036854775808e", nil)
	n, ok := v.(*big.Int)
	if !ok {
		t.Fatalf("got %T, want *big.Int", v)
	}
	want, _ := new(big.Int).SetString("9223372036854775808", 10)
	if n.Cmp(want) != 0 {
		t.Fatalf("got %v, want %v", n, want)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		in   string
		kind error
	}{
		{"", ErrEmptyInput},
		{"x", ErrMissingTypeIndicator},
		{"e", ErrMissingTypeIndicator},
		{"i3", ErrUnterminatedInteger},
		{"ie", ErrUnterminatedInteger},
		{"i-e", ErrUnterminatedInteger},
		{"i03e", ErrInvalidInteger},
		{"i-0e", ErrInvalidInteger},
		{"i+3e", ErrInvalidInteger},
		{"i1x2e", ErrInvalidInteger},
		{"4spam", ErrInvalidStringLength},
		{"4x:spam", ErrInvalidStringLength},
		{"9:abc", ErrTruncatedString},
		{"l4:spam", ErrUnterminatedList},
		{"li1e", ErrUnterminatedList},
		{"l!e", ErrMissingTypeIndicator},
		{"d", ErrUnterminatedDict},
		{"d3:key", ErrUnterminatedDict},
		{"d3:keyi1e", ErrUnterminatedDict},
		{"d3:keye", ErrOddDictItemCount},
		{"di1ei2ee", ErrNonStringDictKey},
		{"dl1:aei1ee", ErrNonStringDictKey},
		{"d!e", ErrMissingTypeIndicator},
		{"l9:abce", ErrTruncatedString},
	}
	for _, tc := range cases {
		v, rest, err := Decode([]byte(tc.in), nil)
		if !errors.Is(err, tc.kind) {
			t.Fatalf("Decode(%q) error = %v, want %v", tc.in, err, tc.kind)
		}
		if v != nil || rest != nil {
			t.Fatalf("Decode(%q) returned partial result %v, %q", tc.in, v, rest)
		}
	}
}

func TestDecodeErrorOffset(t *testing.T) {
	_, _, err := Decode([]byte("l4:spami-0ee"), nil)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error %T, want *DecodeError", err)
	}
	if de.Kind != ErrInvalidInteger || de.Offset != 7 {
		t.Fatalf("got kind=%v offset=%d, want ErrInvalidInteger at 7", de.Kind, de.Offset)
	}
	if !strings.Contains(de.Error(), "offset 7") {
		t.Fatalf("message %q lacks offset", de.Error())
	}
}

func TestDecodeDuplicateKeysLastWins(t *testing.T) {
	v, _ := mustDecode(t, "d1:ai1e1:ai2ee", nil)
	want := map[string]any{"a": int64(2)}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("got %#v, want %#v", v, want)
	}
}

func TestDecodeUnsortedDictTolerated(t *testing.T) {
	v, _ := mustDecode(t, "d1:bi1e1:ai2ee", nil)
	want := map[string]any{"a": int64(2), "b": int64(1)}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("got %#v, want %#v", v, want)
	}

	// canonical write: re-encoding sorts the keys
	out := mustEncode(t, v, nil)
	if string(out) != "d1:ai2e1:bi1ee" {
		t.Fatalf("re-encode = %q", out)
	}
}

func TestDecodeMaxDepth(t *testing.T) {
	cfg := &Config{MaxDepth: 4}

	ok := strings.Repeat("l", 4) + strings.Repeat("e", 4)
	if _, _, err := Decode([]byte(ok), cfg); err != nil {
		t.Fatalf("depth 4 with limit 4: %v", err)
	}

	deep := strings.Repeat("l", 5) + strings.Repeat("e", 5)
	if _, _, err := Decode([]byte(deep), cfg); !errors.Is(err, ErrMaxDepthExceeded) {
		t.Fatalf("error = %v, want ErrMaxDepthExceeded", err)
	}

	if _, _, err := Decode([]byte("d1:ad1:bd1:ci1eeee"), &Config{MaxDepth: 2}); !errors.Is(err, ErrMaxDepthExceeded) {
		t.Fatalf("dict nesting: error = %v, want ErrMaxDepthExceeded", err)
	}
}

func TestDecodeDefaultDepthLimit(t *testing.T) {
	// no terminators needed; the bound trips before EOF is reached
	bomb := strings.Repeat("l", DefaultMaxDepth+1)
	if _, _, err := Decode([]byte(bomb), nil); !errors.Is(err, ErrMaxDepthExceeded) {
		t.Fatalf("error = %v, want ErrMaxDepthExceeded", err)
	}
}

func TestRoundTrip(t *testing.T) {
	big30, _ := new(big.Int).SetString("-123456789012345678901234567890", 10)
	values := []any{
		int64(0),
		int64(-42),
		big30,
		"spam",
		"",
		"\x00\xff\x7f",
		[]any{},
		[]any{int64(1), "two", []any{int64(3)}},
		map[string]any{},
		map[string]any{
			"announce": "udp://tracker.example:6969",
			"info": map[string]any{
				"length": int64(4096),
				"name":   "payload.bin",
				"pieces": "\x01\x02\x03",
			},
		},
	}
	for _, v := range values {
		enc := mustEncode(t, v, nil)
		got, rest := mustDecode(t, string(enc), nil)
		if len(rest) != 0 {
			t.Fatalf("round trip %v: %d leftover bytes", v, len(rest))
		}
		if !reflect.DeepEqual(got, v) {
			t.Fatalf("round trip: got %#v, want %#v", got, v)
		}
		again := mustEncode(t, got, nil)
		if !bytes.Equal(again, enc) {
			t.Fatalf("re-encode: got %q, want %q", again, enc)
		}
	}
}
