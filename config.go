package bencode

import (
	"math/big"
	"reflect"
)

// DefaultMaxDepth bounds list/dictionary nesting during decode when
// Config.MaxDepth is zero.
const DefaultMaxDepth = 1024

// KV is one dictionary entry. During decode the key aliases the input
// buffer and entries appear in input order; during encode entry order is
// irrelevant because the encoder sorts by raw key bytes.
type KV struct {
	Key   []byte
	Value any
}

// IntegerConv maps the integer kind to a concrete representation. From
// classifies a native value on encode (reporting false when the value is
// not an integer); Make constructs the caller-visible value from a parsed
// integer on decode.
type IntegerConv struct {
	From func(v any) (*big.Int, bool)
	Make func(n *big.Int) (any, error)
}

// ByteStringConv maps the byte-string kind. The slice passed to Make
// aliases the input buffer; Make must copy if the result retains it.
type ByteStringConv struct {
	From func(v any) ([]byte, bool)
	Make func(b []byte) (any, error)
}

// ListConv maps the list kind. Make receives decoded elements in input
// order and owns the slice.
type ListConv struct {
	From func(v any) ([]any, bool)
	Make func(elems []any) (any, error)
}

// DictConv maps the dictionary kind. Make receives decoded pairs in input
// order, duplicates included, so a custom policy may reject or merge them.
type DictConv struct {
	From func(v any) ([]KV, bool)
	Make func(pairs []KV) (any, error)
}

// Config selects concrete representations for the four bencode value
// kinds. The zero value of any policy function falls back to the default
// policy, so a custom Config only needs to set what it changes. Configs
// are immutable once built and safe to share across goroutines; both
// Encode and Decode accept nil for DefaultConfig.
type Config struct {
	Integer    IntegerConv
	ByteString ByteStringConv
	List       ListConv
	Dict       DictConv

	// MaxDepth bounds list/dictionary nesting during decode.
	// 0 => DefaultMaxDepth.
	MaxDepth int
}

// DefaultConfig maps each kind to its natural Go representation: integers
// decode to int64 when they fit and *big.Int otherwise, byte strings to
// string, lists to []any, dictionaries to map[string]any with later
// duplicate keys overwriting earlier ones.
var DefaultConfig = &Config{
	Integer:    IntegerConv{From: integerOf, Make: makeInteger},
	ByteString: ByteStringConv{From: bytesOf, Make: makeString},
	List:       ListConv{From: listOf, Make: makeList},
	Dict:       DictConv{From: dictOf, Make: makeDict},
}

// fill returns a copy with every unset policy replaced by the default.
func (c *Config) fill() Config {
	if c == nil {
		c = DefaultConfig
	}
	out := *c
	if out.Integer.From == nil {
		out.Integer.From = integerOf
	}
	if out.Integer.Make == nil {
		out.Integer.Make = makeInteger
	}
	if out.ByteString.From == nil {
		out.ByteString.From = bytesOf
	}
	if out.ByteString.Make == nil {
		out.ByteString.Make = makeString
	}
	if out.List.From == nil {
		out.List.From = listOf
	}
	if out.List.Make == nil {
		out.List.Make = makeList
	}
	if out.Dict.From == nil {
		out.Dict.From = dictOf
	}
	if out.Dict.Make == nil {
		out.Dict.Make = makeDict
	}
	out.MaxDepth = coalesce(out.MaxDepth, DefaultMaxDepth)
	return out
}

// integerOf accepts every Go integer kind, bool (encoded as 0/1) and
// big.Int values.
func integerOf(v any) (*big.Int, bool) {
	switch n := v.(type) {
	case bool:
		if n {
			return big.NewInt(1), true
		}
		return big.NewInt(0), true
	case int:
		return big.NewInt(int64(n)), true
	case int64:
		return big.NewInt(n), true
	case uint64:
		return new(big.Int).SetUint64(n), true
	case *big.Int:
		return n, true
	case big.Int:
		return &n, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return big.NewInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), true
	}
	return nil, false
}

func bytesOf(v any) ([]byte, bool) {
	switch s := v.(type) {
	case string:
		return []byte(s), true
	case []byte:
		return s, true
	}
	return nil, false
}

// listOf accepts []any directly and any other slice or array kind via
// reflection. []byte never reaches here: bytesOf classifies it first.
func listOf(v any) ([]any, bool) {
	if xs, ok := v.([]any); ok {
		return xs, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}
	return nil, false
}

// dictOf accepts any map keyed by a string kind. Key coercion to raw
// bytes happens here; the encoder sorts and checks uniqueness afterwards.
func dictOf(v any) ([]KV, bool) {
	if m, ok := v.(map[string]any); ok {
		pairs := make([]KV, 0, len(m))
		for k, val := range m {
			pairs = append(pairs, KV{Key: []byte(k), Value: val})
		}
		return pairs, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	pairs := make([]KV, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, KV{Key: []byte(iter.Key().String()), Value: iter.Value().Interface()})
	}
	return pairs, true
}

func makeInteger(n *big.Int) (any, error) {
	if n.IsInt64() {
		return n.Int64(), nil
	}
	return n, nil
}

func makeString(b []byte) (any, error) { return string(b), nil }

func makeList(elems []any) (any, error) {
	if elems == nil {
		elems = []any{}
	}
	return elems, nil
}

func makeDict(pairs []KV) (any, error) {
	m := make(map[string]any, len(pairs))
	for _, kv := range pairs {
		m[string(kv.Key)] = kv.Value // later duplicates overwrite
	}
	return m, nil
}
