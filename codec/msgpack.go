package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack is a Codec that serializes values using vmihailenco/msgpack/v5.
// The zero value is ready to use.
//
// Msgpack keeps the raw-bytes/string distinction bencode lacks; decoded
// bencode trees (strings, int64, []any, map[string]any) round-trip
// losslessly. Use `msgpack:"fieldName"` tags for explicit control over
// struct fields.
type Msgpack[V any] struct{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	return msgpack.Marshal(v)
}
func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	err := msgpack.Unmarshal(b, &v)
	return v, err
}
