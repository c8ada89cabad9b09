package codec

import "github.com/goccy/go-json"

// JSON is a Codec that serializes values using goccy/go-json. The zero
// value is ready to use.
//
// JSON is a lossy view of bencoded data: byte strings are rendered as
// JSON strings without UTF-8 validation, so binary keys or values may not
// survive a round trip. Intended for debugging and interop with
// JSON-speaking tooling, not as a storage format for torrent payloads.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
