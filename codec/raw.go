package codec

// Bytes is an identity codec for []byte values. Encode/Decode return the
// input unchanged. Useful when the payload is already a serialized
// bencode document and only the Codec shape is needed.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String is a trivial codec for Go string values. Encode converts to
// []byte and Decode converts back. No UTF-8 validation is performed;
// bencode byte strings are raw bytes.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }
