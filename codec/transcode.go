package codec

import "github.com/unkn0wn-root/bencode"

// Transcoding decodes one complete bencoded document with cfg (nil for
// bencode.DefaultConfig) and re-encodes the value tree in the target
// format. Input must not carry trailing bytes.

// ToCBOR re-encodes doc as deterministic CBOR (RFC 8949 Core
// Deterministic), preserving the canonical-form property of the source.
func ToCBOR(doc []byte, cfg *bencode.Config) ([]byte, error) {
	v, err := (Bencode{Config: cfg}).Decode(doc)
	if err != nil {
		return nil, err
	}
	c, err := NewCBOR[any](true)
	if err != nil {
		return nil, err
	}
	return c.Encode(v)
}

// ToMsgpack re-encodes doc as MessagePack.
func ToMsgpack(doc []byte, cfg *bencode.Config) ([]byte, error) {
	v, err := (Bencode{Config: cfg}).Decode(doc)
	if err != nil {
		return nil, err
	}
	return Msgpack[any]{}.Encode(v)
}

// ToJSON renders doc as JSON for human inspection. Lossy for non-UTF-8
// byte strings; see the JSON codec for caveats.
func ToJSON(doc []byte, cfg *bencode.Config) ([]byte, error) {
	v, err := (Bencode{Config: cfg}).Decode(doc)
	if err != nil {
		return nil, err
	}
	return JSON[any]{}.Encode(v)
}
