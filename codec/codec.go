// Package codec provides generic byte codecs around the bencode core:
// a strict-framing bencode codec, adapters for CBOR, MessagePack, JSON
// and Protocol Buffers, a decode-size guard for untrusted payloads, and
// helpers that transcode a bencoded document into the other formats.
package codec

// Codec encodes/decodes values V to []byte for transport or storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
