// Package bencode implements the bencode serialization format: a compact,
// self-describing binary encoding of integers, byte strings, lists and
// key-sorted dictionaries, used by the BitTorrent family of protocols.
//
// Components:
//   - Encode: native value tree -> canonical bencoded bytes
//     (minimal integers, dictionary keys sorted by raw byte value).
//   - Decode: bencoded bytes -> value tree plus the unconsumed remainder,
//     so a buffer may carry a bencoded header followed by a raw payload.
//   - Config: per-kind conversion policies. Each of the four value kinds
//     pairs a classifier (which native values encode as this kind) with a
//     constructor (which concrete type a decoded primitive becomes).
//
// With the default configuration:
//
//	raw, _ := bencode.Encode(map[string]any{"name": "bob", "age": 42}, nil)
//	// raw == []byte("d3:agei42e4:name3:bobe")
//	v, rest, _ := bencode.Decode(raw, nil)
//	// v == map[string]any{"age": int64(42), "name": "bob"}, rest empty
//
// Decoding is strict: input must be structurally well formed and integers
// must be canonical (no leading zeros, no "-0", no "+"). Every failure is
// one of the exported Err* kinds, match with errors.Is. Adversarial
// nesting is bounded by Config.MaxDepth.
package bencode
