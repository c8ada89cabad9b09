package bencode

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

// Encode serializes v as one canonical bencoded value: minimal integer
// digits, dictionary keys sorted ascending by raw byte value. cfg may be
// nil for DefaultConfig. Classification tries the configured kinds in
// order integer, byte string, list, dictionary; a value matching none
// fails with ErrUnrecognizedType.
func Encode(v any, cfg *Config) ([]byte, error) {
	c := cfg.fill()
	var buf bytes.Buffer
	if err := encodeValue(&buf, v, &c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v any, c *Config) error {
	if n, ok := c.Integer.From(v); ok {
		buf.WriteByte('i')
		buf.WriteString(n.String())
		buf.WriteByte('e')
		return nil
	}
	if b, ok := c.ByteString.From(v); ok {
		writeByteString(buf, b)
		return nil
	}
	if xs, ok := c.List.From(v); ok {
		buf.WriteByte('l')
		for _, x := range xs {
			if err := encodeValue(buf, x, c); err != nil {
				return err
			}
		}
		buf.WriteByte('e')
		return nil
	}
	if pairs, ok := c.Dict.From(v); ok {
		return encodeDict(buf, pairs, c)
	}
	return fmt.Errorf("%w: %T", ErrUnrecognizedType, v)
}

func encodeDict(buf *bytes.Buffer, pairs []KV, c *Config) error {
	// sort a copy; the classifier's slice may be caller-owned
	sorted := make([]KV, len(pairs))
	copy(sorted, pairs)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Key, sorted[j].Key) < 0
	})

	buf.WriteByte('d')
	for i, kv := range sorted {
		if i > 0 && bytes.Equal(sorted[i-1].Key, kv.Key) {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, kv.Key)
		}
		writeByteString(buf, kv.Key)
		if err := encodeValue(buf, kv.Value, c); err != nil {
			return err
		}
	}
	buf.WriteByte('e')
	return nil
}

func writeByteString(buf *bytes.Buffer, b []byte) {
	buf.WriteString(strconv.Itoa(len(b)))
	buf.WriteByte(':')
	buf.Write(b)
}
