package bencode

import (
	"errors"
	"fmt"
)

// Encode failure kinds.
var (
	ErrUnrecognizedType = errors.New("bencode: unrecognized type")
	ErrDuplicateKey     = errors.New("bencode: duplicate dictionary key")
)

// Decode failure kinds. Decode wraps these in *DecodeError; match with
// errors.Is.
var (
	ErrEmptyInput           = errors.New("bencode: empty input")
	ErrMissingTypeIndicator = errors.New("bencode: no type indicator")
	ErrUnterminatedInteger  = errors.New("bencode: unterminated integer")
	ErrInvalidInteger       = errors.New("bencode: non-canonical integer")
	ErrInvalidStringLength  = errors.New("bencode: invalid string length")
	ErrTruncatedString      = errors.New("bencode: truncated string")
	ErrUnterminatedList     = errors.New("bencode: unterminated list")
	ErrUnterminatedDict     = errors.New("bencode: unterminated dictionary")
	ErrOddDictItemCount     = errors.New("bencode: odd dictionary item count")
	ErrNonStringDictKey     = errors.New("bencode: non-string dictionary key")
	ErrMaxDepthExceeded     = errors.New("bencode: max nesting depth exceeded")
)

// DecodeError reports a structural violation and where in the input it was
// found.
type DecodeError struct {
	Kind   error // one of the decode failure kinds above
	Offset int   // byte offset into the original input
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Kind, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.Kind }
