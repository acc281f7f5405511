package rlp

import "errors"

// ErrMalformed is the sentinel every structural RLP decoding failure wraps:
// a payload-length prefix wider than MaxLenInBytes, a header claiming more
// bytes than the input holds, or a list that over/underruns its field
// table. Callers compare against it with errors.Is.
var ErrMalformed = errors.New("rlp: malformed input")

// ErrWrongType is returned when a decoder that requires a specific
// DataType (e.g. DecodeString requiring STRING) is given the other kind.
var ErrWrongType = errors.New("rlp: unexpected data type")
