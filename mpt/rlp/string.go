package rlp

import "fmt"

// DecodeString decodes input as a single RLP string and returns the byte
// offset and length of its payload within input. It fails if the header
// reports a list, or if the payload would run past the end of input.
func DecodeString(input []byte) (offset, length int, err error) {
	h, err := DecodeHeader(input)
	if err != nil {
		return 0, 0, err
	}
	if h.DataType != String {
		return 0, 0, fmt.Errorf("decode_string: got LIST header: %w", ErrWrongType)
	}
	if h.Offset+h.Length > len(input) {
		return 0, 0, fmt.Errorf("decode_string: payload end %d exceeds input length %d: %w", h.Offset+h.Length, len(input), ErrMalformed)
	}
	return h.Offset, h.Length, nil
}
