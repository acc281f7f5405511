package rlp

import "fmt"

// MaxLenInBytes bounds the width of a long-form RLP length prefix this
// package understands. Two bytes covers every payload up to 65535 bytes,
// comfortably more than MaxTrieNodeLength; a three-byte-or-wider prefix
// is a precondition violation that never arises for a well-formed
// Ethereum trie node and is reported as ErrMalformed.
const MaxLenInBytes = 2

// DataType distinguishes an RLP string payload from an RLP list payload.
type DataType uint8

const (
	String DataType = iota
	ListType
)

func (t DataType) String() string {
	if t == ListType {
		return "LIST"
	}
	return "STRING"
}

// Header is a decoded RLP header: Offset is the byte index within
// input at which the payload starts, Length is the payload's byte
// length, and DataType records whether the payload is a string or a
// nested list.
type Header struct {
	Offset   int
	Length   int
	DataType DataType
}

// DecodeHeader classifies the first byte of input per RLP's prefix
// ranges and returns the resulting Header.
//
//	p < 0x80            single byte, value is p itself
//	0x80 <= p < 0xb8    short string, length p-0x80
//	0xb8 <= p < 0xc0    long string, length in next p-0xb7 bytes
//	0xc0 <= p < 0xf8    short list, payload length p-0xc0
//	p >= 0xf8           long list, length in next p-0xf7 bytes
func DecodeHeader(input []byte) (Header, error) {
	if len(input) == 0 {
		return Header{}, fmt.Errorf("empty input: %w", ErrMalformed)
	}
	p := input[0]

	switch {
	case p < 0x80:
		return Header{Offset: 0, Length: 1, DataType: String}, nil

	case p < 0xb8:
		return Header{Offset: 1, Length: int(p - 0x80), DataType: String}, nil

	case p < 0xc0:
		n := int(p - 0xb7)
		length, err := readBigEndianLength(input, 1, n)
		if err != nil {
			return Header{}, err
		}
		return Header{Offset: 1 + n, Length: length, DataType: String}, nil

	case p < 0xf8:
		return Header{Offset: 1, Length: int(p - 0xc0), DataType: ListType}, nil

	default:
		n := int(p - 0xf7)
		length, err := readBigEndianLength(input, 1, n)
		if err != nil {
			return Header{}, err
		}
		return Header{Offset: 1 + n, Length: length, DataType: ListType}, nil
	}
}

// readBigEndianLength reads the n bytes of input starting at off as a
// big-endian integer, the RLP long-form length prefix.
func readBigEndianLength(input []byte, off, n int) (int, error) {
	if n > MaxLenInBytes {
		return 0, fmt.Errorf("length prefix %d bytes wide exceeds MaxLenInBytes=%d: %w", n, MaxLenInBytes, ErrMalformed)
	}
	if off+n > len(input) {
		return 0, fmt.Errorf("length prefix runs past input: %w", ErrMalformed)
	}
	length := 0
	for i := 0; i < n; i++ {
		length = length<<8 | int(input[off+i])
	}
	return length, nil
}
