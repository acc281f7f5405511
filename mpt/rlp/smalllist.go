package rlp

import "fmt"

// DecodeSmallList is DecodeList specialised to lists whose every item is a
// short string with a single-byte header (0x80 <= p < 0xb8, i.e. payload
// length < 56 bytes). Every non-leaf internal node of an Ethereum storage
// proof satisfies this: each of a branch's 17 slots is either a 32-byte
// child hash (header 0xa0) or an empty string (header 0x80), so this
// fast path, which never has to consider nested lists or multi-byte
// length prefixes, carries the bulk of branch decoding at a fraction of
// the general decoder's cost. An item whose header falls outside that
// range is a malformed-input condition here, not a fall-through to the
// general decoder.
func DecodeSmallList(input []byte, maxFields int) (List, error) {
	h, err := DecodeHeader(input)
	if err != nil {
		return List{}, err
	}
	if h.DataType != ListType {
		return List{}, fmt.Errorf("decode_small_list: got STRING header: %w", ErrWrongType)
	}
	payloadEnd := h.Offset + h.Length
	if payloadEnd > len(input) {
		return List{}, fmt.Errorf("decode_small_list: payload end %d exceeds input length %d: %w", payloadEnd, len(input), ErrMalformed)
	}

	out := List{
		Offset:   make([]int, maxFields),
		Length:   make([]int, maxFields),
		DataType: make([]DataType, maxFields),
	}

	cursor := h.Offset
	i := 0
	for cursor < payloadEnd {
		if i >= maxFields {
			return List{}, fmt.Errorf("decode_small_list: more than %d fields: %w", maxFields, ErrMalformed)
		}
		p := input[cursor]
		if p >= 0xb8 {
			return List{}, fmt.Errorf("decode_small_list: item header 0x%02x outside short-string range: %w", p, ErrMalformed)
		}

		var itemOffset, length int
		if p < 0x80 {
			itemOffset, length = cursor, 1
		} else {
			itemOffset, length = cursor+1, int(p-0x80)
		}
		if itemOffset+length > payloadEnd {
			return List{}, fmt.Errorf("decode_small_list: field %d payload runs past list end: %w", i, ErrMalformed)
		}

		out.Offset[i] = itemOffset
		out.Length[i] = length
		out.DataType[i] = String

		cursor = itemOffset + length
		i++
	}
	if cursor != payloadEnd {
		return List{}, fmt.Errorf("decode_small_list: payload not fully consumed: %w", ErrMalformed)
	}
	out.NumFields = i
	return out, nil
}
