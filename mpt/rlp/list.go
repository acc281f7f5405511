package rlp

import "fmt"

// List is the decoded field table of an RLP list: parallel arrays of
// capacity maxFields, with NumFields <= maxFields fields populated.
//
// For a string field, Offset[i] points at the first payload byte. For a
// list field, Offset[i] points at the nested list's own RLP header,
// since a caller decoding a nested list needs that header to decode
// it in turn. Fields at index >= NumFields are left at their zero
// value.
type List struct {
	Offset    []int
	Length    []int
	DataType  []DataType
	NumFields int
}

// DecodeList decodes input as an RLP list with at most maxFields fields.
// It walks the list payload once, recording each field's position, and
// fails if the payload is not exactly consumed by the fields found (a
// shortfall or a field that straddles the end of the payload) or if more
// than maxFields fields are present.
func DecodeList(input []byte, maxFields int) (List, error) {
	h, err := DecodeHeader(input)
	if err != nil {
		return List{}, err
	}
	if h.DataType != ListType {
		return List{}, fmt.Errorf("decode_list: got STRING header: %w", ErrWrongType)
	}
	payloadEnd := h.Offset + h.Length
	if payloadEnd > len(input) {
		return List{}, fmt.Errorf("decode_list: payload end %d exceeds input length %d: %w", payloadEnd, len(input), ErrMalformed)
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
			return List{}, fmt.Errorf("decode_list: more than %d fields: %w", maxFields, ErrMalformed)
		}
		item, err := DecodeHeader(input[cursor:])
		if err != nil {
			return List{}, err
		}
		total := item.Offset + item.Length
		if cursor+total > payloadEnd {
			return List{}, fmt.Errorf("decode_list: field %d payload runs past list end: %w", i, ErrMalformed)
		}

		if item.DataType == String {
			out.Offset[i] = cursor + item.Offset
			out.Length[i] = item.Length
		} else {
			out.Offset[i] = cursor
			out.Length[i] = total
		}
		out.DataType[i] = item.DataType

		cursor += total
		i++
	}
	if cursor != payloadEnd {
		return List{}, fmt.Errorf("decode_list: payload not fully consumed: %w", ErrMalformed)
	}
	out.NumFields = i
	return out, nil
}
