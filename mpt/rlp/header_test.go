package rlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeHeaderVariants(t *testing.T) {
	cases := []struct {
		name       string
		input      []byte
		wantOffset int
		wantLength int
		wantType   DataType
	}{
		{"single byte", []byte{0x42}, 0, 1, String},
		{"short string", []byte{0x83, 'c', 'a', 't'}, 1, 3, String},
		{"empty string", []byte{0x80}, 1, 0, String},
		{"short list", []byte{0xc7, 1, 2, 3, 4, 5, 6, 7}, 1, 7, ListType},
		{"empty list", []byte{0xc0}, 1, 0, ListType},
		{"long string unpadded", []byte{0xb9, 0x01, 0x23}, 3, 0x0123, String},
		{"long list unpadded", []byte{0xf9, 0x01, 0x6d}, 3, 0x016d, ListType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := DecodeHeader(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.wantOffset, h.Offset)
			require.Equal(t, tc.wantLength, h.Length)
			require.Equal(t, tc.wantType, h.DataType)
		})
	}
}

func TestDecodeHeaderEmptyInput(t *testing.T) {
	_, err := DecodeHeader(nil)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeHeaderLongLengthPastInput(t *testing.T) {
	_, err := DecodeHeader([]byte{0xb9, 0x01})
	require.ErrorIs(t, err, ErrMalformed)
}
