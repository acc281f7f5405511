package rlp

// Encoder companions for this package's decoders. These exist to build and
// round-trip-test fixtures; they are not part of the verifier's
// externally observable surface.

// EncodeString RLP-encodes s as a string.
func EncodeString(s []byte) []byte {
	if len(s) == 1 && s[0] < 0x80 {
		return []byte{s[0]}
	}
	return append(lengthPrefix(len(s), 0x80), s...)
}

// EncodeList RLP-encodes the concatenation of already-encoded items as a
// list.
func EncodeList(items ...[]byte) []byte {
	var payload []byte
	for _, item := range items {
		payload = append(payload, item...)
	}
	return append(lengthPrefix(len(payload), 0xc0), payload...)
}

// EncodeSmallList RLP-encodes a list of short strings (each < 56 bytes),
// the inverse of DecodeSmallList.
func EncodeSmallList(items ...[]byte) []byte {
	encoded := make([][]byte, len(items))
	for i, it := range items {
		if len(it) >= 56 {
			panic("rlp: EncodeSmallList item too long for the short-string fast path")
		}
		encoded[i] = append([]byte{byte(0x80 + len(it))}, it...)
	}
	return EncodeList(encoded...)
}

func lengthPrefix(n int, base byte) []byte {
	if n < 56 {
		return []byte{base + byte(n)}
	}
	var lenBytes []byte
	for v := n; v > 0; v >>= 8 {
		lenBytes = append([]byte{byte(v)}, lenBytes...)
	}
	return append([]byte{base + 55 + byte(len(lenBytes))}, lenBytes...)
}
