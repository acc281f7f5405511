// Package bytesutil provides the small byte primitives the RLP and
// Merkle-Patricia Trie decoders are built on: windowed copies, subarray
// equality, nibble splitting and big-endian length discovery.
//
// Memcpy and AssertSubarray work only on slices the caller has already
// sized. LeftByteShift, and ByteValue through it, allocate and return a
// new slice the length of their input.
package bytesutil

import "fmt"

// Memcpy copies len(dest) bytes from src starting at offset into dest.
//
// It is the caller's responsibility to size dest so that offset+len(dest)
// never exceeds len(src); violating that is a programming error in this
// package's callers, not a malformed-input condition, so Memcpy panics
// rather than returning an error.
func Memcpy(dest, src []byte, offset int) {
	if offset < 0 || offset+len(dest) > len(src) {
		panic(fmt.Sprintf("bytesutil: memcpy out of range: offset=%d len=%d src=%d", offset, len(dest), len(src)))
	}
	copy(dest, src[offset:offset+len(dest)])
}

// AssertSubarray reports whether sub[i] == arr[offset+i] for 0 <= i < length.
// It returns false rather than panicking on an out-of-range offset/length so
// callers can report it as the mismatch error of their own check.
func AssertSubarray(sub, arr []byte, length, offset int) bool {
	if length < 0 || offset < 0 || offset+length > len(arr) || length > len(sub) {
		return false
	}
	for i := 0; i < length; i++ {
		if sub[i] != arr[offset+i] {
			return false
		}
	}
	return true
}

// ByteToNibbles splits b into its high and low 4-bit halves.
func ByteToNibbles(b byte) (hi, lo byte) {
	return b >> 4, b & 0x0F
}

// ByteValue treats in as a big-endian integer that may be left-padded with
// zero bytes. It returns shifted, the input left-shifted so the first
// significant byte lands at index 0, and n, the number of significant
// bytes (0 if in is entirely zero).
//
// Property: shifted[n:] is all zero, and left-padding shifted[:n] with zero
// bytes back out to len(in) bytes reproduces in.
func ByteValue(in []byte) (shifted []byte, n int) {
	lead := 0
	for lead < len(in) && in[lead] == 0 {
		lead++
	}
	n = len(in) - lead
	shifted = LeftByteShift(in, lead)
	return shifted, n
}

// LeftByteShift returns a slice the same length as in with out[i] =
// in[i+n] for i+n < len(in), and 0 elsewhere.
func LeftByteShift(in []byte, n int) []byte {
	out := make([]byte, len(in))
	if n < 0 {
		n = 0
	}
	if n < len(in) {
		copy(out, in[n:])
	}
	return out
}
