package mpt

import "strings"

// NibblePath is a debug-formatting view over a key's expanded nibble
// sequence, grounded on other_examples/GrapeBaBa-jellyfish-merkle__nibble.go's
// NibblePath type and hex-nibble vocabulary. It is never consulted by
// the verifier; it exists purely to make log lines and CLI output
// readable.
type NibblePath []byte

// stringAt renders the path as a hex digit string with the cursor
// position marked by a '|', e.g. "a3f|21" for a path of length 5
// with cursor at 3.
func (n NibblePath) stringAt(cursor int) string {
	var b strings.Builder
	for i, nib := range n {
		if i == cursor {
			b.WriteByte('|')
		}
		b.WriteByte(hexDigit(nib))
	}
	if cursor == len(n) {
		b.WriteByte('|')
	}
	return b.String()
}

// String renders the path with no cursor marker.
func (n NibblePath) String() string {
	var b strings.Builder
	for _, nib := range n {
		b.WriteByte(hexDigit(nib))
	}
	return b.String()
}

func hexDigit(nibble byte) byte {
	const digits = "0123456789abcdef"
	if nibble > 0x0F {
		return '?'
	}
	return digits[nibble]
}
