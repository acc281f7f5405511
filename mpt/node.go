package mpt

import (
	"fmt"

	"github.com/daoleak/mptverify/mpt/internal/bytesutil"
	"github.com/daoleak/mptverify/mpt/rlp"
)

// ResolveResult is what resolving one trie node against the current
// nibble cursor produces: the node's type, the bytes to carry forward
// (the child hash for an internal node, the terminal payload for a
// leaf), and the nibble cursor advanced past the nibbles this node
// consumed.
type ResolveResult struct {
	NodeType NodeType
	Value    []byte
	Cursor   int
}

// ResolveNibble32 dispatches a decoded RLP field table to the
// leaf/extension resolver or the branch resolver based on its field
// count. Any other field count is malformed: a trie node is always
// either a 2-field leaf/extension or a 17-field branch.
func ResolveNibble32(node []byte, table rlp.List, keyNibbles []byte, cursor int) (ResolveResult, error) {
	switch table.NumFields {
	case 2:
		return resolveLeafOrExtension(node, table, keyNibbles, cursor)
	case 17:
		return resolveBranch(node, table, keyNibbles, cursor)
	default:
		return ResolveResult{}, fmt.Errorf("node has %d fields, want 2 or 17: %w", table.NumFields, ErrShapeMismatch)
	}
}

// resolveLeafOrExtension handles a 2-field node: it decodes the
// hex-prefix-encoded first field, checks its nibbles against the key at
// the current cursor position, and returns the second field (the child
// hash for an EXTENSION, the terminal value for a LEAF).
func resolveLeafOrExtension(node []byte, table rlp.List, keyNibbles []byte, cursor int) (ResolveResult, error) {
	hp := node[table.Offset[0] : table.Offset[0]+table.Length[0]]
	if len(hp) == 0 {
		return ResolveResult{}, fmt.Errorf("hex-prefix field is empty: %w", ErrShapeMismatch)
	}

	h := hp[0]
	tag := h >> 4
	isLeaf := tag >= 2
	odd := tag&1 == 1

	nibbles := make([]byte, 0, 2*len(hp))
	if odd {
		nibbles = append(nibbles, h&0x0F)
	} else if h&0x0F != 0 {
		return ResolveResult{}, fmt.Errorf("even hex-prefix byte has non-zero low nibble: %w", ErrPathMismatch)
	}
	for _, b := range hp[1:] {
		hi, lo := bytesutil.ByteToNibbles(b)
		nibbles = append(nibbles, hi, lo)
	}

	if cursor+len(nibbles) > len(keyNibbles) {
		return ResolveResult{}, fmt.Errorf("hex-prefix nibbles run past key length: %w", ErrPathMismatch)
	}
	for i, n := range nibbles {
		if keyNibbles[cursor+i] != n {
			return ResolveResult{}, fmt.Errorf("nibble %d: got %x want %x: %w", cursor+i, n, keyNibbles[cursor+i], ErrPathMismatch)
		}
	}

	nodeType := Extension
	if isLeaf {
		nodeType = Leaf
	}
	value := node[table.Offset[1] : table.Offset[1]+table.Length[1]]
	return ResolveResult{NodeType: nodeType, Value: value, Cursor: cursor + len(nibbles)}, nil
}

// resolveBranch handles a 17-field branch node: every one of the first 16 slots
// must be empty or exactly KeyLength bytes, the 17th (value) slot must
// be empty, and the slot at the current key nibble must be a non-empty
// 32-byte child hash.
func resolveBranch(node []byte, table rlp.List, keyNibbles []byte, cursor int) (ResolveResult, error) {
	for i := 0; i < MaxNumFields-1; i++ {
		if table.Length[i] != 0 && table.Length[i] != KeyLength {
			return ResolveResult{}, fmt.Errorf("branch slot %d has length %d, want 0 or %d: %w", i, table.Length[i], KeyLength, ErrShapeMismatch)
		}
	}
	if table.Length[MaxNumFields-1] != 0 {
		return ResolveResult{}, fmt.Errorf("branch value slot is non-empty: %w", ErrShapeMismatch)
	}
	if cursor >= len(keyNibbles) {
		return ResolveResult{}, fmt.Errorf("cursor %d has no more key nibbles: %w", cursor, ErrPathMismatch)
	}

	nibble := int(keyNibbles[cursor])
	if table.Length[nibble] != KeyLength {
		return ResolveResult{}, fmt.Errorf("branch slot %d (selected by key nibble) has length %d, want %d: %w", nibble, table.Length[nibble], KeyLength, ErrShapeMismatch)
	}
	childHash := node[table.Offset[nibble] : table.Offset[nibble]+KeyLength]
	return ResolveResult{NodeType: Branch, Value: childHash, Cursor: cursor + 1}, nil
}
