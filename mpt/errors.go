package mpt

import "errors"

// Sentinel errors, one per failure class a proof verification can hit.
// Every error the package returns wraps exactly one of these via
// fmt.Errorf("%w", ...), so callers can classify a failure with
// errors.Is without parsing message text.
var (
	// ErrStructural covers impossible RLP geometry: a payload exceeding
	// its containing buffer, a list over/underrunning its field table, or
	// a long-length prefix wider than rlp.MaxLenInBytes.
	ErrStructural = errors.New("mpt: structural RLP violation")

	// ErrHashMismatch covers a node's keccak256 disagreeing with the hash
	// extracted from its parent (or the supplied root at depth 0).
	ErrHashMismatch = errors.New("mpt: node hash does not match expected hash")

	// ErrPathMismatch covers hex-prefix nibbles disagreeing with the key's
	// nibbles, the cursor failing to reach 2*KeyLen at the terminal node,
	// a LEAF encountered before the terminal depth, or a non-LEAF at the
	// terminal depth.
	ErrPathMismatch = errors.New("mpt: key path mismatch")

	// ErrShapeMismatch covers a branch slot of length not in {0, 32}, a
	// non-empty 17th branch slot, or a node with neither 2 nor 17 fields.
	ErrShapeMismatch = errors.New("mpt: node shape violation")

	// ErrValueMismatch covers the extracted terminal value disagreeing
	// with the caller-supplied expected value.
	ErrValueMismatch = errors.New("mpt: terminal value mismatch")

	// ErrPrecondition covers a caller-supplied buffer that violates a
	// compile-time-parameter invariant: proof length not a positive
	// multiple of MaxTrieNodeLength, or depth exceeding its capacity.
	ErrPrecondition = errors.New("mpt: precondition violated")
)
