package mpt

import (
	"fmt"

	"github.com/daoleak/mptverify/mpt/internal/bytesutil"
	"github.com/daoleak/mptverify/mpt/rlp"
)

// VerifyStorageRoot checks that proof authenticates proof.Value at
// proof.Key under root, for an Ethereum storage proof: a 32-byte
// unhashed slot key and a small leaf value framed as a single RLP
// string.
//
// The returned bool is true only when err is nil; it lets a caller
// that only cares about pass/fail skip inspecting the error.
func VerifyStorageRoot(proof TrieProof, root []byte) (bool, error) {
	err := proof.verify(root, StorageKeyLength, decodeStorageLeaf, checkStorageValue)
	return err == nil, err
}

// decodeStorageLeaf decodes the terminal node's two-field table using
// the small-list fast path: every branch slot in a storage proof's
// ancestry, and a storage leaf's own two fields, are short strings.
func decodeStorageLeaf(node []byte) (rlp.List, error) {
	return rlp.DecodeSmallList(node, 2)
}

// checkStorageValue checks the terminal leaf's second field: it is
// itself an RLP string wrapping the stored value. Decode it and
// compare its significant bytes against value's significant bytes.
func checkStorageValue(leafValue, value []byte) error {
	shifted, n := bytesutil.ByteValue(value)

	off, length, err := rlp.DecodeString(leafValue)
	if err != nil {
		return fmt.Errorf("storage leaf value: %w", err)
	}
	if length != n {
		return fmt.Errorf("storage leaf value length %d, want %d: %w", length, n, ErrValueMismatch)
	}
	if !bytesutil.AssertSubarray(shifted[:n], leafValue, n, off) {
		return fmt.Errorf("storage leaf value bytes do not match: %w", ErrValueMismatch)
	}
	return nil
}
