package mpt

import (
	"fmt"

	"github.com/daoleak/mptverify/mpt/internal/bytesutil"
	"github.com/daoleak/mptverify/mpt/rlp"
)

// VerifyStateRoot checks that proof authenticates proof.Value at
// proof.Key under root, for an Ethereum state (account) proof: a
// 20-byte unhashed address key and a leaf value that is itself an RLP
// list, the account tuple (nonce, balance, storageRoot, codeHash).
func VerifyStateRoot(proof TrieProof, root []byte) (bool, error) {
	err := proof.verify(root, StateKeyLength, decodeStateLeaf, checkStateValue)
	return err == nil, err
}

// decodeStateLeaf decodes the terminal node's two-field table with the
// general decoder: an account leaf's second field is itself a list
// and therefore not eligible for the small-list fast path.
func decodeStateLeaf(node []byte) (rlp.List, error) {
	return rlp.DecodeList(node, 2)
}

// checkStateValue checks the terminal leaf's second field: the
// account-tuple RLP list, left undecoded. It asserts the field's tag
// byte is a list tag, its framed length matches value's significant
// length, and it matches value byte-for-byte at offset 0.
func checkStateValue(leafValue, value []byte) error {
	shifted, n := bytesutil.ByteValue(value)

	if len(leafValue) == 0 || leafValue[0] < 0xc0 {
		return fmt.Errorf("account leaf value is not an RLP list: %w", ErrShapeMismatch)
	}
	header, err := rlp.DecodeHeader(leafValue)
	if err != nil {
		return fmt.Errorf("account leaf value: %w", err)
	}
	framedLen := header.Offset + header.Length
	if framedLen != n {
		return fmt.Errorf("account leaf value length %d, want %d: %w", framedLen, n, ErrValueMismatch)
	}
	if !bytesutil.AssertSubarray(shifted[:n], leafValue, n, 0) {
		return fmt.Errorf("account leaf value bytes do not match: %w", ErrValueMismatch)
	}
	return nil
}
