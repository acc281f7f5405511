package mpt

import (
	"errors"
	"fmt"

	"github.com/daoleak/mptverify/mpt/internal/bytesutil"
	"github.com/daoleak/mptverify/mpt/rlp"
	"github.com/daoleak/mptverify/mptlog"
)

// TrieProof is an Ethereum Merkle-Patricia Trie inclusion proof: a key,
// the expected value at that key, and the chain of trie nodes from the
// root down to the leaf that holds it. Key and value lengths are
// checked at the top of verify rather than fixed by the type, so the
// same struct serves both storage and state proofs.
type TrieProof struct {
	// Key is the unhashed key; verify hashes it with keccak256 to
	// obtain the nibble path.
	Key []byte
	// Proof is the concatenation of exactly Depth node windows, each
	// right-padded with zero bytes to MaxTrieNodeLength.
	Proof []byte
	// Depth is the number of meaningful node windows in Proof.
	Depth int
	// Value is the expected terminal value, left-padded with zero
	// bytes so its significant bytes are right-aligned.
	Value []byte
}

// leafDecoder decodes a terminal leaf's two-field RLP table from its
// node window. Storage proofs use the branch-slot fast path;
// state proofs use the general decoder, since the account tuple's
// outer list carries no such field-shape guarantee.
type leafDecoder func(node []byte) (rlp.List, error)

// postDecode validates the terminal leaf's extracted Value field
// against proof.Value. Storage and state proofs check this
// differently: a storage leaf's value is an RLP string, an account
// leaf's value is itself an RLP list.
type postDecode func(leafValue, value []byte) error

// verify implements the proof driver (C5) shared by VerifyStorageRoot
// and VerifyStateRoot, parameterised by the key length, the leaf
// decoding strategy, and the post-decode value check.
func (p TrieProof) verify(root []byte, keyLen int, decodeLeaf leafDecoder, check postDecode) (err error) {
	defer func() {
		if errors.Is(err, rlp.ErrMalformed) || errors.Is(err, rlp.ErrWrongType) {
			err = fmt.Errorf("%w: %w", err, ErrStructural)
		}
	}()
	log := mptlog.Logger().With().Str("component", "mpt.proof").Logger()

	if len(p.Key) != keyLen {
		return fmt.Errorf("key length %d, want %d: %w", len(p.Key), keyLen, ErrPrecondition)
	}
	if len(p.Proof) == 0 || len(p.Proof)%MaxTrieNodeLength != 0 {
		return fmt.Errorf("proof length %d is not a positive multiple of %d: %w", len(p.Proof), MaxTrieNodeLength, ErrPrecondition)
	}
	if p.Depth <= 0 || p.Depth > len(p.Proof)/MaxTrieNodeLength {
		return fmt.Errorf("depth %d out of range for proof of %d windows: %w", p.Depth, len(p.Proof)/MaxTrieNodeLength, ErrPrecondition)
	}
	if len(root) != KeyLength {
		return fmt.Errorf("root length %d, want %d: %w", len(root), KeyLength, ErrPrecondition)
	}

	hashedKey := keccak256(p.Key)
	nibbles := make([]byte, 0, 2*keyLen)
	for _, b := range hashedKey {
		hi, lo := bytesutil.ByteToNibbles(b)
		nibbles = append(nibbles, hi, lo)
	}

	cursor := 0
	expectedHash := root

	for i := 0; i < p.Depth-1; i++ {
		node := p.window(i)

		header, err := rlp.DecodeHeader(node)
		if err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
		framedLen := header.Offset + header.Length
		if framedLen > len(node) {
			framedLen = len(node)
		}

		got := keccak256(node[:framedLen])
		if !bytesutil.AssertSubarray(got[:], expectedHash, KeyLength, 0) {
			return fmt.Errorf("node %d: %x != %x: %w", i, got, expectedHash, ErrHashMismatch)
		}

		table, err := rlp.DecodeSmallList(node, MaxNumFields)
		if err != nil {
			// A node whose items are not all short strings (a leaf
			// whose value field is a nested list, for one) fails the
			// fast path; decode it with the general decoder so that
			// ResolveNibble32 can still classify it.
			table, err = rlp.DecodeList(node, MaxNumFields)
			if err != nil {
				return fmt.Errorf("node %d: %w", i, err)
			}
		}

		result, err := ResolveNibble32(node, table, nibbles, cursor)
		if err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
		if result.NodeType == Leaf {
			return fmt.Errorf("node %d: leaf encountered before terminal depth: %w", i, ErrPathMismatch)
		}

		expectedHash = result.Value
		cursor = result.Cursor

		log.Debug().Int("node", i).Str("type", result.NodeType.String()).Str("path", NibblePath(nibbles).stringAt(cursor)).Msg("resolved internal node")
	}

	terminal := p.window(p.Depth - 1)
	header, err := rlp.DecodeHeader(terminal)
	if err != nil {
		return fmt.Errorf("terminal node: %w", err)
	}
	framedLen := header.Offset + header.Length
	if framedLen > len(terminal) {
		framedLen = len(terminal)
	}
	got := keccak256(terminal[:framedLen])
	if !bytesutil.AssertSubarray(got[:], expectedHash, KeyLength, 0) {
		return fmt.Errorf("terminal node: %x != %x: %w", got, expectedHash, ErrHashMismatch)
	}

	table, err := decodeLeaf(terminal)
	if err != nil {
		return fmt.Errorf("terminal node: %w", err)
	}

	result, err := ResolveNibble32(terminal, table, nibbles, cursor)
	if err != nil {
		return fmt.Errorf("terminal node: %w", err)
	}
	if result.NodeType != Leaf {
		return fmt.Errorf("terminal node is %s, want LEAF: %w", result.NodeType, ErrPathMismatch)
	}
	if result.Cursor != len(nibbles) {
		return fmt.Errorf("cursor %d at terminal, want %d: %w", result.Cursor, len(nibbles), ErrPathMismatch)
	}

	if err := check(result.Value, p.Value); err != nil {
		return err
	}

	log.Debug().Int("depth", p.Depth).Msg("proof verified")
	return nil
}

// window copies proof node i out of the concatenated proof into a
// fresh MaxTrieNodeLength buffer.
func (p TrieProof) window(i int) []byte {
	node := make([]byte, MaxTrieNodeLength)
	bytesutil.Memcpy(node, p.Proof, i*MaxTrieNodeLength)
	return node
}
