package mpt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daoleak/mptverify/mpt/rlp"
)

// hexPrefixEncode is the inverse of resolveLeafOrExtension's decode: it
// packs nibbles into Ethereum's hex-prefix encoding, tagging the result
// as a leaf or extension field.
func hexPrefixEncode(nibbles []byte, isLeaf bool) []byte {
	var tag byte
	if isLeaf {
		tag = 2
	}
	odd := len(nibbles)%2 == 1
	if odd {
		tag |= 1
	}

	out := make([]byte, 0, 1+len(nibbles)/2)
	idx := 0
	if odd {
		out = append(out, tag<<4|nibbles[0])
		idx = 1
	} else {
		out = append(out, tag<<4)
	}
	for idx < len(nibbles) {
		out = append(out, nibbles[idx]<<4|nibbles[idx+1])
		idx += 2
	}
	return out
}

func nibblesOf(b []byte) []byte {
	out := make([]byte, 0, 2*len(b))
	for _, x := range b {
		out = append(out, x>>4, x&0x0F)
	}
	return out
}

func padNode(node []byte) []byte {
	padded := make([]byte, MaxTrieNodeLength)
	copy(padded, node)
	return padded
}

// buildStorageLeafProof constructs a one-node storage proof: a leaf
// sitting directly under the root, covering the key's full nibble path.
func buildStorageLeafProof(t *testing.T, key, value []byte) (TrieProof, []byte) {
	t.Helper()
	hashed := keccak256(key)
	hp := hexPrefixEncode(nibblesOf(hashed[:]), true)
	leaf := rlp.EncodeList(rlp.EncodeString(hp), rlp.EncodeString(rlp.EncodeString(value)))
	root := keccak256(leaf)

	shifted, n := leftAlign(value)
	_ = shifted
	proofValue := make([]byte, MaxStorageValueLength)
	copy(proofValue[MaxStorageValueLength-n:], value[len(value)-n:])

	return TrieProof{
		Key:   key,
		Proof: padNode(leaf),
		Depth: 1,
		Value: proofValue,
	}, root[:]
}

// leftAlign mirrors byte_value's significant-length discovery, used
// only to size the right-aligned proofValue buffer above.
func leftAlign(b []byte) ([]byte, int) {
	lead := 0
	for lead < len(b) && b[lead] == 0 {
		lead++
	}
	return b[lead:], len(b) - lead
}

func TestVerifyStorageRootSuccess(t *testing.T) {
	key := hashBytes(32)
	value := []byte{0x2a, 0x2b, 0x2c}

	proof, root := buildStorageLeafProof(t, key, value)

	ok, err := VerifyStorageRoot(proof, root)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyStorageRootTamperedValue(t *testing.T) {
	key := hashBytes(32)
	value := []byte{0x2a, 0x2b, 0x2c}

	proof, root := buildStorageLeafProof(t, key, value)
	proof.Value[len(proof.Value)-1]++

	ok, err := VerifyStorageRoot(proof, root)
	require.Error(t, err)
	require.False(t, ok)
	require.ErrorIs(t, err, ErrValueMismatch)
}

func TestVerifyStorageRootTamperedRoot(t *testing.T) {
	key := hashBytes(32)
	value := []byte{0x2a, 0x2b, 0x2c}

	proof, root := buildStorageLeafProof(t, key, value)
	root[0]++

	ok, err := VerifyStorageRoot(proof, root)
	require.Error(t, err)
	require.False(t, ok)
	require.ErrorIs(t, err, ErrHashMismatch)
}

// buildStorageBranchProof constructs a two-node storage proof: a
// branch at the root selecting the leaf by the key's first nibble.
func buildStorageBranchProof(t *testing.T, key, value []byte, corruptSlot bool) (TrieProof, []byte) {
	t.Helper()
	hashed := keccak256(key)
	nibbles := nibblesOf(hashed[:])

	hp := hexPrefixEncode(nibbles[1:], true)
	leaf := rlp.EncodeList(rlp.EncodeString(hp), rlp.EncodeString(rlp.EncodeString(value)))
	leafHash := keccak256(leaf)

	items := make([][]byte, MaxNumFields)
	for i := range items {
		items[i] = rlp.EncodeString(nil)
	}
	if corruptSlot {
		items[nibbles[0]] = rlp.EncodeString(leafHash[:20])
	} else {
		items[nibbles[0]] = rlp.EncodeString(leafHash[:])
	}
	branch := rlp.EncodeList(items...)
	root := keccak256(branch)

	_, n := leftAlign(value)
	proofValue := make([]byte, MaxStorageValueLength)
	copy(proofValue[MaxStorageValueLength-n:], value[len(value)-n:])

	proofBytes := append(padNode(branch), padNode(leaf)...)

	return TrieProof{
		Key:   key,
		Proof: proofBytes,
		Depth: 2,
		Value: proofValue,
	}, root[:]
}

func TestVerifyStorageRootBranchThenLeaf(t *testing.T) {
	key := hashBytes(32)
	value := []byte{0x11, 0x22}

	proof, root := buildStorageBranchProof(t, key, value, false)

	ok, err := VerifyStorageRoot(proof, root)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyStorageRootBranchSlotShapeViolation(t *testing.T) {
	key := hashBytes(32)
	value := []byte{0x11, 0x22}

	proof, root := buildStorageBranchProof(t, key, value, true)

	ok, err := VerifyStorageRoot(proof, root)
	require.Error(t, err)
	require.False(t, ok)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestVerifyStorageRootRejectsBadPreconditions(t *testing.T) {
	key := hashBytes(32)
	value := []byte{1}
	proof, root := buildStorageLeafProof(t, key, value)

	short := proof
	short.Proof = short.Proof[:len(short.Proof)-1]
	_, err := VerifyStorageRoot(short, root)
	require.ErrorIs(t, err, ErrPrecondition)

	wrongKey := proof
	wrongKey.Key = key[:31]
	_, err = VerifyStorageRoot(wrongKey, root)
	require.ErrorIs(t, err, ErrPrecondition)
}
