package batch

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/daoleak/mptverify/mpt"
	"github.com/daoleak/mptverify/mpt/rlp"
)

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

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

// buildStorageLeaf constructs a depth-1 storage proof: a leaf sitting
// directly under the root, covering the key's full nibble path.
func buildStorageLeaf(keyByte byte, value []byte) (mpt.TrieProof, []byte) {
	key := bytes.Repeat([]byte{keyByte}, 32)
	hashed := keccak256(key)
	hp := hexPrefixEncode(nibblesOf(hashed), true)
	leaf := rlp.EncodeList(rlp.EncodeString(hp), rlp.EncodeString(rlp.EncodeString(value)))
	root := keccak256(leaf)

	padded := make([]byte, mpt.MaxTrieNodeLength)
	copy(padded, leaf)

	proofValue := make([]byte, mpt.MaxStorageValueLength)
	copy(proofValue[mpt.MaxStorageValueLength-len(value):], value)

	return mpt.TrieProof{Key: key, Proof: padded, Depth: 1, Value: proofValue}, root
}

func TestVerifySucceedsOnAllPassingItems(t *testing.T) {
	proofA, rootA := buildStorageLeaf(0x01, []byte{0x10})
	proofB, rootB := buildStorageLeaf(0x02, []byte{0x20})

	items := []Item{
		{Proof: proofA, Root: rootA, Kind: Storage},
		{Proof: proofB, Root: rootB, Kind: Storage},
	}

	require.NoError(t, Verify(context.Background(), items))
}

func TestVerifyCollectsFirstError(t *testing.T) {
	proofA, rootA := buildStorageLeaf(0x01, []byte{0x10})
	proofB, _ := buildStorageLeaf(0x02, []byte{0x20})

	items := []Item{
		{Proof: proofA, Root: rootA, Kind: Storage},
		// wrong root for proofB: guaranteed to fail at the hash check.
		{Proof: proofB, Root: bytes.Repeat([]byte{0xAB}, 32), Kind: Storage},
	}

	err := Verify(context.Background(), items)
	require.Error(t, err)
}

func TestVerifyRejectsUnknownKind(t *testing.T) {
	proof, root := buildStorageLeaf(0x01, []byte{0x10})
	item := Item{Proof: proof, Root: root, Kind: Kind(99)}

	err := Verify(context.Background(), []Item{item})
	require.Error(t, err)
}
