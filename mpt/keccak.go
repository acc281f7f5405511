package mpt

import "golang.org/x/crypto/sha3"

// keccak256 hashes data with the Keccak-256 permutation Ethereum uses
// for trie node and key hashing. This is NOT the NIST SHA3-256
// variant, hence NewLegacyKeccak256 rather than sha3.New256.
func keccak256(data []byte) [KeyLength]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out [KeyLength]byte
	h.Sum(out[:0])
	return out
}
