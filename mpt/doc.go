// Package mpt verifies Ethereum Merkle-Patricia Trie inclusion proofs:
// given a key, a value, a concatenated proof path and a root hash, it
// decides whether the proof authenticates the value at the key under
// that root. See the rlp subpackage for the RLP decoder it is built on.
package mpt
