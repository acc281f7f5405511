package mpt

// Compile-time configuration constants for the sizes involved in
// Ethereum trie proof verification. None of these are runtime-tunable;
// a caller needing a different shape links against a different build
// of this package.
const (
	// MaxTrieNodeLength is the worst-case RLP-framed byte length of any
	// single Ethereum trie node: a branch with 16 x 32-byte child hashes
	// (33 bytes each with their string header), an empty value slot (1
	// byte) and a 3-byte list header, 16*33 + 1 + 3 = 532.
	MaxTrieNodeLength = 532

	// MaxNumFields is the branch-node slot count: 16 nibble-indexed
	// children plus a trailing value slot.
	MaxNumFields = 17

	// KeyLength is the byte length of a hashed key (keccak256 output).
	KeyLength = 32

	// NibbleLength is the nibble expansion length of a hashed key.
	NibbleLength = 2 * KeyLength

	// StorageKeyLength is the byte length of an unhashed Ethereum storage
	// slot key.
	StorageKeyLength = 32

	// StateKeyLength is the byte length of an unhashed Ethereum address
	// key.
	StateKeyLength = 20

	// MaxStorageValueLength is the byte length of the value buffer for a
	// storage proof.
	MaxStorageValueLength = 32

	// MaxAccountStateLength is the worst-case RLP-encoded length of the
	// Ethereum account tuple (nonce, balance, storageRoot, codeHash),
	// including its own list header.
	MaxAccountStateLength = 134
)

// NodeType tags a resolved trie node: BRANCH for a 17-field list, LEAF
// or EXTENSION for a 2-field list depending on the hex-prefix
// terminator bit.
type NodeType uint8

const (
	Branch NodeType = iota
	Leaf
	Extension
)

func (t NodeType) String() string {
	switch t {
	case Branch:
		return "BRANCH"
	case Leaf:
		return "LEAF"
	case Extension:
		return "EXTENSION"
	default:
		return "UNKNOWN"
	}
}
