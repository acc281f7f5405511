// Package witness provides serialization helpers to encode a TrieProof
// fixture into a []byte and back, for use by tests and the mptverify
// CLI.
//
// Binary protocol
//
// A witness file is a single CBOR map with the fields of Witness
// below: key, proof, depth, value, root, kind. There is no JSON
// witness encoding:
// nothing in this repository's inputs needs a human-editable form, and
// CBOR keeps the binary proof bytes from being base64-bloated the way a
// JSON encoding would require.
package witness

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/daoleak/mptverify/mpt"
)

// Kind records which of the two trie shapes a Witness holds, so a
// bundle of witnesses (Bundle) can mix storage and state proofs and
// still be dispatched to the right verifier for each entry.
type Kind uint8

const (
	Storage Kind = iota
	State
)

func (k Kind) String() string {
	if k == State {
		return "state"
	}
	return "storage"
}

// Witness is the CBOR-serializable form of an mpt.TrieProof plus the
// root hash it is checked against, so a single file fully describes
// one verification call.
type Witness struct {
	Key   []byte `cbor:"key"`
	Proof []byte `cbor:"proof"`
	Depth int    `cbor:"depth"`
	Value []byte `cbor:"value"`
	Root  []byte `cbor:"root"`
	Kind  Kind   `cbor:"kind"`
}

// FromProof builds a Witness from an mpt.TrieProof, its root, and
// which of the two verifiers it is meant for.
func FromProof(proof mpt.TrieProof, root []byte, kind Kind) Witness {
	return Witness{
		Key:   proof.Key,
		Proof: proof.Proof,
		Depth: proof.Depth,
		Value: proof.Value,
		Root:  root,
		Kind:  kind,
	}
}

// ToTrieProof reconstructs the mpt.TrieProof and root this witness encodes.
func (w Witness) ToTrieProof() (mpt.TrieProof, []byte) {
	return mpt.TrieProof{
		Key:   w.Key,
		Proof: w.Proof,
		Depth: w.Depth,
		Value: w.Value,
	}, w.Root
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (w Witness) MarshalBinary() ([]byte, error) {
	// plain has Witness's fields but not its methods, so cbor encodes
	// it as a map instead of calling MarshalBinary again.
	type plain Witness
	data, err := cbor.Marshal(plain(w))
	if err != nil {
		return nil, fmt.Errorf("witness: marshal: %w", err)
	}
	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (w *Witness) UnmarshalBinary(data []byte) error {
	type plain Witness
	if err := cbor.Unmarshal(data, (*plain)(w)); err != nil {
		return fmt.Errorf("witness: unmarshal: %w", err)
	}
	return nil
}

// WriteTo encodes w and writes it to dst.
func (w Witness) WriteTo(dst io.Writer) (int64, error) {
	data, err := w.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := dst.Write(data)
	return int64(n), err
}

// ReadFrom reads every byte of src and decodes it into w.
func (w *Witness) ReadFrom(src io.Reader) (int64, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return 0, err
	}
	return int64(len(data)), w.UnmarshalBinary(data)
}

// Bundle is a named collection of witnesses, the unit `mptverify batch`
// consumes: every entry is verified independently (mpt/batch).
type Bundle struct {
	Witnesses []Witness `cbor:"witnesses"`
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Bundle) MarshalBinary() ([]byte, error) {
	type plain Bundle
	data, err := cbor.Marshal(plain(b))
	if err != nil {
		return nil, fmt.Errorf("witness: marshal bundle: %w", err)
	}
	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Bundle) UnmarshalBinary(data []byte) error {
	type plain Bundle
	if err := cbor.Unmarshal(data, (*plain)(b)); err != nil {
		return fmt.Errorf("witness: unmarshal bundle: %w", err)
	}
	return nil
}
