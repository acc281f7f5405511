package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daoleak/mptverify/mpt"
	"github.com/daoleak/mptverify/mpt/witness"
)

var (
	fWitnessPath string
	fRootHex     string
)

var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "verify a TrieProof witness against an Ethereum storage root",
	Run:   runStorage,
}

func init() {
	rootCmd.AddCommand(storageCmd)
	storageCmd.Flags().StringVar(&fWitnessPath, "witness", "", "path to a CBOR-encoded TrieProof witness")
	storageCmd.Flags().StringVar(&fRootHex, "root", "", "32-byte storage root, hex-encoded")
	_ = storageCmd.MarkFlagRequired("witness")
	_ = storageCmd.MarkFlagRequired("root")
}

func runStorage(cmd *cobra.Command, args []string) {
	w, root, err := loadWitness(fWitnessPath, fRootHex)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	proof, witnessRoot := w.ToTrieProof()
	if root == nil {
		root = witnessRoot
	}

	ok, err := mpt.VerifyStorageRoot(proof, root)
	if err != nil || !ok {
		fmt.Fprintln(os.Stderr, "storage proof is invalid:", err)
		os.Exit(1)
	}
	fmt.Println("storage proof is valid")
}

// loadWitness reads a CBOR witness file and decodes the --root flag,
// shared by the storage and state subcommands.
func loadWitness(path, rootHex string) (witness.Witness, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return witness.Witness{}, nil, fmt.Errorf("read witness: %w", err)
	}
	var w witness.Witness
	if err := w.UnmarshalBinary(data); err != nil {
		return witness.Witness{}, nil, err
	}

	var root []byte
	if rootHex != "" {
		root, err = hex.DecodeString(rootHex)
		if err != nil {
			return witness.Witness{}, nil, fmt.Errorf("decode --root: %w", err)
		}
	}
	return w, root, nil
}
