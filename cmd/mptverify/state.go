package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daoleak/mptverify/mpt"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "verify a TrieProof witness against an Ethereum state root",
	Run:   runState,
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.Flags().StringVar(&fWitnessPath, "witness", "", "path to a CBOR-encoded TrieProof witness")
	stateCmd.Flags().StringVar(&fRootHex, "root", "", "32-byte state root, hex-encoded")
	_ = stateCmd.MarkFlagRequired("witness")
	_ = stateCmd.MarkFlagRequired("root")
}

func runState(cmd *cobra.Command, args []string) {
	w, root, err := loadWitness(fWitnessPath, fRootHex)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	proof, witnessRoot := w.ToTrieProof()
	if root == nil {
		root = witnessRoot
	}

	ok, err := mpt.VerifyStateRoot(proof, root)
	if err != nil || !ok {
		fmt.Fprintln(os.Stderr, "state proof is invalid:", err)
		os.Exit(1)
	}
	fmt.Println("state proof is valid")
}
