package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daoleak/mptverify/mpt/batch"
	"github.com/daoleak/mptverify/mpt/witness"
)

var fBundlePath string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "verify every witness in a bundle file concurrently",
	Run:   runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVar(&fBundlePath, "witness", "", "path to a CBOR-encoded witness bundle")
	batchCmd.Flags().StringVar(&fRootHex, "root", "", "root hash shared by every witness in the bundle, hex-encoded")
	_ = batchCmd.MarkFlagRequired("witness")
}

func runBatch(cmd *cobra.Command, args []string) {
	bundle, defaultRoot, err := loadBundle(fBundlePath, fRootHex)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	items := make([]batch.Item, len(bundle.Witnesses))
	for i, w := range bundle.Witnesses {
		proof, witnessRoot := w.ToTrieProof()
		root := witnessRoot
		if defaultRoot != nil {
			root = defaultRoot
		}
		kind, err := batchKind(w.Kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "witness %d: %v\n", i, err)
			os.Exit(1)
		}
		items[i] = batch.Item{Proof: proof, Root: root, Kind: kind}
	}

	if err := batch.Verify(context.Background(), items); err != nil {
		fmt.Fprintln(os.Stderr, "batch verification failed:", err)
		os.Exit(1)
	}
	fmt.Printf("all %d witnesses verified\n", len(items))
}

// batchKind translates a witness's stored kind discriminator into the
// batch.Kind its verifier dispatch expects.
func batchKind(k witness.Kind) (batch.Kind, error) {
	switch k {
	case witness.Storage:
		return batch.Storage, nil
	case witness.State:
		return batch.State, nil
	default:
		return 0, fmt.Errorf("unknown witness kind %d", k)
	}
}

func loadBundle(path, rootHex string) (witness.Bundle, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return witness.Bundle{}, nil, fmt.Errorf("read bundle: %w", err)
	}
	var b witness.Bundle
	if err := b.UnmarshalBinary(data); err != nil {
		return witness.Bundle{}, nil, err
	}

	var root []byte
	if rootHex != "" {
		root, err = hex.DecodeString(rootHex)
		if err != nil {
			return witness.Bundle{}, nil, fmt.Errorf("decode --root: %w", err)
		}
	}
	return b, root, nil
}
