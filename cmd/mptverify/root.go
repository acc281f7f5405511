// Package main is mptverify, a developer CLI for exercising the mpt
// package directly against witness fixtures.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daoleak/mptverify/mptlog"
)

var fDebug bool

var rootCmd = &cobra.Command{
	Use:   "mptverify",
	Short: "verify Ethereum Merkle-Patricia Trie proofs against a root hash",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		mptlog.SetDebug(fDebug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&fDebug, "debug", false, "enable verbose node-by-node logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
