// Package batch runs independent Merkle-Patricia Trie proof
// verifications concurrently. Each verification reads only its own
// TrieProof and root and shares no state with the others, so a
// caller's "verify many proofs" workload can fan out freely.
package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/daoleak/mptverify/mpt"
	"github.com/daoleak/mptverify/mptlog"
)

// Item is one independent verification job: a proof, its root, and
// which of the two specialisations to run.
type Item struct {
	Proof mpt.TrieProof
	Root  []byte
	Kind  Kind
}

// Kind selects VerifyStorageRoot or VerifyStateRoot for an Item.
type Kind uint8

const (
	Storage Kind = iota
	State
)

// Verify runs every item concurrently, waits for all of them, and
// returns the first error encountered -- the same first-error-wins
// semantics as errgroup.Group. A failure does not cancel the other
// verifications; each one runs to completion.
func Verify(ctx context.Context, items []Item) error {
	log := mptlog.Logger().With().Str("component", "mpt.batch").Logger()

	g, _ := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			var ok bool
			var err error
			switch item.Kind {
			case Storage:
				ok, err = mpt.VerifyStorageRoot(item.Proof, item.Root)
			case State:
				ok, err = mpt.VerifyStateRoot(item.Proof, item.Root)
			default:
				return fmt.Errorf("batch: item %d has unknown kind %d", i, item.Kind)
			}
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			if !ok {
				return fmt.Errorf("item %d: verification failed with no error", i)
			}
			log.Debug().Int("item", i).Msg("verified")
			return nil
		})
	}
	return g.Wait()
}
