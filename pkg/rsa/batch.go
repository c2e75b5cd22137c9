package rsa

import (
	"context"
	"fmt"

	"github.com/cronokirby/saferith"
	"golang.org/x/sync/errgroup"
)

// PrimePair holds the two factors of a single key.
type PrimePair struct {
	P, Q *saferith.Nat
}

// KeyGenBatch runs KeyGen for every pair, using at most workers goroutines.
// If workers <= 0, every pair gets its own goroutine.
//
// Keys are returned in the same order as pairs. The first failure cancels the
// remaining work and is returned annotated with the index of its pair.
func KeyGenBatch(ctx context.Context, pairs []PrimePair, workers int) ([]*SecretKey, error) {
	keys := make([]*SecretKey, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			sk, err := KeyGen(ctx, pair.P, pair.Q)
			if err != nil {
				return fmt.Errorf("rsa.KeyGenBatch: pair %d: %w", i, err)
			}
			keys[i] = sk
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return keys, nil
}
