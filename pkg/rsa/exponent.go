package rsa

import (
	"context"
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/textbook-rsa/pkg/math/arith"
)

// cancelCheckInterval is the number of candidates SelectExponent tests between
// two looks at its context.
const cancelCheckInterval = 1 << 10

// SelectExponent returns the largest e < ϕ-1 such that gcd(e, ϕ) = 1.
//
// Candidates are tested in descending order starting from ϕ-2, and 1 always
// ends the search. The only exception is ϕ = 2, where ϕ-1 = 1 is returned
// directly. The result v therefore always satisfies 1 ≤ v < ϕ.
//
// For large ϕ this can take a very long time. ctx is checked periodically, and
// its error is returned if it is done before a candidate is found.
func SelectExponent(ctx context.Context, phi *saferith.Nat) (*saferith.Nat, error) {
	oneNat := new(saferith.Nat).SetUint64(1)
	twoNat := new(saferith.Nat).SetUint64(2)

	if _, _, lt := phi.Cmp(twoNat); lt == 1 {
		return nil, fmt.Errorf("rsa.SelectExponent: %w", ErrTotientTooSmall)
	}

	candidate := new(saferith.Nat).Sub(phi, oneNat, -1)
	for i := 0; ; i++ {
		if candidate.Eq(oneNat) == 1 {
			return candidate, nil
		}
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("rsa.SelectExponent: %w", err)
			}
		}
		candidate.Sub(candidate, oneNat, -1)
		if arith.GCDNat(candidate, phi).Eq(oneNat) == 1 {
			return candidate, nil
		}
	}
}
