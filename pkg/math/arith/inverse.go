package arith

import (
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"
)

// ModInverse returns d ∈ [0, m) such that e⋅d ≡ 1 (mod m).
//
// d is computed with the extended Euclidean algorithm, keeping track of the
// Bézout coefficient of e only. If gcd(e, m) ≠ 1 no inverse exists, and an error
// wrapping ErrNoInverse is returned instead of a value.
func ModInverse(e, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("arith.ModInverse: %w", ErrInvalidModulus)
	}

	// invariant: rᵢ ≡ tᵢ⋅e (mod m)
	r0, r1 := new(big.Int).Set(m), new(big.Int).Mod(e, m)
	t0, t1 := new(big.Int), big.NewInt(1)

	q := new(big.Int)
	for r1.Sign() != 0 {
		q.Quo(r0, r1)
		r0, r1 = r1, new(big.Int).Sub(r0, new(big.Int).Mul(q, r1))
		t0, t1 = t1, new(big.Int).Sub(t0, new(big.Int).Mul(q, t1))
	}

	// r0 = gcd(e, m)
	if r0.Cmp(one) != 0 {
		return nil, fmt.Errorf("arith.ModInverse: gcd(%v, %v) = %v: %w", e, m, r0, ErrNoInverse)
	}
	return t0.Mod(t0, m), nil
}

// ModInverseNat is equivalent to ModInverse, for natural numbers.
func ModInverseNat(e, m *saferith.Nat) (*saferith.Nat, error) {
	d, err := ModInverse(e.Big(), m.Big())
	if err != nil {
		return nil, err
	}
	return new(saferith.Nat).SetBig(d, m.TrueLen()), nil
}
