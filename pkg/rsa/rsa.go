// Package rsa derives textbook RSA key pairs from caller supplied primes.
//
// The keys are meant for teaching and testing. Primality of the inputs is never
// checked, the public exponent is found by exhaustive search, and none of the
// arithmetic is constant time.
package rsa

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/textbook-rsa/pkg/math/arith"
)

// KeyGen derives the key pair (n, e, d) from the primes p and q.
//
//   - n = p⋅q
//   - ϕ = (p-1)(q-1)
//   - e = SelectExponent(ϕ)
//   - d = e⁻¹ mod ϕ
//
// The result only depends on p and q. Both are assumed to be distinct primes;
// values below 2 are rejected, anything else is used as is.
func KeyGen(ctx context.Context, p, q *saferith.Nat) (*SecretKey, error) {
	if err := checkFactor(p); err != nil {
		return nil, fmt.Errorf("rsa.KeyGen: p: %w", err)
	}
	if err := checkFactor(q); err != nil {
		return nil, fmt.Errorf("rsa.KeyGen: q: %w", err)
	}
	oneNat := new(saferith.Nat).SetUint64(1)

	n := new(saferith.Nat).Mul(p, q, -1)

	pMinus1 := new(saferith.Nat).Sub(p, oneNat, -1)
	qMinus1 := new(saferith.Nat).Sub(q, oneNat, -1)
	phi := new(saferith.Nat).Mul(pMinus1, qMinus1, -1)

	e, err := SelectExponent(ctx, phi)
	if err != nil {
		return nil, fmt.Errorf("rsa.KeyGen: public exponent: %w", err)
	}

	d, err := arith.ModInverseNat(e, phi)
	if err != nil {
		return nil, fmt.Errorf("rsa.KeyGen: private exponent: %w", err)
	}

	return &SecretKey{
		PublicKey: &PublicKey{
			n: n,
			e: e,
		},
		d:   d,
		p:   new(saferith.Nat).SetNat(p),
		q:   new(saferith.Nat).SetNat(q),
		phi: phi,
	}, nil
}

func checkFactor(x *saferith.Nat) error {
	if x == nil {
		return ErrPrimeTooSmall
	}
	twoNat := new(saferith.Nat).SetUint64(2)
	if _, _, lt := x.Cmp(twoNat); lt == 1 {
		return ErrPrimeTooSmall
	}
	return nil
}

// ParsePrime reads a non-negative decimal integer, ignoring surrounding whitespace.
//
// The value is not checked for primality.
func ParsePrime(s string) (*saferith.Nat, error) {
	s = strings.TrimSpace(s)
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("rsa.ParsePrime: %q: %w", s, ErrParse)
	}
	if x.Sign() < 0 {
		return nil, fmt.Errorf("rsa.ParsePrime: %q is negative: %w", s, ErrParse)
	}
	return new(saferith.Nat).SetBig(x, x.BitLen()), nil
}
