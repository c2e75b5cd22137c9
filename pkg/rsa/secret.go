package rsa

import (
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/textbook-rsa/pkg/math/arith"
)

// SecretKey is a full textbook RSA key pair.
//
// It embeds the PublicKey (n, e), and additionally holds the private exponent d
// together with the factors it was derived from.
type SecretKey struct {
	*PublicKey
	// d = e⁻¹ mod ϕ
	d *saferith.Nat
	// p, q such that n = p⋅q
	p, q *saferith.Nat
	// phi = ϕ = (p-1)(q-1)
	phi *saferith.Nat
}

// D returns the private exponent d.
func (sk *SecretKey) D() *saferith.Nat {
	return sk.d
}

// P returns the first of the two factors composing this key.
func (sk *SecretKey) P() *saferith.Nat {
	return sk.p
}

// Q returns the second of the two factors composing this key.
func (sk *SecretKey) Q() *saferith.Nat {
	return sk.q
}

// Phi returns ϕ = (P-1)(Q-1).
//
// This is the result of the totient function ϕ(N) when P and Q are distinct
// primes, and is the modulus both exponents are related by.
func (sk *SecretKey) Phi() *saferith.Nat {
	return sk.phi
}

// Validate checks that the values held by sk are consistent:
//   - n = p⋅q
//   - ϕ = (p-1)(q-1)
//   - gcd(e, ϕ) = 1
//   - e⋅d ≡ 1 (mod ϕ)
//
// It does not check that p and q are prime.
func (sk *SecretKey) Validate() error {
	if sk == nil || sk.PublicKey == nil || sk.n == nil || sk.e == nil ||
		sk.d == nil || sk.p == nil || sk.q == nil || sk.phi == nil {
		return ErrNilKey
	}
	oneNat := new(saferith.Nat).SetUint64(1)

	n := new(saferith.Nat).Mul(sk.p, sk.q, -1)
	if n.Eq(sk.n) != 1 {
		return fmt.Errorf("rsa.SecretKey: n ≠ p⋅q: %w", ErrInvalidKey)
	}

	pMinus1 := new(saferith.Nat).Sub(sk.p, oneNat, -1)
	qMinus1 := new(saferith.Nat).Sub(sk.q, oneNat, -1)
	phi := new(saferith.Nat).Mul(pMinus1, qMinus1, -1)
	if phi.Eq(sk.phi) != 1 {
		return fmt.Errorf("rsa.SecretKey: ϕ ≠ (p-1)(q-1): %w", ErrInvalidKey)
	}

	if arith.GCDNat(sk.e, sk.phi).Eq(oneNat) != 1 {
		return fmt.Errorf("rsa.SecretKey: gcd(e, ϕ) ≠ 1: %w", ErrInvalidKey)
	}

	phiMod := saferith.ModulusFromNat(sk.phi)
	ed := new(saferith.Nat).ModMul(sk.e, sk.d, phiMod)
	if ed.Eq(oneNat) != 1 {
		return fmt.Errorf("rsa.SecretKey: e⋅d ≢ 1 (mod ϕ): %w", ErrInvalidKey)
	}
	return nil
}
