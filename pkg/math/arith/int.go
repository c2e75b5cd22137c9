package arith

import (
	"math/big"

	"github.com/cronokirby/saferith"
)

var one = big.NewInt(1)

// GCD returns gcd(a, b) for arbitrary signed integers.
//
// It follows the Euclidean identity
//
//	gcd(a, b) = b                if a = 0
//	gcd(a, b) = gcd(b mod a, a)  otherwise
//
// unrolled into a loop. Operands are taken by absolute value, so the result is
// never negative, and their order does not matter. gcd(0, 0) = 0.
// Neither a nor b is modified.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for x.Sign() != 0 {
		// y mod x < x, so x strictly decreases towards 0
		x, y = new(big.Int).Mod(y, x), x
	}
	return y
}

// GCDNat is the natural number counterpart of GCD.
//
// Each reduction step builds a saferith.Modulus from the current non-zero
// accumulator, which leaks its true length. This is fine, since nothing here is
// meant to be constant time.
func GCDNat(a, b *saferith.Nat) *saferith.Nat {
	x := new(saferith.Nat).SetNat(a)
	y := new(saferith.Nat).SetNat(b)
	for x.EqZero() != 1 {
		m := saferith.ModulusFromNat(x)
		x, y = new(saferith.Nat).Mod(y, m), x
	}
	return y
}

// IsCoprime returns true if gcd(a,b) = 1.
func IsCoprime(a, b *big.Int) bool {
	return GCD(a, b).Cmp(one) == 0
}
