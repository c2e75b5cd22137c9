package rsa

import (
	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/textbook-rsa/pkg/hash"
)

// FingerprintBytes is the length of the output of Fingerprint.
const FingerprintBytes = 32

// PublicKey is the public half (n, e) of a textbook RSA key.
type PublicKey struct {
	// n = p⋅q
	n *saferith.Nat
	// e is coprime to ϕ(n)
	e *saferith.Nat
}

// N returns the modulus n = p⋅q.
// For efficiency, the value returned is a pointer to the same underlying n.
// WARNING: Do not modify the returned value.
func (pk *PublicKey) N() *saferith.Nat {
	return pk.n
}

// E returns the public exponent e.
// WARNING: Do not modify the returned value.
func (pk *PublicKey) E() *saferith.Nat {
	return pk.e
}

// Equal returns true if pk = other.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.n.Eq(other.n) == 1 && pk.e.Eq(other.e) == 1
}

// Fingerprint returns a FingerprintBytes long digest of (n, e).
//
// Equal keys give equal fingerprints, regardless of the capacity of the
// underlying numbers.
func (pk *PublicKey) Fingerprint() ([]byte, error) {
	if pk == nil || pk.n == nil || pk.e == nil {
		return nil, ErrNilKey
	}
	h := hash.New()
	if err := h.WriteAny(hash.BytesWithDomain{TheDomain: "rsa.PublicKey", Bytes: []byte{}}, pk.n, pk.e); err != nil {
		return nil, err
	}
	return h.Sum()[:FingerprintBytes], nil
}
