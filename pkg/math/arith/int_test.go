package arith

import (
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInt(t testing.TB, s string) *big.Int {
	x, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "failed to parse %q", s)
	return x
}

func natFromInt(x *big.Int) *saferith.Nat {
	return new(saferith.Nat).SetBig(x, x.BitLen())
}

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"102312039", "13019230129310921231231244", "3"},
		{"2221", "2064", "1"},
		{"0", "0", "0"},
		{"0", "17", "17"},
		{"17", "0", "17"},
		{"12", "18", "6"},
		{"-12", "18", "6"},
		{"-12", "-18", "6"},
		{"340282366920938463463374607431768211456", "18446744073709551616", "18446744073709551616"},
	}
	for _, tt := range tests {
		a, b, want := mustInt(t, tt.a), mustInt(t, tt.b), mustInt(t, tt.want)
		assert.Equal(t, 0, GCD(a, b).Cmp(want), "gcd(%s, %s)", tt.a, tt.b)
		assert.Equal(t, 0, GCD(b, a).Cmp(want), "gcd(%s, %s)", tt.b, tt.a)
	}
}

func TestGCD_DoesNotModifyInputs(t *testing.T) {
	a, b := big.NewInt(-48), big.NewInt(36)
	_ = GCD(a, b)
	assert.Equal(t, int64(-48), a.Int64())
	assert.Equal(t, int64(36), b.Int64())
}

func TestGCD_Properties(t *testing.T) {
	r := mrand.New(mrand.NewSource(0))
	bound := new(big.Int).Lsh(one, 512)
	for i := 0; i < 100; i++ {
		// a shared factor makes the gcd non trivial most of the time
		c := new(big.Int).Rand(r, new(big.Int).Lsh(one, 64))
		a := new(big.Int).Mul(new(big.Int).Rand(r, bound), c)
		b := new(big.Int).Mul(new(big.Int).Rand(r, bound), c)
		if a.Sign() == 0 && b.Sign() == 0 {
			continue
		}

		g := GCD(a, b)
		require.Equal(t, 0, g.Cmp(GCD(b, a)), "gcd should be symmetric")
		require.Equal(t, 1, g.Sign())

		var rem big.Int
		require.Zero(t, rem.Mod(a, g).Sign(), "gcd should divide a")
		require.Zero(t, rem.Mod(b, g).Sign(), "gcd should divide b")

		// no larger common divisor: a/g and b/g are coprime
		aq := new(big.Int).Quo(a, g)
		bq := new(big.Int).Quo(b, g)
		require.True(t, IsCoprime(aq, bq))

		expected := new(big.Int).GCD(nil, nil, a, b)
		require.Equal(t, 0, g.Cmp(expected))
	}
}

func TestGCDNat(t *testing.T) {
	a := natFromInt(mustInt(t, "102312039"))
	b := natFromInt(mustInt(t, "13019230129310921231231244"))
	three := new(saferith.Nat).SetUint64(3)
	assert.Equal(t, saferith.Choice(1), GCDNat(a, b).Eq(three))
	assert.Equal(t, saferith.Choice(1), GCDNat(b, a).Eq(three))

	a = new(saferith.Nat).SetUint64(2221)
	b = new(saferith.Nat).SetUint64(2064)
	oneNat := new(saferith.Nat).SetUint64(1)
	assert.Equal(t, saferith.Choice(1), GCDNat(a, b).Eq(oneNat))

	zero := new(saferith.Nat).SetUint64(0)
	assert.Equal(t, saferith.Choice(1), GCDNat(zero, b).Eq(b))
	assert.Equal(t, saferith.Choice(1), GCDNat(b, zero).Eq(b))
	assert.Equal(t, saferith.Choice(1), GCDNat(zero, zero).EqZero())
}

func TestGCDNat_MatchesGCD(t *testing.T) {
	r := mrand.New(mrand.NewSource(1))
	bound := new(big.Int).Lsh(one, 1024)
	for i := 0; i < 50; i++ {
		a := new(big.Int).Rand(r, bound)
		b := new(big.Int).Rand(r, bound)
		expected := GCD(a, b)
		actual := GCDNat(natFromInt(a), natFromInt(b))
		assert.Equal(t, 0, actual.Big().Cmp(expected), "gcd(%v, %v)", a, b)
	}
}

func TestIsCoprime(t *testing.T) {
	assert.True(t, IsCoprime(big.NewInt(17), big.NewInt(20)))
	assert.False(t, IsCoprime(big.NewInt(18), big.NewInt(20)))
	assert.True(t, IsCoprime(big.NewInt(1), big.NewInt(0)))
	assert.False(t, IsCoprime(big.NewInt(0), big.NewInt(0)))
}

// This exists to save the results of functions we want to benchmark, to avoid
// having them optimized away.
var (
	resultInt *big.Int
	resultNat *saferith.Nat
)

func benchmarkOperands(bits uint) (*big.Int, *big.Int) {
	r := mrand.New(mrand.NewSource(0))
	bound := new(big.Int).Lsh(one, bits)
	return new(big.Int).Rand(r, bound), new(big.Int).Rand(r, bound)
}

func BenchmarkGCD(b *testing.B) {
	x, y := benchmarkOperands(2048)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		resultInt = GCD(x, y)
	}
}

func BenchmarkGCDNat(b *testing.B) {
	x, y := benchmarkOperands(2048)
	xNat, yNat := natFromInt(x), natFromInt(y)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		resultNat = GCDNat(xNat, yNat)
	}
}
