package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrimes() []*Prime {
	return []*Prime{
		NewPrime(251, 9),   // Curve1174, p ≡ 3 mod 4
		NewPrime(383, 187), // M-383, p ≡ 5 mod 8
		NewPrime(521, 1),   // E-521, p ≡ 3 mod 4
	}
}

func TestAddSubNeg(t *testing.T) {
	for _, p := range testPrimes() {
		a := New(p).SetInt64(12345)
		b := New(p).SetInt64(6789)

		sum := New(p).Add(a, b)
		back := New(p).Sub(sum, b)
		assert.Equal(t, 1, back.Equal(a), "p=%v: (a+b)-b != a", p.Modulus())

		negA := New(p).Neg(a)
		zero := New(p).Add(a, negA)
		assert.Equal(t, 1, zero.IsZero(), "p=%v: a + (-a) != 0", p.Modulus())
	}
}

func TestMulInv(t *testing.T) {
	for _, p := range testPrimes() {
		a := New(p).SetInt64(98765)
		inv := New(p).Inv(a)
		one := New(p).Mul(a, inv)
		assert.Equal(t, 1, one.Equal(New(p).SetInt64(1)), "p=%v: a * a^-1 != 1", p.Modulus())
	}
}

func TestSqrtOfSquareIsRoot(t *testing.T) {
	for _, p := range testPrimes() {
		a := New(p).SetInt64(424242)
		square := New(p).Square(a)
		require.Equal(t, 1, square.Legendre(), "p=%v: a^2 must be a QR", p.Modulus())

		root := New(p).Sqrt(square)
		rootSquared := New(p).Square(root)
		assert.Equal(t, 1, rootSquared.Equal(square), "p=%v: Sqrt(a^2)^2 != a^2", p.Modulus())
	}
}

func TestBytesRoundTrip(t *testing.T) {
	for _, p := range testPrimes() {
		a := New(p).SetInt64(777)
		b, ok := New(p).SetBytes(a.Bytes())
		require.True(t, ok)
		assert.Equal(t, 1, a.Equal(b))
	}
}

func TestSetBytesRejectsNonCanonical(t *testing.T) {
	p := NewPrime(251, 9)
	overflow := p.Modulus()
	buf := make([]byte, p.ByteLen())
	overflow.FillBytes(buf)
	_, ok := New(p).SetBytes(buf)
	assert.False(t, ok, "p itself is not a canonical encoding")
}

func TestAbsIsIdempotentAndSignInvariant(t *testing.T) {
	p := NewPrime(251, 9)
	a := New(p).SetInt64(3)

	abs := New(p).Abs(a)
	absAbs := New(p).Abs(abs)
	assert.Equal(t, 1, abs.Equal(absAbs), "Abs must be idempotent")

	negA := New(p).Neg(a)
	absNeg := New(p).Abs(negA)
	assert.Equal(t, 1, abs.Equal(absNeg), "Abs(a) and Abs(-a) must agree")
}

func TestCondSwap(t *testing.T) {
	p := NewPrime(251, 9)
	a := New(p).SetInt64(1)
	b := New(p).SetInt64(2)

	CondSwap(0, a, b)
	assert.Equal(t, 1, a.Equal(New(p).SetInt64(1)))
	assert.Equal(t, 1, b.Equal(New(p).SetInt64(2)))

	CondSwap(1, a, b)
	assert.Equal(t, 1, a.Equal(New(p).SetInt64(2)))
	assert.Equal(t, 1, b.Equal(New(p).SetInt64(1)))
}

func TestSelect(t *testing.T) {
	p := NewPrime(251, 9)
	a := New(p).SetInt64(10)
	b := New(p).SetInt64(20)

	assert.Equal(t, 1, New(p).Select(a, b, 1).Equal(a))
	assert.Equal(t, 1, New(p).Select(a, b, 0).Equal(b))
}

func TestScratchpadPoolRoundTrip(t *testing.T) {
	p := NewPrime(251, 9)
	pool := NewPool()
	pad := pool.Acquire(p, WorkloadPoint)
	reg := pad.Reg(0).SetInt64(42)
	assert.Equal(t, 1, reg.Equal(New(p).SetInt64(42)))
	pool.Release(pad)

	pad2 := pool.Acquire(p, WorkloadPoint)
	assert.NotNil(t, pad2)
	pool.Release(pad2)
}

func TestLegendreOfZeroIsZero(t *testing.T) {
	p := NewPrime(251, 9)
	z := New(p).SetInt64(0)
	assert.Equal(t, 0, z.Legendre())
}

func TestModulusIsIndependentCopy(t *testing.T) {
	p := NewPrime(251, 9)
	m := p.Modulus()
	m.Add(m, big.NewInt(1))
	assert.NotEqual(t, 0, m.Cmp(p.Modulus()))
}
