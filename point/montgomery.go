package point

import (
	"math/big"

	"github.com/emc2/safecurves/curve"
	"github.com/emc2/safecurves/field"
)

// Montgomery is an x-only Montgomery-curve point (X:Z), the
// ladder-optimized representation of spec.md §4.3/§4.4.
type Montgomery struct {
	C    *curve.Params
	X, Z *field.Element
}

// NewMontgomeryX wraps an x-coordinate as the projective pair (x:1).
func NewMontgomeryX(c *curve.Params, x *field.Element) *Montgomery {
	return &Montgomery{C: c, X: x.Clone(), Z: field.New(c.F).SetInt64(1)}
}

// Infinity returns the x-only point at infinity (1:0), the ladder's
// identity for R0 at the start of MulX.
func Infinity(c *curve.Params) *Montgomery {
	f := c.F
	return &Montgomery{C: c, X: field.New(f).SetInt64(1), Z: field.New(f).SetInt64(0)}
}

// Clone returns an independent copy.
func (m *Montgomery) Clone() *Montgomery {
	return &Montgomery{C: m.C, X: m.X.Clone(), Z: m.Z.Clone()}
}

// Affine returns the affine x-coordinate via one field inversion.
func (m *Montgomery) Affine() *field.Element {
	zInv := field.New(m.C.F).Inv(m.Z)
	return field.New(m.C.F).Mul(m.X, zInv)
}

// ladderStep computes (P+Q, 2P) from (P, Q, P-Q) with no branches, per the
// differential-addition-and-doubling formula of spec.md §4.3.
func ladderStep(c *curve.Params, xP, zP, xQ, zQ, xDiff, zDiff *field.Element, pad *field.Scratchpad) (xSum, zSum, x2P, z2P *field.Element) {
	f := c.F

	A := pad.Reg(0).Add(xP, zP)
	B := pad.Reg(1).Sub(xP, zP)
	Cc := pad.Reg(2).Add(xQ, zQ)
	D := pad.Reg(3).Sub(xQ, zQ)

	DA := pad.Reg(4).Mul(D, A)
	CB := pad.Reg(5).Mul(Cc, B)

	sumTerm := field.New(f).Add(DA, CB)
	xSum = field.New(f).Square(sumTerm)
	xSum.Mul(xSum, zDiff)

	diffTerm := field.New(f).Sub(DA, CB)
	zSum = field.New(f).Square(diffTerm)
	zSum.Mul(zSum, xDiff)

	AA := pad.Reg(6).Square(A)
	BB := pad.Reg(7).Square(B)
	E := pad.Reg(8).Sub(AA, BB)

	x2P = field.New(f).Mul(AA, BB)

	t := field.New(f).Mul(c.LadderA24, E)
	t.Add(t, BB)
	z2P = field.New(f).Mul(E, t)

	return xSum, zSum, x2P, z2P
}

// MulX computes x(k·P) via the Montgomery ladder. The bit length processed
// is c.PrimeOrder.BitLen(), a fixed function of the curve, never of k, and
// there is no early exit. It is not constant-time: field.CondSwap branches
// on each k-derived swap bit, and the math/big arithmetic underneath runs
// in value-dependent time.
func MulX(c *curve.Params, k *big.Int, xP *field.Element, pad *field.Scratchpad) *field.Element {
	f := c.F
	bitLen := c.PrimeOrder.BitLen()

	r0 := Infinity(c)
	r1 := NewMontgomeryX(c, xP)

	prevBit := 0
	for i := bitLen - 1; i >= 0; i-- {
		bit := int(k.Bit(i))
		swap := bit ^ prevBit
		field.CondSwap(swap, r0.X, r1.X)
		field.CondSwap(swap, r0.Z, r1.Z)

		xSum, zSum, x2, z2 := ladderStep(c, r0.X, r0.Z, r1.X, r1.Z, xP, field.New(f).SetInt64(1), pad)
		r0.X, r0.Z = x2, z2
		r1.X, r1.Z = xSum, zSum

		prevBit = bit
	}
	field.CondSwap(prevBit, r0.X, r1.X)
	field.CondSwap(prevBit, r0.Z, r1.Z)

	return r0.Affine()
}
