// Package point implements the unified Edwards/Montgomery point
// arithmetic engine (spec.md §4.3), the Montgomery ladder (§4.4), and
// Decaf compression (§4.3). Every binary operation writes into its
// receiver, matching the mutable-point model of the data model; Clone
// duplicates coordinates so two points never share storage.
package point

import (
	"math/big"

	"github.com/emc2/safecurves/curve"
	"github.com/emc2/safecurves/field"
)

// Extended is a twisted-Edwards point in extended coordinates (X:Y:Z:T)
// with the invariant T·Z = X·Y maintained after every operation.
type Extended struct {
	C    *curve.Params
	X, Y, Z, T *field.Element

	affine affineCache
}

type affineCache struct {
	valid bool
	x, y  *field.Element
}

// NewExtended returns the neutral element (0:1:1:0) on c.
func NewExtended(c *curve.Params) *Extended {
	f := c.F
	return &Extended{
		C: c,
		X: field.New(f).SetInt64(0),
		Y: field.New(f).SetInt64(1),
		Z: field.New(f).SetInt64(1),
		T: field.New(f).SetInt64(0),
	}
}

// FromAffine builds an extended point from affine (x,y), checking the
// point lies on c's twisted-Edwards curve.
func FromAffine(c *curve.Params, x, y *field.Element) (*Extended, error) {
	f := c.F
	lhs := field.New(f).Square(x)
	lhs.Mul(lhs, c.EdwardsA)
	y2 := field.New(f).Square(y)
	lhs.Add(lhs, y2)

	rhs := field.New(f).Square(x)
	rhs.Mul(rhs, y2)
	rhs.Mul(rhs, c.EdwardsD)
	rhs.Add(rhs, field.New(f).SetInt64(1))

	if lhs.Equal(rhs) != 1 {
		return nil, ErrInvalidPoint
	}

	p := &Extended{C: c, X: x.Clone(), Y: y.Clone(), Z: field.New(f).SetInt64(1)}
	p.T = field.New(f).Mul(p.X, p.Y)
	return p, nil
}

// Clone returns an independent copy of p.
func (p *Extended) Clone() *Extended {
	return &Extended{
		C: p.C,
		X: p.X.Clone(), Y: p.Y.Clone(), Z: p.Z.Clone(), T: p.T.Clone(),
	}
}

// Set copies q's coordinates into p and returns p.
func (p *Extended) Set(q *Extended) *Extended {
	p.C = q.C
	p.X.Set(q.X)
	p.Y.Set(q.Y)
	p.Z.Set(q.Z)
	p.T.Set(q.T)
	p.affine = affineCache{}
	return p
}

// Neutral resets p to the identity (0:1:1:0).
func (p *Extended) Neutral() *Extended {
	p.X.SetInt64(0)
	p.Y.SetInt64(1)
	p.Z.SetInt64(1)
	p.T.SetInt64(0)
	p.affine = affineCache{}
	return p
}

// Negate sets p = -a: (-X:Y:Z:-T).
func (p *Extended) Negate(a *Extended) *Extended {
	p.C = a.C
	p.X.Neg(a.X)
	p.Y.Set(a.Y)
	p.Z.Set(a.Z)
	p.T.Neg(a.T)
	p.affine = affineCache{}
	return p
}

// Add sets p = a + b using the Hisil-Wong-Carter-Dawson 8M extended
// addition formula (spec.md §4.3), writing every intermediate into pad's
// registers before the fixed-order writeback to p's coordinates.
func (p *Extended) Add(a, b *Extended, pad *field.Scratchpad) *Extended {
	A := pad.Reg(0).Mul(a.X, b.X)
	B := pad.Reg(1).Mul(a.Y, b.Y)
	C := pad.Reg(2).Mul(a.T, b.T)
	C.Mul(C, a.C.EdwardsD)
	D := pad.Reg(3).Mul(a.Z, b.Z)

	E := pad.Reg(4).Add(a.X, a.Y)
	sumXY := pad.Reg(5)
	sumXY.Add(b.X, b.Y)
	E.Mul(E, sumXY)
	E.Sub(E, A)
	E.Sub(E, B)

	F := pad.Reg(6).Sub(D, C)
	G := pad.Reg(7).Add(D, C)
	H := pad.Reg(8).Mul(a.C.EdwardsA, A)
	H.Sub(B, H)

	x3 := field.New(a.C.F).Mul(E, F)
	y3 := field.New(a.C.F).Mul(G, H)
	t3 := field.New(a.C.F).Mul(E, H)
	z3 := field.New(a.C.F).Mul(F, G)

	p.C = a.C
	p.X, p.Y, p.Z, p.T = x3, y3, z3, t3
	p.affine = affineCache{}
	return p
}

// Double sets p = 2a using the dedicated extended-coordinates doubling
// formula (4M+4S), cheaper than routing through Add.
func (p *Extended) Double(a *Extended, pad *field.Scratchpad) *Extended {
	A := pad.Reg(0).Square(a.X)
	B := pad.Reg(1).Square(a.Y)
	C := pad.Reg(2).Square(a.Z)
	C.MulSmall(C, 2)
	D := pad.Reg(3).Mul(a.C.EdwardsA, A)

	sumXY := pad.Reg(4).Add(a.X, a.Y)
	E := pad.Reg(5).Square(sumXY)
	E.Sub(E, A)
	E.Sub(E, B)

	G := pad.Reg(6).Add(D, B)
	F := pad.Reg(7).Sub(G, C)
	H := pad.Reg(8).Sub(D, B)

	x3 := field.New(a.C.F).Mul(E, F)
	y3 := field.New(a.C.F).Mul(G, H)
	t3 := field.New(a.C.F).Mul(E, H)
	z3 := field.New(a.C.F).Mul(F, G)

	p.C = a.C
	p.X, p.Y, p.Z, p.T = x3, y3, z3, t3
	p.affine = affineCache{}
	return p
}

// Affine returns the (x,y) affine coordinates via a single field
// inversion, idempotent: repeated calls reuse the cached result.
func (p *Extended) Affine() (x, y *field.Element) {
	if p.affine.valid {
		return p.affine.x.Clone(), p.affine.y.Clone()
	}
	zInv := field.New(p.C.F).Inv(p.Z)
	x = field.New(p.C.F).Mul(p.X, zInv)
	y = field.New(p.C.F).Mul(p.Y, zInv)
	p.affine = affineCache{valid: true, x: x, y: y}
	return x.Clone(), y.Clone()
}

// Equal reports whether p and q represent the same affine point.
func (p *Extended) Equal(q *Extended) bool {
	// Cross-multiply to avoid requiring either point to be already scaled:
	// (X1*Z2 == X2*Z1) && (Y1*Z2 == Y2*Z1).
	f := p.C.F
	l := field.New(f).Mul(p.X, q.Z)
	r := field.New(f).Mul(q.X, p.Z)
	if l.Equal(r) != 1 {
		return false
	}
	l.Mul(p.Y, q.Z)
	r.Mul(q.Y, p.Z)
	return l.Equal(r) == 1
}

// IsNeutral reports whether p is the identity element.
func (p *Extended) IsNeutral() bool {
	f := p.C.F
	x, y := p.Affine()
	return x.Equal(field.New(f).SetInt64(0)) == 1 && y.Equal(field.New(f).SetInt64(1)) == 1
}

// ScalarMul sets p = k*a via left-to-right binary double-and-add,
// processing k.BitLen() bits. Unlike MulX, whose step count is fixed by
// the curve, the number of steps and of Add calls here depends on k's bit
// length and Hamming weight, so it must only be
// used on public scalars (the scalar-identity/homomorphism/prime-order/
// cofactor properties of spec.md §8, and tests); secret-scalar
// multiplication goes through the Montgomery ladder (MulX) instead.
func (p *Extended) ScalarMul(a *Extended, k *big.Int, pad *field.Scratchpad) *Extended {
	result := NewExtended(a.C)
	if k.Sign() == 0 {
		return p.Set(result)
	}
	base := a.Clone()
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result.Add(result, base, pad)
		}
		if i != k.BitLen()-1 {
			base.Double(base, pad)
		}
	}
	return p.Set(result)
}
