package point

import (
	"github.com/emc2/safecurves/curve"
	"github.com/emc2/safecurves/field"
)

// Projective is a twisted-Edwards point in projective coordinates (X:Y:Z),
// affine (x,y) = (X/Z, Y/Z).
type Projective struct {
	C       *curve.Params
	X, Y, Z *field.Element

	affine affineCache
}

// NewProjective returns the neutral element (0:1:1) on c.
func NewProjective(c *curve.Params) *Projective {
	f := c.F
	return &Projective{
		C: c,
		X: field.New(f).SetInt64(0),
		Y: field.New(f).SetInt64(1),
		Z: field.New(f).SetInt64(1),
	}
}

// ProjectiveFromAffine builds a projective point from affine (x,y),
// checking it lies on c's curve.
func ProjectiveFromAffine(c *curve.Params, x, y *field.Element) (*Projective, error) {
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
	return &Projective{C: c, X: x.Clone(), Y: y.Clone(), Z: field.New(f).SetInt64(1)}, nil
}

// Clone returns an independent copy.
func (p *Projective) Clone() *Projective {
	return &Projective{C: p.C, X: p.X.Clone(), Y: p.Y.Clone(), Z: p.Z.Clone()}
}

// Set copies q into p.
func (p *Projective) Set(q *Projective) *Projective {
	p.C = q.C
	p.X.Set(q.X)
	p.Y.Set(q.Y)
	p.Z.Set(q.Z)
	p.affine = affineCache{}
	return p
}

// Neutral resets p to the identity (0:1:1).
func (p *Projective) Neutral() *Projective {
	p.X.SetInt64(0)
	p.Y.SetInt64(1)
	p.Z.SetInt64(1)
	p.affine = affineCache{}
	return p
}

// Negate sets p = -a.
func (p *Projective) Negate(a *Projective) *Projective {
	p.C = a.C
	p.X.Neg(a.X)
	p.Y.Set(a.Y)
	p.Z.Set(a.Z)
	p.affine = affineCache{}
	return p
}

// Add sets p = a + b using the unified projective addition law of
// spec.md §4.3. This formula is unified: it is also correct when a == b,
// so Double simply calls Add(a, a) — the same branchless code path
// handles both cases, which is the point of using a unified law at all.
func (p *Projective) Add(a, b *Projective, pad *field.Scratchpad) *Projective {
	f := a.C.F

	A := pad.Reg(0).Mul(a.Z, b.Z)
	B := pad.Reg(1).Square(A)
	C := pad.Reg(2).Mul(a.X, b.X)
	D := pad.Reg(3).Mul(a.Y, b.Y)
	E := pad.Reg(4).Mul(a.C.EdwardsD, C)
	E.Mul(E, D)
	F := pad.Reg(5).Sub(B, E)
	G := field.New(f).Add(B, E)

	sumX := field.New(f).Add(a.X, a.Y)
	sumY := field.New(f).Add(b.X, b.Y)
	cross := field.New(f).Mul(sumX, sumY)
	cross.Sub(cross, C)
	cross.Sub(cross, D)

	x3 := field.New(f).Mul(A, F)
	x3.Mul(x3, cross)

	aC := field.New(f).Mul(a.C.EdwardsA, C)
	y3 := field.New(f).Sub(D, aC)
	y3.Mul(y3, G)
	y3.Mul(y3, A)

	z3 := field.New(f).Mul(F, G)

	p.C = a.C
	p.X, p.Y, p.Z = x3, y3, z3
	p.affine = affineCache{}
	return p
}

// Double sets p = 2a.
func (p *Projective) Double(a *Projective, pad *field.Scratchpad) *Projective {
	return p.Add(a, a, pad)
}

// Affine returns (x,y) via one field inversion, cached after first call.
func (p *Projective) Affine() (x, y *field.Element) {
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
func (p *Projective) Equal(q *Projective) bool {
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

// ToExtended lifts p to extended coordinates, computing T = XY/Z.
func (p *Projective) ToExtended() *Extended {
	f := p.C.F
	x, y := p.Affine()
	e := &Extended{C: p.C, X: x, Y: y, Z: field.New(f).SetInt64(1)}
	e.T = field.New(f).Mul(e.X, e.Y)
	return e
}
