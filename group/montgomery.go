package group

import (
	"math/big"

	"github.com/emc2/safecurves"
	"github.com/emc2/safecurves/curve"
	"github.com/emc2/safecurves/elligator"
	"github.com/emc2/safecurves/field"
	"github.com/emc2/safecurves/point"
)

// Montgomery is a Group whose Point representation is the x-only
// Montgomery-ladder engine. It has no general point addition; the facade
// only exposes identity/encoding. Scalar multiplication is the package
// function point.MulX applied to the unwrapped point's affine x.
type Montgomery struct {
	C *curve.Params
}

// NewMontgomery returns a Group bound to c's Montgomery representation.
func NewMontgomery(c *curve.Params) *Montgomery { return &Montgomery{C: c} }

func (g *Montgomery) String() string { return g.C.Name + "/Montgomery" }

func (g *Montgomery) Curve() *curve.Params { return g.C }

// PointLen is the raw u-coordinate encoding length: one field element.
func (g *Montgomery) PointLen() int { return g.C.F.ByteLen() }

func (g *Montgomery) BasePoint() safecurves.Point {
	return &montgomeryPoint{p: point.NewMontgomeryX(g.C, g.C.BaseMontgomeryU)}
}

func (g *Montgomery) ZeroPoint() safecurves.Point {
	return &montgomeryPoint{p: point.Infinity(g.C)}
}

func (g *Montgomery) Scratchpad() *field.Scratchpad {
	return pool.Acquire(g.C.F, field.WorkloadLadder)
}

func (g *Montgomery) ReleaseScratchpad(pad *field.Scratchpad) { pool.Release(pad) }

func (g *Montgomery) FromEdwards(x, y *field.Element) (safecurves.Point, error) {
	u, _, err := point.EdwardsToMontgomery(g.C, x, y)
	if err != nil {
		return nil, err
	}
	return &montgomeryPoint{p: point.NewMontgomeryX(g.C, u)}, nil
}

// FromMontgomery discards v: this representation is x-only, so only u
// survives into the point.
func (g *Montgomery) FromMontgomery(u, v *field.Element) (safecurves.Point, error) {
	return &montgomeryPoint{p: point.NewMontgomeryX(g.C, u)}, nil
}

// FromHash maps r to a point via Elligator-2. g.C's field must be ≡ 5 mod
// 8 and MontgomeryB must be 1, per spec.md §4.6.
func (g *Montgomery) FromHash(r *field.Element) (safecurves.Point, error) {
	e2 := elligator.Elligator2{C: g.C}
	x, _, err := e2.Decode(r)
	if err != nil {
		return nil, err
	}
	return &montgomeryPoint{p: point.NewMontgomeryX(g.C, x)}, nil
}

// FromCompressed decodes a raw big-endian u-coordinate. Montgomery
// points carry no sign bit: any field element in range names a valid
// x-only point (it need not be on the twist-free curve for x-only
// arithmetic to proceed, by design of the Montgomery ladder).
func (g *Montgomery) FromCompressed(s []byte) (safecurves.Point, error) {
	if len(s) != g.PointLen() {
		return nil, safecurves.ErrInvalidPoint
	}
	u, ok := field.New(g.C.F).SetBytes(s)
	if !ok {
		return nil, safecurves.ErrInvalidPoint
	}
	return &montgomeryPoint{p: point.NewMontgomeryX(g.C, u)}, nil
}

func (g *Montgomery) Cofactor() int64 { return g.C.Cofactor }

func (g *Montgomery) PrimeOrder() *big.Int { return g.C.PrimeOrder }

// montgomeryPoint adapts *point.Montgomery to the safecurves.Point facade.
type montgomeryPoint struct {
	p *point.Montgomery
}

// Unwrap returns the underlying x-only point, for MulX and the ladder.
func (m *montgomeryPoint) Unwrap() *point.Montgomery { return m.p }

func (m *montgomeryPoint) Equal(q safecurves.Point) bool {
	other, ok := q.(*montgomeryPoint)
	if !ok {
		return false
	}
	return m.p.Affine().Equal(other.p.Affine()) == 1
}

func (m *montgomeryPoint) Clone() safecurves.Point {
	return &montgomeryPoint{p: m.p.Clone()}
}

func (m *montgomeryPoint) MarshalBinary() ([]byte, error) {
	return m.p.Affine().Bytes(), nil
}

func (m *montgomeryPoint) UnmarshalBinary(data []byte) error {
	u, ok := field.New(m.p.C.F).SetBytes(data)
	if !ok {
		return safecurves.ErrInvalidPoint
	}
	m.p = point.NewMontgomeryX(m.p.C, u)
	return nil
}
