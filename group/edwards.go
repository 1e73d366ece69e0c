// Package group binds curve.Params values to the safecurves.Group facade
// (spec.md §4.7): Edwards wraps the extended-coordinates/Decaf engine,
// Montgomery wraps the x-only ladder engine. Scratchpad pooling is shared
// across every Group instance in the package, keyed by (field, workload)
// as field.Pool already does.
package group

import (
	"math/big"

	"github.com/emc2/safecurves"
	"github.com/emc2/safecurves/curve"
	"github.com/emc2/safecurves/elligator"
	"github.com/emc2/safecurves/field"
	"github.com/emc2/safecurves/point"
)

var pool = field.NewPool()

// Edwards is a Group whose Point representation is the extended-coordinates
// twisted-Edwards engine, compressed via Decaf.
type Edwards struct {
	C *curve.Params
}

// NewEdwards returns a Group bound to c's twisted-Edwards representation.
func NewEdwards(c *curve.Params) *Edwards { return &Edwards{C: c} }

func (g *Edwards) String() string { return g.C.Name + "/Edwards" }

func (g *Edwards) Curve() *curve.Params { return g.C }

// PointLen is the Decaf-compressed encoding length: one field element.
func (g *Edwards) PointLen() int { return g.C.F.ByteLen() }

func (g *Edwards) BasePoint() safecurves.Point {
	p, err := point.FromAffine(g.C, g.C.BaseEdwardsX, g.C.BaseEdwardsY)
	if err != nil {
		panic("group: curve table base point fails its own curve equation: " + err.Error())
	}
	return &edwardsPoint{p: p}
}

func (g *Edwards) ZeroPoint() safecurves.Point {
	return &edwardsPoint{p: point.NewExtended(g.C)}
}

func (g *Edwards) Scratchpad() *field.Scratchpad {
	return pool.Acquire(g.C.F, field.WorkloadPoint)
}

func (g *Edwards) ReleaseScratchpad(pad *field.Scratchpad) { pool.Release(pad) }

func (g *Edwards) FromEdwards(x, y *field.Element) (safecurves.Point, error) {
	p, err := point.FromAffine(g.C, x, y)
	if err != nil {
		return nil, err
	}
	return &edwardsPoint{p: p}, nil
}

func (g *Edwards) FromMontgomery(u, v *field.Element) (safecurves.Point, error) {
	x, y, err := point.MontgomeryToEdwards(g.C, u, v)
	if err != nil {
		return nil, err
	}
	p, err := point.FromAffine(g.C, x, y)
	if err != nil {
		return nil, err
	}
	return &edwardsPoint{p: p}, nil
}

// FromHash maps t to a point via Elligator-1. g.C must have its
// Elligator-1 constants (ElligatorS/R/C) populated.
func (g *Edwards) FromHash(t *field.Element) (safecurves.Point, error) {
	e1 := elligator.Elligator1{C: g.C}
	x, y, err := e1.Decode(t)
	if err != nil {
		return nil, err
	}
	p, err := point.FromAffine(g.C, x, y)
	if err != nil {
		return nil, err
	}
	return &edwardsPoint{p: p}, nil
}

// FromCompressed decodes a Decaf-compressed point.
func (g *Edwards) FromCompressed(s []byte) (safecurves.Point, error) {
	if len(s) != g.PointLen() {
		return nil, safecurves.ErrInvalidPoint
	}
	fe, ok := field.New(g.C.F).SetBytes(s)
	if !ok {
		return nil, safecurves.ErrInvalidPoint
	}
	p, err := point.DecafDecompress(g.C, fe)
	if err != nil {
		return nil, err
	}
	return &edwardsPoint{p: p}, nil
}

func (g *Edwards) Cofactor() int64 { return g.C.Cofactor }

func (g *Edwards) PrimeOrder() *big.Int { return g.C.PrimeOrder }

// edwardsPoint adapts *point.Extended to the safecurves.Point facade.
// Callers that need Add/Double/Negate/the raw extended coordinates type
// assert back to *point.Extended via Unwrap.
type edwardsPoint struct {
	p *point.Extended
}

// Unwrap returns the underlying extended-coordinates point, for callers
// that need the full arithmetic surface the facade does not expose.
func (e *edwardsPoint) Unwrap() *point.Extended { return e.p }

func (e *edwardsPoint) Equal(q safecurves.Point) bool {
	other, ok := q.(*edwardsPoint)
	if !ok {
		return false
	}
	return e.p.Equal(other.p)
}

func (e *edwardsPoint) Clone() safecurves.Point {
	return &edwardsPoint{p: e.p.Clone()}
}

// MarshalBinary Decaf-compresses the point.
func (e *edwardsPoint) MarshalBinary() ([]byte, error) {
	s, err := point.DecafCompress(e.p)
	if err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// UnmarshalBinary Decaf-decompresses data into e, replacing its contents.
func (e *edwardsPoint) UnmarshalBinary(data []byte) error {
	fe, ok := field.New(e.p.C.F).SetBytes(data)
	if !ok {
		return safecurves.ErrInvalidPoint
	}
	decoded, err := point.DecafDecompress(e.p.C, fe)
	if err != nil {
		return err
	}
	e.p = decoded
	return nil
}
