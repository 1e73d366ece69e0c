// Package safecurves is the root of the safecurves core. It fixes the
// vocabulary every subpackage is described in: the three sentinel errors
// (errors.go) and the Group/Point facade (this file, spec.md §4.7) that
// binds a curve to one point representation. The arithmetic itself lives
// in field, curve, point and elligator; concrete Group implementations
// live in package group.
package safecurves

import (
	"encoding"
	"math/big"

	"github.com/emc2/safecurves/curve"
	"github.com/emc2/safecurves/field"
)

// Point is the surface every representation a Group hands out implements:
// identity comparison, independent copies, and a canonical binary
// encoding. It deliberately does not include Add/Double/Negate/MulX —
// those differ between the Edwards and Montgomery representations (the
// latter is x-only and has no general point addition), so callers that
// need them reach the concrete type underneath (*point.Extended or
// *point.Montgomery) through the Unwrap method of the points package group
// returns, same as a caller unwraps a kyber.Point to its concrete curve
// type when it needs curve-specific behavior.
type Point interface {
	// Equal reports whether p and q are the same group element.
	Equal(q Point) bool

	// Clone returns an independent copy.
	Clone() Point

	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// Group binds one curve to one point representation. Every method either
// reads immutable curve data or returns a freshly owned value, so a Group
// is safe for concurrent use once constructed.
type Group interface {
	// String names the curve and representation, e.g. "Curve1174/Edwards".
	String() string

	// Curve returns the bound curve's immutable parameter record.
	Curve() *curve.Params

	// PointLen is the fixed encoded length, in bytes, of a compressed
	// point on this curve.
	PointLen() int

	// BasePoint returns a fresh copy of the curve's standard generator.
	BasePoint() Point

	// ZeroPoint returns a fresh copy of the neutral (identity) element.
	ZeroPoint() Point

	// Scratchpad acquires a working register set sized for this Group's
	// representation from the shared pool. Callers must pass it back to
	// ReleaseScratchpad on every exit path.
	Scratchpad() *field.Scratchpad

	// ReleaseScratchpad returns a Scratchpad obtained from Scratchpad.
	ReleaseScratchpad(pad *field.Scratchpad)

	// FromEdwards builds a point from twisted-Edwards affine coordinates,
	// rejecting (x,y) that fail the curve equation.
	FromEdwards(x, y *field.Element) (Point, error)

	// FromMontgomery builds a point from Montgomery affine coordinates,
	// rejecting (u,v) that fail the curve equation.
	FromMontgomery(u, v *field.Element) (Point, error)

	// FromHash maps a field element to a point via this Group's bound
	// Elligator map (Elligator-1 for Edwards groups, Elligator-2 for
	// Montgomery groups).
	FromHash(t *field.Element) (Point, error)

	// FromCompressed decodes a canonical compressed encoding (Decaf for
	// Edwards groups, the raw u-coordinate for Montgomery groups).
	FromCompressed(s []byte) (Point, error)

	// Cofactor is the curve's cofactor h such that #E = h * PrimeOrder().
	Cofactor() int64

	// PrimeOrder is the order of the prime-order subgroup.
	PrimeOrder() *big.Int
}
