package elligator

import (
	"github.com/emc2/safecurves/curve"
	"github.com/emc2/safecurves/field"
)

// Elligator2 binds the Elligator-2 map to a Montgomery curve. The curve's
// field must be ≡ 5 mod 8; the map uses the fixed non-square u = 2 and
// assumes MontgomeryB == 1, as spec.md §4.6 requires.
type Elligator2 struct {
	C *curve.Params
}

// Decode maps a field element r to a Montgomery point (x,y). r such that
// 1 + 2r² == 0 is the map's exceptional value and is rejected.
func (e2 Elligator2) Decode(r *field.Element) (x, y *field.Element, err error) {
	f := e2.C.F
	one := field.New(f).SetInt64(1)
	A := e2.C.MontgomeryA

	r2 := field.New(f).Square(r)
	denom := field.New(f).MulSmall(r2, 2)
	denom.Add(denom, one)
	if denom.IsZero() == 1 {
		return nil, nil, ErrInvalidHashInput
	}

	v := field.New(f).Neg(A)
	v.Mul(v, field.New(f).Inv(denom))

	v2 := field.New(f).Square(v)
	av := field.New(f).Mul(A, v)
	inner := field.New(f).Add(v2, av)
	inner.Add(inner, one)
	inner.Mul(inner, v)
	e := field.New(f).SetInt64(int64(inner.Legendre()))

	x = field.New(f).Mul(e, v)
	eMinus1 := field.New(f).Sub(e, one)
	aHalf := field.New(f).DivSmall(A, 2)
	tail := field.New(f).Mul(eMinus1, aHalf)
	x.Add(x, tail)

	x2 := field.New(f).Square(x)
	ax := field.New(f).Mul(A, x)
	yArg := field.New(f).Add(x2, ax)
	yArg.Add(yArg, one)
	yArg.Mul(yArg, x)

	y = field.New(f).Sqrt(yArg)
	y.Neg(y)
	y.Mul(y, e)
	return x, y, nil
}

// CanEncode reports whether Encode accepts (x,y).
func (e2 Elligator2) CanEncode(x, y *field.Element) bool {
	f := e2.C.F
	A := e2.C.MontgomeryA

	negA := field.New(f).Neg(A)
	if x.Equal(negA) == 1 {
		return false
	}
	if y.IsZero() == 1 && x.IsZero() != 1 {
		return false
	}

	xPlusA := field.New(f).Add(x, A)
	disc := field.New(f).MulSmall(x, -2)
	disc.Mul(disc, xPlusA)
	if disc.Legendre() < 0 {
		return false
	}

	x2 := field.New(f).Square(x)
	ax := field.New(f).Mul(A, x2)
	poly := field.New(f).Mul(x2, x)
	poly.Add(poly, ax)
	poly.Add(poly, x)
	root := field.New(f).Sqrt(poly)
	root.MulSmall(root, int64(y.Legendre()))
	return root.Equal(y) == 1
}

// Encode maps a Montgomery point (x,y) to its field-element pre-image,
// computing both candidate formulas and picking one with field.Element.Select
// on whether y is a quadratic residue. The choice is not constant-time:
// it branches on y's Legendre symbol (see Select). Returns ErrEncodeRefused
// if CanEncode(x,y) is false.
func (e2 Elligator2) Encode(x, y *field.Element) (*field.Element, error) {
	if !e2.CanEncode(x, y) {
		return nil, ErrEncodeRefused
	}

	f := e2.C.F
	A := e2.C.MontgomeryA

	xPlusA := field.New(f).Add(x, A)
	negTwoXPlusA := field.New(f).MulSmall(xPlusA, -2)
	cand1Arg := field.New(f).Mul(x, field.New(f).Inv(negTwoXPlusA))
	cand1 := field.New(f).Sqrt(cand1Arg)

	twoX := field.New(f).MulSmall(x, 2)
	cand2Arg := field.New(f).Neg(xPlusA)
	cand2Arg.Mul(cand2Arg, field.New(f).Inv(twoX))
	cand2 := field.New(f).Sqrt(cand2Arg)

	isQR := 0
	if y.Legendre() >= 0 {
		isQR = 1
	}
	return field.New(f).Select(cand1, cand2, isQR), nil
}
