package elligator

import (
	"github.com/emc2/safecurves/curve"
	"github.com/emc2/safecurves/field"
)

// Elligator1 binds the Elligator-1 map to a curve. The curve's field must
// be ≡ 3 mod 4 and c.ElligatorS/R/C must be populated (see
// curve.Params.ElligatorS).
type Elligator1 struct {
	C *curve.Params
}

func legendreFE(f *field.Prime, e *field.Element) *field.Element {
	return field.New(f).SetInt64(int64(e.Legendre()))
}

// Decode maps a field element t to an Edwards point, per spec.md §4.5.
// t = -1 is the map's exceptional value and is rejected.
func (e1 Elligator1) Decode(t *field.Element) (x, y *field.Element, err error) {
	f := e1.C.F
	one := field.New(f).SetInt64(1)

	onePlusT := field.New(f).Add(one, t)
	if onePlusT.IsZero() == 1 {
		return nil, nil, ErrInvalidHashInput
	}

	oneMinusT := field.New(f).Sub(one, t)
	u := field.New(f).Mul(oneMinusT, field.New(f).Inv(onePlusT))

	u2 := field.New(f).Square(u)
	u4 := field.New(f).Square(u2)

	r2 := field.New(f).Square(e1.C.ElligatorR)
	coeff := field.New(f).Sub(r2, field.New(f).SetInt64(2))
	v := field.New(f).Mul(coeff, u2)
	v.Add(v, u4)
	v.Add(v, one)
	v.Mul(v, u)

	l1 := legendreFE(f, v)
	cInv := field.New(f).Inv(e1.C.ElligatorC)
	cInv2 := field.New(f).Square(cInv)
	l2Arg := field.New(f).Add(u2, cInv2)
	l2 := legendreFE(f, l2Arg)

	l1v := field.New(f).Mul(l1, v)
	Y := field.New(f).Sqrt(l1v)
	Y.Mul(Y, l1)
	Y.Mul(Y, l2)

	X := field.New(f).Mul(l1, u)

	cMinus1 := field.New(f).Sub(e1.C.ElligatorC, one)
	onePlusX := field.New(f).Add(one, X)

	xNum := field.New(f).Mul(cMinus1, e1.C.ElligatorS)
	xNum.Mul(xNum, X)
	xNum.Mul(xNum, onePlusX)
	x = field.New(f).Mul(xNum, field.New(f).Inv(Y))

	rX := field.New(f).Mul(e1.C.ElligatorR, X)
	onePlusX2 := field.New(f).Square(onePlusX)
	yNum := field.New(f).Sub(rX, onePlusX2)
	yDen := field.New(f).Add(rX, onePlusX2)
	y = field.New(f).Mul(yNum, field.New(f).Inv(yDen))

	return x, y, nil
}

// CanEncode reports whether Encode accepts P's affine (x,y).
func (e1 Elligator1) CanEncode(x, y *field.Element) bool {
	f := e1.C.F
	one := field.New(f).SetInt64(1)

	yPlus1 := field.New(f).Add(y, one)
	if yPlus1.IsZero() == 1 {
		return false
	}

	e := computeE(f, y)
	er := field.New(f).Mul(e, e1.C.ElligatorR)
	onePlusEr := field.New(f).Add(one, er)
	disc := field.New(f).Square(onePlusEr)
	disc.Sub(disc, one)
	if disc.Legendre() < 0 {
		return false
	}

	negTwo := field.New(f).SetInt64(-2)
	if er.Equal(negTwo) == 1 {
		cMinus1 := field.New(f).Sub(e1.C.ElligatorC, one)
		rhs := field.New(f).MulSmall(e1.C.ElligatorS, 2)
		rhs.Mul(rhs, cMinus1)
		rhs.Mul(rhs, legendreFE(f, e1.C.ElligatorC))
		rhs.Mul(rhs, field.New(f).Inv(e1.C.ElligatorR))
		if x.Equal(rhs) != 1 {
			return false
		}
	}
	return true
}

func computeE(f *field.Prime, y *field.Element) *field.Element {
	one := field.New(f).SetInt64(1)
	num := field.New(f).Sub(y, one)
	den := field.New(f).Add(y, one)
	den.MulSmall(den, 2)
	return field.New(f).Mul(num, field.New(f).Inv(den))
}

// Encode maps an Edwards point (x,y) to its non-negative field-element
// pre-image, returning ErrEncodeRefused if CanEncode(x,y) is false.
func (e1 Elligator1) Encode(x, y *field.Element) (*field.Element, error) {
	if !e1.CanEncode(x, y) {
		return nil, ErrEncodeRefused
	}

	f := e1.C.F
	one := field.New(f).SetInt64(1)

	e := computeE(f, y)
	er := field.New(f).Mul(e, e1.C.ElligatorR)
	onePlusEr := field.New(f).Add(one, er)

	disc := field.New(f).Square(onePlusEr)
	disc.Sub(disc, one)
	X := field.New(f).Sqrt(disc)
	X.Sub(X, onePlusEr)

	cMinus1 := field.New(f).Sub(e1.C.ElligatorC, one)
	onePlusX := field.New(f).Add(one, X)
	cInv := field.New(f).Inv(e1.C.ElligatorC)
	cInv2 := field.New(f).Square(cInv)
	X2 := field.New(f).Square(X)
	tail := field.New(f).Add(X2, cInv2)

	zArg := field.New(f).Mul(cMinus1, e1.C.ElligatorS)
	zArg.Mul(zArg, X)
	zArg.Mul(zArg, onePlusX)
	zArg.Mul(zArg, x)
	zArg.Mul(zArg, tail)
	z := legendreFE(f, zArg)

	u := field.New(f).Mul(z, X)

	oneMinusU := field.New(f).Sub(one, u)
	onePlusU := field.New(f).Add(one, u)
	t := field.New(f).Mul(oneMinusU, field.New(f).Inv(onePlusU))
	return field.New(f).Abs(t), nil
}
