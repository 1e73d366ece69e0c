package point

import (
	"github.com/emc2/safecurves/curve"
	"github.com/emc2/safecurves/field"
)

// EdwardsToMontgomery converts affine Edwards (x,y) to affine Montgomery
// (u,v) via u = (1+y)/(1-y), v = u/x. 1-y == 0 only at the neutral
// element (0,1), and x == 0 at (0,1) and (0,-1); these have no affine
// Montgomery image and are rejected.
func EdwardsToMontgomery(c *curve.Params, x, y *field.Element) (u, v *field.Element, err error) {
	f := c.F
	one := field.New(f).SetInt64(1)

	denom := field.New(f).Sub(one, y)
	if denom.IsZero() == 1 {
		return nil, nil, ErrInvalidPoint
	}
	u = field.New(f).Add(one, y)
	u.Mul(u, field.New(f).Inv(denom))

	if x.IsZero() == 1 {
		return nil, nil, ErrInvalidPoint
	}
	v = field.New(f).Mul(u, field.New(f).Inv(x))
	return u, v, nil
}

// MontgomeryToEdwards converts affine Montgomery (u,v) to affine Edwards
// (x,y) via x = u/v, y = (u-1)/(u+1). u+1 == 0 is the 2-torsion point and
// v == 0 is a point of order ≤ 2; neither has a unique Edwards x-image.
func MontgomeryToEdwards(c *curve.Params, u, v *field.Element) (x, y *field.Element, err error) {
	f := c.F
	one := field.New(f).SetInt64(1)

	if v.IsZero() == 1 {
		return nil, nil, ErrInvalidPoint
	}
	x = field.New(f).Mul(u, field.New(f).Inv(v))

	denom := field.New(f).Add(u, one)
	if denom.IsZero() == 1 {
		return nil, nil, ErrInvalidPoint
	}
	y = field.New(f).Sub(u, one)
	y.Mul(y, field.New(f).Inv(denom))
	return x, y, nil
}
