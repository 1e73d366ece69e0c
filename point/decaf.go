package point

import (
	"github.com/emc2/safecurves/curve"
	"github.com/emc2/safecurves/field"
)

// Decaf compression maps a twisted-Edwards point to a single field element,
// following the shape of spec.md §4.3: a single invsqrt r of
// (a-d)(Z+Y)(Z-Y), folded with X to bring the full affine point into the
// encoding, then folded into the canonical range [0, (p-1)/2].
//
// DecafDecompress is the explicit algebraic inverse of DecafCompress: it
// solves the same defining relation for y as a quadratic, then recovers x
// from the curve equation and picks the root whose re-compression
// reproduces s.

// DecafCompress maps an on-curve extended point to a field element in
// [0, (p-1)/2]. P and -P compress to the same s. The encoding does not
// quotient out the 4-torsion subgroup: adding a 4-torsion point to P
// generally changes s, and a point for which (a-d)(1-y²) is a non-residue
// is rejected with ErrInvalidPoint.
func DecafCompress(p *Extended) (*field.Element, error) {
	c := p.C
	f := c.F
	x, y := p.Affine()

	one := field.New(f).SetInt64(1)
	amd := field.New(f).Sub(c.EdwardsA, c.EdwardsD)
	oneMinusY2 := field.New(f).Square(y)
	oneMinusY2.Sub(one, oneMinusY2)
	d := field.New(f).Mul(amd, oneMinusY2)

	if d.Legendre() < 0 {
		return nil, ErrInvalidPoint
	}
	r := field.New(f).Inv(d)
	r.Sqrt(r)

	oneMinusY := field.New(f).Sub(one, y)
	raw := field.New(f).Mul(oneMinusY, x)
	raw.Mul(raw, r)

	s := raw
	if cmpCanonical(raw, field.New(f).SetBigInt(f.HalfOrder())) > 0 {
		s = field.New(f).Neg(raw)
	}
	return s, nil
}

// DecafDecompress recovers the canonical extended point for s, rejecting s
// outside the canonical range [0, (p-1)/2] or s for which no consistent
// point exists.
func DecafDecompress(c *curve.Params, s *field.Element) (*Extended, error) {
	f := c.F

	half := field.New(f).SetBigInt(f.HalfOrder())
	sv := s.Clone()
	// canonical range check: compare against HalfOrder using big.Int order,
	// not field subtraction (s lives in [0,p), the bound is on its plain
	// integer value).
	if cmpCanonical(s, half) > 0 {
		return nil, ErrInvalidPoint
	}

	s2 := field.New(f).Square(sv)
	amd := field.New(f).Sub(c.EdwardsA, c.EdwardsD)

	one := field.New(f).SetInt64(1)
	P := field.New(f).Mul(amd, c.EdwardsD)
	P.Mul(P, s2)
	P.Add(one, P)

	t := field.New(f).Mul(c.EdwardsA, c.EdwardsD)
	t.Mul(t, s2)
	t.Add(one, t)
	if t.Legendre() < 0 {
		return nil, ErrInvalidPoint
	}

	disc := field.New(f).Sqrt(t)
	disc.Mul(disc, amd)
	disc.Mul(disc, sv)

	if P.IsZero() == 1 {
		return nil, ErrInvalidPoint
	}
	pInv := field.New(f).Inv(P)

	for _, sign := range []int{1, -1} {
		numer := field.New(f)
		if sign == 1 {
			numer.Add(one, disc)
		} else {
			numer.Sub(one, disc)
		}
		y := field.New(f).Mul(numer, pInv)

		y2 := field.New(f).Square(y)
		denom := field.New(f).Mul(c.EdwardsD, y2)
		denom.Sub(c.EdwardsA, denom)
		if denom.IsZero() == 1 {
			continue
		}
		x2 := field.New(f).Sub(one, y2)
		x2.Mul(x2, field.New(f).Inv(denom))
		if x2.Legendre() < 0 {
			continue
		}
		x := field.New(f).Sqrt(x2)
		x = field.New(f).Abs(x)

		candidate, err := FromAffine(c, x, y)
		if err != nil {
			continue
		}
		gotS, err := DecafCompress(candidate)
		if err != nil {
			continue
		}
		if gotS.Equal(sv) == 1 {
			return candidate, nil
		}
		// Try the negated x: Abs only canonicalizes the encoding, not
		// which square root this y corresponds to.
		negX := field.New(f).Neg(x)
		candidate2, err := FromAffine(c, negX, y)
		if err != nil {
			continue
		}
		gotS2, err := DecafCompress(candidate2)
		if err != nil {
			continue
		}
		if gotS2.Equal(sv) == 1 {
			return candidate2, nil
		}
	}
	return nil, ErrInvalidPoint
}

// cmpCanonical compares the canonical (reduced) integer values of a and b,
// returning -1, 0, or 1.
func cmpCanonical(a, b *field.Element) int {
	ab := a.Bytes()
	bb := b.Bytes()
	for i := range ab {
		if ab[i] != bb[i] {
			if ab[i] < bb[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
