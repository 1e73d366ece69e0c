package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emc2/safecurves/field"
)

func TestBasePointsSatisfyCurveEquation(t *testing.T) {
	for name, c := range All() {
		t.Run(name, func(t *testing.T) {
			if c.BaseEdwardsX == nil {
				return // Montgomery-only table entry, checked below
			}
			f := c.F
			lhs := field.New(f).Square(c.BaseEdwardsX)
			lhs.Mul(lhs, c.EdwardsA)
			y2 := field.New(f).Square(c.BaseEdwardsY)
			lhs.Add(lhs, y2)

			rhs := field.New(f).Square(c.BaseEdwardsX)
			rhs.Mul(rhs, y2)
			rhs.Mul(rhs, c.EdwardsD)
			rhs.Add(rhs, field.New(f).SetInt64(1))

			assert.Equal(t, 1, lhs.Equal(rhs), "%s base point fails a*x^2+y^2 = 1+d*x^2*y^2", name)
		})
	}
}

func TestBaseMontgomeryPointsSatisfyCurveEquation(t *testing.T) {
	for name, c := range All() {
		t.Run(name, func(t *testing.T) {
			if c.BaseMontgomeryU == nil {
				return
			}
			f := c.F
			u, v := c.BaseMontgomeryU, c.BaseMontgomeryV
			lhs := field.New(f).Square(v)

			u2 := field.New(f).Square(u)
			u3 := field.New(f).Mul(u2, u)
			au2 := field.New(f).Mul(c.MontgomeryA, u2)
			bu := field.New(f).Mul(c.MontgomeryB, u)
			rhs := field.New(f).Add(u3, au2)
			rhs.Add(rhs, bu)

			assert.Equal(t, 1, lhs.Equal(rhs), "%s base point fails v^2 = u^3+A*u^2+B*u", name)
		})
	}
}

func TestBirationalMapIsConsistentWithEdwardsBase(t *testing.T) {
	c := Curve1174()
	A, B := edwardsToMontgomery(c.F, c.EdwardsA, c.EdwardsD)
	assert.Equal(t, 1, A.Equal(c.MontgomeryA))
	assert.Equal(t, 1, B.Equal(c.MontgomeryB))
}

func TestElligator1ConstantsOnlyOnEdwards1Domain(t *testing.T) {
	c1174 := Curve1174()
	require.True(t, c1174.F.IsEdwards1Domain())
	assert.NotNil(t, c1174.ElligatorS)
	assert.NotNil(t, c1174.ElligatorR)
	assert.NotNil(t, c1174.ElligatorC)

	m383 := M383()
	require.True(t, m383.F.IsMontgomery2Domain())
	assert.Nil(t, m383.ElligatorS)
}

func TestLadderA24Formula(t *testing.T) {
	c := M383()
	two := field.New(c.F).SetInt64(2)
	expect := field.New(c.F).Add(c.MontgomeryA, two)
	expect.DivSmall(expect, 4)
	assert.Equal(t, 1, expect.Equal(c.LadderA24))
}

func TestCofactorAndPrimeOrderArePositive(t *testing.T) {
	for name, c := range All() {
		// #E = h * PrimeOrder; this checks only that both factors of the
		// table entry are positive.
		t.Run(name, func(t *testing.T) {
			require.True(t, c.PrimeOrder.Sign() > 0)
			require.Greater(t, c.Cofactor, int64(0))
		})
	}
}
