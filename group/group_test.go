package group

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emc2/safecurves/curve"
	"github.com/emc2/safecurves/field"
	"github.com/emc2/safecurves/internal/srandom"
	"github.com/emc2/safecurves/point"
)

func TestEdwardsBasePointRoundTripsThroughDecafCompression(t *testing.T) {
	g := NewEdwards(curve.Curve1174())
	b := g.BasePoint()

	data, err := b.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, g.PointLen())

	decoded, err := g.FromCompressed(data)
	require.NoError(t, err)
	assert.True(t, b.Equal(decoded))
}

func TestEdwardsZeroPointIsNeutral(t *testing.T) {
	g := NewEdwards(curve.Curve1174())
	z := g.ZeroPoint().(*edwardsPoint)
	assert.True(t, z.Unwrap().IsNeutral())
}

func TestEdwardsFromHashProducesOnCurvePoint(t *testing.T) {
	g := NewEdwards(curve.Curve1174())
	stream := srandom.StreamFromSeed([]byte("safecurves edwards from-hash"))

	for i := 0; i < 3; i++ {
		tval := srandom.Element(g.C.F, stream)
		p, err := g.FromHash(tval)
		if err != nil {
			// tval landed on Elligator-1's exceptional input; draw again.
			continue
		}
		assert.NotNil(t, p)
		return
	}
	t.Fatal("no sampled field element produced a valid FromHash point")
}

// TestEdwardsPrimeOrderAnnihilatesBasePoint is the §8 boundary scenario:
// Curve1174, base point G, primeOrder*G -> zero point, exercised through
// the Group facade rather than the bare point package.
func TestEdwardsPrimeOrderAnnihilatesBasePoint(t *testing.T) {
	g := NewEdwards(curve.Curve1174())
	b := g.BasePoint().(*edwardsPoint).Unwrap()
	pad := g.Scratchpad()
	defer g.ReleaseScratchpad(pad)

	result := point.NewExtended(g.C).ScalarMul(b, g.C.PrimeOrder, pad)
	assert.True(t, result.IsNeutral())
}

func TestMontgomeryBasePointRoundTripsThroughRawEncoding(t *testing.T) {
	g := NewMontgomery(curve.M383())
	b := g.BasePoint()

	data, err := b.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, g.PointLen())

	decoded, err := g.FromCompressed(data)
	require.NoError(t, err)
	assert.True(t, b.Equal(decoded))
}

func TestMontgomeryScratchpadSizedForLadder(t *testing.T) {
	g := NewMontgomery(curve.M383())
	pad := g.Scratchpad()
	defer g.ReleaseScratchpad(pad)

	base := g.BasePoint().(*montgomeryPoint).Unwrap()
	x := point.MulX(g.C, big.NewInt(2), base.Affine(), pad)
	assert.NotNil(t, x)
}

func TestGroupStringNamesCurveAndRepresentation(t *testing.T) {
	eg := NewEdwards(curve.Curve1174())
	assert.Equal(t, "Curve1174/Edwards", eg.String())

	mg := NewMontgomery(curve.M383())
	assert.Equal(t, "M-383/Montgomery", mg.String())
}

func TestCofactorAndPrimeOrderMatchCurveTable(t *testing.T) {
	c := curve.Curve1174()
	g := NewEdwards(c)
	assert.Equal(t, c.Cofactor, g.Cofactor())
	assert.Equal(t, 0, c.PrimeOrder.Cmp(g.PrimeOrder()))
}
