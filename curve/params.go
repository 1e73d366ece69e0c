// Package curve holds the immutable per-curve constant records the point,
// elligator and group packages are parameterized over. This is the thin,
// data-only collaborator spec.md calls out of scope for the core
// engineering effort — the engine is generic over any Params value.
package curve

import (
	"math/big"

	"github.com/emc2/safecurves/field"
)

// Params is the immutable record of a curve's defining constants: its
// field, twisted-Edwards (a, d), Montgomery (A, B), cofactor, base point in
// both coordinate systems, prime subgroup order, and the precomputed
// Elligator-1 constants (s, r, c). Montgomery-only curves that never
// publish a twisted-Edwards base point still carry EdwardsA/EdwardsD,
// because the birational map always exists; they simply leave
// ElligatorS/R/C nil and rely on Elligator-2 instead.
type Params struct {
	Name string
	F    *field.Prime

	EdwardsA *field.Element
	EdwardsD *field.Element

	MontgomeryA *field.Element
	MontgomeryB *field.Element
	// LadderA24 is (MontgomeryA+2)/4, the constant the ladder step folds in.
	LadderA24 *field.Element

	Cofactor   int64
	PrimeOrder *big.Int

	BaseEdwardsX *field.Element
	BaseEdwardsY *field.Element

	BaseMontgomeryU *field.Element
	BaseMontgomeryV *field.Element

	// ElligatorS, ElligatorR, ElligatorC are the Elligator-1 constants
	// derived from d; nil for curves whose field is not ≡ 3 mod 4.
	ElligatorS *field.Element
	ElligatorR *field.Element
	ElligatorC *field.Element
}

// fe is a small literal-construction helper: decimal or hex (0x-prefixed)
// string to a field.Element.
func fe(f *field.Prime, s string) *field.Element {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("curve: bad constant literal " + s)
	}
	return field.New(f).SetBigInt(v)
}
