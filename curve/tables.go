package curve

import (
	"math/big"

	"github.com/emc2/safecurves/field"
)

// The three curves named in the boundary scenarios of spec.md §8.
// spec.md explicitly places the full per-curve constant catalogue
// (Curve1174, Curve41417, E-222, E-382, E-521, M-221, M-383, M-511,
// Curve25519, Curve383187…) out of scope for this core; only the curves
// a boundary scenario actually exercises are instantiated here, as literal
// "by table" data rather than engineering.

// Curve1174 is the twisted Edwards curve x²+y² = 1 - 1174x²y² over
// p = 2^251 - 9, cofactor 4. Parameters from Bernstein, Hamburg, Krasnova
// and Lange, "Elligator: elliptic-curve points indistinguishable from
// uniform random strings".
func Curve1174() *Params {
	f := field.NewPrime(251, 9)

	a := field.New(f).SetInt64(1)
	d := field.New(f).SetInt64(-1174)

	by := fe(f, "3037538013604154504764115728651437646519513534305223422754827055689195992590")
	bx := solveEdwardsX(f, a, d, by)

	order, _ := new(big.Int).SetString("1", 0)
	order.Lsh(order, 249)
	sub, _ := new(big.Int).SetString("11332719920821432534773113288178349711", 10)
	order.Sub(order, sub)

	s, r, c := deriveElligator1(f, d)
	A, B := edwardsToMontgomery(f, a, d)

	return &Params{
		Name:         "Curve1174",
		F:            f,
		EdwardsA:     a,
		EdwardsD:     d,
		MontgomeryA:  A,
		MontgomeryB:  B,
		LadderA24:    ladderA24(f, A),
		Cofactor:     4,
		PrimeOrder:   order,
		BaseEdwardsX: bx,
		BaseEdwardsY: by,
		ElligatorS:   s,
		ElligatorR:   r,
		ElligatorC:   c,
	}
}

// E521 is the twisted Edwards curve x²+y² = 1 - 376014x²y² over
// p = 2^521 - 1, cofactor 4. Base point convention: y = 12.
func E521() *Params {
	f := field.NewPrime(521, 1)

	a := field.New(f).SetInt64(1)
	d := field.New(f).SetInt64(-376014)

	by := field.New(f).SetInt64(12)
	bx := solveEdwardsX(f, a, d, by)

	order := new(big.Int).Lsh(big.NewInt(1), 519)
	sub, _ := new(big.Int).SetString("337554763258501705789107630418782636071904961214051226618635150085779108655765", 10)
	order.Sub(order, sub)

	s, r, c := deriveElligator1(f, d)
	A, B := edwardsToMontgomery(f, a, d)

	return &Params{
		Name:         "E-521",
		F:            f,
		EdwardsA:     a,
		EdwardsD:     d,
		MontgomeryA:  A,
		MontgomeryB:  B,
		LadderA24:    ladderA24(f, A),
		Cofactor:     4,
		PrimeOrder:   order,
		BaseEdwardsX: bx,
		BaseEdwardsY: by,
		ElligatorS:   s,
		ElligatorR:   r,
		ElligatorC:   c,
	}
}

// M383 is the Montgomery curve v² = u³ + 2065150u² + u over
// p = 2^383 - 187, cofactor 8. Base point u = 12. p ≡ 5 mod 8, so this
// curve's hash-to-point map is Elligator-2, not Elligator-1: ElligatorS/
// R/C are left nil.
func M383() *Params {
	f := field.NewPrime(383, 187)

	A := field.New(f).SetInt64(2065150)
	B := field.New(f).SetInt64(1)

	bu := field.New(f).SetInt64(12)
	bv := solveMontgomeryV(f, A, bu)

	a, d := montgomeryToEdwards(f, A, B)

	order := new(big.Int).Lsh(big.NewInt(1), 380)
	sub, _ := new(big.Int).SetString("1030303207694556153926491950732314247062623204330168346855", 10)
	order.Sub(order, sub)

	return &Params{
		Name:            "M-383",
		F:               f,
		EdwardsA:        a,
		EdwardsD:        d,
		MontgomeryA:     A,
		MontgomeryB:     B,
		LadderA24:       ladderA24(f, A),
		Cofactor:        8,
		PrimeOrder:      order,
		BaseMontgomeryU: bu,
		BaseMontgomeryV: bv,
	}
}

// All returns the three boundary-scenario curves, keyed by name.
func All() map[string]*Params {
	return map[string]*Params{
		"Curve1174": Curve1174(),
		"E-521":     E521(),
		"M-383":     M383(),
	}
}
