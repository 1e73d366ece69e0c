// Package field implements constant-time-style modular arithmetic over the
// primes p = 2^k - c used by the safecurves family, plus the scratchpad
// register pool the point and Elligator packages build on.
package field

import "math/big"

// Prime is an immutable description of a field modulus p = 2^k - c. All
// exponent chains used by Inv and Sqrt are derived once from p and cached
// here, so every Element sharing a Prime reuses the same fixed chain.
type Prime struct {
	p       *big.Int
	k       uint // bit length of p, i.e. the exponent in 2^k - c
	c       int64
	byteLen int

	pMinus2     *big.Int // exponent for Inv: a^(p-2)
	sqrtExp     *big.Int // exponent for Sqrt
	mod8        int64    // p mod 8, selects the Sqrt branch
	sqrtMinus1  *big.Int // sqrt(-1) mod p, only set when p ≡ 5 mod 8
	halfOrder   *big.Int // (p-1)/2, the canonical-range bound for Decaf s
}

// NewPrime builds the Prime p = 2^k - c and precomputes its exponentiation
// chains. p must be ≡ 3 mod 4 (Elligator-1 domain) or ≡ 5 mod 8
// (Elligator-2 domain), the two classes Sqrt has an exponent chain for;
// NewPrime panics for any other modulus.
func NewPrime(k uint, c int64) *Prime {
	p := new(big.Int).Lsh(big.NewInt(1), k)
	p.Sub(p, big.NewInt(c))

	pr := &Prime{
		p:       p,
		k:       k,
		c:       c,
		byteLen: (p.BitLen() + 7) / 8,
	}

	pr.pMinus2 = new(big.Int).Sub(p, big.NewInt(2))
	pr.halfOrder = new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 1)

	four := big.NewInt(4)
	eight := big.NewInt(8)
	mod4 := new(big.Int).Mod(p, four).Int64()
	pr.mod8 = new(big.Int).Mod(p, eight).Int64()

	switch {
	case mod4 == 3:
		// sqrt(a) = a^((p+1)/4)
		e := new(big.Int).Add(p, big.NewInt(1))
		pr.sqrtExp = e.Rsh(e, 2)
	case pr.mod8 == 5:
		// sqrt(a) = a^((p+3)/8), corrected by sqrt(-1) = 2^((p-1)/4) when needed
		e := new(big.Int).Add(p, big.NewInt(3))
		pr.sqrtExp = e.Rsh(e, 3)
		exp := new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 2)
		pr.sqrtMinus1 = new(big.Int).Exp(big.NewInt(2), exp, p)
	default:
		panic("field: modulus must be ≡ 3 mod 4 or ≡ 5 mod 8")
	}

	return pr
}

// Modulus returns a copy of p.
func (pr *Prime) Modulus() *big.Int { return new(big.Int).Set(pr.p) }

// ByteLen is the fixed big-endian encoding length ⌈k/8⌉ used by Bytes/SetBytes.
func (pr *Prime) ByteLen() int { return pr.byteLen }

// BitLen is the bit length of p.
func (pr *Prime) BitLen() int { return pr.p.BitLen() }

// HalfOrder returns (p-1)/2, the canonical upper bound for a Decaf s-value.
func (pr *Prime) HalfOrder() *big.Int { return new(big.Int).Set(pr.halfOrder) }

// IsEdwards1Domain reports whether p ≡ 3 mod 4, the Elligator-1 domain.
func (pr *Prime) IsEdwards1Domain() bool {
	return new(big.Int).Mod(pr.p, big.NewInt(4)).Int64() == 3
}

// IsMontgomery2Domain reports whether p ≡ 5 mod 8, the Elligator-2 domain.
func (pr *Prime) IsMontgomery2Domain() bool {
	return pr.mod8 == 5
}
