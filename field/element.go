package field

import "math/big"

// Element is a residue class mod a Prime. The zero value is not usable;
// construct with New. Elements are value-like: Clone is cheap and every
// Element exclusively owns its big.Int, so callers never alias one
// Element's storage with another's.
//
// Public getters and comparisons always normalize into [0, p) first;
// internal operations may leave a small amount of un-reduced slack on the
// underlying big.Int, matching the "bounded slack between reductions"
// invariant from the data model.
type Element struct {
	p *Prime
	v *big.Int
}

// New returns the zero element of the field described by p.
func New(p *Prime) *Element {
	return &Element{p: p, v: new(big.Int)}
}

// Prime returns the field this element belongs to.
func (e *Element) Prime() *Prime { return e.p }

// Clone returns a fresh Element with the same value, owned independently.
func (e *Element) Clone() *Element {
	return &Element{p: e.p, v: new(big.Int).Set(e.v)}
}

// Set copies a's value into e and returns e.
func (e *Element) Set(a *Element) *Element {
	e.p = a.p
	e.v.Set(a.v)
	return e
}

// SetInt64 sets e to v mod p.
func (e *Element) SetInt64(v int64) *Element {
	e.v.SetInt64(v)
	e.reduce()
	return e
}

// SetBigInt sets e to v mod p.
func (e *Element) SetBigInt(v *big.Int) *Element {
	e.v.Set(v)
	e.reduce()
	return e
}

// SetBytes decodes a fixed-length big-endian encoding. It rejects
// non-canonical encodings, i.e. values >= p, by returning false; e is left
// at the zero value in that case. Decompression and any other public-input
// parser must use this rather than SetBigInt on raw bytes.
func (e *Element) SetBytes(b []byte) (*Element, bool) {
	v := new(big.Int).SetBytes(b)
	if v.Cmp(e.p.p) >= 0 {
		e.v.SetInt64(0)
		return e, false
	}
	e.v = v
	return e, true
}

// Bytes encodes e as a fixed-length big-endian byte string of length
// p.ByteLen(), top bits zero-padded. e is normalized first.
func (e *Element) Bytes() []byte {
	e.reduce()
	out := make([]byte, e.p.byteLen)
	b := e.v.Bytes()
	copy(out[len(out)-len(b):], b)
	return out
}

// reduce normalizes the underlying value into the canonical range [0, p).
func (e *Element) reduce() {
	e.v.Mod(e.v, e.p.p)
}

// Add sets e = a + b.
func (e *Element) Add(a, b *Element) *Element {
	e.p = a.p
	e.v.Add(a.v, b.v)
	e.reduce()
	return e
}

// Sub sets e = a - b.
func (e *Element) Sub(a, b *Element) *Element {
	e.p = a.p
	e.v.Sub(a.v, b.v)
	e.reduce()
	return e
}

// Neg sets e = -a.
func (e *Element) Neg(a *Element) *Element {
	e.p = a.p
	e.v.Neg(a.v)
	e.reduce()
	return e
}

// Mul sets e = a * b.
func (e *Element) Mul(a, b *Element) *Element {
	e.p = a.p
	e.v.Mul(a.v, b.v)
	e.reduce()
	return e
}

// Square sets e = a * a.
func (e *Element) Square(a *Element) *Element {
	return e.Mul(a, a)
}

// MulSmall sets e = a * s for a small signed integer s.
func (e *Element) MulSmall(a *Element, s int64) *Element {
	e.p = a.p
	e.v.Mul(a.v, big.NewInt(s))
	e.reduce()
	return e
}

// DivSmall sets e = a / s for a small signed integer s, via s's inverse.
func (e *Element) DivSmall(a *Element, s int64) *Element {
	inv := new(big.Int).ModInverse(big.NewInt(s), a.p.p)
	e.p = a.p
	e.v.Mul(a.v, inv)
	e.reduce()
	return e
}

// Inv sets e = a^-1 via Fermat's little theorem, a^(p-2). By convention,
// Inv(0) yields 0; callers that cannot tolerate this must check IsZero
// first.
func (e *Element) Inv(a *Element) *Element {
	e.p = a.p
	e.v.Exp(a.v, a.p.pMinus2, a.p.p)
	return e
}

// Sqrt sets e to a square root of a using the fixed exponentiation chain
// for this field's modulus class (p ≡ 3 mod 4 or p ≡ 5 mod 8). The result
// is unspecified if a is not a quadratic residue; callers must check
// Legendre first.
func (e *Element) Sqrt(a *Element) *Element {
	e.p = a.p
	cand := new(big.Int).Exp(a.v, a.p.sqrtExp, a.p.p)
	if a.p.sqrtMinus1 == nil {
		e.v = cand
		return e
	}
	// p ≡ 5 mod 8: verify cand^2 == a, else multiply by sqrt(-1).
	check := new(big.Int).Mul(cand, cand)
	check.Mod(check, a.p.p)
	if check.Cmp(new(big.Int).Mod(a.v, a.p.p)) != 0 {
		cand.Mul(cand, a.p.sqrtMinus1)
		cand.Mod(cand, a.p.p)
	}
	e.v = cand
	return e
}

// Legendre returns the Legendre symbol of a: -1 (non-residue), 0 (a == 0)
// or +1 (residue).
func (e *Element) Legendre() int {
	if e.IsZero() == 1 {
		return 0
	}
	exp := new(big.Int).Rsh(new(big.Int).Sub(e.p.p, big.NewInt(1)), 1)
	r := new(big.Int).Exp(e.v, exp, e.p.p)
	if r.Cmp(big.NewInt(1)) == 0 {
		return 1
	}
	return -1
}

// IsZero returns 1 if e == 0, else 0.
func (e *Element) IsZero() int {
	e.reduce()
	if e.v.Sign() == 0 {
		return 1
	}
	return 0
}

// Equal returns 1 if e == b, else 0. Both operands are normalized before
// comparison so the check is correct regardless of un-reduced slack.
func (e *Element) Equal(b *Element) int {
	e.reduce()
	b.reduce()
	if e.v.Cmp(b.v) == 0 {
		return 1
	}
	return 0
}

// Abs conditionally negates a so that the canonical (even/low) sign
// convention holds: if the low bit of a's canonical encoding is 1, e is
// set to -a, else to a.
func (e *Element) Abs(a *Element) *Element {
	a.reduce()
	if a.v.Bit(0) == 1 {
		return e.Neg(a)
	}
	return e.Set(a)
}

// Mask returns a copy of a if bit == 1, or the zero element if bit == 0.
func (e *Element) Mask(a *Element, bit int) *Element {
	e.p = a.p
	if bit != 0 {
		e.v.Set(a.v)
	} else {
		e.v.SetInt64(0)
	}
	return e
}

// Or sets e to the bitwise OR of a and b's canonical representations. Used
// together with Mask to build a constant-time Select.
func (e *Element) Or(a, b *Element) *Element {
	e.p = a.p
	e.v.Or(a.v, b.v)
	return e
}

// Select sets e = a if cond != 0, else e = b. Built from Mask/Or; Select
// and Mask branch on cond, so the selection is not constant-time.
func (e *Element) Select(a, b *Element, cond int) *Element {
	var ta, tb Element
	ta.p, ta.v = a.p, new(big.Int)
	tb.p, tb.v = b.p, new(big.Int)
	if cond != 0 {
		ta.Mask(a, 1)
		tb.Mask(b, 0)
	} else {
		ta.Mask(a, 0)
		tb.Mask(b, 1)
	}
	return e.Or(&ta, &tb)
}

// CondSwap swaps a and b in place when cond != 0.
func CondSwap(cond int, a, b *Element) {
	if cond == 0 {
		return
	}
	a.v, b.v = b.v, a.v
}
