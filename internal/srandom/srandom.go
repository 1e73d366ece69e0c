// Package srandom provides cipher.Stream-backed sampling for field
// elements and scalars, the same shape as the teacher's random package
// (random/rand.go): every caller supplies or receives a cipher.Stream
// rather than reading crypto/rand directly, so tests can substitute a
// deterministic stream without touching call sites.
package srandom

import (
	"crypto/cipher"
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/emc2/safecurves/field"
)

// Bits returns bitlen pseudo-random bits drawn from rand, packed
// big-endian into ceil(bitlen/8) bytes. If exact, the top bit of that
// range is forced to 1 so the result has exactly bitlen significant bits.
func Bits(bitlen uint, exact bool, rand cipher.Stream) []byte {
	b := make([]byte, (bitlen+7)/8)
	rand.XORKeyStream(b, b)
	highbits := bitlen & 7
	if highbits != 0 {
		b[0] &= ^(0xff << highbits)
	}
	if exact {
		if highbits != 0 {
			b[0] |= 1 << (highbits - 1)
		} else {
			b[0] |= 0x80
		}
	}
	return b
}

// Int draws a uniform big.Int in [1, mod) from rand via rejection
// sampling, mirroring random.Int.
func Int(mod *big.Int, rand cipher.Stream) *big.Int {
	bitlen := uint(mod.BitLen())
	i := new(big.Int)
	for {
		i.SetBytes(Bits(bitlen, false, rand))
		if i.Sign() > 0 && i.Cmp(mod) < 0 {
			return i
		}
	}
}

// Element draws a uniform element of p's field from rand, by rejection
// sampling against the modulus.
func Element(p *field.Prime, rand cipher.Stream) *field.Element {
	mod := p.Modulus()
	bitlen := uint(mod.BitLen())
	v := new(big.Int)
	for {
		v.SetBytes(Bits(bitlen, false, rand))
		if v.Cmp(mod) < 0 {
			return field.New(p).SetBigInt(v)
		}
	}
}

// Scalar draws a uniform scalar in [1, order) from rand, for use as a
// Montgomery-ladder or Edwards scalar multiplier.
func Scalar(order *big.Int, rand cipher.Stream) *big.Int {
	return Int(order, rand)
}

type randstream struct{}

func (r *randstream) XORKeyStream(dst, src []byte) {
	l := len(dst)
	if len(src) != l {
		panic("srandom: mismatched buffer lengths")
	}
	buf := make([]byte, l)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	for i := 0; i < l; i++ {
		dst[i] = src[i] ^ buf[i]
	}
}

// Stream is the standard cryptographically strong cipher.Stream, backed
// by crypto/rand. Use it wherever a caller needs fresh randomness rather
// than a reproducible test stream.
var Stream cipher.Stream = new(randstream)

// StreamFromSeed expands a fixed seed into a deterministic cipher.Stream
// via blake2b-based counter-mode expansion, for reproducible property
// tests that still want Pick-style sampling instead of a hardcoded
// scalar.
func StreamFromSeed(seed []byte) cipher.Stream {
	return &seededStream{seed: seed}
}

type seededStream struct {
	seed    []byte
	counter uint64
	buf     []byte
}

func (s *seededStream) XORKeyStream(dst, src []byte) {
	if len(dst) != len(src) {
		panic("srandom: mismatched buffer lengths")
	}
	for i := range dst {
		if len(s.buf) == 0 {
			s.buf = s.nextBlock()
		}
		dst[i] = src[i] ^ s.buf[0]
		s.buf = s.buf[1:]
	}
}

func (s *seededStream) nextBlock() []byte {
	var ctr [8]byte
	c := s.counter
	for i := 7; i >= 0; i-- {
		ctr[i] = byte(c)
		c >>= 8
	}
	s.counter++
	h, err := blake2b.New256(s.seed)
	if err != nil {
		// blake2b.New256 only errors on a key longer than 64 bytes; the
		// seed is used as that key, so a longer seed panics here.
		panic(err)
	}
	h.Write(ctr[:])
	return h.Sum(nil)
}
