// Package analysis computes cryptographic strength metrics over 8-bit
// substitution tables: nonlinearity, avalanche and bit-independence criteria,
// linear and differential approximation bounds, algebraic degree,
// transparency order, correlation immunity, and cycle structure. Every
// analyzer is a pure function of the table plus, where noted, a shared
// read-only Walsh spectrum.
package analysis

import (
	"math/bits"

	"github.com/lyonad/sboxlab/pkg/crypto/sbox"
)

// Spectrum is the full signed Walsh-Hadamard table of a substitution box:
// W[b][a] = sum over x of (-1)^(a.x XOR b.S(x)) for every output mask b and
// input mask a. It is built once per analysis and shared by the
// nonlinearity, BIC-NL, LAP, transparency order, and correlation immunity
// analyzers. A Spectrum is immutable after construction.
type Spectrum struct {
	w [256][256]int
}

// NewSpectrum computes the Walsh table for every output mask using the fast
// butterfly transform, one transform per mask.
func NewSpectrum(s sbox.SBox) *Spectrum {
	sp := &Spectrum{}
	for b := 1; b < 256; b++ {
		row := &sp.w[b]
		for x := 0; x < sbox.Size; x++ {
			// Bipolar form of the component function b.S(x).
			row[x] = 1 - 2*int(parity(byte(b)&s[x]))
		}
		walshTransform(row)
	}
	// Mask 0 is the constant-one function: W[0][0] = 256, rest 0.
	sp.w[0][0] = sbox.Size
	return sp
}

// At returns W[b][a].
func (sp *Spectrum) At(b, a byte) int { return sp.w[b][a] }

// MaxAbs returns the largest |W[b][a]| over nonzero input masks a.
func (sp *Spectrum) MaxAbs(b byte) int {
	max := 0
	for a := 1; a < 256; a++ {
		if v := abs(sp.w[b][a]); v > max {
			max = v
		}
	}
	return max
}

// MaxAbsAll returns the largest |W[b][a]| over every input mask, including
// a = 0. For balanced components W[b][0] is 0 and the two maxima coincide;
// for degenerate tables (a constant component, say) including a = 0 keeps
// the nonlinearity at its true value of 0.
func (sp *Spectrum) MaxAbsAll(b byte) int {
	max := abs(sp.w[b][0])
	if v := sp.MaxAbs(b); v > max {
		max = v
	}
	return max
}

// walshTransform runs the in-place fast Walsh-Hadamard butterfly over a
// length-256 bipolar vector.
func walshTransform(vec *[256]int) {
	for h := 1; h < 256; h *= 2 {
		for i := 0; i < 256; i += h * 2 {
			for j := i; j < i+h; j++ {
				x, y := vec[j], vec[j+h]
				vec[j], vec[j+h] = x+y, x-y
			}
		}
	}
}

func parity(v byte) byte {
	return byte(bits.OnesCount8(v) & 1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
