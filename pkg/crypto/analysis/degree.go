package analysis

import (
	"math/bits"

	"github.com/lyonad/sboxlab/pkg/crypto/sbox"
)

// DegreeResult reports the algebraic degree of each output-bit function.
// The maximum for a bijective 8-bit function is 7.
type DegreeResult struct {
	IntStats
	PerBit [8]int `json:"per_bit"`
}

// AlgebraicDegree derives the algebraic normal form of every output bit via
// the Moebius transform of its truth table and takes the heaviest monomial
// with a nonzero coefficient. A constant bit function has degree 0.
func AlgebraicDegree(s sbox.SBox) DegreeResult {
	res := DegreeResult{}
	for bit := 0; bit < 8; bit++ {
		var anf [sbox.Size]byte
		for x := 0; x < sbox.Size; x++ {
			anf[x] = s[x] >> bit & 1
		}
		moebiusTransform(&anf)

		deg := 0
		for monomial := 0; monomial < sbox.Size; monomial++ {
			if anf[monomial] == 1 {
				if w := bits.OnesCount8(byte(monomial)); w > deg {
					deg = w
				}
			}
		}
		res.PerBit[bit] = deg
	}
	res.IntStats = summarizeInts(res.PerBit[:])
	return res
}

// moebiusTransform converts a truth table to ANF coefficients in place; the
// transform is an involution over GF(2).
func moebiusTransform(tt *[sbox.Size]byte) {
	for h := 1; h < sbox.Size; h *= 2 {
		for i := 0; i < sbox.Size; i += h * 2 {
			for j := i; j < i+h; j++ {
				tt[j+h] ^= tt[j]
			}
		}
	}
}
