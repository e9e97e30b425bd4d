// Package sbox generates and validates 8-bit substitution boxes built from
// an affine transformation over GF(2^8): S(x) = M * x^-1 XOR c.
package sbox

import (
	"encoding/hex"
	"fmt"
	"math/bits"

	"golang.org/x/crypto/blake2b"

	"github.com/lyonad/sboxlab/pkg/crypto/gf256"
)

// Size is the number of entries in an 8-bit substitution table.
const Size = 256

// ConstantAES is the standard Rijndael affine constant.
const ConstantAES = 0x63

// Matrix is an 8x8 binary matrix; row i is packed into byte i, bit j of a row
// multiplying bit j of the input vector.
type Matrix [8]byte

// SBox is a full 8-bit substitution table: index is the input byte, value the
// output byte. A table is only a valid cryptographic candidate when it is
// bijective and bit-balanced; see Validate.
type SBox [Size]byte

// Generate builds the substitution table S(x) = AffineTransform(x^-1, m, constant)
// over the given field. S(0) comes out as the constant because the field maps
// 0 to 0 under the Inverse convention.
func Generate(m Matrix, constant byte, f *gf256.Field) SBox {
	var s SBox
	for x := 0; x < Size; x++ {
		s[x] = AffineTransform(f.Inverse(byte(x)), m, constant)
	}
	return s
}

// AffineTransform applies the GF(2) matrix-vector product plus constant:
// output bit i is the parity of m[i] AND v, and the assembled byte is XORed
// with c.
func AffineTransform(v byte, m Matrix, c byte) byte {
	var out byte
	for i := 0; i < 8; i++ {
		out |= byte(bits.OnesCount8(m[i]&v)&1) << i
	}
	return out ^ c
}

// FromSlice copies a caller-supplied table into an SBox, rejecting anything
// that is not exactly 256 entries. Byte range needs no check here; it is
// enforced where tables are parsed from text or JSON integers.
func FromSlice(table []byte) (SBox, error) {
	var s SBox
	if len(table) != Size {
		return s, fmt.Errorf("sbox: table must have exactly %d entries, got %d", Size, len(table))
	}
	copy(s[:], table)
	return s, nil
}

// Inverse returns the inverse table, inv[s[x]] = x. The receiver must be
// bijective; a non-permutation has no inverse.
func (s SBox) Inverse() (SBox, error) {
	var inv SBox
	var seen [Size]bool
	for x := 0; x < Size; x++ {
		v := s[x]
		if seen[v] {
			return inv, fmt.Errorf("sbox: table is not bijective, value %#02x repeats", v)
		}
		seen[v] = true
		inv[v] = byte(x)
	}
	return inv, nil
}

// Fingerprint returns a short stable identifier for the table, used to tag
// analysis reports and presets.
func (s SBox) Fingerprint() string {
	sum := blake2b.Sum256(s[:])
	return hex.EncodeToString(sum[:16])
}

// Bytes returns a copy of the table as a slice.
func (s SBox) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, s[:])
	return out
}
