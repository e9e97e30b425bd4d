// Package gf256 implements arithmetic in the finite field GF(2^8) using
// exp/log lookup tables built from a caller-chosen generator and irreducible
// polynomial. The Rijndael reduction x^8 + x^4 + x^3 + x + 1 (0x11B) is the
// default, matching AES.
package gf256

import "fmt"

const (
	// RijndaelPoly is the AES irreducible polynomial x^8 + x^4 + x^3 + x + 1.
	RijndaelPoly = 0x11B

	// DefaultGenerator is the generator used when none is specified.
	// 3 is primitive under the Rijndael reduction; 2 is not (its
	// multiplicative order is 51, so it cannot index the full field).
	DefaultGenerator = 0x03
)

// Field holds the exp/log tables for one GF(2^8) representation. A Field is
// immutable after construction and safe for concurrent use.
type Field struct {
	generator byte
	poly      uint16
	exp       [256]byte
	log       [256]byte
}

// New builds the exp/log tables for the field defined by poly, walking the
// powers of generator. The generator must be primitive: its multiplicative
// order has to be exactly 255 so that every nonzero element appears in the
// exp table. A shorter cycle is rejected, never truncated or padded.
func New(generator byte, poly uint16) (*Field, error) {
	if generator < 2 {
		return nil, fmt.Errorf("gf256: generator must be at least 2, got %d", generator)
	}
	if poly&0x100 == 0 {
		return nil, fmt.Errorf("gf256: polynomial %#x is not of degree 8", poly)
	}

	f := &Field{generator: generator, poly: poly}

	x := byte(1)
	for i := 0; i < 255; i++ {
		if x == 1 && i > 0 {
			return nil, fmt.Errorf(
				"gf256: generator %d has multiplicative order %d under polynomial %#x, need 255",
				generator, i, poly)
		}
		f.exp[i] = x
		f.log[x] = byte(i)
		x = polyMul(x, generator, poly)
	}
	if x != 1 {
		// The walk never closed, so the element set repeats with period
		// 255 but g^255 != 1; poly is not irreducible.
		return nil, fmt.Errorf("gf256: polynomial %#x does not define a field (g^255 = %#x)", poly, x)
	}
	f.exp[255] = 1
	// log[0] stays 0 as a sentinel; the zero element has no logarithm.

	return f, nil
}

// AES returns the standard AES field: polynomial 0x11B with generator 3.
func AES() *Field {
	f, err := New(DefaultGenerator, RijndaelPoly)
	if err != nil {
		panic("gf256: AES field construction failed: " + err.Error())
	}
	return f
}

// polyMul is the schoolbook shift-and-xor product used only during table
// construction; all runtime multiplication goes through the tables.
func polyMul(a, b byte, poly uint16) byte {
	reduction := byte(poly & 0xFF)
	var result byte
	for i := 0; i < 8; i++ {
		if b&1 == 1 {
			result ^= a
		}
		carry := a & 0x80
		a <<= 1
		if carry != 0 {
			a ^= reduction
		}
		b >>= 1
	}
	return result
}

// Generator returns the generator this field was built with.
func (f *Field) Generator() byte { return f.generator }

// Poly returns the irreducible polynomial this field reduces by.
func (f *Field) Poly() uint16 { return f.poly }

// Exp returns g^i.
func (f *Field) Exp(i int) byte {
	return f.exp[((i%255)+255)%255]
}

// Log returns the discrete logarithm of a. Log(0) is undefined and returns
// the sentinel 0.
func (f *Field) Log(a byte) byte { return f.log[a] }

// Multiply returns the product of a and b in the field.
func (f *Field) Multiply(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[(int(f.log[a])+int(f.log[b]))%255]
}

// Divide returns a/b. Division by zero is rejected with an error rather than
// a panic since b may come from caller input.
func (f *Field) Divide(a, b byte) (byte, error) {
	if b == 0 {
		return 0, fmt.Errorf("gf256: division by zero")
	}
	if a == 0 {
		return 0, nil
	}
	return f.exp[(int(f.log[a])-int(f.log[b])+255)%255], nil
}

// Inverse returns the multiplicative inverse of a. Inverse(0) returns 0 by
// convention, so that x = 0 maps through an affine substitution step to the
// constant term.
func (f *Field) Inverse(a byte) byte {
	if a == 0 {
		return 0
	}
	return f.exp[(255-int(f.log[a]))%255]
}

// Pow returns a raised to the power n.
func (f *Field) Pow(a byte, n int) byte {
	if a == 0 {
		if n == 0 {
			return 1
		}
		return 0
	}
	e := (int(f.log[a]) * n) % 255
	if e < 0 {
		e += 255
	}
	return f.exp[e]
}

// Add returns the field sum of a and b, which in GF(2^8) is XOR. Subtraction
// is the same operation.
func (f *Field) Add(a, b byte) byte { return a ^ b }
