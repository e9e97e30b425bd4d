package analysis

import "github.com/lyonad/sboxlab/pkg/crypto/sbox"

// BICNLResult reports the nonlinearity of the 28 pairwise-XOR output
// functions, the bit independence criterion in its nonlinearity form.
type BICNLResult struct {
	IntStats
}

// BICNL evaluates the nonlinearity of bit_j(S) XOR bit_k(S) for every
// output-bit pair. Each pair function is exactly the component of the
// two-bit mask (1<<j)|(1<<k), so the values come straight from the shared
// spectrum.
func BICNL(sp *Spectrum) BICNLResult {
	values := make([]int, 0, 28)
	for j := 0; j < 8; j++ {
		for k := j + 1; k < 8; k++ {
			mask := byte(1<<j | 1<<k)
			values = append(values, ComponentNonlinearity(sp, mask))
		}
	}
	return BICNLResult{summarizeInts(values)}
}

// BICSACResult reports the avalanche behaviour of the pairwise-XOR output
// functions: for input bit i and output pair (j,k), the probability that
// bit_j XOR bit_k of the output flips when input bit i flips. Ideal is 0.5
// per combination, 8 input bits x 28 pairs = 224 samples.
type BICSACResult struct {
	FloatStats
}

// BICSAC measures the SAC-style flip probability of every output-bit pair
// under every single-input-bit flip.
func BICSAC(s sbox.SBox) BICSACResult {
	values := make([]float64, 0, 224)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			for k := j + 1; k < 8; k++ {
				flips := 0
				for x := 0; x < sbox.Size; x++ {
					diff := s[x] ^ s[x^(1<<i)]
					flips += int((diff>>j ^ diff>>k) & 1)
				}
				values = append(values, float64(flips)/float64(sbox.Size))
			}
		}
	}
	return BICSACResult{summarizeFloats(values)}
}
