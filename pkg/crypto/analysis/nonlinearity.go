package analysis

// TargetNonlinearity is the best value achieved by bijective 8-bit S-boxes;
// AES and the K44 family both reach it.
const TargetNonlinearity = 112

// NonlinearityResult reports the nonlinearity distribution over all 255
// nonzero output-bit combinations.
type NonlinearityResult struct {
	IntStats
}

// ComponentNonlinearity returns the nonlinearity of the single component
// function b.S(x): 128 minus half the largest spectral magnitude.
func ComponentNonlinearity(sp *Spectrum, b byte) int {
	return 128 - sp.MaxAbsAll(b)/2
}

// Nonlinearity computes the nonlinearity of every nonzero output-bit
// combination and summarizes the 255 values. An all-zero component yields 0
// without special-casing: its spectrum peaks at |W| = 256.
func Nonlinearity(sp *Spectrum) NonlinearityResult {
	values := make([]int, 0, 255)
	for b := 1; b < 256; b++ {
		values = append(values, ComponentNonlinearity(sp, byte(b)))
	}
	return NonlinearityResult{summarizeInts(values)}
}
