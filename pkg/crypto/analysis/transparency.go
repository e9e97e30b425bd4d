package analysis

import "github.com/lyonad/sboxlab/pkg/crypto/sbox"

// TransparencyResult reports the transparency order proxy: the mean absolute
// correlation between single input bits and the nonzero output-bit
// combinations, read from the shared spectrum. Lower is better.
type TransparencyResult struct {
	Order float64 `json:"order"`
	// MaxCorrelation is the worst single (input bit, output mask)
	// correlation magnitude contributing to the average.
	MaxCorrelation float64 `json:"max_correlation"`
}

// TransparencyOrder averages |W(a,b)|/256 over the eight weight-one input
// masks and all 255 nonzero output masks.
func TransparencyOrder(sp *Spectrum) TransparencyResult {
	sum := 0.0
	maxCorr := 0.0
	for b := 1; b < 256; b++ {
		for a := 0; a < 8; a++ {
			corr := float64(abs(sp.At(byte(b), byte(1<<a)))) / float64(sbox.Size)
			sum += corr
			if corr > maxCorr {
				maxCorr = corr
			}
		}
	}
	return TransparencyResult{
		Order:          sum / (255 * 8),
		MaxCorrelation: maxCorr,
	}
}
