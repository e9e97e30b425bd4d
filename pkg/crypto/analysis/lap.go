package analysis

import "github.com/lyonad/sboxlab/pkg/crypto/sbox"

// LAPResult reports the linear approximation probability derived from the
// Walsh spectrum. Max is the largest |W(a,b)|/256 over nonzero mask pairs
// (the doubled-bias convention); MaxBias and AverageBias are the raw
// |W|/512 bias magnitudes. Lower is better throughout.
type LAPResult struct {
	Max         float64 `json:"max"`
	MaxBias     float64 `json:"max_bias"`
	AverageBias float64 `json:"average_bias"`
}

// LAP scans the spectrum over all nonzero input and output masks.
func LAP(sp *Spectrum) LAPResult {
	maxAbs := 0
	sumAbs := 0
	for b := 1; b < 256; b++ {
		for a := 1; a < 256; a++ {
			v := abs(sp.At(byte(b), byte(a)))
			sumAbs += v
			if v > maxAbs {
				maxAbs = v
			}
		}
	}

	const pairs = 255 * 255
	return LAPResult{
		Max:         float64(maxAbs) / float64(sbox.Size),
		MaxBias:     float64(maxAbs) / float64(2*sbox.Size),
		AverageBias: float64(sumAbs) / float64(2*sbox.Size) / float64(pairs),
	}
}
