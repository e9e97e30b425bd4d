package analysis

import "math/bits"

// ImmunityResult reports the correlation immunity order of every nonzero
// output-bit combination. High-nonlinearity bijective S-boxes routinely sit
// at order 0 across the board; that is the accepted trade-off against
// nonlinearity, not a defect.
type ImmunityResult struct {
	IntStats
	// Orders holds the per-combination immunity order indexed by output
	// mask minus one.
	Orders [255]int `json:"orders"`
}

// CorrelationImmunity finds, for each output mask b, the largest m such that
// every Walsh coefficient W(a,b) with 1 <= weight(a) <= m vanishes.
func CorrelationImmunity(sp *Spectrum) ImmunityResult {
	res := ImmunityResult{}
	for b := 1; b < 256; b++ {
		// The smallest weight of a nonzero coefficient bounds the order.
		minWeight := 9
		for a := 1; a < 256; a++ {
			if sp.At(byte(b), byte(a)) != 0 {
				if w := weight(byte(a)); w < minWeight {
					minWeight = w
				}
			}
		}
		order := minWeight - 1
		if order > 8 {
			// Spectrally flat outside a = 0 cannot happen for a real
			// function, but cap the order at the input width anyway.
			order = 8
		}
		res.Orders[b-1] = order
	}
	res.IntStats = summarizeInts(res.Orders[:])
	return res
}

func weight(v byte) int { return bits.OnesCount8(v) }
