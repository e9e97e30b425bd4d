package analysis

import "github.com/lyonad/sboxlab/pkg/crypto/sbox"

// SACResult reports the strict avalanche criterion: entry [i][j] of the
// matrix is the probability that output bit j flips when input bit i flips.
// Every entry of an ideal table is 0.5.
type SACResult struct {
	FloatStats
	Matrix [8][8]float64 `json:"matrix"`
}

// SAC builds the 8x8 avalanche probability matrix and summarizes its 64
// entries.
func SAC(s sbox.SBox) SACResult {
	var counts [8][8]int
	for x := 0; x < sbox.Size; x++ {
		for i := 0; i < 8; i++ {
			diff := s[x] ^ s[x^(1<<i)]
			for j := 0; j < 8; j++ {
				counts[i][j] += int(diff >> j & 1)
			}
		}
	}

	res := SACResult{}
	flat := make([]float64, 0, 64)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			p := float64(counts[i][j]) / float64(sbox.Size)
			res.Matrix[i][j] = p
			flat = append(flat, p)
		}
	}
	res.FloatStats = summarizeFloats(flat)
	return res
}
