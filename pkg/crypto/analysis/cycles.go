package analysis

import "github.com/lyonad/sboxlab/pkg/crypto/sbox"

// CycleResult describes the cycle decomposition of the table viewed as a
// permutation of 0..255. Lengths always sum to 256. Fixed points are cycles
// of length one; zero of them is the ideal.
type CycleResult struct {
	Count       int   `json:"count"`
	MinLength   int   `json:"min_length"`
	MaxLength   int   `json:"max_length"`
	FixedPoints int   `json:"fixed_points"`
	Lengths     []int `json:"lengths"`
}

// CycleStructure walks every orbit of the permutation. For a non-bijective
// table the walk still terminates and partitions all 256 inputs, but only a
// permutation gives a true cycle decomposition; callers gate on the
// bijectivity flag.
func CycleStructure(s sbox.SBox) CycleResult {
	res := CycleResult{MinLength: sbox.Size}
	var visited [sbox.Size]bool

	for start := 0; start < sbox.Size; start++ {
		if visited[start] {
			continue
		}
		length := 0
		for cur := start; !visited[cur]; cur = int(s[cur]) {
			visited[cur] = true
			length++
		}
		res.Lengths = append(res.Lengths, length)
		res.Count++
		if length < res.MinLength {
			res.MinLength = length
		}
		if length > res.MaxLength {
			res.MaxLength = length
		}
	}

	for x := 0; x < sbox.Size; x++ {
		if s[x] == byte(x) {
			res.FixedPoints++
		}
	}
	return res
}
