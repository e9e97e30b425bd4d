package sbox

// Validation reports the structural requirements on a substitution table:
// bijectivity and per-bit output balance. A table failing either is still
// analyzable, but its metrics carry no cryptographic weight, so both flags
// travel with every analysis report.
type Validation struct {
	IsBijective bool `json:"is_bijective"`
	IsBalanced  bool `json:"is_balanced"`

	// Bijectivity diagnostics, empty when IsBijective.
	DuplicateValues []byte `json:"duplicate_values,omitempty"`
	MissingValues   []byte `json:"missing_values,omitempty"`
	UniqueValues    int    `json:"unique_values"`

	// Ones count per output-bit position; balanced means all 128.
	BitCounts [8]int `json:"bit_counts"`
}

// Valid reports whether the table meets both structural requirements.
func (v Validation) Valid() bool { return v.IsBijective && v.IsBalanced }

// Validate runs both structural checks and collects their diagnostics.
func Validate(s SBox) Validation {
	v := Validation{}

	var counts [Size]int
	for _, out := range s {
		counts[out]++
		for bit := 0; bit < 8; bit++ {
			if out>>bit&1 == 1 {
				v.BitCounts[bit]++
			}
		}
	}

	for value, n := range counts {
		switch {
		case n == 0:
			v.MissingValues = append(v.MissingValues, byte(value))
		case n > 1:
			v.DuplicateValues = append(v.DuplicateValues, byte(value))
			v.UniqueValues++
		default:
			v.UniqueValues++
		}
	}
	v.IsBijective = len(v.MissingValues) == 0 && len(v.DuplicateValues) == 0

	v.IsBalanced = true
	for _, n := range v.BitCounts {
		if n != Size/2 {
			v.IsBalanced = false
			break
		}
	}

	return v
}

// CheckBijective reports whether every output value occurs exactly once.
func CheckBijective(s SBox) bool {
	var seen [Size]bool
	for _, out := range s {
		if seen[out] {
			return false
		}
		seen[out] = true
	}
	return true
}

// CheckBitBalance reports whether each output-bit position is set for exactly
// half of all inputs, returning the per-bit ones counts either way.
func CheckBitBalance(s SBox) (bool, [8]int) {
	var counts [8]int
	for _, out := range s {
		for bit := 0; bit < 8; bit++ {
			counts[bit] += int(out >> bit & 1)
		}
	}
	for _, n := range counts {
		if n != Size/2 {
			return false, counts
		}
	}
	return true, counts
}
