package analysis

import "math"

// IntStats summarizes a set of integer-valued metric samples.
type IntStats struct {
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	Average float64 `json:"average"`
}

// FloatStats summarizes a set of real-valued metric samples.
type FloatStats struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
	StdDev  float64 `json:"std_dev"`
}

func summarizeInts(values []int) IntStats {
	st := IntStats{Min: values[0], Max: values[0]}
	sum := 0
	for _, v := range values {
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
		sum += v
	}
	st.Average = float64(sum) / float64(len(values))
	return st
}

func summarizeFloats(values []float64) FloatStats {
	st := FloatStats{Min: values[0], Max: values[0]}
	sum := 0.0
	for _, v := range values {
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
		sum += v
	}
	st.Average = sum / float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := v - st.Average
		variance += d * d
	}
	st.StdDev = math.Sqrt(variance / float64(len(values)))
	return st
}
