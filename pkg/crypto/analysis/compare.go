package analysis

import (
	"encoding/json"
	"math"
)

// Direction states how a metric value ranks candidates.
type Direction int

const (
	HigherIsBetter Direction = iota
	LowerIsBetter
	ClosestToTarget
)

// floatTolerance bounds the rounding noise of the float-valued metrics;
// values closer than this are the same value, and ties are reported as
// equal rather than broken.
const floatTolerance = 1e-12

// MetricOutcome is the comparison verdict for a single metric. When several
// candidates share the best value the outcome lists all of them and sets
// Equal; a winner is never forced on a tie.
type MetricOutcome struct {
	Metric    string    `json:"metric"`
	Direction Direction `json:"direction"`
	Target    float64   `json:"target,omitempty"`
	Values    []float64 `json:"values"`
	Best      []string  `json:"best"`
	Equal     bool      `json:"equal"`
}

// comparableMetric binds a metric name to its directionality contract and
// the scalar extracted from a report for ranking.
type comparableMetric struct {
	name      string
	direction Direction
	target    float64
	extract   func(*Report) float64
}

// rankedMetrics is the explicit directionality contract of the suite.
var rankedMetrics = []comparableMetric{
	{"nonlinearity_min", HigherIsBetter, 0, func(r *Report) float64 { return float64(r.Nonlinearity.Min) }},
	{"nonlinearity_avg", HigherIsBetter, 0, func(r *Report) float64 { return r.Nonlinearity.Average }},
	{"sac_avg", ClosestToTarget, 0.5, func(r *Report) float64 { return r.SAC.Average }},
	{"bic_nl_min", HigherIsBetter, 0, func(r *Report) float64 { return float64(r.BICNL.Min) }},
	{"bic_sac_avg", ClosestToTarget, 0.5, func(r *Report) float64 { return r.BICSAC.Average }},
	{"lap_max", LowerIsBetter, 0, func(r *Report) float64 { return r.LAP.Max }},
	{"dap_max", LowerIsBetter, 0, func(r *Report) float64 { return r.DAP.Max }},
	{"differential_uniformity", LowerIsBetter, 0, func(r *Report) float64 { return float64(r.DiffUniformity) }},
	{"algebraic_degree_min", HigherIsBetter, 0, func(r *Report) float64 { return float64(r.AlgebraicDegree.Min) }},
	{"transparency_order", LowerIsBetter, 0, func(r *Report) float64 { return r.Transparency.Order }},
	{"correlation_immunity_min", HigherIsBetter, 0, func(r *Report) float64 { return float64(r.CorrelationImmunity.Min) }},
	{"fixed_points", LowerIsBetter, 0, func(r *Report) float64 { return float64(r.Cycles.FixedPoints) }},
}

// Compare ranks two or more analysis reports metric by metric under the
// directionality contract above.
func Compare(reports ...*Report) []MetricOutcome {
	if len(reports) == 0 {
		return nil
	}

	outcomes := make([]MetricOutcome, 0, len(rankedMetrics))
	for _, m := range rankedMetrics {
		out := MetricOutcome{
			Metric:    m.name,
			Direction: m.direction,
			Target:    m.target,
			Values:    make([]float64, len(reports)),
		}

		bestScore := math.Inf(1)
		for i, r := range reports {
			v := m.extract(r)
			out.Values[i] = v
			if score := m.score(v); score < bestScore-floatTolerance {
				bestScore = score
			}
		}
		for i, r := range reports {
			if m.score(out.Values[i]) <= bestScore+floatTolerance {
				out.Best = append(out.Best, r.Name)
			}
		}
		out.Equal = len(out.Best) == len(reports)
		outcomes = append(outcomes, out)
	}
	return outcomes
}

// score maps a metric value to a minimized quantity under the metric's
// direction.
func (m comparableMetric) score(v float64) float64 {
	switch m.direction {
	case HigherIsBetter:
		return -v
	case ClosestToTarget:
		return math.Abs(v - m.target)
	default:
		return v
	}
}

// MarshalJSON renders the direction by name rather than ordinal.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// String renders the direction for reports.
func (d Direction) String() string {
	switch d {
	case HigherIsBetter:
		return "higher-is-better"
	case LowerIsBetter:
		return "lower-is-better"
	case ClosestToTarget:
		return "closest-to-target"
	default:
		return "unknown"
	}
}
