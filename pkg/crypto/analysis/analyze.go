package analysis

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lyonad/sboxlab/pkg/crypto/sbox"
)

// Report is the complete, immutable analysis record for one candidate
// table. The structural flags travel with the metrics so that a caller can
// never read strength figures without seeing whether the table is a valid
// permutation in the first place.
type Report struct {
	Name        string          `json:"name"`
	Fingerprint string          `json:"fingerprint"`
	Table       []byte          `json:"table"`
	Validation  sbox.Validation `json:"validation"`

	Nonlinearity        NonlinearityResult `json:"nonlinearity"`
	SAC                 SACResult          `json:"sac"`
	BICNL               BICNLResult        `json:"bic_nl"`
	BICSAC              BICSACResult       `json:"bic_sac"`
	LAP                 LAPResult          `json:"lap"`
	DAP                 DAPResult          `json:"dap"`
	DiffUniformity      int                `json:"differential_uniformity"`
	AlgebraicDegree     DegreeResult       `json:"algebraic_degree"`
	Transparency        TransparencyResult `json:"transparency_order"`
	CorrelationImmunity ImmunityResult     `json:"correlation_immunity"`
	Cycles              CycleResult        `json:"cycle_structure"`
}

// Analyze runs the full metric suite over a table. The Walsh spectrum and
// the difference distribution table are each built once and shared read-only
// across the analyzers that need them; the independent analyzers fan out on
// a errgroup and join before the report is returned. Identical input always
// produces an identical report.
func Analyze(ctx context.Context, s sbox.SBox, name string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis aborted: %w", err)
	}

	report := &Report{
		Name:        name,
		Fingerprint: s.Fingerprint(),
		Table:       s.Bytes(),
		Validation:  sbox.Validate(s),
	}

	// The two shared artifacts dominate the cost; build them concurrently.
	var (
		spectrum *Spectrum
		ddt      *DDT
	)
	setup, _ := errgroup.WithContext(ctx)
	setup.Go(func() error {
		spectrum = NewSpectrum(s)
		return nil
	})
	setup.Go(func() error {
		ddt = BuildDDT(s)
		return nil
	})
	if err := setup.Wait(); err != nil {
		return nil, err
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { report.Nonlinearity = Nonlinearity(spectrum); return nil })
	g.Go(func() error { report.SAC = SAC(s); return nil })
	g.Go(func() error { report.BICNL = BICNL(spectrum); return nil })
	g.Go(func() error { report.BICSAC = BICSAC(s); return nil })
	g.Go(func() error { report.LAP = LAP(spectrum); return nil })
	g.Go(func() error { report.DAP = DAP(ddt); return nil })
	g.Go(func() error { report.DiffUniformity = DifferentialUniformity(ddt); return nil })
	g.Go(func() error { report.AlgebraicDegree = AlgebraicDegree(s); return nil })
	g.Go(func() error { report.Transparency = TransparencyOrder(spectrum); return nil })
	g.Go(func() error { report.CorrelationImmunity = CorrelationImmunity(spectrum); return nil })
	g.Go(func() error { report.Cycles = CycleStructure(s); return nil })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}

// AnalyzeTable validates and analyzes a raw caller-supplied table.
func AnalyzeTable(ctx context.Context, table []byte, name string) (*Report, error) {
	s, err := sbox.FromSlice(table)
	if err != nil {
		return nil, err
	}
	return Analyze(ctx, s, name)
}
