package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyonad/sboxlab/pkg/crypto/gf256"
	"github.com/lyonad/sboxlab/pkg/crypto/sbox"
)

func aesSBox(t *testing.T) sbox.SBox {
	t.Helper()
	return sbox.Generate(sbox.MatrixAES, sbox.ConstantAES, gf256.AES())
}

func k44SBox(t *testing.T) sbox.SBox {
	t.Helper()
	return sbox.Generate(sbox.MatrixK44, sbox.ConstantAES, gf256.AES())
}

// linearSBox is the identity table, the weakest possible candidate: every
// component function is linear.
func linearSBox() sbox.SBox {
	var s sbox.SBox
	for i := range s {
		s[i] = byte(i)
	}
	return s
}

func TestSpectrumMatchesDirectSum(t *testing.T) {
	s := aesSBox(t)
	sp := NewSpectrum(s)

	for _, pair := range [][2]byte{{0x01, 0x01}, {0x35, 0x9C}, {0xFF, 0xFF}, {0x00, 0x80}, {0x40, 0x00}} {
		a, b := pair[0], pair[1]
		direct := 0
		for x := 0; x < sbox.Size; x++ {
			if parity(a&byte(x))^parity(b&s[x]) == 0 {
				direct++
			} else {
				direct--
			}
		}
		assert.Equal(t, direct, sp.At(b, a), "W(a=%#02x, b=%#02x)", a, b)
	}
}

func TestSpectrumParseval(t *testing.T) {
	sp := NewSpectrum(k44SBox(t))

	for b := 1; b < 256; b++ {
		sum := 0
		for a := 0; a < 256; a++ {
			v := sp.At(byte(b), byte(a))
			sum += v * v
		}
		require.Equal(t, 256*256, sum, "Parseval for mask %#02x", b)
	}
}

func TestNonlinearityAES(t *testing.T) {
	res := Nonlinearity(NewSpectrum(aesSBox(t)))

	assert.Equal(t, TargetNonlinearity, res.Min)
	assert.Equal(t, TargetNonlinearity, res.Max)
	assert.InDelta(t, float64(TargetNonlinearity), res.Average, 1e-9)
}

func TestNonlinearityLinearTable(t *testing.T) {
	res := Nonlinearity(NewSpectrum(linearSBox()))
	assert.Equal(t, 0, res.Min, "a linear component has nonlinearity 0")
}

func TestNonlinearityConstantTable(t *testing.T) {
	var s sbox.SBox // all outputs zero
	res := Nonlinearity(NewSpectrum(s))
	assert.Equal(t, 0, res.Min)
	assert.Equal(t, 0, res.Max, "constant components must score 0, not 128")
}

func TestSACAES(t *testing.T) {
	res := SAC(aesSBox(t))

	assert.InDelta(t, 0.5, res.Average, 0.01)
	assert.Greater(t, res.Min, 0.4)
	assert.Less(t, res.Max, 0.6)
	assert.Greater(t, res.StdDev, 0.0)

	// Matrix entries are probabilities over 256 inputs.
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			p := res.Matrix[i][j]
			require.GreaterOrEqual(t, p, 0.0)
			require.LessOrEqual(t, p, 1.0)
		}
	}
}

func TestBICNLAES(t *testing.T) {
	res := BICNL(NewSpectrum(aesSBox(t)))

	assert.Equal(t, TargetNonlinearity, res.Min)
	assert.Equal(t, TargetNonlinearity, res.Max)
}

func TestBICSACK44(t *testing.T) {
	res := BICSAC(k44SBox(t))

	assert.InDelta(t, 0.5, res.Average, 0.01)
	assert.Greater(t, res.Min, 0.4)
	assert.Less(t, res.Max, 0.6)
}

func TestLAPAES(t *testing.T) {
	res := LAP(NewSpectrum(aesSBox(t)))

	// AES spectral peak is |W| = 32.
	assert.InDelta(t, 32.0/256.0, res.Max, 1e-12)
	assert.InDelta(t, 32.0/512.0, res.MaxBias, 1e-12)
	assert.Greater(t, res.AverageBias, 0.0)
	assert.Less(t, res.AverageBias, res.MaxBias)
}

func TestDDTRowsSumToSize(t *testing.T) {
	ddt := BuildDDT(k44SBox(t))

	for din := 0; din < 256; din++ {
		sum := 0
		for dout := 0; dout < 256; dout++ {
			sum += ddt[din][dout]
		}
		require.Equal(t, sbox.Size, sum, "row %d", din)
	}
	assert.Equal(t, sbox.Size, ddt[0][0], "trivial row concentrates at zero")
}

func TestDDTMatchesDirectDefinition(t *testing.T) {
	s := aesSBox(t)
	ddt := BuildDDT(s)

	// Spot-check entries against the definition DDT[din][dout] =
	// #{x : S(x) XOR S(x XOR din) = dout}.
	for _, din := range []byte{0x01, 0x7F, 0x80, 0xFF} {
		for _, dout := range []byte{0x00, 0x01, 0x63, 0xFE} {
			count := 0
			for x := 0; x < sbox.Size; x++ {
				if s[x]^s[byte(x)^din] == dout {
					count++
				}
			}
			require.Equal(t, count, ddt[din][dout], "din %#02x dout %#02x", din, dout)
		}
	}

	// x and x XOR din contribute to the same cell, so every nonzero-row
	// entry is even.
	for din := 1; din < 256; din++ {
		for dout := 0; dout < 256; dout++ {
			require.Zero(t, ddt[din][dout]%2, "din %d dout %d", din, dout)
		}
	}
}

func TestDAPAndUniformityAES(t *testing.T) {
	ddt := BuildDDT(aesSBox(t))

	assert.Equal(t, 4, DifferentialUniformity(ddt))

	res := DAP(ddt)
	assert.InDelta(t, 4.0/256.0, res.Max, 1e-12)
	assert.InDelta(t, 4.0/256.0, res.AverageRowMax, 1e-12,
		"every AES row peaks at the uniformity bound")
}

func TestAlgebraicDegreeAES(t *testing.T) {
	res := AlgebraicDegree(aesSBox(t))

	assert.Equal(t, 7, res.Min)
	assert.Equal(t, 7, res.Max)
	for bit, deg := range res.PerBit {
		assert.Equal(t, 7, deg, "bit %d", bit)
	}
}

func TestAlgebraicDegreeEdgeCases(t *testing.T) {
	res := AlgebraicDegree(linearSBox())
	assert.Equal(t, 1, res.Min)
	assert.Equal(t, 1, res.Max)

	var constant sbox.SBox
	res = AlgebraicDegree(constant)
	assert.Equal(t, 0, res.Max)
}

func TestTransparencyOrder(t *testing.T) {
	aes := TransparencyOrder(NewSpectrum(aesSBox(t)))
	linear := TransparencyOrder(NewSpectrum(linearSBox()))

	assert.Greater(t, aes.Order, 0.0)
	assert.Less(t, aes.Order, 1.0)
	assert.GreaterOrEqual(t, aes.MaxCorrelation, aes.Order)

	// The identity table correlates perfectly with its own input bits.
	assert.InDelta(t, 1.0, linear.MaxCorrelation, 1e-12)
	assert.Less(t, aes.MaxCorrelation, linear.MaxCorrelation)
}

func TestCorrelationImmunityAES(t *testing.T) {
	res := CorrelationImmunity(NewSpectrum(aesSBox(t)))

	// High-nonlinearity bijective boxes trade immunity away entirely.
	assert.Equal(t, 0, res.Min)
	assert.Equal(t, 0, res.Max)
}

func TestCycleStructure(t *testing.T) {
	// The AES S-box decomposes into cycles of lengths 2, 27, 59, 81, 87
	// with no fixed points.
	res := CycleStructure(aesSBox(t))

	assert.Equal(t, 5, res.Count)
	assert.Equal(t, 2, res.MinLength)
	assert.Equal(t, 87, res.MaxLength)
	assert.Equal(t, 0, res.FixedPoints)

	sum := 0
	for _, l := range res.Lengths {
		sum += l
	}
	assert.Equal(t, sbox.Size, sum)
}

func TestCycleStructureIdentity(t *testing.T) {
	res := CycleStructure(linearSBox())

	assert.Equal(t, sbox.Size, res.Count)
	assert.Equal(t, sbox.Size, res.FixedPoints)
	assert.Equal(t, 1, res.MaxLength)
}

func TestAnalyzeFullReport(t *testing.T) {
	report, err := Analyze(context.Background(), k44SBox(t), "k44")
	require.NoError(t, err)

	assert.Equal(t, "k44", report.Name)
	assert.Len(t, report.Table, sbox.Size)
	assert.NotEmpty(t, report.Fingerprint)
	assert.True(t, report.Validation.IsBijective)
	assert.True(t, report.Validation.IsBalanced)
	assert.Equal(t, TargetNonlinearity, report.Nonlinearity.Min)
	assert.Equal(t, 4, report.DiffUniformity)
	assert.InDelta(t, 4.0/256.0, report.DAP.Max, 1e-12)
	assert.Equal(t, 7, report.AlgebraicDegree.Min)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	s := k44SBox(t)
	first, err := Analyze(context.Background(), s, "k44")
	require.NoError(t, err)
	second, err := Analyze(context.Background(), s, "k44")
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated analysis must be bit-identical")
}

func TestAnalyzeNonBijectiveStillReports(t *testing.T) {
	s := k44SBox(t)
	s[7] = s[8] // break the permutation

	report, err := Analyze(context.Background(), s, "broken")
	require.NoError(t, err)
	assert.False(t, report.Validation.IsBijective)
	assert.NotEmpty(t, report.Validation.DuplicateValues)
	// Metrics remain well-defined.
	assert.GreaterOrEqual(t, report.Nonlinearity.Min, 0)
}

func TestAnalyzeRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Analyze(ctx, k44SBox(t), "k44")
	require.Error(t, err)
}

func TestAnalyzeTableRejectsWrongLength(t *testing.T) {
	_, err := AnalyzeTable(context.Background(), make([]byte, 100), "short")
	require.Error(t, err)
}

func TestCompareDeclaresWinners(t *testing.T) {
	ctx := context.Background()
	strong, err := Analyze(ctx, aesSBox(t), "aes")
	require.NoError(t, err)
	weak, err := Analyze(ctx, linearSBox(), "identity-table")
	require.NoError(t, err)

	outcomes := Compare(strong, weak)
	require.NotEmpty(t, outcomes)

	byMetric := make(map[string]MetricOutcome)
	for _, o := range outcomes {
		byMetric[o.Metric] = o
	}

	nl := byMetric["nonlinearity_min"]
	assert.Equal(t, []string{"aes"}, nl.Best)
	assert.False(t, nl.Equal)

	du := byMetric["differential_uniformity"]
	assert.Equal(t, []string{"aes"}, du.Best)

	fp := byMetric["fixed_points"]
	assert.Equal(t, []string{"aes"}, fp.Best, "identity table has 256 fixed points")
}

func TestCompareReportsTiesAsEqual(t *testing.T) {
	ctx := context.Background()
	a, err := Analyze(ctx, k44SBox(t), "first")
	require.NoError(t, err)
	b, err := Analyze(ctx, k44SBox(t), "second")
	require.NoError(t, err)

	for _, o := range Compare(a, b) {
		assert.True(t, o.Equal, "metric %s must report a tie", o.Metric)
		assert.ElementsMatch(t, []string{"first", "second"}, o.Best)
	}
}

func TestCompareNoReports(t *testing.T) {
	assert.Nil(t, Compare())
}
