package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/lyonad/sboxlab/internal/validation"
	"github.com/lyonad/sboxlab/pkg/config"
	"github.com/lyonad/sboxlab/pkg/crypto/analysis"
	"github.com/lyonad/sboxlab/pkg/crypto/gf256"
	"github.com/lyonad/sboxlab/pkg/crypto/sbox"
)

func init() {
	// fatih/color handles NO_COLOR itself; also drop color when piped.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
}

// buildField constructs the GF(2^8) kernel from CLI flags.
func buildField(generator string, poly uint64) (*gf256.Field, error) {
	g, err := validation.ParseByte(generator)
	if err != nil {
		return nil, fmt.Errorf("invalid generator: %w", err)
	}
	p, err := validation.ValidatePolynomial(poly)
	if err != nil {
		return nil, err
	}
	return gf256.New(g, p)
}

// resolveMatrix turns CLI input into a matrix: an explicit --rows spec wins,
// otherwise the name is looked up in the built-in catalog and then in the
// saved presets.
func resolveMatrix(name, rowsSpec string) (sbox.Matrix, string, error) {
	if rowsSpec != "" {
		rows, err := validation.ParseMatrixRows(rowsSpec)
		if err != nil {
			return sbox.Matrix{}, "", err
		}
		m := sbox.Matrix(rows)
		if nm, ok := sbox.LookupMatrix(m); ok {
			return m, nm.Description, nil
		}
		return m, "custom matrix", nil
	}

	if nm, ok := sbox.MatrixByName(name); ok {
		return nm.Matrix, nm.Description, nil
	}

	mgr, err := config.NewManager()
	if err == nil {
		if p, ok := mgr.GetPreset(name); ok {
			return sbox.Matrix(p.Rows), fmt.Sprintf("preset %q", p.Name), nil
		}
	}

	return sbox.Matrix{}, "", fmt.Errorf("unknown matrix %q: not a catalog key or saved preset", name)
}

// loadTable reads a 256-byte table from an inline hex string or a file path.
func loadTable(input string) (sbox.SBox, error) {
	text := input
	if data, err := os.ReadFile(input); err == nil {
		text = string(data)
	}

	raw, err := validation.ParseTableHex(text)
	if err != nil {
		return sbox.SBox{}, err
	}
	return sbox.FromSlice(raw)
}

// writeJSON renders any value as indented JSON on stdout.
func writeJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// printSBoxGrid prints the table in the conventional 16x16 hex layout.
func printSBoxGrid(s sbox.SBox) {
	header := color.New(color.FgCyan)
	header.Print("    ")
	for i := 0; i < 16; i++ {
		header.Printf(" %X ", i)
	}
	fmt.Println()
	fmt.Println("    " + strings.Repeat("-", 48))

	for i := 0; i < 16; i++ {
		header.Printf(" %X |", i)
		for j := 0; j < 16; j++ {
			fmt.Printf(" %02X", s[i*16+j])
		}
		fmt.Println()
	}
}

// printValidation shows the structural flags with diagnostics on failure.
func printValidation(v sbox.Validation) {
	good := color.New(color.FgGreen)
	bad := color.New(color.FgRed, color.Bold)

	if v.IsBijective {
		good.Println("✓ bijective (256 distinct values)")
	} else {
		bad.Printf("✗ not bijective: %d duplicates, %d missing\n",
			len(v.DuplicateValues), len(v.MissingValues))
	}
	if v.IsBalanced {
		good.Println("✓ bit-balanced (128 ones per output bit)")
	} else {
		bad.Printf("✗ not bit-balanced: counts %v\n", v.BitCounts)
	}
}

// printReport renders the full metric suite in sections.
func printReport(r *analysis.Report) {
	title := color.New(color.FgYellow, color.Bold)
	section := color.New(color.FgCyan)

	title.Printf("Analysis: %s\n", r.Name)
	fmt.Printf("Fingerprint: %s\n\n", r.Fingerprint)
	printValidation(r.Validation)

	section.Println("\nNonlinearity (target 112)")
	fmt.Printf("  min %d  max %d  avg %.2f\n",
		r.Nonlinearity.Min, r.Nonlinearity.Max, r.Nonlinearity.Average)

	section.Println("Strict Avalanche Criterion (target 0.5)")
	fmt.Printf("  avg %.5f  min %.5f  max %.5f  std %.5f\n",
		r.SAC.Average, r.SAC.Min, r.SAC.Max, r.SAC.StdDev)

	section.Println("BIC Nonlinearity")
	fmt.Printf("  min %d  max %d  avg %.2f\n", r.BICNL.Min, r.BICNL.Max, r.BICNL.Average)

	section.Println("BIC SAC (target 0.5)")
	fmt.Printf("  avg %.5f  min %.5f  max %.5f\n", r.BICSAC.Average, r.BICSAC.Min, r.BICSAC.Max)

	section.Println("Linear Approximation Probability")
	fmt.Printf("  max %.6f  max bias %.6f  avg bias %.6f\n",
		r.LAP.Max, r.LAP.MaxBias, r.LAP.AverageBias)

	section.Println("Differential Approximation Probability")
	fmt.Printf("  max %.6f  avg row max %.6f\n", r.DAP.Max, r.DAP.AverageRowMax)

	section.Println("Differential Uniformity")
	fmt.Printf("  %d\n", r.DiffUniformity)

	section.Println("Algebraic Degree (max 7)")
	fmt.Printf("  min %d  max %d  avg %.2f  per-bit %v\n",
		r.AlgebraicDegree.Min, r.AlgebraicDegree.Max, r.AlgebraicDegree.Average, r.AlgebraicDegree.PerBit)

	section.Println("Transparency Order (lower is better)")
	fmt.Printf("  order %.6f  max correlation %.6f\n",
		r.Transparency.Order, r.Transparency.MaxCorrelation)

	section.Println("Correlation Immunity")
	fmt.Printf("  min %d  max %d  avg %.4f\n",
		r.CorrelationImmunity.Min, r.CorrelationImmunity.Max, r.CorrelationImmunity.Average)

	section.Println("Cycle Structure")
	fmt.Printf("  cycles %d  min len %d  max len %d  fixed points %d\n",
		r.Cycles.Count, r.Cycles.MinLength, r.Cycles.MaxLength, r.Cycles.FixedPoints)
}
