package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lyonad/sboxlab/internal/validation"
	"github.com/lyonad/sboxlab/pkg/crypto/analysis"
	"github.com/lyonad/sboxlab/pkg/crypto/sbox"
)

func NewCompareCommand() *cobra.Command {
	var (
		candidates []string
		constant   string
		generator  string
		poly       uint64
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare several S-box candidates metric by metric",
		Long: `Analyze two or more candidates and rank them under the per-metric
directionality contract. Exact ties are reported as equal, never broken
arbitrarily.

Each --candidate is a catalog key or preset name; all candidates share the
constant and field flags.`,
		Example: `  # The default research comparison
  sboxlab compare --candidate k44 --candidate aes

  # Wider sweep
  sboxlab compare -C k44 -C k43 -C k45 -C aes --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			if len(candidates) < 2 {
				return fmt.Errorf("need at least 2 candidates, got %d", len(candidates))
			}

			c, err := validation.ParseByte(constant)
			if err != nil {
				return fmt.Errorf("invalid constant: %w", err)
			}
			field, err := buildField(generator, poly)
			if err != nil {
				return err
			}

			reports := make([]*analysis.Report, 0, len(candidates))
			for _, key := range candidates {
				m, _, err := resolveMatrix(key, "")
				if err != nil {
					return err
				}
				table := sbox.Generate(m, c, field)
				report, err := analysis.Analyze(cmd.Context(), table, key)
				if err != nil {
					return fmt.Errorf("analysis of %q failed: %w", key, err)
				}
				reports = append(reports, report)
			}

			outcomes := analysis.Compare(reports...)

			if outputJSON {
				return writeJSON(map[string]interface{}{
					"reports":  reports,
					"outcomes": outcomes,
				})
			}

			for _, r := range reports {
				printReport(r)
				fmt.Println()
			}
			printOutcomes(outcomes)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&candidates, "candidate", "C", []string{"k44", "aes"}, "Catalog key or preset name (repeatable)")
	cmd.Flags().StringVarP(&constant, "constant", "c", "0x63", "Affine constant")
	cmd.Flags().StringVarP(&generator, "generator", "g", "3", "Field generator")
	cmd.Flags().Uint64Var(&poly, "poly", 0x11B, "Irreducible polynomial")

	return cmd
}

func printOutcomes(outcomes []analysis.MetricOutcome) {
	title := color.New(color.FgYellow, color.Bold)
	winner := color.New(color.FgGreen, color.Bold)
	tie := color.New(color.FgCyan)

	title.Println("Per-metric verdict")
	for _, o := range outcomes {
		fmt.Printf("  %-26s (%s)  ", o.Metric, o.Direction)
		if o.Equal {
			tie.Println("equal")
			continue
		}
		winner.Printf("%v\n", o.Best)
	}
}
