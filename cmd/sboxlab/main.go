package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lyonad/sboxlab/internal/cli"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "sboxlab",
		Short: "S-box generation and cryptographic strength analysis",
		Long: `sboxlab builds substitution boxes from affine transformations over
GF(2^8) and evaluates their cryptographic strength.

The metric suite covers nonlinearity, strict avalanche, bit independence
(NL and SAC forms), linear and differential approximation probability,
differential uniformity, algebraic degree, transparency order, correlation
immunity, and cycle structure. Candidates can be ranked side by side with
explicit per-metric directionality.`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	}

	rootCmd.AddCommand(
		cli.NewGenerateCommand(),
		cli.NewAnalyzeCommand(),
		cli.NewCompareCommand(),
		cli.NewMatricesCommand(),
		cli.NewPresetCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
