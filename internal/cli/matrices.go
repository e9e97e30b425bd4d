package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lyonad/sboxlab/pkg/crypto/sbox"
)

func NewMatricesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrices",
		Short: "List the built-in affine matrix catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			entries := sbox.Matrices()
			if outputJSON {
				return writeJSON(entries)
			}

			name := color.New(color.FgYellow, color.Bold)
			for _, nm := range entries {
				name.Printf("%s", nm.Key)
				fmt.Printf(" - %s\n", nm.Description)
				for i, row := range nm.Matrix {
					fmt.Printf("  row %d: %08b (0x%02X)\n", i, row, row)
				}
				fmt.Println()
			}
			return nil
		},
	}
	return cmd
}
