package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lyonad/sboxlab/internal/validation"
	"github.com/lyonad/sboxlab/pkg/config"
)

func NewPresetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved affine matrix presets",
		Long: `Presets store a named matrix plus constant in the user config
directory so research candidates survive between sessions. Saved presets can
be used anywhere a catalog key is accepted.`,
	}

	cmd.AddCommand(
		newPresetSaveCommand(),
		newPresetListCommand(),
		newPresetDeleteCommand(),
	)
	return cmd
}

func newPresetSaveCommand() *cobra.Command {
	var (
		rowsSpec    string
		constant    string
		description string
	)

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a matrix preset",
		Args:  cobra.ExactArgs(1),
		Example: `  sboxlab preset save research-a --rows 0x57,0xAB,0xD5,0xEA,0x75,0xBA,0x5D,0xAE`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := validation.ValidatePresetName(name); err != nil {
				return err
			}
			rows, err := validation.ParseMatrixRows(rowsSpec)
			if err != nil {
				return err
			}
			c, err := validation.ParseByte(constant)
			if err != nil {
				return fmt.Errorf("invalid constant: %w", err)
			}

			mgr, err := config.NewManager()
			if err != nil {
				return err
			}
			preset, err := mgr.SavePreset(name, description, rows, c)
			if err != nil {
				return err
			}

			color.New(color.FgGreen).Printf("Saved preset %q", preset.Name)
			fmt.Printf(" (fingerprint %s)\n", preset.Fingerprint)
			return nil
		},
	}

	cmd.Flags().StringVar(&rowsSpec, "rows", "", "Eight comma-separated matrix rows (required)")
	cmd.Flags().StringVarP(&constant, "constant", "c", "0x63", "Affine constant")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Free-form description")
	_ = cmd.MarkFlagRequired("rows")

	return cmd
}

func newPresetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			mgr, err := config.NewManager()
			if err != nil {
				return err
			}
			presets := mgr.ListPresets()

			if outputJSON {
				return writeJSON(presets)
			}
			if len(presets) == 0 {
				fmt.Println("No presets saved.")
				return nil
			}

			name := color.New(color.FgYellow, color.Bold)
			for _, p := range presets {
				name.Printf("%s", p.Name)
				if p.Description != "" {
					fmt.Printf(" - %s", p.Description)
				}
				fmt.Printf("\n  rows % 02X  constant %#02x\n  fingerprint %s\n",
					p.Rows, p.Constant, p.Fingerprint)
			}
			return nil
		},
	}
}

func newPresetDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := config.NewManager()
			if err != nil {
				return err
			}
			if err := mgr.DeletePreset(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted preset %q\n", args[0])
			return nil
		},
	}
}
