package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/omdiag/internal/core/domain"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [dimension]",
	Short: "Explain what each level means",
	Long: `Prints the four level descriptions for a dimension, or for every
dimension when none is given. Dimensions can be named by key
("fault_detection") or name ("Fault Detection").`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevels,
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}

func runLevels(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	dims := domain.AllDimensions()
	if len(args) == 1 {
		d, err := domain.ParseDimension(args[0])
		if err != nil {
			return err
		}
		dims = []domain.Dimension{d}
	}

	for i, d := range dims {
		defs, err := reportService.LevelDefinitions(d)
		if err != nil {
			return fmt.Errorf("levels for %s: %w", d.DisplayName(), err)
		}

		if i > 0 {
			cmd.Println()
		}
		cmd.Println(d.DisplayName())
		for _, def := range defs {
			cmd.Printf("  %s\n", def.Level.Option())
			cmd.Printf("      %s\n", def.Description)
		}
	}
	return nil
}
