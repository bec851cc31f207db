package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/omdiag/internal/core/domain"
)

var labelCmd = &cobra.Command{
	Use:   "label <average>",
	Short: "Show the maturity level for an average score",
	Long: `Maps an average between 1 and 4 to its maturity level and prints the
level's definition.

  4          Pioneering
  3 to 3.99  Forward Thinking
  2 to 2.99  Self Aware
  1 to 1.99  Reactive`,
	Args: cobra.ExactArgs(1),
	RunE: runLabel,
}

func init() {
	rootCmd.AddCommand(labelCmd)
}

func runLabel(cmd *cobra.Command, args []string) error {
	if scoringService == nil {
		return errors.New("scoring service not configured")
	}

	avg, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("%w: average must be a number", domain.ErrInvalidInput)
	}
	if avg < float64(domain.MinLevel) || avg > float64(domain.MaxLevel) {
		return fmt.Errorf("%w: average %.2f out of range %d-%d", domain.ErrInvalidInput, avg, domain.MinLevel, domain.MaxLevel)
	}

	label := scoringService.LabelFor(avg)
	cmd.Printf("%s\n", label.DisplayName())
	cmd.Printf("  %s\n", label.Definition())
	return nil
}
