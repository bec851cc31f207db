package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/format"
)

var scoreJSON bool

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an assessment and show next steps",
	Long: `Scores the five dimension levels and prints the overall maturity level,
the average, and the next step for each dimension.

Levels can be given as numbers (1-4) or labels ("self aware").

Example:
  omdiag score --governance 3 --outcome-alignment 2 --fault-detection 1 \
    --knowledge-capture 4 --process-structure 2`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	addDimensionFlags(scoreCmd)
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(scoreCmd)
}

// scoreOutput is the JSON form of a summary.
type scoreOutput struct {
	Average          float64           `json:"average"`
	FormattedAverage string            `json:"formatted_average"`
	Label            string            `json:"label"`
	LabelName        string            `json:"label_name"`
	Dimensions       []dimensionOutput `json:"dimensions"`
}

type dimensionOutput struct {
	Dimension      string `json:"dimension"`
	Name           string `json:"name"`
	Level          int    `json:"level"`
	Label          string `json:"label"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	TopExemplar    string `json:"top_exemplar"`
	SupportNote    string `json:"support_note"`
}

func runScore(cmd *cobra.Command, _ []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	a, err := assessmentFromFlags(cmd)
	if err != nil {
		return err
	}

	summary, err := reportService.Summary(a)
	if err != nil {
		return fmt.Errorf("score failed: %w", err)
	}

	if scoreJSON {
		return outputScoreJSON(cmd, summary)
	}
	outputScoreText(cmd, summary)
	return nil
}

func outputScoreJSON(cmd *cobra.Command, summary *domain.Summary) error {
	out := scoreOutput{
		Average:          summary.Score.Average,
		FormattedAverage: summary.Score.FormattedAverage(),
		Label:            summary.Score.Label.String(),
		LabelName:        summary.Score.Label.DisplayName(),
		Dimensions:       make([]dimensionOutput, len(summary.Rows)),
	}
	for i, row := range summary.Rows {
		out.Dimensions[i] = dimensionOutput{
			Dimension:      row.Dimension.String(),
			Name:           row.Dimension.DisplayName(),
			Level:          int(row.Level),
			Label:          row.LevelLabel.String(),
			Description:    row.Description,
			Recommendation: row.Recommendation,
			TopExemplar:    row.TopExemplar,
			SupportNote:    row.SupportNote,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputScoreText(cmd *cobra.Command, summary *domain.Summary) {
	cmd.Printf("Overall Maturity Level: %s\n", summary.Score.Label.DisplayName())
	cmd.Printf("Average Score: %s\n", summary.Score.FormattedAverage())
	cmd.Println()

	t := format.NewTable(tableMode(cmd.OutOrStdout()))
	t.Header("Dimension", "Level", "Label")
	for _, row := range summary.Rows {
		t.Row(row.Dimension.DisplayName(), int(row.Level), row.LevelLabel.DisplayName())
	}
	t.Columns(format.ColumnConfig{Number: 2, Align: format.AlignCenter})
	cmd.Println(t.String())
	cmd.Println()

	product := productName()
	for _, row := range summary.Rows {
		cmd.Println(row.Heading())
		cmd.Printf("  Next Step: %s\n", row.Recommendation)
		cmd.Printf("  How %s Helps: %s\n", product, row.SupportNote)
		cmd.Println()
	}
}
