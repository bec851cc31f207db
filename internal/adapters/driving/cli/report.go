package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/omdiag/internal/core/domain"
)

var (
	reportOutDir   string
	reportBackend  string
	reportTitle    string
	reportGlossary bool
	reportOpen     bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export the assessment report",
	Long: `Scores the five dimension levels and writes the report document.

The backend defaults to the configured report.backend (pdf unless changed).
Available backends: pdf, html, markdown, chromepdf (requires Chrome).

Missing branding images are reported as warnings and the report is
written without them.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	addDimensionFlags(reportCmd)
	reportCmd.Flags().StringVarP(&reportOutDir, "output", "o", ".", "directory to write the report to")
	reportCmd.Flags().StringVarP(&reportBackend, "backend", "b", "", "render backend (default from settings)")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "report title (default from settings)")
	reportCmd.Flags().BoolVar(&reportGlossary, "glossary", false, "include maturity level definitions (default from settings)")
	reportCmd.Flags().BoolVar(&reportOpen, "open", false, "open the report once written")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	a, err := assessmentFromFlags(cmd)
	if err != nil {
		return err
	}

	opts := domain.ExportOptions{
		Backend: reportBackend,
		Title:   reportTitle,
	}
	if cmd.Flags().Changed("glossary") {
		opts = opts.WithGlossary(reportGlossary)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	artifact, err := reportService.Export(ctx, a, opts)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	path, err := writeArtifact(reportOutDir, artifact)
	if err != nil {
		return err
	}

	for _, w := range artifact.Warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}
	cmd.Printf("Report written to %s\n", path)

	if reportOpen {
		if err := openTarget(path); err != nil {
			cmd.PrintErrf("Warning: could not open report: %v\n", err)
		}
	}
	return nil
}

// writeArtifact saves an artifact in dir under its own filename.
func writeArtifact(dir string, artifact *domain.Artifact) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(dir, artifact.Filename)
	if err := os.WriteFile(path, artifact.Data, 0o600); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
