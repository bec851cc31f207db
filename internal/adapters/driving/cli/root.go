// Package cli implements the omdiag command-line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/omdiag/internal/core/ports/driving"
	"github.com/custodia-labs/omdiag/internal/logger"
)

// version is set at build time.
var version = "dev"

var verbose bool

// Services configured by the composition root.
var (
	scoringService    driving.ScoringService
	reportService     driving.ReportService
	assessmentService driving.AssessmentService
	settingsService   driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "omdiag",
	Short: "HVAC O&M maturity diagnostic",
	Long: `omdiag rates a facility's HVAC operations and maintenance practice on
five dimensions, maps the average to a maturity level and produces a
report with next steps for each dimension.

Run "omdiag tui" for the interactive questionnaire, or pass the five
levels as flags to "omdiag score" and "omdiag report".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Services holds the core services used by the commands.
type Services struct {
	Scoring    driving.ScoringService
	Report     driving.ReportService
	Assessment driving.AssessmentService
	Settings   driving.SettingsService
}

// SetServices configures the services used by all commands.
func SetServices(s Services) {
	scoringService = s.Scoring
	reportService = s.Report
	assessmentService = s.Assessment
	settingsService = s.Settings
}

// SetVersion sets the version reported by "omdiag version".
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx available to every command.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
