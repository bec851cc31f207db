package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/omdiag/internal/adapters/driving/tui"
	"github.com/custodia-labs/omdiag/internal/core/domain"
)

var (
	tuiOutDir   string
	tuiBackend  string
	tuiTitle    string
	tuiGlossary bool
)

// stdinIsTerminal reports whether the TUI can take over the terminal.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Answer the assessment interactively",
	Long: `Launch the interactive questionnaire.

Each of the five dimensions is asked in turn with what every level means.
After the fifth answer the overall maturity level and the next step for
each dimension are shown.

Controls:
  ↑/k, ↓/j - Move between levels
  Enter    - Answer
  Esc      - Previous question
  e        - Export the report (summary screen)
  r        - Start over
  ?        - Maturity level definitions
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiOutDir, "output", "o", ".", "directory to write the report to")
	tuiCmd.Flags().StringVarP(&tuiBackend, "backend", "b", "", "render backend (default from settings)")
	tuiCmd.Flags().StringVar(&tuiTitle, "title", "", "report title (default from settings)")
	tuiCmd.Flags().BoolVar(&tuiGlossary, "glossary", false, "include maturity level definitions (default from settings)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Report panics with a stack trace
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("panic in TUI: %v", r)
		}
	}()

	if reportService == nil || assessmentService == nil {
		return errors.New("assessment services not configured")
	}
	if !stdinIsTerminal() {
		return errors.New("tui requires an interactive terminal; use \"omdiag score\" or \"omdiag report\" instead")
	}

	opts := domain.ExportOptions{
		Backend: tuiBackend,
		Title:   tuiTitle,
	}
	if cmd.Flags().Changed("glossary") {
		opts = opts.WithGlossary(tuiGlossary)
	}

	app, err := tui.NewApp(
		tui.NewPorts(reportService, assessmentService),
		tui.WithOutputDir(tuiOutDir),
		tui.WithExportOptions(opts),
		tui.WithProductName(productName()),
	)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if ctx := cmd.Context(); ctx != nil {
		app.WithContext(ctx)
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
