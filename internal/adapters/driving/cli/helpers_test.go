package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/omdiag/internal/adapters/driven/catalog"
	"github.com/custodia-labs/omdiag/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/core/ports/driven"
	"github.com/custodia-labs/omdiag/internal/core/services"
	"github.com/custodia-labs/omdiag/internal/renderers"
	"github.com/custodia-labs/omdiag/internal/renderers/markdown"
)

type offlineFetcher struct{}

func (offlineFetcher) Fetch(_ context.Context, name, ref string) (*domain.Asset, error) {
	return nil, &domain.AssetUnavailableError{Asset: name, Ref: ref, Err: errors.New("offline")}
}

// useServices wires real services over in-memory stores for one test.
func useServices(t *testing.T) *services.SettingsService {
	t.Helper()

	cat, err := catalog.New()
	require.NoError(t, err)

	registry := renderers.NewRegistry()
	registry.Register("markdown", func() (driven.Renderer, error) { return markdown.New(), nil })

	settings := services.NewSettingsService(memory.NewConfigStore(map[string]any{
		"report.backend": "markdown",
	}))

	scoring := services.NewScoringService()
	SetServices(Services{
		Scoring:    scoring,
		Report:     services.NewReportService(cat, scoring, registry, offlineFetcher{}, settings),
		Assessment: services.NewAssessmentService(memory.NewSessionStore()),
		Settings:   settings,
	})
	t.Cleanup(func() { SetServices(Services{}) })
	return settings
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag in the tree to its default so package
// level flag variables do not leak between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

var completeArgs = []string{
	"--governance", "3",
	"--outcome-alignment", "2",
	"--fault-detection", "reactive",
	"--knowledge-capture", "4",
	"--process-structure", "2 - Self Aware",
}
