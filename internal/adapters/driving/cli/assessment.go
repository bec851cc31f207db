package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/format"
)

// dimensionFlag returns the flag name for a dimension, e.g. "fault-detection".
func dimensionFlag(d domain.Dimension) string {
	return strings.ReplaceAll(string(d), "_", "-")
}

// addDimensionFlags registers one level flag per dimension.
func addDimensionFlags(cmd *cobra.Command) {
	for _, d := range domain.AllDimensions() {
		cmd.Flags().String(dimensionFlag(d), "",
			fmt.Sprintf("%s level (1-4 or label)", d.DisplayName()))
	}
}

// assessmentFromFlags builds a complete assessment from the dimension flags.
// Missing dimensions are reported together.
func assessmentFromFlags(cmd *cobra.Command) (*domain.Assessment, error) {
	a := domain.NewAssessment()
	for _, d := range domain.AllDimensions() {
		raw, err := cmd.Flags().GetString(dimensionFlag(d))
		if err != nil {
			return nil, fmt.Errorf("getting %s flag: %w", dimensionFlag(d), err)
		}
		if raw == "" {
			continue
		}

		level, err := domain.ParseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", dimensionFlag(d), err)
		}
		if err := a.Set(d, level); err != nil {
			return nil, err
		}
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// tableMode picks box-drawing tables for terminals and ASCII otherwise.
func tableMode(w io.Writer) format.Mode {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return format.Styled
	}
	return format.Plain
}

// productName returns the configured product name for "How X Helps".
func productName() string {
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil && s.Branding.ProductName != "" {
			return s.Branding.ProductName
		}
	}
	return domain.DefaultAppSettings().Branding.ProductName
}
