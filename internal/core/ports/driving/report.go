package driving

import (
	"context"

	"github.com/custodia-labs/omdiag/internal/core/domain"
)

// ReportService composes on-screen summaries and exported documents.
type ReportService interface {
	// Compose resolves the catalog rows for an assessment in declared order.
	Compose(a *domain.Assessment) ([]domain.ReportRow, error)

	// Summary scores the assessment and resolves its rows.
	Summary(a *domain.Assessment) (*domain.Summary, error)

	// Export renders the assessment to a named document.
	// Missing branding assets are reported in Artifact.Warnings.
	Export(ctx context.Context, a *domain.Assessment, opts domain.ExportOptions) (*domain.Artifact, error)

	// LevelDefinitions returns what each level means for a dimension.
	LevelDefinitions(d domain.Dimension) ([]domain.LevelDefinition, error)

	// Backends returns the available render backend names.
	Backends() []string
}
