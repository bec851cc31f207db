// Package tui provides the interactive questionnaire for omdiag.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/omdiag/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Report resolves level definitions, summaries and documents.
	Report driving.ReportService

	// Assessment holds the answers while the questionnaire is in progress.
	Assessment driving.AssessmentService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(report driving.ReportService, assessment driving.AssessmentService) *Ports {
	return &Ports{
		Report:     report,
		Assessment: assessment,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Report == nil {
		return ErrMissingReportService
	}
	if p.Assessment == nil {
		return ErrMissingAssessmentService
	}
	return nil
}
