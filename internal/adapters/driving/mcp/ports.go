package mcp

import (
	"github.com/custodia-labs/omdiag/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Report scores assessments and exports documents.
	Report driving.ReportService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Report == nil {
		return ErrMissingReportService
	}
	return nil
}
