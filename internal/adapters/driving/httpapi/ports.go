// Package httpapi serves the assessment over a JSON HTTP API.
package httpapi

import (
	"errors"

	"github.com/custodia-labs/omdiag/internal/core/ports/driving"
)

// Errors returned by NewServer.
var (
	ErrMissingReportService     = errors.New("httpapi: report service is required")
	ErrMissingAssessmentService = errors.New("httpapi: assessment service is required")
)

// Ports aggregates the driving ports used by the HTTP server.
type Ports struct {
	// Report scores assessments and exports documents.
	Report driving.ReportService

	// Assessment manages in-progress sessions.
	Assessment driving.AssessmentService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Report == nil {
		return ErrMissingReportService
	}
	if p.Assessment == nil {
		return ErrMissingAssessmentService
	}
	return nil
}
