// Package mcp provides an MCP (Model Context Protocol) server adapter for omdiag.
// It lets AI assistants score assessments and export reports.
package mcp

import "errors"

// ErrMissingReportService is returned when the report service is not provided.
var ErrMissingReportService = errors.New("mcp: report service is required")
