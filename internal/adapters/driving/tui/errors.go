package tui

import "errors"

// ErrMissingReportService is returned when the report service is not provided.
var ErrMissingReportService = errors.New("tui: report service is required")

// ErrMissingAssessmentService is returned when the assessment service is not provided.
var ErrMissingAssessmentService = errors.New("tui: assessment service is required")

// ErrNoSession is returned when an answer or export arrives before a session was started.
var ErrNoSession = errors.New("tui: no assessment in progress")
