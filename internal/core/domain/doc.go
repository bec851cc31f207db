// Package domain defines the core business entities for omdiag.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Dimension: One of the five fixed capability axes
//   - Level: The 1-4 ordinal rating of a dimension
//   - Assessment: One level per dimension, built answer by answer
//   - ScoreResult: The averaged score and its maturity label
//   - ReportRow: The resolved catalog content for one dimension
//   - Report: Everything a renderer needs to produce a document
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
