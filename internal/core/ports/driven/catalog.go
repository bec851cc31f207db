package driven

import "github.com/custodia-labs/omdiag/internal/core/domain"

// ContentCatalog is the read-only table of text keyed by dimension and level.
// Implementations are immutable after construction and safe for concurrent use.
type ContentCatalog interface {
	// Lookup returns the entry for a dimension and level.
	// Returns a *domain.NotFoundError if the pair is outside the grid.
	Lookup(d domain.Dimension, l domain.Level) (domain.ContentEntry, error)

	// TopExemplar returns the level-4 description of a dimension.
	TopExemplar(d domain.Dimension) (string, error)

	// LevelDefinitions returns the four level descriptions of a dimension
	// in ascending order.
	LevelDefinitions(d domain.Dimension) ([]domain.LevelDefinition, error)
}
