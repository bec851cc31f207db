package driving

import (
	"context"

	"github.com/custodia-labs/omdiag/internal/core/domain"
)

// AssessmentService manages in-progress assessments, one per session.
type AssessmentService interface {
	// Start opens a new, empty session.
	Start(ctx context.Context) (*domain.Session, error)

	// Answer records the level for a dimension in a session.
	Answer(ctx context.Context, id string, d domain.Dimension, l domain.Level) (*domain.Session, error)

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Discard removes a session and its answers.
	Discard(ctx context.Context, id string) error
}
