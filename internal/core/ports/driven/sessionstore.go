package driven

import (
	"context"

	"github.com/custodia-labs/omdiag/internal/core/domain"
)

// SessionStore holds in-progress assessments.
// Nothing is persisted beyond the process.
type SessionStore interface {
	// Save stores or replaces a session.
	Save(ctx context.Context, session *domain.Session) error

	// Get retrieves a session by ID.
	// Returns domain.ErrSessionNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Delete removes a session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, id string) error

	// Count returns the number of live sessions.
	Count(ctx context.Context) int
}
