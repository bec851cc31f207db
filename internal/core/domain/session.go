package domain

import "time"

// Session holds one user's in-progress assessment.
// Sessions are isolated from each other and are discarded once the
// report has been exported.
type Session struct {
	// ID is the unique identifier for the session.
	ID string

	// Assessment is the session's answers so far.
	Assessment *Assessment

	// CreatedAt is when the session was started.
	CreatedAt time.Time

	// UpdatedAt is when the last answer was recorded.
	UpdatedAt time.Time
}
