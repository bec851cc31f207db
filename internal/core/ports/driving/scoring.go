package driving

import "github.com/custodia-labs/omdiag/internal/core/domain"

// ScoringService turns a complete assessment into a score.
type ScoringService interface {
	// Score averages the five levels and derives the maturity label.
	// Returns a *domain.IncompleteAssessmentError if any dimension is unset.
	Score(a *domain.Assessment) (domain.ScoreResult, error)

	// LabelFor maps an average to its maturity label.
	LabelFor(average float64) domain.MaturityLabel
}
