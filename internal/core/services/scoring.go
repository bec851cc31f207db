package services

import (
	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/core/ports/driving"
)

// Ensure ScoringService implements the interface.
var _ driving.ScoringService = (*ScoringService)(nil)

// ScoringService averages an assessment into a maturity label.
type ScoringService struct{}

// NewScoringService creates a new scoring service.
func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// Score averages the five levels and derives the maturity label.
func (s *ScoringService) Score(a *domain.Assessment) (domain.ScoreResult, error) {
	if err := a.Validate(); err != nil {
		return domain.ScoreResult{}, err
	}

	dims := domain.AllDimensions()
	sum := 0
	for _, d := range dims {
		l, _ := a.Level(d)
		sum += int(l)
	}
	average := float64(sum) / float64(len(dims))

	return domain.ScoreResult{
		Average: average,
		Label:   LabelFor(average),
	}, nil
}

// LabelFor maps an average to its maturity label.
func (s *ScoringService) LabelFor(average float64) domain.MaturityLabel {
	return LabelFor(average)
}

// LabelFor maps an average to its maturity label. The checks run in order
// and the first match wins: only a perfect 4 is Pioneering, and 3.0 and 2.0
// belong to the higher bracket.
func LabelFor(average float64) domain.MaturityLabel {
	switch {
	case average == float64(domain.LevelPioneering):
		return domain.LabelPioneering
	case average >= float64(domain.LevelForwardThinking):
		return domain.LabelForwardThinking
	case average >= float64(domain.LevelSelfAware):
		return domain.LabelSelfAware
	default:
		return domain.LabelReactive
	}
}
