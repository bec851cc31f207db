package domain

import "fmt"

// ScoreResult is the averaged level of a complete assessment and the
// maturity label derived from it. It is recomputed, never stored.
type ScoreResult struct {
	// Average is the arithmetic mean of the five levels, in [1, 4].
	Average float64

	// Label is the overall maturity label.
	Label MaturityLabel
}

// FormattedAverage returns the average with two decimal places.
func (s ScoreResult) FormattedAverage() string {
	return fmt.Sprintf("%.2f", s.Average)
}
