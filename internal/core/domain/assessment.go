package domain

import (
	"fmt"
	"maps"
	"slices"
)

// Assessment maps each dimension to the level the user selected.
// It is built incrementally and is complete only when all five
// dimensions have a level. The zero value is an empty assessment.
type Assessment struct {
	levels map[Dimension]Level
}

// NewAssessment returns an empty assessment.
func NewAssessment() *Assessment {
	return &Assessment{levels: make(map[Dimension]Level, len(AllDimensions()))}
}

// AssessmentFrom builds an assessment from a dimension/level map.
// The result may be partial; every entry is validated.
func AssessmentFrom(levels map[Dimension]Level) (*Assessment, error) {
	a := NewAssessment()
	for d, l := range levels {
		if err := a.Set(d, l); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// ParseAnswers builds an assessment from dimension names to levels. Keys
// are resolved with ParseDimension; two keys naming the same dimension
// ("governance" and "Governance") are rejected. The result may be partial.
func ParseAnswers(answers map[string]Level) (*Assessment, error) {
	a := NewAssessment()
	seen := make(map[Dimension]string, len(answers))
	for _, key := range slices.Sorted(maps.Keys(answers)) {
		d, err := ParseDimension(key)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[d]; dup {
			return nil, fmt.Errorf("%w: duplicate dimension %s (%q and %q)", ErrInvalidInput, d, prev, key)
		}
		seen[d] = key
		if err := a.Set(d, answers[key]); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Set records the level for a dimension, replacing any earlier answer.
func (a *Assessment) Set(d Dimension, l Level) error {
	if !d.IsValid() {
		return fmt.Errorf("%w: unknown dimension %q", ErrInvalidInput, d)
	}
	if !l.IsValid() {
		return fmt.Errorf("%w: level %d out of range %d-%d", ErrInvalidInput, int(l), MinLevel, MaxLevel)
	}
	if a.levels == nil {
		a.levels = make(map[Dimension]Level, len(AllDimensions()))
	}
	a.levels[d] = l
	return nil
}

// Level returns the level for a dimension and whether it has been set.
func (a *Assessment) Level(d Dimension) (Level, bool) {
	if a == nil {
		return 0, false
	}
	l, ok := a.levels[d]
	return l, ok
}

// Len returns the number of answered dimensions.
func (a *Assessment) Len() int {
	if a == nil {
		return 0
	}
	return len(a.levels)
}

// Missing returns the unanswered dimensions in declared order.
func (a *Assessment) Missing() []Dimension {
	var missing []Dimension
	for _, d := range AllDimensions() {
		if _, ok := a.Level(d); !ok {
			missing = append(missing, d)
		}
	}
	return missing
}

// Complete returns true when every dimension has a level.
func (a *Assessment) Complete() bool {
	return len(a.Missing()) == 0
}

// Validate returns an IncompleteAssessmentError if any dimension is unanswered.
func (a *Assessment) Validate() error {
	if missing := a.Missing(); len(missing) > 0 {
		return &IncompleteAssessmentError{Missing: missing}
	}
	return nil
}

// Levels returns a copy of the answered dimension/level pairs.
func (a *Assessment) Levels() map[Dimension]Level {
	out := make(map[Dimension]Level, a.Len())
	if a == nil {
		return out
	}
	for d, l := range a.levels {
		out[d] = l
	}
	return out
}

// Clone returns an independent copy of the assessment.
func (a *Assessment) Clone() *Assessment {
	return &Assessment{levels: a.Levels()}
}
