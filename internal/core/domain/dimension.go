package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// Dimension identifies one of the five capability axes being assessed.
type Dimension string

// The fixed set of dimensions.
const (
	// DimensionGovernance covers oversight and accountability of service providers.
	DimensionGovernance Dimension = "governance"

	// DimensionOutcomeAlignment covers the link between O&M activity and business goals.
	DimensionOutcomeAlignment Dimension = "outcome_alignment"

	// DimensionFaultDetection covers how faults are found, validated and escalated.
	DimensionFaultDetection Dimension = "fault_detection"

	// DimensionKnowledgeCapture covers retention and reuse of operational knowledge.
	DimensionKnowledgeCapture Dimension = "knowledge_capture"

	// DimensionProcessStructure covers how consistently work is executed.
	DimensionProcessStructure Dimension = "process_structure"
)

// AllDimensions returns every dimension in declared order.
// Every output surface lists dimensions in this order.
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionGovernance,
		DimensionOutcomeAlignment,
		DimensionFaultDetection,
		DimensionKnowledgeCapture,
		DimensionProcessStructure,
	}
}

// IsValid returns true if the dimension is recognised.
func (d Dimension) IsValid() bool {
	return d.Index() >= 0
}

// Index returns the position of the dimension in declared order, or -1.
func (d Dimension) Index() int {
	for i, known := range AllDimensions() {
		if known == d {
			return i
		}
	}
	return -1
}

// String returns the string representation.
func (d Dimension) String() string {
	return string(d)
}

// DisplayName returns the human-readable dimension name.
func (d Dimension) DisplayName() string {
	switch d {
	case DimensionGovernance:
		return "Governance"
	case DimensionOutcomeAlignment:
		return "Outcome Alignment"
	case DimensionFaultDetection:
		return "Fault Detection"
	case DimensionKnowledgeCapture:
		return "Knowledge Capture"
	case DimensionProcessStructure:
		return "Process Structure"
	default:
		return unknownDescription
	}
}

// ParseDimension resolves a key ("fault_detection"), display name
// ("Fault Detection") or flag form ("fault-detection"), case-insensitively.
func ParseDimension(s string) (Dimension, error) {
	want := foldName(s)
	if want != "" {
		for _, d := range AllDimensions() {
			if foldName(string(d)) == want {
				return d, nil
			}
		}
	}
	return "", fmt.Errorf("%w: unknown dimension %q", ErrInvalidInput, s)
}

// foldName lowercases s and drops everything that is not a letter or digit.
func foldName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
