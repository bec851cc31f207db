package domain

import "fmt"

const unknownDescription = "Unknown"

// MaturityLabel names a level and, when derived from an average, the overall
// maturity of an assessment.
type MaturityLabel string

// The four maturity labels.
const (
	LabelReactive        MaturityLabel = "reactive"
	LabelSelfAware       MaturityLabel = "self_aware"
	LabelForwardThinking MaturityLabel = "forward_thinking"
	LabelPioneering      MaturityLabel = "pioneering"
)

// AllMaturityLabels returns the labels in level order.
func AllMaturityLabels() []MaturityLabel {
	return []MaturityLabel{LabelReactive, LabelSelfAware, LabelForwardThinking, LabelPioneering}
}

// IsValid returns true if the label is recognised.
func (m MaturityLabel) IsValid() bool {
	return m.Level().IsValid()
}

// String returns the string representation.
func (m MaturityLabel) String() string {
	return string(m)
}

// Level returns the level this label is bound to, or 0.
func (m MaturityLabel) Level() Level {
	switch m {
	case LabelReactive:
		return LevelReactive
	case LabelSelfAware:
		return LevelSelfAware
	case LabelForwardThinking:
		return LevelForwardThinking
	case LabelPioneering:
		return LevelPioneering
	default:
		return 0
	}
}

// DisplayName returns the human-readable label.
func (m MaturityLabel) DisplayName() string {
	switch m {
	case LabelReactive:
		return "Reactive"
	case LabelSelfAware:
		return "Self Aware"
	case LabelForwardThinking:
		return "Forward Thinking"
	case LabelPioneering:
		return "Pioneering"
	default:
		return unknownDescription
	}
}

// Definition returns the static glossary text for the label.
func (m MaturityLabel) Definition() string {
	switch m {
	case LabelReactive:
		return "O&M is driven by complaints and breakdowns. Activities are not linked to " +
			"business outcomes and operational knowledge is not retained."
	case LabelSelfAware:
		return "Processes, metrics and SLAs exist but are applied inconsistently and " +
			"rarely drive action or prioritisation."
	case LabelForwardThinking:
		return "Digital tracking, shared reporting and knowledge reuse begin to link " +
			"O&M activity with business outcomes."
	case LabelPioneering:
		return "O&M priorities are set by desired outcomes and continuously optimised " +
			"through unified fault detection, captured knowledge and adaptive workflows."
	default:
		return ""
	}
}

// ParseMaturityLabel resolves a label key or display name, case-insensitively.
func ParseMaturityLabel(s string) (MaturityLabel, error) {
	want := foldName(s)
	if want != "" {
		for _, m := range AllMaturityLabels() {
			if foldName(string(m)) == want {
				return m, nil
			}
		}
	}
	return "", fmt.Errorf("%w: unknown maturity label %q", ErrInvalidInput, s)
}

// GlossaryEntry is one row of the level-definition glossary.
type GlossaryEntry struct {
	Level      Level
	Label      MaturityLabel
	Definition string
}

// Glossary returns the definitions of all four labels in level order.
// The text is static and independent of any assessment.
func Glossary() []GlossaryEntry {
	labels := AllMaturityLabels()
	entries := make([]GlossaryEntry, len(labels))
	for i, m := range labels {
		entries[i] = GlossaryEntry{
			Level:      m.Level(),
			Label:      m,
			Definition: m.Definition(),
		}
	}
	return entries
}
