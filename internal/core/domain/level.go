package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is the 1-4 ordinal rating of a dimension.
type Level int

// The four levels, lowest first.
const (
	LevelReactive        Level = 1
	LevelSelfAware       Level = 2
	LevelForwardThinking Level = 3
	LevelPioneering      Level = 4
)

// MinLevel and MaxLevel bound the scale.
const (
	MinLevel = LevelReactive
	MaxLevel = LevelPioneering
)

// AllLevels returns every level in ascending order.
func AllLevels() []Level {
	return []Level{LevelReactive, LevelSelfAware, LevelForwardThinking, LevelPioneering}
}

// IsValid returns true if the level is within 1..4.
func (l Level) IsValid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// Label returns the maturity label bound to this level.
func (l Level) Label() MaturityLabel {
	switch l {
	case LevelReactive:
		return LabelReactive
	case LevelSelfAware:
		return LabelSelfAware
	case LevelForwardThinking:
		return LabelForwardThinking
	case LevelPioneering:
		return LabelPioneering
	default:
		return ""
	}
}

// Option returns the selection text shown to users, e.g. "3 - Forward Thinking".
func (l Level) Option() string {
	return fmt.Sprintf("%d - %s", int(l), l.Label().DisplayName())
}

// String returns the level number.
func (l Level) String() string {
	return strconv.Itoa(int(l))
}

// ParseLevel resolves "1".."4", a label ("self aware", "ForwardThinking")
// or an option string ("2 - Self Aware"). In an option string the label
// must name the same level as the number.
func ParseLevel(s string) (Level, error) {
	trimmed := strings.TrimSpace(s)
	if num, label, found := strings.Cut(trimmed, " - "); found {
		l, err := ParseLevel(num)
		if err != nil {
			return 0, err
		}
		named, err := ParseMaturityLabel(strings.TrimSpace(label))
		if err != nil {
			return 0, fmt.Errorf("%w: unknown level %q", ErrInvalidInput, s)
		}
		if named != l.Label() {
			return 0, fmt.Errorf("%w: level %q names %d but label %q", ErrInvalidInput, s, int(l), named.DisplayName())
		}
		return l, nil
	}

	if n, err := strconv.Atoi(trimmed); err == nil {
		l := Level(n)
		if !l.IsValid() {
			return 0, fmt.Errorf("%w: level %d out of range %d-%d", ErrInvalidInput, n, MinLevel, MaxLevel)
		}
		return l, nil
	}

	if label, err := ParseMaturityLabel(trimmed); err == nil {
		return label.Level(), nil
	}

	return 0, fmt.Errorf("%w: unknown level %q", ErrInvalidInput, s)
}
