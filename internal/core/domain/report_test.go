package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"en dash", "1–2", "1-2"},
		{"em dash", "reactive—not planned", "reactive-not planned"},
		{"bullet", "• item", "* item"},
		{"double quotes", "“outcome”", `"outcome"`},
		{"single quotes", "‘tribal’ knowledge isn’t kept", "'tribal' knowledge isn't kept"},
		{"plain ascii untouched", "Level 3 (Forward Thinking)", "Level 3 (Forward Thinking)"},
		{"other unicode untouched", "© 2025 café", "© 2025 café"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, Sanitize(got), "sanitize must be idempotent")
		})
	}
}

func TestReportRow_Heading(t *testing.T) {
	row := ReportRow{
		Dimension:  DimensionFaultDetection,
		Level:      LevelForwardThinking,
		LevelLabel: LabelForwardThinking,
	}
	assert.Equal(t, "Fault Detection - Level 3 (Forward Thinking)", row.Heading())
}

func TestReportRow_Sanitized(t *testing.T) {
	row := ReportRow{
		Dimension:      DimensionGovernance,
		Level:          LevelReactive,
		LevelLabel:     LabelReactive,
		Description:    "No oversight—none",
		Recommendation: "Use “KPIs”",
		TopExemplar:    "It’s done",
		SupportNote:    "• Polaris",
	}

	got := row.Sanitized()
	assert.Equal(t, "No oversight-none", got.Description)
	assert.Equal(t, `Use "KPIs"`, got.Recommendation)
	assert.Equal(t, "It's done", got.TopExemplar)
	assert.Equal(t, "* Polaris", got.SupportNote)
	assert.Equal(t, row.Dimension, got.Dimension)
	assert.Equal(t, row.Level, got.Level)
	// original is unchanged
	assert.Equal(t, "No oversight—none", row.Description)
}

func TestScoreResult_FormattedAverage(t *testing.T) {
	assert.Equal(t, "2.40", ScoreResult{Average: 2.4}.FormattedAverage())
	assert.Equal(t, "4.00", ScoreResult{Average: 4}.FormattedAverage())
}

func TestContentEntry_IsComplete(t *testing.T) {
	full := ContentEntry{Description: "d", Recommendation: "r", TopExemplar: "t", SupportNote: "s"}
	assert.True(t, full.IsComplete())

	partial := full
	partial.SupportNote = ""
	assert.False(t, partial.IsComplete())
}
