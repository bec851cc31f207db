package summary

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/omdiag/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/omdiag/internal/core/domain"
)

func testSummary() *domain.Summary {
	levels := map[domain.Dimension]domain.Level{
		domain.DimensionGovernance:       3,
		domain.DimensionOutcomeAlignment: 2,
		domain.DimensionFaultDetection:   1,
		domain.DimensionKnowledgeCapture: 4,
		domain.DimensionProcessStructure: 2,
	}

	s := &domain.Summary{
		Score: domain.ScoreResult{Average: 2.4, Label: domain.LabelSelfAware},
	}
	for _, d := range domain.AllDimensions() {
		l := levels[d]
		s.Rows = append(s.Rows, domain.ReportRow{
			Dimension:      d,
			Level:          l,
			LevelLabel:     l.Label(),
			Description:    d.DisplayName() + " description.",
			Recommendation: d.DisplayName() + " next step.",
			TopExemplar:    d.DisplayName() + " exemplar.",
			SupportNote:    d.DisplayName() + " support.",
		})
	}
	return s
}

func newReadyView(height int) *View {
	v := NewView(nil, nil, "Acme Insight")
	v.SetSummary(testSummary())
	v.SetDimensions(120, height)
	return v
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, "")

	require.NotNil(t, v)
	assert.Equal(t, "the Platform", v.product)
	assert.Nil(t, v.Init())
	assert.Contains(t, v.View(), "Initialising")

	v.SetDimensions(80, 24)
	assert.Contains(t, v.View(), "No assessment")
}

func TestView_View_ShowsScoreAndRows(t *testing.T) {
	v := newReadyView(200)

	output := v.View()

	assert.Contains(t, output, "Overall Maturity Level: Self Aware")
	assert.Contains(t, output, "(average 2.40)")
	assert.Contains(t, output, "Governance - Level 3 (Forward Thinking)")
	assert.Contains(t, output, "Next step: Fault Detection next step.")
	assert.Contains(t, output, "How Acme Insight helps: Process Structure support.")
	assert.Contains(t, output, "Press e to export")

	governance := strings.Index(output, "Governance - Level")
	process := strings.Index(output, "Process Structure - Level")
	assert.Less(t, governance, process, "rows keep declared order")
}

func TestView_Update_Export(t *testing.T) {
	v := newReadyView(40)

	_, cmd := v.Update(key('e'))

	require.NotNil(t, cmd)
	assert.IsType(t, messages.ExportRequested{}, cmd())
}

func TestView_Update_ExportIgnoredWhileExporting(t *testing.T) {
	v := newReadyView(40)
	v.SetExporting()

	_, cmd := v.Update(key('e'))

	assert.Nil(t, cmd)
	assert.True(t, v.Exporting())
	assert.Contains(t, v.View(), "Exporting report...")
}

func TestView_ExportFailure_KeepsSummary(t *testing.T) {
	v := newReadyView(200)
	v.SetExporting()

	v.SetExportResult("", nil, errors.New("renderer unavailable"))

	output := v.View()
	assert.False(t, v.Exporting())
	require.Error(t, v.ExportErr())
	assert.Contains(t, output, "Export failed: renderer unavailable")
	assert.Contains(t, output, "press e to retry")
	assert.Contains(t, output, "Overall Maturity Level: Self Aware")

	_, cmd := v.Update(key('e'))
	require.NotNil(t, cmd, "retry is allowed after a failure")
}

func TestView_ExportSuccess_ShowsPathAndWarnings(t *testing.T) {
	v := newReadyView(200)

	v.SetExportResult("/tmp/HVAC_OM_Maturity_Report.pdf", []string{"product mark unavailable"}, nil)

	output := v.View()
	assert.NoError(t, v.ExportErr())
	assert.Equal(t, "/tmp/HVAC_OM_Maturity_Report.pdf", v.ExportPath())
	assert.Contains(t, output, "Report saved to /tmp/HVAC_OM_Maturity_Report.pdf")
	assert.Contains(t, output, "Warning: product mark unavailable")
}

func TestView_SetSummary_ClearsExportState(t *testing.T) {
	v := newReadyView(200)
	v.SetExportResult("", nil, errors.New("boom"))

	v.SetSummary(testSummary())

	assert.NoError(t, v.ExportErr())
	assert.Empty(t, v.ExportPath())
	assert.NotNil(t, v.Summary())
}

func TestView_Update_Scroll(t *testing.T) {
	v := newReadyView(12)
	require.Positive(t, v.maxScrollOffset())

	v.Update(key('j'))
	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, v.scrollOffset)

	v.Update(key('k'))
	assert.Equal(t, 1, v.scrollOffset)

	v.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.LessOrEqual(t, v.scrollOffset, v.maxScrollOffset())

	v.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	v.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, v.scrollOffset)

	assert.Contains(t, v.View(), "Line 1-")
}

func TestView_Update_RestartHelpQuit(t *testing.T) {
	v := newReadyView(40)

	_, cmd := v.Update(key('r'))
	require.NotNil(t, cmd)
	assert.IsType(t, messages.RestartRequested{}, cmd())

	_, cmd = v.Update(key('?'))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewHelp}, cmd())

	_, cmd = v.Update(key('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
