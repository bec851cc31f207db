package question

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/omdiag/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/omdiag/internal/core/domain"
)

func definitions() []domain.LevelDefinition {
	defs := make([]domain.LevelDefinition, 0, 4)
	for _, l := range domain.AllLevels() {
		defs = append(defs, domain.LevelDefinition{
			Level:       l,
			Label:       l.Label(),
			Description: "Fault detection at level " + l.String() + ".",
		})
	}
	return defs
}

func newReadyView() *View {
	v := NewView(nil, nil)
	v.SetDimensions(100, 40)
	v.SetQuestion(domain.DimensionFaultDetection, definitions(), 0)
	return v
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.NotNil(t, v.keymap)
	assert.Nil(t, v.Init())
	assert.Contains(t, v.View(), "Initialising")
}

func TestView_SetQuestion_PreselectsCurrent(t *testing.T) {
	v := NewView(nil, nil)

	v.SetQuestion(domain.DimensionGovernance, definitions(), domain.LevelForwardThinking)
	assert.Equal(t, 2, v.Selected())
	assert.Equal(t, domain.DimensionGovernance, v.Dimension())

	v.SetQuestion(domain.DimensionOutcomeAlignment, definitions(), 0)
	assert.Equal(t, 0, v.Selected())
}

func TestView_Update_Navigate(t *testing.T) {
	v := newReadyView()

	v.Update(key('j'))
	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, v.Selected())

	v.Update(key('j'))
	v.Update(key('j'))
	assert.Equal(t, 3, v.Selected(), "stops at the last level")

	v.Update(key('k'))
	v.Update(tea.KeyMsg{Type: tea.KeyUp})
	v.Update(key('k'))
	v.Update(key('k'))
	assert.Equal(t, 0, v.Selected(), "stops at the first level")
}

func TestView_Update_Enter_Answers(t *testing.T) {
	v := newReadyView()
	v.Update(key('j'))

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	answer, ok := cmd().(messages.AnswerSelected)
	require.True(t, ok)
	assert.Equal(t, domain.DimensionFaultDetection, answer.Dimension)
	assert.Equal(t, domain.LevelSelfAware, answer.Level)
}

func TestView_Update_Enter_NoDefinitions(t *testing.T) {
	v := NewView(nil, nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_Update_Back(t *testing.T) {
	v := newReadyView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.IsType(t, messages.PreviousQuestion{}, cmd())
}

func TestView_Update_Help(t *testing.T) {
	v := newReadyView()

	_, cmd := v.Update(key('?'))

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewHelp}, cmd())
}

func TestView_View(t *testing.T) {
	v := newReadyView()
	v.Update(key('j'))

	output := v.View()

	assert.Contains(t, output, "Question 3 of 5")
	assert.Contains(t, output, "Fault Detection")
	assert.Contains(t, output, "  1 - Reactive")
	assert.Contains(t, output, "> 2 - Self Aware")
	assert.Contains(t, output, "Fault detection at level 4.")
}

func TestView_TextWidth(t *testing.T) {
	v := NewView(nil, nil)

	v.SetDimensions(10, 10)
	assert.Equal(t, 20, v.textWidth())
	v.SetDimensions(80, 10)
	assert.Equal(t, 76, v.textWidth())
	v.SetDimensions(300, 10)
	assert.Equal(t, 100, v.textWidth())
}
