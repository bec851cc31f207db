package help

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/omdiag/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/omdiag/internal/core/domain"
)

func TestNewView(t *testing.T) {
	v := NewView(nil, nil)

	require.NotNil(t, v)
	assert.Equal(t, messages.ViewMenu, v.ReturnTo())
	assert.Nil(t, v.Init())
}

func TestView_SetReturnTo(t *testing.T) {
	v := NewView(nil, nil)

	v.SetReturnTo(messages.ViewSummary)
	assert.Equal(t, messages.ViewSummary, v.ReturnTo())

	v.SetReturnTo(messages.ViewHelp)
	assert.Equal(t, messages.ViewSummary, v.ReturnTo(), "help never returns to itself")
}

func TestView_Update_Close(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune{'?'}},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		t.Run(msg.String(), func(t *testing.T) {
			v := NewView(nil, nil)
			v.SetReturnTo(messages.ViewQuestion)

			_, cmd := v.Update(msg)

			require.NotNil(t, cmd)
			assert.Equal(t, messages.ViewChanged{View: messages.ViewQuestion}, cmd())
		})
	}
}

func TestView_Update_OtherKeys(t *testing.T) {
	v := NewView(nil, nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.Nil(t, cmd)
}

func TestView_View(t *testing.T) {
	v := NewView(nil, nil)
	v.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	output := v.View()

	assert.Contains(t, output, "Maturity Levels")
	for _, entry := range domain.Glossary() {
		assert.Contains(t, output, entry.Label.DisplayName())
	}
	assert.Contains(t, output, "Level 4: Pioneering")
	assert.Contains(t, output, "export")
}
