// Package question provides the per-dimension question screen for the TUI.
package question

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/omdiag/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/omdiag/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/omdiag/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/omdiag/internal/core/domain"
)

// View asks for the level of one dimension, showing what each level means.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	dimension   domain.Dimension
	definitions []domain.LevelDefinition
	selected    int
	width       int
	height      int
	ready       bool
}

// NewView creates a new question view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		width:  80,
		height: 24,
	}
}

// Init initialises the question view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetQuestion shows the level definitions for a dimension. The cursor starts
// on current when it is a valid level, otherwise on the first choice.
func (v *View) SetQuestion(d domain.Dimension, defs []domain.LevelDefinition, current domain.Level) {
	v.dimension = d
	v.definitions = defs
	v.selected = 0
	for i, def := range defs {
		if def.Level == current {
			v.selected = i
			break
		}
	}
}

// Update handles messages for the question view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		keyStr := msg.String()
		switch {
		case keymap.Matches(keyStr, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
		case keymap.Matches(keyStr, v.keymap.Down):
			if v.selected < len(v.definitions)-1 {
				v.selected++
			}
		case keymap.Matches(keyStr, v.keymap.Select):
			if len(v.definitions) == 0 {
				return v, nil
			}
			answer := messages.AnswerSelected{
				Dimension: v.dimension,
				Level:     v.definitions[v.selected].Level,
			}
			return v, func() tea.Msg { return answer }
		case keymap.Matches(keyStr, v.keymap.Back):
			return v, func() tea.Msg { return messages.PreviousQuestion{} }
		case keymap.Matches(keyStr, v.keymap.Help):
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }
		}
	}

	return v, nil
}

// View renders the question.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	step := fmt.Sprintf("Question %d of %d", v.dimension.Index()+1, len(domain.AllDimensions()))
	b.WriteString(v.styles.Muted.Render(step))
	b.WriteString("\n")
	b.WriteString(v.styles.Title.Render(v.dimension.DisplayName()))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Normal.Render("Which level best describes your organisation today?"))
	b.WriteString("\n\n")

	wrap := lipgloss.NewStyle().Width(v.textWidth()).PaddingLeft(4)
	for i, def := range v.definitions {
		option := def.Level.Option()
		if i == v.selected {
			b.WriteString("> " + v.styles.Level(def.Level).Render(option))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(option))
		}
		b.WriteString("\n")
		b.WriteString(wrap.Inherit(v.styles.Muted).Render(def.Description))
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Answer  [Esc] Back  [?] Levels"))

	return b.String()
}

// textWidth bounds the wrapped description width.
func (v *View) textWidth() int {
	w := v.width - 4
	if w < 20 {
		return 20
	}
	if w > 100 {
		return 100
	}
	return w
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Dimension returns the dimension being asked about.
func (v *View) Dimension() domain.Dimension {
	return v.dimension
}

// Selected returns the index of the highlighted choice.
func (v *View) Selected() int {
	return v.selected
}
