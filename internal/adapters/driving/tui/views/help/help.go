// Package help provides the maturity level and keybinding reference for the TUI.
package help

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

// View lists what each maturity label means.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	returnTo messages.ViewType
	width    int
	height   int
	ready    bool
}

// NewView creates a new help view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:   s,
		keymap:   km,
		returnTo: messages.ViewMenu,
		width:    80,
		height:   24,
	}
}

// Init initialises the help view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetReturnTo sets the view shown when help is closed.
func (v *View) SetReturnTo(view messages.ViewType) {
	if view == messages.ViewHelp {
		return
	}
	v.returnTo = view
}

// ReturnTo returns the view shown when help is closed.
func (v *View) ReturnTo() messages.ViewType {
	return v.returnTo
}

// Update handles messages for the help view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		keyStr := msg.String()
		if keymap.Matches(keyStr, v.keymap.Back) || keymap.Matches(keyStr, v.keymap.Help) || keyStr == "q" {
			back := messages.ViewChanged{View: v.returnTo}
			return v, func() tea.Msg { return back }
		}
	}

	return v, nil
}

// View renders the level definitions and keybindings.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Maturity Levels"))
	b.WriteString("\n\n")

	desc := lipgloss.NewStyle().Width(max(v.width-4, 20)).PaddingLeft(2).Inherit(v.styles.Normal)
	for _, entry := range domain.Glossary() {
		heading := fmt.Sprintf("Level %d: %s", int(entry.Level), entry.Label.DisplayName())
		b.WriteString(v.styles.Level(entry.Level).Render(heading))
		b.WriteString("\n")
		b.WriteString(desc.Render(entry.Definition))
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Subtitle.Render("Keys"))
	b.WriteString("\n")
	for _, group := range v.keymap.FullHelp() {
		hints := make([]string, 0, len(group))
		for _, binding := range group {
			h := binding.Help()
			hints = append(hints, fmt.Sprintf("%-6s %s", h.Key, h.Desc))
		}
		b.WriteString("  " + v.styles.Muted.Render(strings.Join(hints, "    ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}
