// Package menu provides the start menu view for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/omdiag/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/omdiag/internal/adapters/driving/tui/styles"
)

// Item represents a single menu option.
type Item struct {
	Label string
	Msg   tea.Msg
	Quit  bool // If true, selecting this item quits the app
}

// View represents the start menu.
type View struct {
	styles   *styles.Styles
	product  string
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view. product names the platform in the subtitle.
func NewView(s *styles.Styles, product string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if product == "" {
		product = "the Platform"
	}

	return &View{
		styles:  s,
		product: product,
		items: []Item{
			{Label: "Start assessment", Msg: messages.StartRequested{}},
			{Label: "Maturity levels", Msg: messages.ViewChanged{View: messages.ViewHelp}},
			{Label: "Quit", Quit: true},
		},
		width:  80,
		height: 24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg { return item.Msg }

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("HVAC O&M Maturity Assessment"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render(
		"Rate five dimensions of your operations and maintenance practice\n" +
			"and see how " + v.product + " supports the next step."))
	b.WriteString("\n\n")

	for i, item := range v.items {
		if i == v.selected {
			b.WriteString("> " + v.styles.Selected.Render(item.Label))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(item.Label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
