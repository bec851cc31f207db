// Package summary provides the assessment result screen for the TUI.
package summary

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

// View shows the overall maturity level and the next step per dimension.
// The export status stays below the scrolled body so a failed export never
// hides the summary.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	product string
	summary *domain.Summary

	lines        []string
	scrollOffset int

	exporting  bool
	exportPath string
	warnings   []string
	exportErr  error

	width  int
	height int
	ready  bool
}

// NewView creates a new summary view. product names the platform in the
// support text headings.
func NewView(s *styles.Styles, km *keymap.KeyMap, product string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if product == "" {
		product = "the Platform"
	}

	return &View{
		styles:  s,
		keymap:  km,
		product: product,
		width:   80,
		height:  24,
	}
}

// Init initialises the summary view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetSummary shows a new result and clears any previous export state.
func (v *View) SetSummary(s *domain.Summary) {
	v.summary = s
	v.scrollOffset = 0
	v.exporting = false
	v.exportPath = ""
	v.warnings = nil
	v.exportErr = nil
	v.buildLines()
}

// SetExporting marks an export as in progress.
func (v *View) SetExporting() {
	v.exporting = true
	v.exportErr = nil
}

// SetExportResult records the outcome of an export.
func (v *View) SetExportResult(path string, warnings []string, err error) {
	v.exporting = false
	v.exportErr = err
	if err != nil {
		return
	}
	v.exportPath = path
	v.warnings = warnings
}

// Update handles messages for the summary view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case keymap.Matches(keyStr, v.keymap.Down):
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case keyStr == "pgup":
		v.scrollOffset = max(v.scrollOffset-v.visibleLines(), 0)
	case keyStr == "pgdown":
		v.scrollOffset = min(v.scrollOffset+v.visibleLines(), v.maxScrollOffset())
	case keymap.Matches(keyStr, v.keymap.Export):
		if v.exporting || v.summary == nil {
			return v, nil
		}
		return v, func() tea.Msg { return messages.ExportRequested{} }
	case keymap.Matches(keyStr, v.keymap.Restart):
		return v, func() tea.Msg { return messages.RestartRequested{} }
	case keymap.Matches(keyStr, v.keymap.Help):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }
	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, tea.Quit
	}

	return v, nil
}

// buildLines renders the summary body into wrapped lines.
func (v *View) buildLines() {
	v.lines = nil
	if v.summary == nil {
		return
	}

	width := max(v.width-4, 20)
	para := lipgloss.NewStyle().Width(width)
	indent := lipgloss.NewStyle().Width(width).PaddingLeft(2)

	var b strings.Builder
	score := v.summary.Score
	b.WriteString(v.styles.Title.Render("Overall Maturity Level: "))
	b.WriteString(v.styles.Level(score.Label.Level()).Render(score.Label.DisplayName()))
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf(" (average %s)", score.FormattedAverage())))
	b.WriteString("\n\n")
	b.WriteString(para.Inherit(v.styles.Muted).Render(score.Label.Definition()))
	b.WriteString("\n")

	for _, row := range v.summary.Rows {
		b.WriteString("\n")
		b.WriteString(v.styles.Level(row.Level).Render(row.Heading()))
		b.WriteString("\n")
		b.WriteString(indent.Inherit(v.styles.Normal).Render(row.Description))
		b.WriteString("\n")
		b.WriteString(indent.Inherit(v.styles.Normal).Render("Next step: " + row.Recommendation))
		b.WriteString("\n")
		b.WriteString(indent.Inherit(v.styles.Muted).Render("What Pioneering looks like: " + row.TopExemplar))
		b.WriteString("\n")
		b.WriteString(indent.Inherit(v.styles.Normal).Render("How " + v.product + " helps: " + row.SupportNote))
		b.WriteString("\n")
	}

	v.lines = strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
}

// visibleLines returns the number of body lines that fit above the footer.
func (v *View) visibleLines() int {
	// Reserve lines for the export status, warnings and help
	reserved := 5 + len(v.warnings)
	return max(v.height-reserved, 1)
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	return max(len(v.lines)-v.visibleLines(), 0)
}

// View renders the summary screen.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.summary == nil {
		return v.styles.Muted.Render("No assessment has been completed.")
	}

	var b strings.Builder

	visible := v.visibleLines()
	for i := v.scrollOffset; i < len(v.lines) && i < v.scrollOffset+visible; i++ {
		b.WriteString(v.lines[i])
		b.WriteString("\n")
	}
	if len(v.lines) > visible {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  Line %d-%d of %d",
			v.scrollOffset+1, min(v.scrollOffset+visible, len(v.lines)), len(v.lines))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderExportStatus())
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Scroll  [e] Export  [r] Start over  [?] Levels  [q] Quit"))

	return b.String()
}

// renderExportStatus renders the outcome of the last export.
func (v *View) renderExportStatus() string {
	switch {
	case v.exporting:
		return v.styles.Muted.Render("Exporting report...")
	case v.exportErr != nil:
		return v.styles.Error.Render("Export failed: "+v.exportErr.Error()) + "\n" +
			v.styles.Warning.Render("press e to retry")
	case v.exportPath != "":
		var b strings.Builder
		b.WriteString(v.styles.Success.Render("Report saved to " + v.exportPath))
		for _, w := range v.warnings {
			b.WriteString("\n")
			b.WriteString(v.styles.Warning.Render("Warning: " + w))
		}
		return b.String()
	default:
		return v.styles.Muted.Render("Press e to export the report.")
	}
}

// SetDimensions sets the view dimensions and rewraps the body.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.buildLines()
	v.scrollOffset = min(v.scrollOffset, v.maxScrollOffset())
}

// Summary returns the summary being shown.
func (v *View) Summary() *domain.Summary {
	return v.summary
}

// Exporting reports whether an export is in progress.
func (v *View) Exporting() bool {
	return v.exporting
}

// ExportErr returns the error of the last export, if it failed.
func (v *View) ExportErr() error {
	return v.exportErr
}

// ExportPath returns where the last successful export was written.
func (v *View) ExportPath() string {
	return v.exportPath
}
