package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/omdiag/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/omdiag/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/omdiag/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/omdiag/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/omdiag/internal/adapters/driving/tui/views/help"
	"github.com/custodia-labs/omdiag/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/omdiag/internal/adapters/driving/tui/views/question"
	"github.com/custodia-labs/omdiag/internal/adapters/driving/tui/views/summary"
	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/logger"
)

// App is the questionnaire TUI following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusBar *status.Bar

	menuView     *menu.View
	questionView *question.View
	summaryView  *summary.View
	helpView     *help.View

	// session holds the answers while the questionnaire is in progress.
	// It is nil before the first start and after a successful export.
	session *domain.Session

	// current is the dimension being asked about.
	current domain.Dimension

	// completed is a copy of the scored assessment; exports read it so a
	// retry works after the session has been discarded.
	completed *domain.Assessment

	// outputDir is where exported documents are written.
	outputDir string

	// exportOpts are passed to every export.
	exportOpts domain.ExportOptions

	productName string

	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// Option configures an App.
type Option func(*App)

// WithOutputDir sets the directory exports are written to.
func WithOutputDir(dir string) Option {
	return func(a *App) {
		if dir != "" {
			a.outputDir = dir
		}
	}
}

// WithExportOptions sets the backend, title and glossary used for exports.
func WithExportOptions(opts domain.ExportOptions) Option {
	return func(a *App) {
		a.exportOpts = opts
	}
}

// WithProductName sets the platform name shown in support text.
func WithProductName(name string) Option {
	return func(a *App) {
		a.productName = name
	}
}

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, opts ...Option) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		outputDir:   ".",
		currentView: messages.ViewMenu,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.styles = styles.DefaultStyles()
	a.keymap = keymap.DefaultKeyMap()
	a.statusBar = status.NewBar(a.styles, a.keymap)
	a.menuView = menu.NewView(a.styles, a.productName)
	a.questionView = question.NewView(a.styles, a.keymap)
	a.summaryView = summary.NewView(a.styles, a.keymap, a.productName)
	a.helpView = help.NewView(a.styles, a.keymap)

	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("omdiag - HVAC O&M Maturity Assessment"),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.updateActiveView(msg)

	case messages.StartRequested:
		return a, a.startSession()

	case messages.SessionStarted:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.session = msg.Session
		a.completed = nil
		a.statusBar.Clear()
		return a, a.loadQuestion(domain.AllDimensions()[0])

	case messages.QuestionLoaded:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.current = msg.Dimension
		var current domain.Level
		if a.session != nil {
			current, _ = a.session.Assessment.Level(msg.Dimension)
		}
		a.questionView.SetQuestion(msg.Dimension, msg.Definitions, current)
		a.currentView = messages.ViewQuestion
		a.statusBar.SetState(status.StateAnswering)
		a.statusBar.SetAnswered(a.answered())
		return a, nil

	case messages.AnswerSelected:
		return a, a.recordAnswer(msg.Dimension, msg.Level)

	case messages.AnswerRecorded:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.session = msg.Session
		a.statusBar.SetAnswered(a.answered())
		if msg.Session.Assessment.Complete() {
			return a, a.loadSummary(msg.Session.Assessment.Clone())
		}
		return a, a.loadQuestion(a.nextDimension())

	case messages.PreviousQuestion:
		if idx := a.current.Index(); idx > 0 {
			return a, a.loadQuestion(domain.AllDimensions()[idx-1])
		}
		a.currentView = messages.ViewMenu
		a.statusBar.Clear()
		return a, a.discardSession()

	case messages.SummaryLoaded:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.summaryView.SetSummary(msg.Summary)
		a.currentView = messages.ViewSummary
		a.statusBar.SetState(status.StateSummary)
		return a, nil

	case messages.ExportRequested:
		if a.completed == nil {
			a.setError(ErrNoSession)
			return a, nil
		}
		a.summaryView.SetExporting()
		a.statusBar.SetState(status.StateExporting)
		return a, a.export()

	case messages.ExportCompleted:
		a.summaryView.SetExportResult(msg.Path, msg.Warnings, msg.Err)
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.session = nil
		a.statusBar.SetState(status.StateExported)
		a.statusBar.SetMessage("Saved " + filepath.Base(msg.Path))
		return a, nil

	case messages.RestartRequested:
		return a, tea.Sequence(a.discardSession(), a.startSession())

	case messages.ViewChanged:
		if msg.View == messages.ViewHelp {
			a.helpView.SetReturnTo(a.currentView)
			a.statusBar.SetState(status.StateHelp)
		} else {
			a.restoreStatus(msg.View)
		}
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	cmd = a.updateActiveView(msg)
	return a, cmd
}

// updateActiveView forwards a message to the active view.
func (a *App) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewQuestion:
		a.questionView, cmd = a.questionView.Update(msg)
	case messages.ViewSummary:
		a.summaryView, cmd = a.summaryView.Update(msg)
	case messages.ViewHelp:
		a.helpView, cmd = a.helpView.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewQuestion:
		body = a.questionView.View()
	case messages.ViewSummary:
		body = a.summaryView.View()
	case messages.ViewHelp:
		body = a.helpView.View()
	default:
		body = a.menuView.View()
	}

	return body + "\n\n" + a.statusBar.View()
}

// startSession opens a new assessment session.
func (a *App) startSession() tea.Cmd {
	ctx, svc := a.ctx, a.ports.Assessment
	return func() tea.Msg {
		session, err := svc.Start(ctx)
		return messages.SessionStarted{Session: session, Err: err}
	}
}

// loadQuestion fetches the level definitions for a dimension.
func (a *App) loadQuestion(d domain.Dimension) tea.Cmd {
	svc := a.ports.Report
	return func() tea.Msg {
		defs, err := svc.LevelDefinitions(d)
		return messages.QuestionLoaded{Dimension: d, Definitions: defs, Err: err}
	}
}

// recordAnswer stores a level in the current session.
func (a *App) recordAnswer(d domain.Dimension, l domain.Level) tea.Cmd {
	if a.session == nil {
		return func() tea.Msg { return messages.AnswerRecorded{Err: ErrNoSession} }
	}
	ctx, svc, id := a.ctx, a.ports.Assessment, a.session.ID
	return func() tea.Msg {
		session, err := svc.Answer(ctx, id, d, l)
		return messages.AnswerRecorded{Session: session, Err: err}
	}
}

// loadSummary scores a complete assessment.
func (a *App) loadSummary(assessment *domain.Assessment) tea.Cmd {
	a.completed = assessment
	svc := a.ports.Report
	return func() tea.Msg {
		s, err := svc.Summary(assessment)
		return messages.SummaryLoaded{Summary: s, Err: err}
	}
}

// export renders the completed assessment and writes it to the output
// directory. The session is discarded once the document is on disk.
func (a *App) export() tea.Cmd {
	ctx, report, sessions := a.ctx, a.ports.Report, a.ports.Assessment
	assessment, opts, dir := a.completed, a.exportOpts, a.outputDir
	var sessionID string
	if a.session != nil {
		sessionID = a.session.ID
	}

	return func() tea.Msg {
		artifact, err := report.Export(ctx, assessment, opts)
		if err != nil {
			return messages.ExportCompleted{Err: err}
		}

		path, err := writeArtifact(dir, artifact)
		if err != nil {
			return messages.ExportCompleted{Err: err}
		}

		if sessionID != "" {
			if err := sessions.Discard(ctx, sessionID); err != nil {
				logger.Debug("discard session %s: %v", sessionID, err)
			}
		}
		return messages.ExportCompleted{Path: path, Warnings: artifact.Warnings}
	}
}

// discardSession drops the current session, if any.
func (a *App) discardSession() tea.Cmd {
	if a.session == nil {
		return nil
	}
	ctx, svc, id := a.ctx, a.ports.Assessment, a.session.ID
	a.session = nil
	a.completed = nil
	return func() tea.Msg {
		if err := svc.Discard(ctx, id); err != nil {
			logger.Debug("discard session %s: %v", id, err)
		}
		return nil
	}
}

// nextDimension returns the dimension after the current one in declared
// order, or the first unanswered one when the current is last.
func (a *App) nextDimension() domain.Dimension {
	dims := domain.AllDimensions()
	if idx := a.current.Index(); idx >= 0 && idx < len(dims)-1 {
		return dims[idx+1]
	}
	if missing := a.session.Assessment.Missing(); len(missing) > 0 {
		return missing[0]
	}
	return dims[0]
}

// answered returns how many dimensions the session has a level for.
func (a *App) answered() int {
	if a.session == nil || a.session.Assessment == nil {
		return 0
	}
	return a.session.Assessment.Len()
}

func (a *App) setError(err error) {
	a.err = err
	a.statusBar.SetState(status.StateError)
	a.statusBar.SetMessage(err.Error())
}

// restoreStatus sets the status bar for a view being returned to.
func (a *App) restoreStatus(view messages.ViewType) {
	switch view {
	case messages.ViewQuestion:
		a.statusBar.SetState(status.StateAnswering)
	case messages.ViewSummary:
		switch {
		case a.summaryView.ExportErr() != nil:
			a.statusBar.SetState(status.StateError)
		case a.summaryView.ExportPath() != "":
			a.statusBar.SetState(status.StateExported)
		default:
			a.statusBar.SetState(status.StateSummary)
		}
	case messages.ViewMenu, messages.ViewHelp:
		a.statusBar.SetState(status.StateReady)
	}
}

// writeArtifact writes a rendered document into dir and returns its path.
func writeArtifact(dir string, artifact *domain.Artifact) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path, err := filepath.Abs(filepath.Join(dir, artifact.Filename))
	if err != nil {
		return "", fmt.Errorf("resolving output path: %w", err)
	}
	if err := os.WriteFile(path, artifact.Data, 0o600); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Current returns the dimension being asked about.
func (a *App) Current() domain.Dimension {
	return a.current
}

// Session returns the in-progress session, or nil.
func (a *App) Session() *domain.Session {
	return a.session
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	// Leave room for the status bar
	body := max(height-2, 1)
	a.menuView.SetDimensions(width, body)
	a.questionView.SetDimensions(width, body)
	a.summaryView.SetDimensions(width, body)
	a.helpView.SetDimensions(width, body)
	a.statusBar.SetWidth(width)
}
