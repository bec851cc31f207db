// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/omdiag/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the start menu.
	ViewMenu ViewType = iota
	// ViewQuestion asks for the level of one dimension.
	ViewQuestion
	// ViewSummary shows the score and next steps.
	ViewSummary
	// ViewHelp lists the maturity level definitions and keybindings.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewQuestion:
		return "question"
	case ViewSummary:
		return "summary"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// StartRequested asks for a new assessment session.
type StartRequested struct{}

// SessionStarted carries the newly opened session.
type SessionStarted struct {
	Session *domain.Session
	Err     error
}

// QuestionLoaded carries the level definitions for one dimension.
type QuestionLoaded struct {
	Dimension   domain.Dimension
	Definitions []domain.LevelDefinition
	Err         error
}

// AnswerSelected is sent when a level is chosen for a dimension.
type AnswerSelected struct {
	Dimension domain.Dimension
	Level     domain.Level
}

// AnswerRecorded carries the session after an answer was stored.
type AnswerRecorded struct {
	Session *domain.Session
	Err     error
}

// PreviousQuestion returns to the question before the current one.
type PreviousQuestion struct{}

// SummaryLoaded carries the scored summary of a complete assessment.
type SummaryLoaded struct {
	Summary *domain.Summary
	Err     error
}

// ExportRequested asks for the report document to be written.
type ExportRequested struct{}

// ExportCompleted reports the outcome of an export.
type ExportCompleted struct {
	// Path is where the document was written.
	Path string

	// Warnings lists recovered problems, such as a missing brand mark.
	Warnings []string

	Err error
}

// RestartRequested discards the current answers and starts over.
type RestartRequested struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
