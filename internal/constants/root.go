package constants

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SessionState is the TUI input mode layered over the session view.
type SessionState int

// ConfirmationMsg is a message to trigger a confirmation dialog
type ConfirmationMsg struct {
	Title   string
	Message string
	Action  func() tea.Cmd
}

const (
	AppName     = "plantcheck"
	Description = "Plant equipment pre-start checks and work requests"
	Version     = "v0.1.0"

	// DefaultOperator signs completions when no operator is configured.
	DefaultOperator = "operator"

	SnackbarDuration = 3 * time.Second

	// PhotoURIPrefix names placeholder photos attached from the terminal.
	PhotoURIPrefix = "photo://"
)

// SessionState values
const (
	StateBrowse SessionState = iota
	StateSearch
	StateCommentForm
	StateSignOffForm
	StateLanguageForm
	StateMenuForm
	StateConfirmation
)

// SavedSignatures are offered on the completion screen.
var SavedSignatures = []string{"John Smith", "Jane Doe", "Mike Johnson", "Sarah Wilson"}
