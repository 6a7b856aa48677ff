package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/plantcheck/internal/constants"
	"github.com/julianstephens/plantcheck/internal/session"
	"github.com/julianstephens/plantcheck/internal/tui/handlers"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Messages that arrive regardless of the input state
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil
	case handlers.SnackbarExpiredMsg:
		handlers.HandleSnackbarExpired(&m.Model, msg)
		return m, nil
	case handlers.SubmissionSettledMsg:
		return m, handlers.HandleSubmissionSettled(&m.Model, msg)
	case handlers.ScanResultMsg:
		return m, handlers.HandleScanResult(&m.Model, msg)
	case spinner.TickMsg:
		if !handlers.Busy(&m.Model) {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	if handled, cmd := handlers.HandleConfirmationMessages(&m.Model, msg); handled {
		return m, cmd
	}

	switch m.State {
	case constants.StateSearch:
		return m, handlers.HandleSearchState(&m.Model, msg)
	case constants.StateCommentForm:
		return m, handlers.HandleCommentFormState(&m.Model, msg)
	case constants.StateSignOffForm:
		return m, handlers.HandleSignOffFormState(&m.Model, msg)
	case constants.StateLanguageForm:
		return m, handlers.HandleLanguageFormState(&m.Model, msg)
	case constants.StateMenuForm:
		return m, handlers.HandleMenuFormState(&m.Model, msg)
	case constants.StateConfirmation:
		return m, handlers.HandleConfirmationState(&m.Model, msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.Scanning {
		return m, nil
	}
	if handled, cmd := handlers.HandleGlobalKeys(&m.Model, keyMsg); handled {
		return m, cmd
	}

	switch m.Session.View() {
	case session.ViewChecklist:
		return m, handlers.HandleChecklistKeys(&m.Model, keyMsg)
	case session.ViewCompletion:
		return m, handlers.HandleCompletionKeys(&m.Model, keyMsg)
	case session.ViewQueue:
		return m, handlers.HandleQueueKeys(&m.Model, keyMsg)
	default:
		return m, handlers.HandleCatalogKeys(&m.Model, keyMsg)
	}
}
