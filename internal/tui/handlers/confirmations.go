package handlers

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/plantcheck/internal/constants"
	"github.com/julianstephens/plantcheck/internal/i18n"
	"github.com/julianstephens/plantcheck/internal/session"
	"github.com/julianstephens/plantcheck/internal/tui/state"
)

// updateForm feeds msg to the open form. Esc aborts it.
func updateForm(m *state.Model, msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.Form.State = huh.StateAborted
		return nil
	}
	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	return cmd
}

func closeForm(m *state.Model) {
	m.Form = nil
	m.State = constants.StateBrowse
}

// HandleConfirmationState handles the generic confirmation state
func HandleConfirmationState(m *state.Model, msg tea.Msg) tea.Cmd {
	cmds := []tea.Cmd{updateForm(m, msg)}

	switch m.Form.State {
	case huh.StateCompleted:
		if m.ConfirmationForm.Confirmed && m.PendingAction != nil {
			cmds = append(cmds, m.PendingAction())
		}
		m.PendingAction = nil
		closeForm(m)
	case huh.StateAborted:
		m.PendingAction = nil
		closeForm(m)
	}
	return tea.Batch(cmds...)
}

// HandleConfirmationMessages handles messages related to confirmations
func HandleConfirmationMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case constants.ConfirmationMsg:
		m.ConfirmationForm = &state.ConfirmationFormModel{
			Title:   msg.Title,
			Message: msg.Message,
		}
		m.PendingAction = msg.Action
		m.Form = NewConfirmationForm(m, m.ConfirmationForm)
		m.State = constants.StateConfirmation
		return true, m.Form.Init()
	case RaiseConfirmedMsg:
		return true, Raise(m, msg.ItemID, true)
	case ContinueConfirmedMsg:
		return true, Continue(m, true)
	}
	return false, nil
}

// HandleCommentFormState saves the comment when the form completes.
func HandleCommentFormState(m *state.Model, msg tea.Msg) tea.Cmd {
	cmd := updateForm(m, msg)
	switch m.Form.State {
	case huh.StateCompleted:
		closeForm(m)
		if wf := m.Session.Checklist(); wf != nil {
			if err := wf.SetComment(m.CommentForm.ItemID, m.CommentForm.Comments); err != nil {
				return ShowSnackbar(m, err.Error())
			}
		}
	case huh.StateAborted:
		closeForm(m)
	}
	return cmd
}

// HandleSignOffFormState finishes the pre-start check, or steps back to the checklist on abort.
func HandleSignOffFormState(m *state.Model, msg tea.Msg) tea.Cmd {
	cmd := updateForm(m, msg)
	switch m.Form.State {
	case huh.StateCompleted:
		closeForm(m)
		res, err := dispatch(m, session.FinishCompletion{SignOff: m.SignOffForm.SignOff()})
		if err != nil {
			return ShowSnackbar(m, err.Error())
		}
		m.Cursor = 0
		return ShowSnackbar(m, m.T(i18n.PreStartSaved, res.Record.EquipmentName))
	case huh.StateAborted:
		closeForm(m)
		if _, err := dispatch(m, session.Back{}); err != nil {
			return ShowSnackbar(m, err.Error())
		}
	}
	return cmd
}

func OpenLanguageForm(m *state.Model) tea.Cmd {
	if _, err := dispatch(m, session.OpenLanguageSelector{}); err != nil {
		return ShowSnackbar(m, err.Error())
	}
	m.LanguageForm = &state.LanguageFormModel{Code: m.Session.Language()}
	m.Form = NewLanguageForm(m, m.LanguageForm)
	m.State = constants.StateLanguageForm
	return m.Form.Init()
}

// HandleLanguageFormState applies the chosen language.
func HandleLanguageFormState(m *state.Model, msg tea.Msg) tea.Cmd {
	cmd := updateForm(m, msg)
	var ev session.Event
	switch m.Form.State {
	case huh.StateCompleted:
		ev = session.SelectLanguage{Code: m.LanguageForm.Code}
	case huh.StateAborted:
		ev = session.Back{}
	default:
		return cmd
	}
	closeForm(m)
	if _, err := dispatch(m, ev); err != nil {
		return ShowSnackbar(m, err.Error())
	}
	return nil
}

func OpenMenuForm(m *state.Model) tea.Cmd {
	if _, err := dispatch(m, session.OpenMenu{}); err != nil {
		return ShowSnackbar(m, err.Error())
	}
	m.MenuForm = &state.MenuFormModel{}
	m.Form = NewMenuForm(m, m.MenuForm)
	m.State = constants.StateMenuForm
	return m.Form.Init()
}

// HandleMenuFormState runs the chosen menu entry.
func HandleMenuFormState(m *state.Model, msg tea.Msg) tea.Cmd {
	cmd := updateForm(m, msg)
	switch m.Form.State {
	case huh.StateCompleted:
		closeForm(m)
		switch m.MenuForm.Action {
		case state.MenuQueue:
			return OpenQueue(m)
		case state.MenuLanguage:
			return OpenLanguageForm(m)
		case state.MenuConnectivity:
			toggle := ToggleConnectivity(m)
			if _, err := dispatch(m, session.Back{}); err != nil {
				return ShowSnackbar(m, err.Error())
			}
			return toggle
		case state.MenuQuit:
			m.Quitting = true
			return tea.Quit
		}
	case huh.StateAborted:
		closeForm(m)
		if _, err := dispatch(m, session.Back{}); err != nil {
			return ShowSnackbar(m, err.Error())
		}
	}
	return cmd
}
