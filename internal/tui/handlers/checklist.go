package handlers

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/plantcheck/internal/checklist"
	"github.com/julianstephens/plantcheck/internal/constants"
	"github.com/julianstephens/plantcheck/internal/errors"
	"github.com/julianstephens/plantcheck/internal/i18n"
	"github.com/julianstephens/plantcheck/internal/models"
	"github.com/julianstephens/plantcheck/internal/session"
	"github.com/julianstephens/plantcheck/internal/tui/state"
)

// HandleChecklistKeys handles the pre-start checklist
func HandleChecklistKeys(m *state.Model, msg tea.KeyMsg) tea.Cmd {
	wf := m.Session.Checklist()
	if wf == nil {
		return nil
	}
	items := wf.Items()
	m.ClampCursor(len(items))
	if len(items) == 0 {
		return nil
	}
	it := items[m.Cursor]

	var err error
	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(items)-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.OK):
		err = wf.SetStatus(it.ID, models.StatusOK)
	case key.Matches(msg, m.Keys.Defect):
		err = wf.SetStatus(it.ID, models.StatusDefect)
	case key.Matches(msg, m.Keys.Enter):
		err = wf.ToggleExpanded(it.ID)
	case key.Matches(msg, m.Keys.Comment):
		return OpenCommentForm(m, it)
	case key.Matches(msg, m.Keys.AddPhoto):
		ref := models.PhotoRef{URI: fmt.Sprintf("%s%s/%s/%d", constants.PhotoURIPrefix, wf.Equipment().ID, it.ID, len(it.Photos)+1)}
		err = wf.AddPhoto(it.ID, ref)
	case key.Matches(msg, m.Keys.RemovePhoto):
		if len(it.Photos) > 0 {
			err = wf.RemovePhoto(it.ID, len(it.Photos)-1)
		}
	case key.Matches(msg, m.Keys.Raise):
		return Raise(m, it.ID, false)
	case key.Matches(msg, m.Keys.Continue):
		return Continue(m, false)
	case key.Matches(msg, m.Keys.Queue):
		if _, err := dispatch(m, session.Back{ThenOpenQueue: true}); err != nil {
			return ShowSnackbar(m, err.Error())
		}
		m.Cursor = 0
	case key.Matches(msg, m.Keys.Back):
		if _, err := dispatch(m, session.Back{}); err != nil {
			return ShowSnackbar(m, err.Error())
		}
		m.Cursor = 0
	}
	if err != nil {
		return ShowSnackbar(m, err.Error())
	}
	return nil
}

// Raise asks the session to raise a work request for itemID.
func Raise(m *state.Model, itemID string, acknowledged bool) tea.Cmd {
	out, err := m.Session.RaiseWorkRequest(context.Background(), itemID, acknowledged)
	if err != nil {
		return ShowSnackbar(m, err.Error())
	}
	if out.ConfirmationRequired {
		return Emit(constants.ConfirmationMsg{
			Title:   m.T(i18n.IncompleteWR),
			Message: m.T(i18n.IncompleteWRMsg),
			Action: func() tea.Cmd {
				return Emit(RaiseConfirmedMsg{ItemID: itemID})
			},
		})
	}
	return tea.Batch(WaitSubmission(out.Submission), m.Spinner.Tick)
}

// HandleSubmissionSettled announces where a work request went.
func HandleSubmissionSettled(m *state.Model, msg SubmissionSettledMsg) tea.Cmd {
	switch {
	case errors.Is(msg.Err, context.Canceled):
		// The checklist was discarded; nothing was enqueued.
		return nil
	case msg.Err != nil:
		return ShowSnackbar(m, m.T(i18n.WorkRequestFailed))
	case msg.State == models.RequestQueued:
		return ShowSnackbar(m, m.T(i18n.OfflineRequestAdd))
	default:
		return ShowSnackbar(m, fmt.Sprintf("%s · %s", m.T(i18n.WorkRequestRaised), msg.Entry.Reference))
	}
}

// Continue asks to move on to the completion screen.
func Continue(m *state.Model, acknowledged bool) tea.Cmd {
	res, err := dispatch(m, session.Continue{Acknowledged: acknowledged})
	if err != nil {
		return ShowSnackbar(m, err.Error())
	}
	switch res.Continue {
	case checklist.NotReady:
		return ShowSnackbar(m, m.T(i18n.PleaseCompleteAll))
	case checklist.ConfirmationRequired:
		return Emit(constants.ConfirmationMsg{
			Title:   m.T(i18n.IncompleteDefects),
			Message: m.T(i18n.IncompleteDefMsg),
			Action: func() tea.Cmd {
				return Emit(ContinueConfirmedMsg{})
			},
		})
	default:
		return OpenSignOffForm(m)
	}
}

// HandleCompletionKeys handles the completion screen between sign-off attempts.
func HandleCompletionKeys(m *state.Model, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.Keys.Enter):
		return OpenSignOffForm(m)
	case key.Matches(msg, m.Keys.Back):
		if _, err := dispatch(m, session.Back{}); err != nil {
			return ShowSnackbar(m, err.Error())
		}
	}
	return nil
}

func OpenCommentForm(m *state.Model, it models.ChecklistItem) tea.Cmd {
	m.CommentForm = &state.CommentFormModel{ItemID: it.ID, Comments: it.Comments}
	m.Form = NewCommentForm(m, m.CommentForm)
	m.State = constants.StateCommentForm
	return m.Form.Init()
}

func OpenSignOffForm(m *state.Model) tea.Cmd {
	m.SignOffForm = &state.SignOffFormModel{Saved: m.Session.Operator()}
	m.Form = NewSignOffForm(m, m.SignOffForm)
	m.State = constants.StateSignOffForm
	return m.Form.Init()
}
