package handlers

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/plantcheck/internal/checklist"
	"github.com/julianstephens/plantcheck/internal/constants"
	"github.com/julianstephens/plantcheck/internal/models"
	"github.com/julianstephens/plantcheck/internal/session"
	"github.com/julianstephens/plantcheck/internal/tui/state"
)

// SnackbarExpiredMsg hides the snackbar if nothing newer replaced it.
type SnackbarExpiredMsg struct {
	Seq int
}

// SubmissionSettledMsg reports a finished work request submission.
type SubmissionSettledMsg struct {
	ItemID string
	State  models.WorkRequestState
	Entry  models.WorkRequestEntry
	Err    error
}

type ScanResultMsg struct {
	Result session.Result
	Err    error
}

// RaiseConfirmedMsg raises a work request the operator confirmed without details.
type RaiseConfirmedMsg struct {
	ItemID string
}

// ContinueConfirmedMsg continues past defects the operator confirmed without details.
type ContinueConfirmedMsg struct{}

// Emit wraps msg in a command.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// ShowSnackbar displays text for constants.SnackbarDuration.
func ShowSnackbar(m *state.Model, text string) tea.Cmd {
	m.SnackbarSeq++
	m.Snackbar = text
	seq := m.SnackbarSeq
	return tea.Tick(constants.SnackbarDuration, func(time.Time) tea.Msg {
		return SnackbarExpiredMsg{Seq: seq}
	})
}

// HandleSnackbarExpired clears the snackbar it was scheduled for.
func HandleSnackbarExpired(m *state.Model, msg SnackbarExpiredMsg) {
	if msg.Seq == m.SnackbarSeq {
		m.Snackbar = ""
	}
}

// WaitSubmission blocks on a submission in a command goroutine.
func WaitSubmission(sub *checklist.Submission) tea.Cmd {
	return func() tea.Msg {
		entry, err := sub.Wait(context.Background())
		return SubmissionSettledMsg{ItemID: sub.ItemID, State: sub.State(), Entry: entry, Err: err}
	}
}

// ScanCmd runs the scanner and opens the scanned equipment.
func ScanCmd(sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		res, err := sess.Dispatch(context.Background(), session.Scan{})
		return ScanResultMsg{Result: res, Err: err}
	}
}

// Busy reports whether the spinner has something to show.
func Busy(m *state.Model) bool {
	if m.Scanning {
		return true
	}
	wf := m.Session.Checklist()
	if wf == nil {
		return false
	}
	for _, it := range wf.Items() {
		if it.WorkRequestState == models.RequestSubmitting {
			return true
		}
	}
	return false
}
