package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/plantcheck/internal/models"
	"github.com/julianstephens/plantcheck/internal/session"
	"github.com/julianstephens/plantcheck/internal/tui/state"
)

// HandleQueueKeys handles the work request queue viewer
func HandleQueueKeys(m *state.Model, msg tea.KeyMsg) tea.Cmd {
	entries, err := m.QueueEntries()
	if err != nil {
		return ShowSnackbar(m, err.Error())
	}
	m.ClampCursor(len(entries))

	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(entries)-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Tab):
		if m.QueueTab == models.CollectionQueued {
			m.QueueTab = models.CollectionSent
		} else {
			m.QueueTab = models.CollectionQueued
		}
		m.Cursor = 0
	case key.Matches(msg, m.Keys.Complete):
		if m.QueueTab != models.CollectionQueued || len(entries) == 0 {
			return nil
		}
		done, err := m.Session.CompleteWorkRequest(entries[m.Cursor].ID)
		if err != nil {
			return ShowSnackbar(m, err.Error())
		}
		m.ClampCursor(len(entries) - 1)
		return ShowSnackbar(m, done.Reference+" ✓")
	case key.Matches(msg, m.Keys.Back):
		if _, err := dispatch(m, session.Back{}); err != nil {
			return ShowSnackbar(m, err.Error())
		}
		m.Cursor = 0
	case key.Matches(msg, m.Keys.Menu):
		return OpenMenuForm(m)
	case key.Matches(msg, m.Keys.Language):
		return OpenLanguageForm(m)
	}
	return nil
}
