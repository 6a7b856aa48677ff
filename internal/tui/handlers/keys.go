package handlers

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/plantcheck/internal/i18n"
	"github.com/julianstephens/plantcheck/internal/models"
	"github.com/julianstephens/plantcheck/internal/session"
	"github.com/julianstephens/plantcheck/internal/tui/state"
)

// HandleGlobalKeys handles key presses shared by every browsing screen
func HandleGlobalKeys(m *state.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return true, nil
	case key.Matches(msg, m.Keys.Connectivity):
		return true, ToggleConnectivity(m)
	}
	return false, nil
}

// ToggleConnectivity flips online/offline and announces the new mode.
func ToggleConnectivity(m *state.Model) tea.Cmd {
	res, err := dispatch(m, session.ToggleConnectivity{})
	if err != nil {
		return ShowSnackbar(m, err.Error())
	}
	if res.Mode == models.Offline {
		return ShowSnackbar(m, m.T(i18n.Offline))
	}
	return ShowSnackbar(m, m.T(i18n.Online))
}

func dispatch(m *state.Model, ev session.Event) (session.Result, error) {
	res, err := m.Session.Dispatch(context.Background(), ev)
	if err == nil {
		m.Search.Placeholder = i18n.T(res.Language, i18n.SearchPlaceholder)
	}
	return res, err
}
