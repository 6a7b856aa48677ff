package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/plantcheck/internal/constants"
	"github.com/julianstephens/plantcheck/internal/errors"
	"github.com/julianstephens/plantcheck/internal/i18n"
	"github.com/julianstephens/plantcheck/internal/session"
	"github.com/julianstephens/plantcheck/internal/tui/state"
)

// HandleCatalogKeys handles the equipment list
func HandleCatalogKeys(m *state.Model, msg tea.KeyMsg) tea.Cmd {
	rows := m.Equipment()
	m.ClampCursor(len(rows))

	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(rows)-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Enter):
		if len(rows) == 0 {
			return nil
		}
		return OpenEquipment(m, rows[m.Cursor].ID)
	case key.Matches(msg, m.Keys.Search):
		m.State = constants.StateSearch
		return m.Search.Focus()
	case key.Matches(msg, m.Keys.Sort):
		m.Sort = m.Sort.Next()
		m.Cursor = 0
	case key.Matches(msg, m.Keys.Bookmark):
		if len(rows) == 0 {
			return nil
		}
		change, err := m.Session.Catalog().ToggleBookmark(rows[m.Cursor].ID)
		if err != nil {
			return ShowSnackbar(m, err.Error())
		}
		if change.Bookmarked {
			return ShowSnackbar(m, m.T(i18n.BookmarkAdded, change.Name))
		}
		return ShowSnackbar(m, m.T(i18n.BookmarkRemoved, change.Name))
	case key.Matches(msg, m.Keys.LoadMore):
		if m.Search.Value() == "" {
			m.Session.Pager().LoadMore()
		}
	case key.Matches(msg, m.Keys.Scan):
		m.Scanning = true
		return tea.Batch(ScanCmd(m.Session), m.Spinner.Tick)
	case key.Matches(msg, m.Keys.Queue):
		return OpenQueue(m)
	case key.Matches(msg, m.Keys.Language):
		return OpenLanguageForm(m)
	case key.Matches(msg, m.Keys.Menu):
		return OpenMenuForm(m)
	}
	return nil
}

// HandleSearchState edits the search box until enter or esc.
func HandleSearchState(m *state.Model, msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.Search.Blur()
			m.State = constants.StateBrowse
			return nil
		}
	}
	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	m.Cursor = 0
	return cmd
}

// HandleScanResult shows the scanned checklist or reports why it could not open.
func HandleScanResult(m *state.Model, msg ScanResultMsg) tea.Cmd {
	m.Scanning = false
	if msg.Err != nil {
		return ShowSnackbar(m, msg.Err.Error())
	}
	m.Cursor = 0
	return nil
}

// OpenEquipment opens a fresh checklist for id.
func OpenEquipment(m *state.Model, id string) tea.Cmd {
	if _, err := dispatch(m, session.OpenEquipment{ID: id}); err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return ShowSnackbar(m, m.T(i18n.EquipmentNotFound, id))
		}
		return ShowSnackbar(m, err.Error())
	}
	m.Cursor = 0
	return nil
}

func OpenQueue(m *state.Model) tea.Cmd {
	if _, err := dispatch(m, session.OpenQueue{}); err != nil {
		return ShowSnackbar(m, err.Error())
	}
	m.Cursor = 0
	return nil
}
