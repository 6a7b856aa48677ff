package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/plantcheck/internal/session"
	"github.com/julianstephens/plantcheck/internal/tui/state"
)

type Model struct {
	state.Model
}

func NewModel(sess *session.Session) Model {
	return Model{Model: state.New(sess)}
}

func (m Model) ShortHelp() []key.Binding {
	k := m.Keys
	switch m.Session.View() {
	case session.ViewChecklist:
		return []key.Binding{k.OK, k.Defect, k.Raise, k.Continue, k.Back, k.Help}
	case session.ViewCompletion:
		return []key.Binding{k.Enter, k.Back}
	case session.ViewQueue:
		return []key.Binding{k.Tab, k.Complete, k.Back, k.Help}
	default:
		return []key.Binding{k.Search, k.Sort, k.Scan, k.Queue, k.Menu, k.Quit, k.Help}
	}
}

func (m Model) FullHelp() [][]key.Binding {
	k := m.Keys
	global := []key.Binding{k.Quit, k.Help, k.Connectivity, k.Back}
	navigation := []key.Binding{k.Up, k.Down, k.Enter}

	var actions []key.Binding
	switch m.Session.View() {
	case session.ViewChecklist:
		actions = []key.Binding{k.OK, k.Defect, k.Comment, k.AddPhoto, k.RemovePhoto, k.Raise, k.Continue, k.Queue}
	case session.ViewQueue:
		actions = []key.Binding{k.Tab, k.Complete, k.Menu, k.Language}
	default:
		actions = []key.Binding{k.Search, k.Sort, k.Bookmark, k.LoadMore, k.Scan, k.Queue, k.Language, k.Menu}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
