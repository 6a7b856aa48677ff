package state

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Enter        key.Binding
	Back         key.Binding
	Quit         key.Binding
	Help         key.Binding
	Search       key.Binding
	Sort         key.Binding
	Bookmark     key.Binding
	LoadMore     key.Binding
	Scan         key.Binding
	Queue        key.Binding
	Connectivity key.Binding
	Language     key.Binding
	Menu         key.Binding
	OK           key.Binding
	Defect       key.Binding
	Comment      key.Binding
	AddPhoto     key.Binding
	RemovePhoto  key.Binding
	Raise        key.Binding
	Continue     key.Binding
	Tab          key.Binding
	Complete     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bookmark"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "load more"),
		),
		Scan: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "scan"),
		),
		Queue: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "queue"),
		),
		Connectivity: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "online/offline"),
		),
		Language: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "language"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		OK: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "ok"),
		),
		Defect: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "defect"),
		),
		Comment: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "comment"),
		),
		AddPhoto: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "add photo"),
		),
		RemovePhoto: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "remove photo"),
		),
		Raise: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "work request"),
		),
		Continue: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "continue"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "queued/sent"),
		),
		Complete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "mark complete"),
		),
	}
}
