package state

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/plantcheck/internal/constants"
	"github.com/julianstephens/plantcheck/internal/i18n"
	"github.com/julianstephens/plantcheck/internal/models"
	"github.com/julianstephens/plantcheck/internal/session"
)

// CommentFormModel represents the form model for item comments
type CommentFormModel struct {
	ItemID   string
	Comments string
}

// SignOffFormModel represents the form model for the completion screen
type SignOffFormModel struct {
	Hours     string
	Minutes   string
	Notes     string
	Saved     string
	Signature string
}

// SignOff returns the entered sign-off. A typed signature wins over a saved one.
func (f SignOffFormModel) SignOff() models.SignOff {
	sig := f.Signature
	if sig == "" {
		sig = f.Saved
	}
	return models.SignOff{Hours: f.Hours, Minutes: f.Minutes, Notes: f.Notes, Signature: sig}
}

// LanguageFormModel represents the form model for the language selector
type LanguageFormModel struct {
	Code string
}

// MenuAction is an entry of the hamburger menu.
type MenuAction string

const (
	MenuQueue        MenuAction = "queue"
	MenuLanguage     MenuAction = "language"
	MenuConnectivity MenuAction = "connectivity"
	MenuQuit         MenuAction = "quit"
)

// MenuFormModel represents the form model for the hamburger menu
type MenuFormModel struct {
	Action MenuAction
}

// ConfirmationFormModel represents a yes/no prompt
type ConfirmationFormModel struct {
	Title     string
	Message   string
	Confirmed bool
}

// Model represents the shared state for the TUI
type Model struct {
	Session *session.Session
	State   constants.SessionState
	Keys    KeyMap
	Help    help.Model
	Search  textinput.Model
	Spinner spinner.Model

	Sort     models.SortKey
	Cursor   int
	QueueTab models.Collection

	Form             *huh.Form
	CommentForm      *CommentFormModel
	SignOffForm      *SignOffFormModel
	LanguageForm     *LanguageFormModel
	MenuForm         *MenuFormModel
	ConfirmationForm *ConfirmationFormModel
	PendingAction    func() tea.Cmd

	Snackbar    string
	SnackbarSeq int
	Scanning    bool
	Quitting    bool
	Width       int
	Height      int
	Now         func() time.Time
}

// New creates a new state Model
func New(sess *session.Session) Model {
	search := textinput.New()
	search.Placeholder = i18n.T(sess.Language(), i18n.SearchPlaceholder)
	search.Prompt = "🔍 "

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		Session:  sess,
		State:    constants.StateBrowse,
		Keys:     DefaultKeyMap(),
		Help:     help.New(),
		Search:   search,
		Spinner:  sp,
		Sort:     models.SortByName,
		QueueTab: models.CollectionQueued,
		Now:      time.Now,
	}
}

// T translates key into the session language.
func (m *Model) T(key i18n.Key, args ...any) string {
	return i18n.T(m.Session.Language(), key, args...)
}

// Equipment returns the catalog rows currently on screen.
func (m *Model) Equipment() []models.EquipmentRecord {
	return m.Session.Catalog().List(m.Search.Value(), m.Sort, m.Session.Pager().Limit())
}

// QueueEntries returns the rows of the selected queue tab.
func (m *Model) QueueEntries() ([]models.WorkRequestEntry, error) {
	if m.QueueTab == models.CollectionSent {
		return m.Session.Queue().ListSent()
	}
	return m.Session.Queue().ListQueued()
}

// ClampCursor keeps the cursor inside n rows.
func (m *Model) ClampCursor(n int) {
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}
