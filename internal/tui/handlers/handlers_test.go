package handlers

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/plantcheck/internal/checklist"
	"github.com/julianstephens/plantcheck/internal/config"
	"github.com/julianstephens/plantcheck/internal/constants"
	"github.com/julianstephens/plantcheck/internal/errors"
	"github.com/julianstephens/plantcheck/internal/models"
	"github.com/julianstephens/plantcheck/internal/session"
	"github.com/julianstephens/plantcheck/internal/tui/state"
)

func newModel(t *testing.T) *state.Model {
	t.Helper()
	cfg := config.Default()
	cfg.Session.Connectivity = string(models.Offline)
	sess, err := session.New(cfg, session.WithSubmitter(checklist.DelaySubmitter{}))
	require.NoError(t, err)
	t.Cleanup(func() { sess.Close() })
	m := state.New(sess)
	return &m
}

func press(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCatalogKeys(t *testing.T) {
	m := newModel(t)

	require.Len(t, m.Equipment(), 8)
	first := m.Equipment()[0]

	HandleCatalogKeys(m, press("b"))
	assert.Contains(t, m.Snackbar, first.Name)
	assert.Contains(t, m.Snackbar, "removed from bookmarks")

	HandleCatalogKeys(m, press("+"))
	assert.Len(t, m.Equipment(), 14)

	HandleCatalogKeys(m, press("s"))
	assert.Equal(t, models.SortByID, m.Sort)

	HandleCatalogKeys(m, press("/"))
	assert.Equal(t, constants.StateSearch, m.State)
	HandleSearchState(m, press("esc"))
	assert.Equal(t, constants.StateBrowse, m.State)

	HandleCatalogKeys(m, press("u"))
	assert.Equal(t, session.ViewQueue, m.Session.View())
}

func TestSnackbarExpiry(t *testing.T) {
	m := newModel(t)
	ShowSnackbar(m, "one")
	stale := SnackbarExpiredMsg{Seq: m.SnackbarSeq}
	ShowSnackbar(m, "two")

	HandleSnackbarExpired(m, stale)
	assert.Equal(t, "two", m.Snackbar)
	HandleSnackbarExpired(m, SnackbarExpiredMsg{Seq: m.SnackbarSeq})
	assert.Empty(t, m.Snackbar)
}

func TestRaiseNeedsConfirmationWithoutDetails(t *testing.T) {
	m := newModel(t)
	require.Nil(t, OpenEquipment(m, "0401"))
	require.Equal(t, session.ViewChecklist, m.Session.View())

	HandleChecklistKeys(m, press("x"))
	cmd := HandleChecklistKeys(m, press("w"))
	require.NotNil(t, cmd)

	confirm, ok := cmd().(constants.ConfirmationMsg)
	require.True(t, ok)
	handled, _ := HandleConfirmationMessages(m, confirm)
	require.True(t, handled)
	assert.Equal(t, constants.StateConfirmation, m.State)

	// Proceeding emits the confirmed raise.
	raised, ok := confirm.Action()().(RaiseConfirmedMsg)
	require.True(t, ok)
	assert.Equal(t, "1", raised.ItemID)

	out, err := m.Session.RaiseWorkRequest(t.Context(), raised.ItemID, true)
	require.NoError(t, err)
	settled := WaitSubmission(out.Submission)().(SubmissionSettledMsg)
	require.NoError(t, settled.Err)
	assert.Equal(t, models.RequestQueued, settled.State)

	HandleSubmissionSettled(m, settled)
	assert.Equal(t, "Offline: Request Added to Queue", m.Snackbar)
}

func TestContinueNotReady(t *testing.T) {
	m := newModel(t)
	require.Nil(t, OpenEquipment(m, "0303"))

	HandleChecklistKeys(m, press("n"))
	assert.Equal(t, "Please complete all checklist items", m.Snackbar)
	assert.Equal(t, session.ViewChecklist, m.Session.View())

	for range 4 {
		HandleChecklistKeys(m, press("o"))
		HandleChecklistKeys(m, press("j"))
	}
	HandleChecklistKeys(m, press("n"))
	assert.Equal(t, session.ViewCompletion, m.Session.View())
	assert.Equal(t, constants.StateSignOffForm, m.State)
}

func TestPhotosAndBack(t *testing.T) {
	m := newModel(t)
	require.Nil(t, OpenEquipment(m, "0303"))

	HandleChecklistKeys(m, press("p"))
	HandleChecklistKeys(m, press("p"))
	item, err := m.Session.Checklist().Item("1")
	require.NoError(t, err)
	require.Len(t, item.Photos, 2)
	assert.Equal(t, "photo://0303/1/2", item.Photos[1].URI)

	HandleChecklistKeys(m, press("P"))
	item, err = m.Session.Checklist().Item("1")
	require.NoError(t, err)
	require.Len(t, item.Photos, 1)
	assert.Equal(t, "photo://0303/1/1", item.Photos[0].URI, "the last photo is removed")

	HandleChecklistKeys(m, press("P"))
	HandleChecklistKeys(m, press("P"))
	item, err = m.Session.Checklist().Item("1")
	require.NoError(t, err)
	assert.Empty(t, item.Photos)
	assert.Empty(t, m.Snackbar, "remove is not offered on an item without photos")

	// Out-of-range removals still surface from the workflow itself.
	err = m.Session.Checklist().RemovePhoto("1", 0)
	assert.True(t, errors.Is(err, errors.ErrIndexOutOfRange))

	HandleChecklistKeys(m, press("u"))
	assert.Equal(t, session.ViewQueue, m.Session.View())
	assert.Nil(t, m.Session.Checklist())
}

func TestQueueComplete(t *testing.T) {
	cfg := config.Default()
	cfg.Session.DemoQueue = true
	cfg.Session.Operator = "Sarah Wilson"
	sess, err := session.New(cfg)
	require.NoError(t, err)
	defer sess.Close()
	s := state.New(sess)
	m := &s

	OpenQueue(m)
	HandleQueueKeys(m, press("d"))
	assert.Contains(t, m.Snackbar, "WR-")

	counts, err := sess.Queue().Counts()
	require.NoError(t, err)
	assert.Equal(t, models.QueueCounts{Queued: 1, Sent: 3}, counts)

	HandleQueueKeys(m, press("tab"))
	assert.Equal(t, models.CollectionSent, m.QueueTab)
}

func TestValidateCount(t *testing.T) {
	tests := []struct {
		in      string
		max     int
		wantErr bool
	}{
		{"", 59, false},
		{" 12 ", 59, false},
		{"60", 59, true},
		{"-1", -1, true},
		{"abc", -1, true},
		{"100", -1, false},
	}
	for _, tt := range tests {
		err := validateCount(tt.in, tt.max)
		assert.Equalf(t, tt.wantErr, err != nil, "validateCount(%q, %d)", tt.in, tt.max)
	}
}
