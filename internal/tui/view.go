package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/plantcheck/internal/constants"
	"github.com/julianstephens/plantcheck/internal/i18n"
	"github.com/julianstephens/plantcheck/internal/models"
	"github.com/julianstephens/plantcheck/internal/queue"
	"github.com/julianstephens/plantcheck/internal/session"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var content string
	switch m.State {
	case constants.StateCommentForm, constants.StateSignOffForm, constants.StateLanguageForm,
		constants.StateMenuForm, constants.StateConfirmation:
		content = m.Form.View()
	default:
		switch m.Session.View() {
		case session.ViewChecklist:
			content = m.viewChecklist()
		case session.ViewCompletion:
			content = m.viewCompletion()
		case session.ViewQueue:
			content = m.viewQueue()
		default:
			content = m.viewCatalog()
		}
	}

	var snackbar string
	if m.Snackbar != "" {
		snackbar = snackbarStyle.Render(m.Snackbar)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		docStyle.Render(content),
		snackbar,
		m.Help.View(m),
	)
}

func (m Model) viewHeader() string {
	title := titleStyle.Render(constants.AppName)
	if eq, ok := m.Session.Selected(); ok {
		title = titleStyle.Render(eq.Label())
	}

	badge := onlineStyle.Render(m.T(i18n.Online))
	if m.Session.Mode() == models.Offline {
		badge = offlineStyle.Render(m.T(i18n.Offline))
	}
	if counts, err := m.Session.Queue().Counts(); err == nil && counts.Queued > 0 {
		badge += warningStyle.Render(fmt.Sprintf(" %d %s", counts.Queued, strings.ToLower(m.T(i18n.Queued))))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", badge)
}

func (m Model) sortLabel() string {
	switch m.Sort {
	case models.SortByID:
		return m.T(i18n.SortByID)
	case models.SortByBranch:
		return m.T(i18n.SortByBranch)
	default:
		return m.T(i18n.SortByName)
	}
}

func (m Model) viewCatalog() string {
	var b strings.Builder
	b.WriteString(m.Search.View())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s %s", m.T(i18n.SortBy), m.sortLabel())))
	b.WriteString("\n\n")

	if m.Scanning {
		b.WriteString(m.Spinner.View() + " " + m.T(i18n.Scanning))
		return b.String()
	}

	rows := m.Equipment()
	if len(rows) == 0 {
		b.WriteString(mutedStyle.Render(m.T(i18n.NoEquipment)))
		return b.String()
	}
	for i, r := range rows {
		mark := "  "
		if r.Bookmarked {
			mark = "★ "
		}
		line := fmt.Sprintf("%s%s  %s", mark, r.Label(), mutedStyle.Render(r.Branch))
		if i == m.Cursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	if m.Search.Value() == "" && m.Session.Pager().HasMore() {
		b.WriteString("\n" + mutedStyle.Render("+ "+m.T(i18n.LoadMore)))
	}
	return b.String()
}

func (m Model) statusLabel(s models.ItemStatus) string {
	switch s {
	case models.StatusOK:
		return okStyle.Render("✓ " + m.T(i18n.StatusOK))
	case models.StatusDefect:
		return dangerStyle.Render("✗ " + m.T(i18n.StatusDefect))
	default:
		return mutedStyle.Render("○ " + m.T(i18n.StatusPending))
	}
}

func (m Model) requestLabel(s models.WorkRequestState) string {
	switch s {
	case models.RequestSubmitting:
		return m.Spinner.View() + " " + m.T(i18n.RaisingWorkRequest)
	case models.RequestSent:
		return okStyle.Render(m.T(i18n.WorkRequestRaised))
	case models.RequestQueued:
		return warningStyle.Render(m.T(i18n.OfflineRequestAdd))
	case models.RequestFailed:
		return dangerStyle.Render(m.T(i18n.WorkRequestFailed))
	default:
		return ""
	}
}

func (m Model) viewChecklist() string {
	wf := m.Session.Checklist()
	if wf == nil {
		return ""
	}
	lang := m.Session.Language()
	evaluated, total := wf.Progress()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s · %d/%d %s\n\n", m.T(i18n.PreStartCheckTitle), evaluated, total, m.T(i18n.ItemsCompleted)))

	for i, it := range wf.Items() {
		cursor := "  "
		if i == m.Cursor {
			cursor = selectedStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, i18n.ItemTitle(lang, it.Title), m.statusLabel(it.Status)))
		if !it.Expanded {
			continue
		}
		if it.Comments != "" {
			b.WriteString(mutedStyle.Render("    "+it.Comments) + "\n")
		} else {
			b.WriteString(mutedStyle.Render("    "+m.T(i18n.AddComments)) + "\n")
		}
		b.WriteString(mutedStyle.Render(fmt.Sprintf("    %s: %d", m.T(i18n.Photos), len(it.Photos))) + "\n")
		if label := m.requestLabel(it.WorkRequestState); label != "" {
			b.WriteString("    " + label + "\n")
		} else {
			b.WriteString(mutedStyle.Render("    [w] "+m.T(i18n.RaiseWorkRequest)) + "\n")
		}
	}

	if !wf.CanContinue() {
		b.WriteString("\n" + mutedStyle.Render(m.T(i18n.PleaseCompleteAll)))
	} else {
		b.WriteString("\n" + selectedStyle.Render("[n] "+m.T(i18n.Continue)))
	}
	return b.String()
}

func (m Model) viewCompletion() string {
	eq, _ := m.Session.Selected()
	lines := []string{
		titleStyle.Render(m.T(i18n.CompletionTitle)),
		eq.Label(),
		"",
		"[enter] " + m.T(i18n.Signature),
		"[esc] " + m.T(i18n.Back),
		"",
		titleStyle.Render(m.T(i18n.TaskHistory)),
	}

	history, err := m.Session.History(eq.ID)
	switch {
	case err != nil:
		lines = append(lines, dangerStyle.Render(err.Error()))
	case len(history) == 0:
		lines = append(lines, mutedStyle.Render(m.T(i18n.NoHistory)))
	default:
		for _, rec := range history {
			lines = append(lines, mutedStyle.Render(fmt.Sprintf("%s · %s · %d %s · %s",
				humanize.RelTime(rec.CompletedAt, m.Now(), "ago", "from now"),
				rec.Signature, rec.Defects, strings.ToLower(m.T(i18n.StatusDefect)), rec.TimeSpent)))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewQueue() string {
	counts, _ := m.Session.Queue().Counts()
	tabs := []struct {
		c     models.Collection
		label string
		n     int
	}{
		{models.CollectionQueued, m.T(i18n.Queued), counts.Queued},
		{models.CollectionSent, m.T(i18n.Sent), counts.Sent},
	}
	var rendered []string
	for _, t := range tabs {
		label := fmt.Sprintf("%s (%d)", t.label, t.n)
		if t.c == m.QueueTab {
			rendered = append(rendered, activeTabStyle.Render(label))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(label))
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.T(i18n.QueueTitle)) + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n\n")

	entries, err := m.QueueEntries()
	if err != nil {
		b.WriteString(dangerStyle.Render(err.Error()))
		return b.String()
	}
	if len(entries) == 0 {
		empty := m.T(i18n.NothingQueued)
		if m.QueueTab == models.CollectionSent {
			empty = m.T(i18n.NothingSent)
		}
		b.WriteString(mutedStyle.Render(empty))
		return b.String()
	}

	now := m.Now()
	for i, e := range entries {
		cursor := "  "
		if i == m.Cursor {
			cursor = selectedStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s | %s\n", cursor, e.Reference, e.EquipmentID, e.EquipmentName))
		detail := fmt.Sprintf("    %s · %s: %s · %s", e.TaskTitle, m.T(i18n.PriorityLabel), e.Priority, queue.Age(e, now))
		if e.CompletedBy != nil {
			detail += fmt.Sprintf(" · %s %s %s", m.T(i18n.CompletedBy), *e.CompletedBy, queue.CompletedAge(e, now))
		}
		b.WriteString(mutedStyle.Render(detail) + "\n")
	}
	if m.QueueTab == models.CollectionQueued {
		b.WriteString("\n" + mutedStyle.Render("[d] "+m.T(i18n.MarkComplete)))
	}
	return b.String()
}
