package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/plantcheck/internal/constants"
	"github.com/julianstephens/plantcheck/internal/i18n"
	"github.com/julianstephens/plantcheck/internal/models"
	"github.com/julianstephens/plantcheck/internal/tui/state"
)

// NewCommentForm creates a new form for item comments
func NewCommentForm(m *state.Model, fm *state.CommentFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(m.T(i18n.AddComments)).
				Value(&fm.Comments),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewSignOffForm creates the completion form. Every field is optional.
func NewSignOffForm(m *state.Model, fm *state.SignOffFormModel) *huh.Form {
	signatures := []huh.Option[string]{huh.NewOption("-", "")}
	if op := m.Session.Operator(); op != "" {
		signatures = append(signatures, huh.NewOption(op, op))
	}
	for _, s := range constants.SavedSignatures {
		if s != m.Session.Operator() {
			signatures = append(signatures, huh.NewOption(s, s))
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(m.T(i18n.Hours)).
				Value(&fm.Hours).
				Validate(func(s string) error {
					return validateCount(s, -1)
				}),
			huh.NewInput().
				Title(m.T(i18n.Minutes)).
				Value(&fm.Minutes).
				Validate(func(s string) error {
					return validateCount(s, 59)
				}),
			huh.NewText().
				Title(m.T(i18n.Notes)).
				Value(&fm.Notes),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(m.T(i18n.Signature)).
				Options(signatures...).
				Value(&fm.Saved),
			huh.NewInput().
				Title(m.T(i18n.Signature)).
				Description("Type a name to sign instead").
				Value(&fm.Signature),
		),
	).WithTheme(huh.ThemeDracula())
}

// validateCount accepts a blank field or a whole number up to max (max < 0 means unbounded).
func validateCount(s string, max int) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a whole number")
	}
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	if max >= 0 && n > max {
		return fmt.Errorf("must be at most %d", max)
	}
	return nil
}

// NewLanguageForm creates the language selector
func NewLanguageForm(m *state.Model, fm *state.LanguageFormModel) *huh.Form {
	opts := make([]huh.Option[string], len(i18n.Languages))
	for i, l := range i18n.Languages {
		opts[i] = huh.NewOption(fmt.Sprintf("%s (%s)", l.NativeName, l.Name), l.Code)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(m.T(i18n.Language)).
				Options(opts...).
				Value(&fm.Code),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewMenuForm creates the hamburger menu
func NewMenuForm(m *state.Model, fm *state.MenuFormModel) *huh.Form {
	mode := m.T(i18n.Offline)
	if m.Session.Mode() == models.Offline {
		mode = m.T(i18n.Online)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[state.MenuAction]().
				Title(m.T(i18n.Menu)).
				Options(
					huh.NewOption(m.T(i18n.QueueTitle), state.MenuQueue),
					huh.NewOption(m.T(i18n.Language), state.MenuLanguage),
					huh.NewOption("→ "+mode, state.MenuConnectivity),
					huh.NewOption("Quit", state.MenuQuit),
				).
				Value(&fm.Action),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewConfirmationForm creates a yes/no prompt
func NewConfirmationForm(m *state.Model, fm *state.ConfirmationFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fm.Title).
				Description(fm.Message).
				Affirmative(m.T(i18n.Proceed)).
				Negative(m.T(i18n.GoBack)).
				Value(&fm.Confirmed),
		),
	).WithTheme(huh.ThemeDracula())
}
