package equipment

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/julianstephens/plantcheck/internal/checklist"
	"github.com/julianstephens/plantcheck/internal/cli"
	"github.com/julianstephens/plantcheck/internal/i18n"
	"github.com/julianstephens/plantcheck/internal/models"
	"github.com/julianstephens/plantcheck/internal/session"
)

// InspectCmd runs a whole pre-start check without the TUI.
type InspectCmd struct {
	ID        string            `arg:"" help:"Equipment id."`
	OK        []string          `help:"Item ids that passed." placeholder:"ID"`
	Defect    []string          `help:"Item ids with a defect." placeholder:"ID"`
	Comment   map[string]string `help:"Comment for an item." placeholder:"ID=TEXT"`
	Photo     []string          `help:"Photo reference for an item." placeholder:"ID=URI"`
	Raise     []string          `help:"Item ids to raise a work request for." placeholder:"ID"`
	Offline   bool              `help:"Submit work requests while offline (they are queued)."`
	Force     bool              `help:"Proceed when comments or photos are missing."`
	Hours     string            `help:"Hours spent."`
	Minutes   string            `help:"Minutes spent."`
	Notes     string            `help:"Completion notes."`
	Signature string            `help:"Sign-off name (defaults to the configured operator)."`
}

func (c *InspectCmd) Run(ctx *cli.Context) error {
	bg := context.Background()
	sess := ctx.Session

	if _, err := sess.Dispatch(bg, session.OpenEquipment{ID: c.ID}); err != nil {
		return err
	}
	if c.Offline && sess.Mode() != models.Offline {
		if _, err := sess.Dispatch(bg, session.ToggleConnectivity{}); err != nil {
			return err
		}
	}
	wf := sess.Checklist()
	ctx.Println(wf.Equipment().Label())

	if err := c.fill(wf); err != nil {
		return err
	}

	for _, id := range c.Raise {
		out, err := sess.RaiseWorkRequest(bg, id, c.Force)
		if err != nil {
			return err
		}
		if out.ConfirmationRequired {
			return fmt.Errorf("item %s: %s (add --comment/--photo or pass --force)", id, ctx.T(i18n.IncompleteWR))
		}
		ctx.Printf("  %s...\n", ctx.T(i18n.RaisingWorkRequest))
		entry, err := out.Submission.Wait(bg)
		if err != nil {
			return fmt.Errorf("item %s: %s: %w", id, ctx.T(i18n.WorkRequestFailed), err)
		}
		if out.Submission.State() == models.RequestQueued {
			ctx.Printf("  %s: %s\n", ctx.T(i18n.OfflineRequestAdd), entry.Reference)
		} else {
			ctx.Printf("  %s: %s\n", ctx.T(i18n.WorkRequestRaised), entry.Reference)
		}
	}

	res, err := sess.Dispatch(bg, session.Continue{Acknowledged: c.Force})
	if err != nil {
		return err
	}
	switch res.Continue {
	case checklist.NotReady:
		var pending []string
		for _, it := range wf.Items() {
			if it.Status == models.StatusPending {
				pending = append(pending, it.ID)
			}
		}
		return fmt.Errorf("%s (pending: %s)", ctx.T(i18n.PleaseCompleteAll), strings.Join(pending, ", "))
	case checklist.ConfirmationRequired:
		return fmt.Errorf("%s (pass --force to continue)", ctx.T(i18n.IncompleteDefects))
	}

	res, err = sess.Dispatch(bg, session.FinishCompletion{SignOff: models.SignOff{
		Hours:     c.Hours,
		Minutes:   c.Minutes,
		Notes:     c.Notes,
		Signature: c.Signature,
	}})
	if err != nil {
		return err
	}

	rec := res.Record
	ctx.Println(ctx.T(i18n.PreStartSaved, rec.EquipmentName))
	ctx.Printf("  defects: %d, time spent: %s, signed: %s\n", rec.Defects, rec.TimeSpent, rec.Signature)
	counts, err := sess.Queue().Counts()
	if err != nil {
		return err
	}
	ctx.Printf("  %s: %d, %s: %d\n", ctx.T(i18n.Queued), counts.Queued, ctx.T(i18n.Sent), counts.Sent)
	return nil
}

// fill applies statuses, comments and photos from the flags.
func (c *InspectCmd) fill(wf *checklist.Workflow) error {
	for _, id := range c.OK {
		if err := wf.SetStatus(id, models.StatusOK); err != nil {
			return err
		}
	}
	for _, id := range c.Defect {
		if err := wf.SetStatus(id, models.StatusDefect); err != nil {
			return err
		}
	}
	for _, id := range slices.Sorted(maps.Keys(c.Comment)) {
		if err := wf.SetComment(id, c.Comment[id]); err != nil {
			return err
		}
	}
	for _, p := range c.Photo {
		id, uri, ok := strings.Cut(p, "=")
		if !ok || uri == "" {
			return fmt.Errorf("invalid --photo %q (expected ID=URI)", p)
		}
		if err := wf.AddPhoto(id, models.PhotoRef{URI: uri}); err != nil {
			return err
		}
	}
	return nil
}
