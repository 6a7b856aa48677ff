package equipment

import (
	"context"

	"github.com/julianstephens/plantcheck/internal/cli"
	"github.com/julianstephens/plantcheck/internal/i18n"
	"github.com/julianstephens/plantcheck/internal/session"
)

// ScanCmd scans a tag and prints the checklist it opens.
type ScanCmd struct{}

func (c *ScanCmd) Run(ctx *cli.Context) error {
	ctx.Println(ctx.T(i18n.Scanning))
	res, err := ctx.Session.Dispatch(context.Background(), session.Scan{})
	if err != nil {
		return err
	}

	ctx.Println(res.Equipment.Label())
	wf := ctx.Session.Checklist()
	evaluated, total := wf.Progress()
	ctx.Printf("%s: %d/%d %s\n", ctx.T(i18n.PreStartCheckTitle), evaluated, total, ctx.T(i18n.ItemsCompleted))
	for _, it := range wf.Items() {
		ctx.Printf("  %s. %s\n", it.ID, i18n.ItemTitle(res.Language, it.Title))
	}

	_, err = ctx.Session.Dispatch(context.Background(), session.Back{})
	return err
}
