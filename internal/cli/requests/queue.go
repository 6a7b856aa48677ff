package requests

import (
	"fmt"
	"time"

	"github.com/julianstephens/plantcheck/internal/cli"
	"github.com/julianstephens/plantcheck/internal/errors"
	"github.com/julianstephens/plantcheck/internal/i18n"
	"github.com/julianstephens/plantcheck/internal/models"
	"github.com/julianstephens/plantcheck/internal/queue"
)

type QueueCmd struct {
	List     QueueListCmd     `cmd:"" help:"List queued and sent work requests." default:"1"`
	Complete QueueCompleteCmd `cmd:"" help:"Mark a queued work request complete."`
}

type QueueListCmd struct {
	Demo bool `help:"Add the demo work requests first."`
}

func (c *QueueListCmd) Run(ctx *cli.Context) error {
	q := ctx.Session.Queue()
	if c.Demo {
		if err := q.SeedDemo(time.Now()); err != nil {
			return fmt.Errorf("failed to seed demo queue: %w", err)
		}
	}

	queued, err := q.ListQueued()
	if err != nil {
		return err
	}
	sent, err := q.ListSent()
	if err != nil {
		return err
	}

	now := time.Now()
	printSection(ctx, fmt.Sprintf("%s (%d)", ctx.T(i18n.Queued), len(queued)), queued, ctx.T(i18n.NothingQueued), now)
	ctx.Println()
	printSection(ctx, fmt.Sprintf("%s (%d)", ctx.T(i18n.Sent), len(sent)), sent, ctx.T(i18n.NothingSent), now)
	return nil
}

func printSection(ctx *cli.Context, title string, entries []models.WorkRequestEntry, empty string, now time.Time) {
	ctx.Println(title + ":")
	if len(entries) == 0 {
		ctx.Println("  " + empty)
		return
	}
	for _, e := range entries {
		ctx.Printf("  %s  (%s)\n", cli.FormatWorkRequest(e), queue.Age(e, now))
	}
}

type QueueCompleteCmd struct {
	Ref  string `arg:"" help:"Work request reference (WR-YYYY-NNN) or id."`
	Demo bool   `help:"Add the demo work requests first."`
}

func (c *QueueCompleteCmd) Run(ctx *cli.Context) error {
	q := ctx.Session.Queue()
	if c.Demo {
		if err := q.SeedDemo(time.Now()); err != nil {
			return fmt.Errorf("failed to seed demo queue: %w", err)
		}
	}

	queued, err := q.ListQueued()
	if err != nil {
		return err
	}
	for _, e := range queued {
		if e.Reference != c.Ref && e.ID != c.Ref {
			continue
		}
		done, err := ctx.Session.CompleteWorkRequest(e.ID)
		if err != nil {
			return err
		}
		ctx.Println(cli.FormatWorkRequest(done))
		return nil
	}
	return errors.NotFound("queued work request", c.Ref)
}
