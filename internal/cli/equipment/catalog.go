package equipment

import (
	"fmt"

	"github.com/julianstephens/plantcheck/internal/cli"
	"github.com/julianstephens/plantcheck/internal/i18n"
	"github.com/julianstephens/plantcheck/internal/models"
)

type CatalogCmd struct {
	Filter string `short:"f" help:"Case-insensitive substring of id, name or branch."`
	Sort   string `short:"s" help:"Sort key (name|id|branch)." enum:"name,id,branch" default:"name"`
	Limit  int    `short:"n" help:"Rows to show when unfiltered (0 uses the configured page size)."`
	All    bool   `short:"a" help:"Show every row."`
}

func (c *CatalogCmd) Run(ctx *cli.Context) error {
	limit := c.Limit
	if limit <= 0 {
		limit = ctx.Session.Pager().Limit()
	}
	if c.All {
		limit = ctx.Session.Catalog().Len()
	}

	rows := ctx.Session.Catalog().List(c.Filter, models.ParseSortKey(c.Sort), limit)
	if len(rows) == 0 {
		ctx.Println(ctx.T(i18n.NoEquipment))
		return nil
	}
	for _, r := range rows {
		ctx.Println(cli.FormatEquipment(r))
	}
	if c.Filter == "" && len(rows) < ctx.Session.Catalog().Len() {
		ctx.Printf("\n%d of %d shown (--all for everything)\n", len(rows), ctx.Session.Catalog().Len())
	}
	return nil
}

type BookmarkCmd struct {
	IDs []string `arg:"" help:"Equipment ids to toggle."`
}

func (c *BookmarkCmd) Run(ctx *cli.Context) error {
	for _, id := range c.IDs {
		change, err := ctx.Session.Catalog().ToggleBookmark(id)
		if err != nil {
			return fmt.Errorf("failed to toggle bookmark: %w", err)
		}
		if change.Bookmarked {
			ctx.Println(ctx.T(i18n.BookmarkAdded, change.Name))
		} else {
			ctx.Println(ctx.T(i18n.BookmarkRemoved, change.Name))
		}
	}
	return nil
}
