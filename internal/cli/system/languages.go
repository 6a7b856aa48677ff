package system

import (
	"github.com/julianstephens/plantcheck/internal/cli"
	"github.com/julianstephens/plantcheck/internal/i18n"
)

type LanguagesCmd struct {
	Match string `help:"Show which language a code or Accept-Language value resolves to."`
}

func (c *LanguagesCmd) Run(ctx *cli.Context) error {
	if c.Match != "" {
		code := i18n.Match(c.Match)
		l, _ := i18n.Lookup(code)
		ctx.Printf("%s -> %s (%s)\n", c.Match, l.Code, l.Name)
		return nil
	}

	current := ctx.Session.Language()
	for _, l := range i18n.Languages {
		mark := " "
		if l.Code == current {
			mark = "*"
		}
		ctx.Printf("%s %-3s %-11s %s\n", mark, l.Code, l.Name, l.NativeName)
	}
	return nil
}
