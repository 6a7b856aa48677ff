package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/plantcheck/internal/config"
	"github.com/julianstephens/plantcheck/internal/i18n"
	"github.com/julianstephens/plantcheck/internal/models"
	"github.com/julianstephens/plantcheck/internal/session"
)

type Context struct {
	Config  *config.Config
	Session *session.Session
	Out     io.Writer
}

// NewContext wires a context around an open session. Output goes to stdout.
// Only doctor runs with a nil session.
func NewContext(cfg *config.Config, sess *session.Session) *Context {
	return &Context{Config: cfg, Session: sess, Out: os.Stdout}
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Out, args...)
}

// T translates key into the session language.
func (c *Context) T(key i18n.Key, args ...any) string {
	return i18n.T(c.Session.Language(), key, args...)
}

// FormatEquipment renders one catalog row.
func FormatEquipment(r models.EquipmentRecord) string {
	mark := " "
	if r.Bookmarked {
		mark = "★"
	}
	return fmt.Sprintf("%s %s  (%s)", mark, r.Label(), r.Branch)
}

// FormatWorkRequest renders one queue entry on a single line.
func FormatWorkRequest(e models.WorkRequestEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s | %s  %s  [%s, %s]", e.Reference, e.EquipmentID, e.EquipmentName, e.TaskTitle, e.Status, e.Priority)
	if e.CompletedBy != nil {
		fmt.Fprintf(&b, "  completed by %s", *e.CompletedBy)
	}
	return b.String()
}
