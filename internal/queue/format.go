package queue

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/plantcheck/internal/models"
)

// Age renders how long ago the entry was created, e.g. "3 minutes ago".
func Age(e models.WorkRequestEntry, now time.Time) string {
	return humanize.RelTime(e.CreatedAt, now, "ago", "from now")
}

// CompletedAge renders how long ago the entry was completed, or "" when it
// has not been.
func CompletedAge(e models.WorkRequestEntry, now time.Time) string {
	if e.CompletedAt == nil {
		return ""
	}
	return humanize.RelTime(*e.CompletedAt, now, "ago", "from now")
}
