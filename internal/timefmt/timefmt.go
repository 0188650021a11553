// Package timefmt turns message timestamps into short relative labels.
package timefmt

import (
	"fmt"
	"time"

	"github.com/xonecas/chatbridge/internal/constants"
)

// InvalidLabel is shown for a message whose timestamp could not be parsed.
const InvalidLabel = "invalid date"

// Formatter renders relative labels; DateLayout is used past yesterday.
type Formatter struct {
	DateLayout string
}

// RelativeLabel formats ts relative to now using the default date layout.
func RelativeLabel(ts, now time.Time) string {
	return Formatter{}.Label(ts, now)
}

// Label buckets ts by its age relative to now. Calendar comparisons happen in
// now's location, so a message from 23:59 reads "Yesterday" one minute later.
func (f Formatter) Label(ts, now time.Time) string {
	if ts.IsZero() {
		return InvalidLabel
	}

	age := now.Sub(ts)
	switch {
	case age < 5*time.Second:
		// Also covers clock skew that puts ts in the future.
		return "an instant"
	case age < time.Minute:
		return fmt.Sprintf("%d seconds ago", int(age/time.Second))
	case age < time.Hour:
		n := int(age / time.Minute)
		if n == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", n)
	}

	local := ts.In(now.Location())
	clock := local.Format("15:04")
	if sameDay(local, now) {
		return "Today at " + clock
	}
	y, m, d := now.Date()
	if sameDay(local, time.Date(y, m, d-1, 12, 0, 0, 0, now.Location())) {
		return "Yesterday at " + clock
	}

	layout := f.DateLayout
	if layout == "" {
		layout = constants.DefaultDateLayout
	}
	return local.Format(layout)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
