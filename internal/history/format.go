package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatTable renders records the way "sluc history" prints them: one
// line per run, most recent first, durations rendered in human units.
func FormatTable(records []Record) string {
	var b strings.Builder
	for _, r := range records {
		status := "ok"
		if !r.Success {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "%-4s %-14s %-8s  %s\n",
			status,
			humanize.Time(r.RanAt),
			humanizeDuration(r.Duration),
			r.FilePath,
		)
	}
	return b.String()
}

func humanizeDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return humanize.FtoaWithDigits(d.Seconds(), 2) + "s"
}
