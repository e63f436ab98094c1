package utils

import (
	"fmt"
	"time"
)

// FormatAge returns how long before now t was, in the largest whole unit,
// e.g. "3d ago".
func FormatAge(t, now time.Time) string {
	if t.IsZero() {
		return "N/A"
	}

	const (
		day   = 24 * time.Hour
		week  = 7 * day
		month = 30 * day
		year  = 365 * day
	)

	since := now.Sub(t)

	// Clock skew between writer and reader
	if since < 0 {
		return "0s ago"
	}

	switch {
	case since < time.Minute:
		return fmt.Sprintf("%ds ago", int(since/time.Second))
	case since < time.Hour:
		return fmt.Sprintf("%dm ago", int(since/time.Minute))
	case since < day:
		return fmt.Sprintf("%dh ago", int(since/time.Hour))
	case since < week:
		return fmt.Sprintf("%dd ago", int(since/day))
	case since < month:
		return fmt.Sprintf("%dw ago", int(since/week))
	case since < year:
		return fmt.Sprintf("%dmo ago", int(since/month))
	}
	return fmt.Sprintf("%dy ago", int(since/year))
}
