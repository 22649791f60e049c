package timex

import (
	"fmt"
	"time"
)

// FormatTimeAgo buckets the delta between now and t into a short relative
// label: under a minute is "hace instantes", then whole minutes, hours and
// days. There is no finer granularity and no locale handling; the service
// ships in one language.
func FormatTimeAgo(t time.Time, now time.Time) string {
	seconds := int(now.Sub(t).Seconds())

	if seconds < 60 {
		return "hace instantes"
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("hace %d min", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("hace %d h", hours)
	}
	return fmt.Sprintf("hace %d d", hours/24)
}
