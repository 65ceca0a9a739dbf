package format

import (
	"fmt"
	"math"
	"time"
)

const day = 24 * time.Hour

func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// DaysSince counts started days between t and now in either direction.
func DaysSince(t, now time.Time) int {
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(float64(diff) / float64(day)))
}

func TimeAgo(t, now time.Time) string {
	days := DaysSince(t, now)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	case days < 365:
		return fmt.Sprintf("%d months ago", days/30)
	default:
		return fmt.Sprintf("%d years ago", days/365)
	}
}
