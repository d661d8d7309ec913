package candidate

import (
	"fmt"
	"time"
)

// FormatRelative renders a timestamp as a Russian relative-time label,
// falling back to DD.MM.YY for anything older than five weeks.
func FormatRelative(ts time.Time, now time.Time) string {
	diff := now.Sub(ts)
	if diff < 0 {
		diff = 0
	}

	sec := int(diff.Seconds())
	min := sec / 60
	hour := min / 60
	day := hour / 24
	week := day / 7

	switch {
	case sec < 45:
		return "только что"
	case min < 2:
		return "минуту назад"
	case min < 5:
		return "несколько минут назад"
	case min < 60:
		return fmt.Sprintf("%d мин назад", min)
	case hour < 2:
		return "час назад"
	case day < 1:
		return fmt.Sprintf("%d ч назад", hour)
	case day == 1:
		return "вчера"
	case day < 7:
		return fmt.Sprintf("%d дн назад", day)
	case week == 1:
		return "неделю назад"
	case week < 5:
		return fmt.Sprintf("%d нед назад", week)
	}
	return ts.Format("02.01.06")
}
