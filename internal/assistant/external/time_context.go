package external

import (
	"fmt"
	"time"
)

const timeContextTemplate = `CURRENT TIME (UTC): %s
- Today: %s (%s)
- Tomorrow: %s
- This week: %s to %s (Monday to Sunday)
Resolve relative dates against these values.`

// buildTimeContext describes "now" for the model so relative dates resolve consistently.
func buildTimeContext(now time.Time) string {
	now = now.UTC()

	weekday := int(now.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)

	return fmt.Sprintf(timeContextTemplate,
		now.Format(time.RFC3339),
		now.Format(time.DateOnly),
		now.Weekday(),
		now.AddDate(0, 0, 1).Format(time.DateOnly),
		weekStart.Format(time.DateOnly),
		weekEnd.Format(time.DateOnly),
	)
}
