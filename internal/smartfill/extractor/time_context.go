package extractor

import (
	"fmt"
	"time"
)

// buildTimeContext renders today, tomorrow and the Monday-Sunday week around now
// in loc.
func buildTimeContext(now time.Time, loc *time.Location) string {
	now = now.In(loc)

	weekday := int(now.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)
	tomorrow := now.AddDate(0, 0, 1)

	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format(dateFormatISO),
		now.Weekday().String(),
		weekStart.Format(dateFormatISO),
		weekEnd.Format(dateFormatISO),
		tomorrow.Format(dateFormatISO),
		loc.String(),
	)
}
