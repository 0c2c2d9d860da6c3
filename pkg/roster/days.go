package roster

import (
	"time"

	"github.com/shiftflow/roster-api-go/pkg/models"
)

const dateLayout = "2006-01-02"

// MaxDays caps the generated range to bound grid rendering and the
// size of the assignment set.
const MaxDays = 365

// GenerateDays expands an inclusive start/end date pair into ordered day
// descriptors. Invalid or inverted ranges yield an empty slice rather than
// an error; callers must treat empty ranges gracefully.
func GenerateDays(startDate, endDate string) []models.Day {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil
	}
	if start.After(end) {
		return nil
	}

	var days []models.Day
	for d := start; !d.After(end) && len(days) < MaxDays; d = d.AddDate(0, 0, 1) {
		weekday := d.Weekday()
		days = append(days, models.Day{
			Date:    d.Format(dateLayout),
			DayName: weekday.String()[:3],
			IsBusy:  weekday == time.Friday || weekday == time.Saturday,
		})
	}
	return days
}
