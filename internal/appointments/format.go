package appointments

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatDate renders an ISO date the way the appointment list shows it:
// "this Tuesday, June 25 2025" within the coming week, "on June 25 2025"
// otherwise.
func FormatDate(dateStr string, today time.Time) string {
	date, err := time.ParseInLocation("2006-01-02", dateStr, today.Location())
	if err != nil {
		return dateStr
	}

	daysDiff := int(math.Ceil(date.Sub(today).Hours() / 24))
	long := fmt.Sprintf("%s %d %d", date.Month(), date.Day(), date.Year())
	if daysDiff > 0 && daysDiff <= 7 {
		return fmt.Sprintf("this %s, %s", date.Weekday(), long)
	}
	return "on " + long
}

// FormatClock converts 24-hour "HH:MM" to the 12-hour display form.
func FormatClock(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return hhmm
	}
	hour24, err := strconv.Atoi(parts[0])
	if err != nil {
		return hhmm
	}

	hour12 := hour24
	switch {
	case hour24 == 0:
		hour12 = 12
	case hour24 > 12:
		hour12 = hour24 - 12
	}
	meridiem := "AM"
	if hour24 >= 12 {
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%s %s", hour12, parts[1], meridiem)
}
