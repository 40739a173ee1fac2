package scheduling

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateTime is the structured result of reading a free-form scheduling
// phrase such as "tomorrow at 2:30pm".
type DateTime struct {
	Date string // YYYY-MM-DD
	Time string // HH:MM, 24-hour
}

var (
	numericDatePattern = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})`)
	monthDayPattern    = regexp.MustCompile(`(?i)(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\s+(\d{1,2})(?:\s+(\d{4}))?`)
	clockPattern       = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)
)

var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// ParseDateTime extracts a date and a clock time from input. Date rules are
// tried in order and the first match wins: "tomorrow", "today", a numeric
// M/D/YYYY or M-D-YYYY, then a month name or abbreviation with a day and an
// optional year (defaulting to the reference year). Both a date and a time
// must be found, otherwise ok is false and the caller re-prompts.
func ParseDateTime(input string, now time.Time) (DateTime, bool) {
	lower := strings.ToLower(input)

	var date string
	switch {
	case strings.Contains(lower, "tomorrow"):
		date = now.AddDate(0, 0, 1).Format("2006-01-02")
	case strings.Contains(lower, "today"):
		date = now.Format("2006-01-02")
	default:
		if m := numericDatePattern.FindStringSubmatch(input); m != nil {
			month, _ := strconv.Atoi(m[1])
			day, _ := strconv.Atoi(m[2])
			year, _ := strconv.Atoi(m[3])
			date = fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		} else if m := monthDayPattern.FindStringSubmatch(input); m != nil {
			month := monthsByName[strings.ToLower(m[1])]
			day, _ := strconv.Atoi(m[2])
			year := now.Year()
			if m[3] != "" {
				year, _ = strconv.Atoi(m[3])
			}
			date = fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		}
	}

	clock := parseClock(input)
	if date == "" || clock == "" {
		return DateTime{}, false
	}
	return DateTime{Date: date, Time: clock}, true
}

// parseClock finds the first token that reads as a clock time and converts
// it to 24-hour form. A bare number does not count: the token must carry
// minutes or an am/pm suffix, otherwise day numbers in phrases like
// "January 15" would be taken for hours.
func parseClock(input string) string {
	for _, m := range clockPattern.FindAllStringSubmatch(input, -1) {
		minutes, meridiem := m[2], strings.ToLower(m[3])
		if minutes == "" && meridiem == "" {
			continue
		}
		hour, _ := strconv.Atoi(m[1])
		if hour > 23 {
			continue
		}
		if minutes == "" {
			minutes = "00"
		}
		if meridiem == "pm" && hour != 12 {
			hour += 12
		} else if meridiem == "am" && hour == 12 {
			hour = 0
		}
		return fmt.Sprintf("%02d:%s", hour, minutes)
	}
	return ""
}
