package scheduling

import (
	"testing"
	"time"
)

func TestParseDateTime(t *testing.T) {
	// Friday, January 10th.
	now := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		input string
		date  string
		clock string
	}{
		{"tomorrow at 2:30pm", "2025-01-11", "14:30"},
		{"Tomorrow at 2:30 PM", "2025-01-11", "14:30"},
		{"today at 10am", "2025-01-10", "10:00"},
		{"January 15 at 10am", "2025-01-15", "10:00"},
		{"jan 15 at 10:30", "2025-01-15", "10:30"},
		{"March 3 2026 at 9:15am", "2026-03-03", "09:15"},
		{"3/20/2025 at 4pm", "2025-03-20", "16:00"},
		{"12-5-2025 at 4:45", "2025-12-05", "04:45"},
		{"tomorrow at 12pm", "2025-01-11", "12:00"},
		{"tomorrow at 12am", "2025-01-11", "00:00"},
		{"see you tomorrow around 8:00", "2025-01-11", "08:00"},
	}
	for _, tc := range cases {
		got, ok := ParseDateTime(tc.input, now)
		if !ok {
			t.Errorf("ParseDateTime(%q): expected a match", tc.input)
			continue
		}
		if got.Date != tc.date || got.Time != tc.clock {
			t.Errorf("ParseDateTime(%q) = %s %s, want %s %s", tc.input, got.Date, got.Time, tc.date, tc.clock)
		}
	}
}

func TestParseDateTimeRejects(t *testing.T) {
	now := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)

	inputs := []string{
		"hello there",
		"January 15",    // date without a clock time
		"tomorrow",      // same
		"at 5pm",        // clock time without a date
		"sometime soon", // neither
	}
	for _, input := range inputs {
		if got, ok := ParseDateTime(input, now); ok {
			t.Errorf("ParseDateTime(%q) = %v, want no match", input, got)
		}
	}
}

func TestParseClockSkipsBareNumbers(t *testing.T) {
	// The day number in "January 15" must not be read as 15:00.
	now := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)
	got, ok := ParseDateTime("January 15 at 3pm", now)
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Time != "15:00" {
		t.Errorf("Time = %s, want 15:00", got.Time)
	}
}
