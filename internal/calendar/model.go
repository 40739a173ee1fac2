package calendar

// EventType categorizes calendar entries for display grouping.
type EventType string

const (
	TypeAppointment EventType = "appointment"
	TypeMedication  EventType = "medication"
	TypeExercise    EventType = "exercise"
)

func ValidType(t EventType) bool {
	switch t {
	case TypeAppointment, TypeMedication, TypeExercise:
		return true
	}
	return false
}

// Event is a dated entry on the health calendar. Date is YYYY-MM-DD,
// Time is HH:MM (24-hour).
type Event struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  string    `json:"date"`
	Time  string    `json:"time"`
	Type  EventType `json:"type"`
}

// Alert is a daily reminder the user can tick off. Acknowledged state
// resets when the process restarts.
type Alert struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	Acknowledged bool   `json:"acknowledged"`
}
