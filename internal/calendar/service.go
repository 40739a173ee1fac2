package calendar

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service keeps the calendar events and today's alerts in memory.
type Service struct {
	logger *zap.Logger
	now    func() time.Time

	mu     sync.RWMutex
	events []Event
	alerts []Alert
}

func NewService(logger *zap.Logger) *Service {
	s := &Service{logger: logger, now: time.Now}
	s.seed()
	return s
}

func (s *Service) seed() {
	today := s.now()
	plusDays := func(d int) string {
		return today.AddDate(0, 0, d).Format("2006-01-02")
	}

	s.events = []Event{
		{ID: "1", Title: "Cardiology Appointment", Date: plusDays(3), Time: "10:00", Type: TypeAppointment},
		{ID: "3", Title: "Morning Walk", Date: plusDays(0), Time: "08:00", Type: TypeExercise},
		{ID: "2", Title: "Take Athorvastatin", Date: plusDays(0), Time: "12:00", Type: TypeMedication},
		{ID: "4", Title: "Blood Pressure Check", Date: plusDays(1), Time: "09:00", Type: TypeMedication},
		{ID: "5", Title: "Evening Yoga", Date: plusDays(2), Time: "18:00", Type: TypeExercise},
	}
	s.alerts = []Alert{
		{ID: "athorvastatin", Text: "Take Athorvastatin (blue pill) at 12pm"},
		{ID: "lisinopril", Text: "Take Lisinopril (white capsule) after lunch"},
		{ID: "cardiologist", Text: "Appointment with Cardiologist, tomorrow 10am"},
	}
}

// Events returns all entries, ordered by date then time.
func (s *Service) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date+out[i].Time < out[j].Date+out[j].Time
	})
	return out
}

// EventsOn returns the entries for one day, ordered by time.
func (s *Service) EventsOn(date string) []Event {
	all := s.Events()
	out := make([]Event, 0, 2)
	for _, e := range all {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// Add stores a new event. Missing type defaults to appointment.
func (s *Service) Add(e Event) (Event, error) {
	if e.Title == "" {
		return Event{}, fmt.Errorf("calendar: event title is required")
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return Event{}, fmt.Errorf("calendar: invalid date %q", e.Date)
	}
	if _, err := time.Parse("15:04", e.Time); err != nil {
		return Event{}, fmt.Errorf("calendar: invalid time %q", e.Time)
	}
	if e.Type == "" {
		e.Type = TypeAppointment
	}
	if !ValidType(e.Type) {
		return Event{}, fmt.Errorf("calendar: unknown event type %q", e.Type)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()

	s.logger.Info("calendar event added",
		zap.String("title", e.Title),
		zap.String("date", e.Date),
		zap.String("type", string(e.Type)),
	)
	return e, nil
}

// Alerts returns today's reminders with their acknowledged state.
func (s *Service) Alerts() []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// ToggleAlert flips the acknowledged flag for one reminder.
func (s *Service) ToggleAlert(id string) (Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts[i].Acknowledged = !s.alerts[i].Acknowledged
			return s.alerts[i], nil
		}
	}
	return Alert{}, fmt.Errorf("calendar: unknown alert %q", id)
}
