package scheduling

import (
	"time"

	"github.com/google/uuid"

	"cardio-twin-agent/internal/chat"
)

// Step is the scripted dialogue's position. The conversation always moves
// forward through the steps below; a rejected confirmation sends it back to
// the step being confirmed.
type Step string

const (
	StepStart              Step = "start"
	StepAskingDateTime     Step = "asking_datetime"
	StepConfirmingDateTime Step = "confirming_datetime"
	StepAskingLocation     Step = "asking_location"
	StepConfirmingLocation Step = "confirming_location"
	StepCompleted          Step = "completed"
	StepCancelled          Step = "cancelled"
)

// Draft accumulates appointment fields while the dialogue is in flight.
// Fields stay empty until the user supplies them.
type Draft struct {
	Purpose  string `json:"purpose,omitempty"`
	Doctor   string `json:"doctor,omitempty"`
	Date     string `json:"date,omitempty"` // YYYY-MM-DD
	Time     string `json:"time,omitempty"` // HH:MM, 24-hour
	Location string `json:"location,omitempty"`
}

// Session is one bounded scheduling conversation. Messages are append-only
// for the session's lifetime.
type Session struct {
	ID        uuid.UUID      `json:"id"`
	Messages  []chat.Message `json:"messages"`
	Draft     Draft          `json:"draft"`
	Step      Step           `json:"step"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func newSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		Step:      StepStart,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Session) append(role, content string, now time.Time) chat.Message {
	msg := chat.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: now,
	}
	s.Messages = append(s.Messages, msg)
	s.UpdatedAt = now
	return msg
}
