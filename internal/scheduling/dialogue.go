package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"cardio-twin-agent/internal/appointments"
)

// Dialogue prompts.
const (
	promptPurpose     = "I will add an appointment to your calendar! What type of appointment would you like to schedule? For example, you could say 'Cardiology appointment' or 'Check-up with Dr. Smith'."
	promptDateTime    = "Great! Now, when would you like to schedule this appointment? Please tell me the date and time. For example, 'Tomorrow at 2:30 PM' or 'January 15th at 10:00 AM'."
	promptDateRetry   = "I couldn't understand the date and time. Could you please try again? For example, 'Tomorrow at 2:30 PM' or 'January 15th at 10:00 AM'."
	promptDateAgain   = "Let's try again. When would you like to schedule this appointment?"
	promptLocation    = "Excellent! Now, where will this appointment take place? Please provide the location, such as 'Heart Center, Room 205' or 'Main Hospital, 3rd Floor'."
	promptLocationFix = "Let's update the location. Where will this appointment take place?"
	promptCompleted   = "Perfect! Your appointment has been added to your schedule. The chat will now close automatically."
)

// Reply is the outcome of one scripted dialogue turn.
type Reply struct {
	Message string
	// Appointment is set on the turn that completes the dialogue.
	Appointment *appointments.Appointment
	Done        bool
}

// Dialogue drives the scripted appointment-booking conversation: purpose,
// date/time, confirmation, location, final confirmation, commit. It never
// gives up on an unclear answer; it re-prompts until the user confirms or
// cancels.
type Dialogue struct {
	session *Session
	now     func() time.Time
}

// NewDialogue opens a session and posts the opening prompt.
func NewDialogue(now func() time.Time) *Dialogue {
	if now == nil {
		now = time.Now
	}
	d := &Dialogue{session: newSession(now()), now: now}
	d.session.append("assistant", promptPurpose, now())
	return d
}

func (d *Dialogue) Session() *Session { return d.session }

// Cancel terminates the session. The draft is abandoned.
func (d *Dialogue) Cancel() {
	d.session.Step = StepCancelled
	d.session.UpdatedAt = d.now()
}

// Submit consumes one user utterance and advances the state machine.
func (d *Dialogue) Submit(input string) Reply {
	input = strings.TrimSpace(input)
	if input == "" {
		return Reply{}
	}

	s := d.session
	s.append("user", input, d.now())

	var reply Reply
	switch s.Step {
	case StepStart:
		s.Draft.Purpose = input
		s.Step = StepAskingDateTime
		reply.Message = promptDateTime

	case StepAskingDateTime:
		parsed, ok := ParseDateTime(input, d.now())
		if !ok {
			reply.Message = promptDateRetry
			break
		}
		s.Draft.Date = parsed.Date
		s.Draft.Time = parsed.Time
		s.Step = StepConfirmingDateTime
		reply.Message = fmt.Sprintf(
			"Perfect! I have you scheduled for %s on %s at %s. Is this correct?",
			s.Draft.Purpose, s.Draft.Date, appointments.FormatClock(s.Draft.Time),
		)

	case StepConfirmingDateTime:
		if containsAny(input, "yes", "correct", "right") {
			s.Step = StepAskingLocation
			reply.Message = promptLocation
		} else {
			s.Draft.Date = ""
			s.Draft.Time = ""
			s.Step = StepAskingDateTime
			reply.Message = promptDateAgain
		}

	case StepAskingLocation:
		s.Draft.Location = input
		s.Step = StepConfirmingLocation
		reply.Message = fmt.Sprintf(
			"Thank you! Your appointment details are:\n\n• %s\n• %s at %s\n• Location: %s\n\nShould I add this appointment to your schedule?",
			s.Draft.Purpose,
			appointments.FormatDate(s.Draft.Date, d.now()),
			appointments.FormatClock(s.Draft.Time),
			s.Draft.Location,
		)

	case StepConfirmingLocation:
		if containsAny(input, "yes", "add", "schedule") {
			appointment := d.buildAppointment()
			s.Step = StepCompleted
			reply = Reply{Message: promptCompleted, Appointment: &appointment, Done: true}
		} else {
			s.Draft.Location = ""
			s.Step = StepAskingLocation
			reply.Message = promptLocationFix
		}

	default:
		reply.Message = "I'm here to help you schedule appointments. How can I assist you today?"
	}

	s.append("assistant", reply.Message, d.now())
	return reply
}

// buildAppointment turns the completed draft into a committed record. The
// doctor is taken from the purpose when one was named there.
func (d *Dialogue) buildAppointment() appointments.Appointment {
	doctor := appointments.Placeholder
	if strings.Contains(d.session.Draft.Purpose, "Dr.") {
		doctor = d.session.Draft.Purpose
	}
	return appointments.Appointment{
		ID:        uuid.NewString(),
		Doctor:    doctor,
		Specialty: d.session.Draft.Purpose,
		Date:      d.session.Draft.Date,
		Time:      d.session.Draft.Time,
		Location:  d.session.Draft.Location,
	}
}

func containsAny(input string, words ...string) bool {
	lower := strings.ToLower(input)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
