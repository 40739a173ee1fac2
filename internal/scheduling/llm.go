package scheduling

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"cardio-twin-agent/internal/appointments"
	"cardio-twin-agent/internal/chat"
)

// LanguageModelClient is the conversational model behind the assistant
// scheduler. Implementations return the assistant text verbatim; this
// package owns all interpretation of it.
type LanguageModelClient interface {
	Ask(ctx context.Context, systemPrompt string, history []chat.Message, userMessage string) (string, error)
}

var (
	// ErrBusy rejects a turn while a model call is still in flight for the
	// session. Input submission stays disabled client-side; this is the
	// server-side backstop.
	ErrBusy = errors.New("scheduling: a model call is already in flight")

	// ErrModelNotConfigured is returned by model clients constructed
	// without credentials.
	ErrModelNotConfigured = errors.New("scheduling: language model is not configured")
)

// Fixed user-visible failure messages.
const (
	msgModelUnavailable = "The scheduling assistant isn't available right now because no AI credentials are configured. Please use the appointment form instead."
	msgModelApology     = "Sorry, I encountered an error. Please try again."
)

const assistantGreeting = "Hi! I can book an appointment for you. Tell me what kind of appointment you need and when you'd like to come in."

const defaultCompletionMessage = "Perfect! Your appointment has been added to your schedule."

// Status tags the model's structured answer.
type Status string

const (
	StatusComplete    Status = "complete"
	StatusAsking      Status = "asking"
	StatusUnsupported Status = "unsupported"
)

// Outcome is the JSON envelope the model is instructed to answer with.
type Outcome struct {
	Status    Status `json:"status"`
	Response  string `json:"response"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	Location  string `json:"location,omitempty"`
	Doctor    string `json:"doctor,omitempty"`
	Specialty string `json:"specialty,omitempty"`
}

// assistantSystemPrompt pins the model to the envelope contract, including
// the three-strikes TBD policy and the directive vocabulary.
const assistantSystemPrompt = `You are an appointment scheduling assistant for the Cardio Twin heart-health app. Your only job is to collect the details of one appointment: specialty or purpose, doctor, date, time, and location.

Always answer with a single JSON object and nothing else:
{"status": "asking" | "complete" | "unsupported", "response": "<text to show the user>", "date": "YYYY-MM-DD", "time": "HH:MM", "location": "...", "doctor": "...", "specialty": "..."}

Rules:
- Use status "asking" while any required detail is missing and put your follow-up question in "response".
- Use status "complete" only once you know both the date and the time. Include every field you collected.
- Use status "unsupported" for requests that are not about booking an appointment, with a short explanation in "response".
- If the user fails to give a usable value for the same field three times in a row, set that field to "TBD" and move on to the next one.
- You may embed [NAVIGATE:<page>] or [SHOW:<widget>] tokens in "response" when the user should be taken to another part of the app; the app removes them before display.`

// ParseOutcome interprets raw model output. Output that is not the expected
// JSON envelope is downgraded to an asking turn carrying the raw text, so a
// chatty model never breaks the session.
func ParseOutcome(raw string) Outcome {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
		trimmed = strings.TrimSpace(trimmed)
	}

	var out Outcome
	if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
		return Outcome{Status: StatusAsking, Response: raw}
	}
	switch out.Status {
	case StatusAsking, StatusComplete, StatusUnsupported:
		return out
	default:
		return Outcome{Status: StatusAsking, Response: raw}
	}
}

// AssistantReply is the outcome of one assistant-driven turn.
type AssistantReply struct {
	Message    string
	Directives []Directive
	// Appointment is set on the turn that completes the booking.
	Appointment *appointments.Appointment
	Done        bool
}

// AssistantDialogue drives the model-backed scheduling conversation. At most
// one model call runs per session; a turn submitted while one is pending is
// rejected with ErrBusy rather than queued.
type AssistantDialogue struct {
	llm     LanguageModelClient
	logger  *zap.Logger
	session *Session
	now     func() time.Time

	mu   sync.Mutex
	busy bool
}

// NewAssistantDialogue opens a session and posts the greeting.
func NewAssistantDialogue(llm LanguageModelClient, logger *zap.Logger, now func() time.Time) *AssistantDialogue {
	if now == nil {
		now = time.Now
	}
	a := &AssistantDialogue{llm: llm, logger: logger, session: newSession(now()), now: now}
	a.session.append("assistant", assistantGreeting, now())
	return a
}

func (a *AssistantDialogue) Session() *Session { return a.session }

// Cancel terminates the session. A response from a still-outstanding model
// call is discarded by the caller dropping the dialogue; the request itself
// is not aborted.
func (a *AssistantDialogue) Cancel() {
	a.session.Step = StepCancelled
	a.session.UpdatedAt = a.now()
}

// Submit runs one turn: forward the utterance with the full history, then
// apply the model's envelope. Collaborator failures degrade to fixed
// conversational messages and leave the draft untouched.
func (a *AssistantDialogue) Submit(ctx context.Context, input string) (AssistantReply, error) {
	a.mu.Lock()
	if a.busy {
		a.mu.Unlock()
		return AssistantReply{}, ErrBusy
	}
	a.busy = true
	a.mu.Unlock()
	defer func() {
		a.mu.Lock()
		a.busy = false
		a.mu.Unlock()
	}()

	history := make([]chat.Message, len(a.session.Messages))
	copy(history, a.session.Messages)
	a.session.append("user", input, a.now())

	raw, err := a.llm.Ask(ctx, assistantSystemPrompt, history, input)
	if err != nil {
		msg := msgModelApology
		if errors.Is(err, ErrModelNotConfigured) {
			msg = msgModelUnavailable
		} else {
			a.logger.Error("scheduling model call failed", zap.Error(err))
		}
		a.session.append("assistant", msg, a.now())
		return AssistantReply{Message: msg}, nil
	}

	outcome := ParseOutcome(raw)
	directives, display := ExtractDirectives(outcome.Response)

	switch outcome.Status {
	case StatusComplete:
		if outcome.Date == "" || outcome.Time == "" {
			// The model jumped the gun; stay in the conversation.
			if display == "" {
				display = msgModelApology
			}
			a.session.append("assistant", display, a.now())
			return AssistantReply{Message: display, Directives: directives}, nil
		}

		a.session.Draft = Draft{
			Purpose:  outcome.Specialty,
			Doctor:   outcome.Doctor,
			Date:     outcome.Date,
			Time:     outcome.Time,
			Location: outcome.Location,
		}
		appointment := appointments.Appointment{
			ID:        uuid.NewString(),
			Doctor:    orPlaceholder(outcome.Doctor),
			Specialty: orPlaceholder(outcome.Specialty),
			Date:      outcome.Date,
			Time:      outcome.Time,
			Location:  orPlaceholder(outcome.Location),
		}
		a.session.Step = StepCompleted
		if display == "" {
			display = defaultCompletionMessage
		}
		a.session.append("assistant", display, a.now())
		return AssistantReply{
			Message:     display,
			Directives:  directives,
			Appointment: &appointment,
			Done:        true,
		}, nil

	case StatusUnsupported:
		a.session.append("assistant", display, a.now())
		return AssistantReply{Message: display, Directives: directives}, nil

	default: // StatusAsking, including downgraded non-JSON output
		a.session.append("assistant", display, a.now())
		return AssistantReply{Message: display, Directives: directives}, nil
	}
}

func orPlaceholder(value string) string {
	if value == "" {
		return appointments.Placeholder
	}
	return value
}
