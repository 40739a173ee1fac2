package scheduling

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"cardio-twin-agent/internal/appointments"
)

// Mode selects which dialogue variant drives a session.
type Mode string

const (
	ModeScripted  Mode = "scripted"
	ModeAssistant Mode = "assistant"
)

// ErrNoSession is returned when a turn arrives without an open session.
var ErrNoSession = errors.New("scheduling: no active session")

// Service owns at most one live scheduling session at a time. Opening a new
// session replaces the previous one; the dialogue commits completed
// appointments to the appointment list and then resets.
type Service struct {
	appts  *appointments.Service
	llm    LanguageModelClient
	logger *zap.Logger
	now    func() time.Time

	mu        sync.Mutex
	scripted  *Dialogue
	assistant *AssistantDialogue
}

func NewService(appts *appointments.Service, llm LanguageModelClient, logger *zap.Logger) *Service {
	return &Service{appts: appts, llm: llm, logger: logger, now: time.Now}
}

// Start opens a fresh session in the requested mode and returns it (its
// first message is the opening prompt).
func (s *Service) Start(mode Mode) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scripted = nil
	s.assistant = nil
	if mode == ModeAssistant {
		s.assistant = NewAssistantDialogue(s.llm, s.logger, s.now)
		return s.assistant.Session()
	}
	s.scripted = NewDialogue(s.now)
	return s.scripted.Session()
}

// Cancel drops the active session, if any.
func (s *Service) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scripted != nil {
		s.scripted.Cancel()
		s.scripted = nil
	}
	if s.assistant != nil {
		s.assistant.Cancel()
		s.assistant = nil
	}
}

// Submit routes one utterance to the active dialogue. When the turn
// completes the booking, the appointment is committed and the session is
// cleared so the next open starts fresh.
func (s *Service) Submit(ctx context.Context, input string) (AssistantReply, error) {
	s.mu.Lock()
	scripted, assistant := s.scripted, s.assistant
	s.mu.Unlock()

	switch {
	case scripted != nil:
		reply := scripted.Submit(input)
		out := AssistantReply{Message: reply.Message, Appointment: reply.Appointment, Done: reply.Done}
		if reply.Done {
			return out, s.commit(ctx, reply.Appointment)
		}
		return out, nil

	case assistant != nil:
		reply, err := assistant.Submit(ctx, input)
		if err != nil {
			return AssistantReply{}, err
		}
		if reply.Done {
			return reply, s.commit(ctx, reply.Appointment)
		}
		return reply, nil

	default:
		return AssistantReply{}, ErrNoSession
	}
}

func (s *Service) commit(ctx context.Context, appointment *appointments.Appointment) error {
	committed, err := s.appts.Add(ctx, *appointment)
	if err != nil {
		return err
	}
	*appointment = committed

	s.mu.Lock()
	s.scripted = nil
	s.assistant = nil
	s.mu.Unlock()
	return nil
}
