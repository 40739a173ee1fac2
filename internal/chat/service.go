package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Model is the conversational language model used in voice mode. It receives
// the full history on every call; no server-side session state is assumed.
type Model interface {
	Ask(ctx context.Context, systemPrompt string, history []Message, userMessage string) (string, error)
}

// Transcriber converts recorded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Speech renders assistant text as audio.
type Speech interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// voiceSystemPrompt frames the free-form voice conversation.
const voiceSystemPrompt = `You are a helpful health assistant for a cardiac monitoring app called Cardio Twin. You help users with general health questions, appointment scheduling, medication reminders, and cardiac health guidance.

You have access to the full conversation history, so you can reference previous messages and build upon the information already gathered.

Keep responses concise and friendly. If users ask about serious symptoms, advise them to contact their healthcare provider immediately. You can help with:
- General health questions
- Appointment scheduling guidance
- Medication reminders
- Cardiac health tips
- Lifestyle recommendations
- Emergency guidance

Always be supportive and professional in your responses.`

const voiceErrorMessage = "Sorry, I encountered an error. Please try again."

// Service is the chat controller behind the tabbed assistant. It owns the
// in-memory conversation, keeps the store in sync, and runs voice turns
// through the model adapters.
type Service struct {
	store      Store
	responder  *Responder
	model      Model
	stt        Transcriber
	tts        Speech
	logger     *zap.Logger
	now        func() time.Time
	mu         sync.Mutex
	messages   []Message
	view       View
	firstVisit bool
}

func NewService(store Store, model Model, stt Transcriber, tts Speech, logger *zap.Logger) *Service {
	s := &Service{
		store:     store,
		responder: NewResponder(),
		model:     model,
		stt:       stt,
		tts:       tts,
		logger:    logger,
		now:       time.Now,
		view:      ViewGeneral,
	}
	s.restore()
	return s
}

// restore rehydrates history from the store, falling back to the welcome
// message when nothing usable is saved.
func (s *Service) restore() {
	if messages, ok := s.store.LoadHistory(); ok && len(messages) > 0 {
		s.messages = messages
	} else {
		s.messages = []Message{s.newMessage("assistant", WelcomeMessage)}
	}
	s.firstVisit = s.store.LoadFirstVisit()
}

func (s *Service) newMessage(role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: s.now(),
		View:      s.view,
	}
}

// History returns a copy of the conversation so far.
func (s *Service) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Service) FirstVisit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firstVisit
}

func (s *Service) SetFirstVisit(firstVisit bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.firstVisit = firstVisit
	if err := s.store.SaveFirstVisit(firstVisit); err != nil {
		s.logger.Warn("saving first-visit flag failed", zap.Error(err))
	}
}

// Submit records the user message and answers with the scripted reply for
// the active tab.
func (s *Service) Submit(text string) (Message, Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userMsg := s.append("user", text)
	reply := s.append("assistant", s.responder.Respond(text, s.view))
	return userMsg, reply
}

// SwitchView changes the active tab. Switching to a non-general tab posts a
// notice message; returning to general is silent.
func (s *Service) SwitchView(view View) (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if view == s.view {
		return Message{}, false
	}
	s.view = view
	if view == ViewGeneral {
		return Message{}, false
	}
	return s.append("assistant", ViewSwitchMessage(view)), true
}

// Clear drops the conversation and restarts it with the welcome message.
func (s *Service) Clear() Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		s.logger.Warn("clearing chat history failed", zap.Error(err))
	}
	s.view = ViewGeneral
	welcome := s.newMessage("assistant", WelcomeMessage)
	s.messages = []Message{welcome}
	s.persist()
	return welcome
}

// VoiceTurn transcribes the uploaded audio, asks the model for a reply, and
// synthesizes the reply. A failed model call degrades to a fixed apology; a
// failed synthesis returns the text without audio.
func (s *Service) VoiceTurn(ctx context.Context, audio []byte) (userText string, reply Message, speech []byte, err error) {
	userText, err = s.stt.Transcribe(ctx, audio)
	if err != nil {
		return "", Message{}, nil, fmt.Errorf("transcription failed: %w", err)
	}
	if userText == "" {
		// Silence or no speech detected.
		return "", Message{}, nil, nil
	}

	s.mu.Lock()
	history := make([]Message, len(s.messages))
	copy(history, s.messages)
	s.mu.Unlock()

	replyText, askErr := s.model.Ask(ctx, voiceSystemPrompt, history, userText)
	if askErr != nil {
		s.logger.Error("voice model call failed", zap.Error(askErr))
		replyText = voiceErrorMessage
	}

	s.mu.Lock()
	s.append("user", userText)
	reply = s.append("assistant", replyText)
	s.mu.Unlock()

	if askErr == nil && s.tts != nil {
		if audioOut, synthErr := s.tts.Synthesize(ctx, replyText); synthErr != nil {
			s.logger.Warn("speech synthesis failed", zap.Error(synthErr))
		} else {
			speech = audioOut
		}
	}
	return userText, reply, speech, nil
}

// append adds a message and persists the history. Callers hold s.mu.
func (s *Service) append(role, content string) Message {
	msg := s.newMessage(role, content)
	s.messages = append(s.messages, msg)
	s.persist()
	return msg
}

func (s *Service) persist() {
	if err := s.store.SaveHistory(s.messages); err != nil {
		s.logger.Warn("saving chat history failed", zap.Error(err))
	}
}
