package chat

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type fakeVoice struct {
	transcript    string
	transcribeErr error
	reply         string
	askErr        error
	audio         []byte
	synthErr      error
}

func (f *fakeVoice) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return f.transcript, f.transcribeErr
}

func (f *fakeVoice) Ask(ctx context.Context, systemPrompt string, history []Message, userMessage string) (string, error) {
	return f.reply, f.askErr
}

func (f *fakeVoice) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return f.audio, f.synthErr
}

func newTestService(voice *fakeVoice) *Service {
	if voice == nil {
		voice = &fakeVoice{}
	}
	svc := NewService(NewMemoryStore(), voice, voice, voice, zap.NewNop())
	svc.responder = firstPickResponder()
	return svc
}

func TestServiceStartsWithWelcome(t *testing.T) {
	svc := newTestService(nil)
	history := svc.History()
	if len(history) != 1 {
		t.Fatalf("got %d messages", len(history))
	}
	if history[0].Content != WelcomeMessage || history[0].Role != "assistant" {
		t.Errorf("history[0] = %+v", history[0])
	}
	if !svc.FirstVisit() {
		t.Error("expected first visit")
	}
}

func TestServiceSubmitAppendsBothMessages(t *testing.T) {
	svc := newTestService(nil)

	userMsg, reply := svc.Submit("show my risk profile")
	if userMsg.Role != "user" || userMsg.Content != "show my risk profile" {
		t.Errorf("userMsg = %+v", userMsg)
	}
	if reply.Role != "assistant" || reply.Content == "" {
		t.Errorf("reply = %+v", reply)
	}
	if got := len(svc.History()); got != 3 {
		t.Errorf("history length = %d, want 3", got)
	}
}

func TestServiceSwitchView(t *testing.T) {
	svc := newTestService(nil)

	notice, posted := svc.SwitchView(ViewRisk)
	if !posted {
		t.Fatal("switching to a tab should post a notice")
	}
	if notice.Content != ViewSwitchMessage(ViewRisk) {
		t.Errorf("notice = %q", notice.Content)
	}

	// Same view again is silent.
	if _, posted := svc.SwitchView(ViewRisk); posted {
		t.Error("re-selecting the active tab should be silent")
	}

	// Returning to general is silent too.
	if _, posted := svc.SwitchView(ViewGeneral); posted {
		t.Error("returning to general should be silent")
	}
}

func TestServiceSubmitUsesActiveView(t *testing.T) {
	svc := newTestService(nil)
	svc.SwitchView(ViewRisk)

	_, reply := svc.Submit("is it high?")
	if reply.Content != highRiskResponses[0] {
		t.Errorf("reply = %q", reply.Content)
	}
}

func TestServiceClearResets(t *testing.T) {
	svc := newTestService(nil)
	svc.SwitchView(ViewCoaching)
	svc.Submit("hello")

	welcome := svc.Clear()
	if welcome.Content != WelcomeMessage {
		t.Errorf("welcome = %q", welcome.Content)
	}
	history := svc.History()
	if len(history) != 1 || history[0].Content != WelcomeMessage {
		t.Errorf("history after clear = %+v", history)
	}

	// The view is back to general.
	_, reply := svc.Submit("hi")
	if reply.Content != generalResponse("hi") {
		t.Errorf("reply after clear = %q", reply.Content)
	}
}

func TestServiceHistorySurvivesRestart(t *testing.T) {
	store := NewMemoryStore()
	voice := &fakeVoice{}
	svc := NewService(store, voice, voice, voice, zap.NewNop())
	svc.Submit("remember me")

	revived := NewService(store, voice, voice, voice, zap.NewNop())
	history := revived.History()
	if len(history) != 3 {
		t.Fatalf("restored history length = %d, want 3", len(history))
	}
	if history[1].Content != "remember me" {
		t.Errorf("restored history[1] = %+v", history[1])
	}
}

func TestVoiceTurn(t *testing.T) {
	voice := &fakeVoice{transcript: "how is my heart?", reply: "Looking good!", audio: []byte("mp3")}
	svc := newTestService(voice)

	userText, reply, speech, err := svc.VoiceTurn(context.Background(), []byte("webm"))
	if err != nil {
		t.Fatal(err)
	}
	if userText != "how is my heart?" {
		t.Errorf("userText = %q", userText)
	}
	if reply.Content != "Looking good!" {
		t.Errorf("reply = %q", reply.Content)
	}
	if string(speech) != "mp3" {
		t.Errorf("speech = %q", speech)
	}
	if got := len(svc.History()); got != 3 {
		t.Errorf("history length = %d, want 3", got)
	}
}

func TestVoiceTurnTranscriptionError(t *testing.T) {
	voice := &fakeVoice{transcribeErr: errors.New("mic broke")}
	svc := newTestService(voice)

	if _, _, _, err := svc.VoiceTurn(context.Background(), []byte("webm")); err == nil {
		t.Fatal("expected an error")
	}
	if got := len(svc.History()); got != 1 {
		t.Errorf("failed turn must not touch history, length = %d", got)
	}
}

func TestVoiceTurnEmptyTranscript(t *testing.T) {
	voice := &fakeVoice{transcript: ""}
	svc := newTestService(voice)

	userText, reply, speech, err := svc.VoiceTurn(context.Background(), []byte("webm"))
	if err != nil {
		t.Fatal(err)
	}
	if userText != "" || reply.Content != "" || speech != nil {
		t.Errorf("silence should short-circuit: %q %+v %v", userText, reply, speech)
	}
}

func TestVoiceTurnModelErrorDegrades(t *testing.T) {
	voice := &fakeVoice{transcript: "hello", askErr: errors.New("model down"), audio: []byte("mp3")}
	svc := newTestService(voice)

	_, reply, speech, err := svc.VoiceTurn(context.Background(), []byte("webm"))
	if err != nil {
		t.Fatal("model errors must degrade, not propagate")
	}
	if reply.Content != voiceErrorMessage {
		t.Errorf("reply = %q", reply.Content)
	}
	if speech != nil {
		t.Error("no audio should be produced for the apology")
	}
}

func TestVoiceTurnSynthesisFailureDropsAudio(t *testing.T) {
	voice := &fakeVoice{transcript: "hello", reply: "Hi!", synthErr: errors.New("tts down")}
	svc := newTestService(voice)

	_, reply, speech, err := svc.VoiceTurn(context.Background(), []byte("webm"))
	if err != nil {
		t.Fatal(err)
	}
	if reply.Content != "Hi!" {
		t.Errorf("reply = %q", reply.Content)
	}
	if speech != nil {
		t.Error("audio should be omitted when synthesis fails")
	}
}
