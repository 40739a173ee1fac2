package agent

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"cardio-twin-agent/internal/chat"
	"cardio-twin-agent/internal/scheduling"
)

func TestClientAsk(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"Hello there!"}}]}`)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	history := []chat.Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}
	reply, err := client.Ask(context.Background(), "be helpful", history, "how are you?")
	if err != nil {
		t.Fatal(err)
	}
	if reply != "Hello there!" {
		t.Errorf("reply = %q", reply)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("auth = %q", gotAuth)
	}

	messages, _ := gotBody["messages"].([]interface{})
	// system + 2 history + current user message
	if len(messages) != 4 {
		t.Fatalf("sent %d messages", len(messages))
	}
	first, _ := messages[0].(map[string]interface{})
	if first["role"] != "system" || first["content"] != "be helpful" {
		t.Errorf("first message = %v", first)
	}
	last, _ := messages[3].(map[string]interface{})
	if last["role"] != "user" || last["content"] != "how are you?" {
		t.Errorf("last message = %v", last)
	}
}

func TestClientAskWithoutKey(t *testing.T) {
	client := NewClient("", "")
	_, err := client.Ask(context.Background(), "prompt", nil, "hi")
	if !errors.Is(err, scheduling.ErrModelNotConfigured) {
		t.Errorf("err = %v, want ErrModelNotConfigured", err)
	}
}

func TestClientAskAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	_, err := client.Ask(context.Background(), "prompt", nil, "hi")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry the status: %v", err)
	}
}

func TestTranscriber(t *testing.T) {
	var gotModel, gotFilename string
	var gotAudio []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatal(err)
		}
		gotModel = r.FormValue("model")
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatal(err)
		}
		defer file.Close()
		gotFilename = header.Filename
		gotAudio, _ = io.ReadAll(file)
		io.WriteString(w, `{"text":"  hello world \n"}`)
	}))
	defer server.Close()

	stt := NewTranscriber("test-key", server.URL)
	text, err := stt.Transcribe(context.Background(), []byte("fake-webm"))
	if err != nil {
		t.Fatal(err)
	}
	if text != "hello world" {
		t.Errorf("text = %q, want trimmed transcript", text)
	}
	if gotModel != "whisper-1" {
		t.Errorf("model = %q", gotModel)
	}
	if gotFilename != "audio.webm" {
		t.Errorf("filename = %q", gotFilename)
	}
	if string(gotAudio) != "fake-webm" {
		t.Errorf("audio = %q", gotAudio)
	}
}

func TestTranscriberWithoutKey(t *testing.T) {
	stt := NewTranscriber("", "")
	_, err := stt.Transcribe(context.Background(), []byte("x"))
	if !errors.Is(err, scheduling.ErrModelNotConfigured) {
		t.Errorf("err = %v, want ErrModelNotConfigured", err)
	}
}

func TestSpeech(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["model"] != "tts-1" || req["voice"] != "alloy" {
			t.Errorf("request = %v", req)
		}
		if req["input"] != "Hello!" {
			t.Errorf("input = %q", req["input"])
		}
		w.Write([]byte("binary-audio"))
	}))
	defer server.Close()

	tts := NewSpeech("test-key", server.URL)
	audio, err := tts.Synthesize(context.Background(), "Hello!")
	if err != nil {
		t.Fatal(err)
	}
	if string(audio) != "binary-audio" {
		t.Errorf("audio = %q", audio)
	}
}

func TestSpeechWithoutKey(t *testing.T) {
	tts := NewSpeech("", "")
	_, err := tts.Synthesize(context.Background(), "hi")
	if !errors.Is(err, scheduling.ErrModelNotConfigured) {
		t.Errorf("err = %v, want ErrModelNotConfigured", err)
	}
}
