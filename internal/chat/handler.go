package chat

import (
	"bytes"
	"encoding/base64"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"messages":    h.svc.History(),
		"first_visit": h.svc.FirstVisit(),
	})
}

type messageRequest struct {
	Text string `json:"text"`
}

func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "Empty message", http.StatusBadRequest)
		return
	}

	userMsg, reply := h.svc.Submit(req.Text)
	writeJSON(w, map[string]interface{}{
		"user":     userMsg,
		"response": reply,
	})
}

type viewRequest struct {
	View View `json:"view"`
}

func (h *Handler) SwitchView(w http.ResponseWriter, r *http.Request) {
	var req viewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if !ValidView(req.View) {
		http.Error(w, "Unknown view", http.StatusBadRequest)
		return
	}

	notice, posted := h.svc.SwitchView(req.View)
	resp := map[string]interface{}{"view": req.View}
	if posted {
		resp["notice"] = notice
	}
	writeJSON(w, resp)
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	welcome := h.svc.Clear()
	writeJSON(w, map[string]interface{}{"welcome": welcome})
}

// Voice accepts a multipart audio upload, runs a full voice turn, and
// returns the transcription, the reply, and the synthesized reply audio.
func (h *Handler) Voice(w http.ResponseWriter, r *http.Request) {
	// Voice clips are short; 10MB is plenty.
	r.ParseMultipartForm(10 << 20)

	file, _, err := r.FormFile("audio")
	if err != nil {
		http.Error(w, "Error retrieving audio file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		http.Error(w, "Failed to read audio file", http.StatusInternalServerError)
		return
	}

	userText, reply, speech, err := h.svc.VoiceTurn(r.Context(), buf.Bytes())
	if err != nil {
		h.logger.Error("voice turn failed", zap.Error(err))
		http.Error(w, "Voice processing failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if userText == "" {
		writeJSON(w, map[string]string{"text": "", "response": ""})
		return
	}

	resp := map[string]string{
		"text":     userText,
		"response": reply.Content,
	}
	if len(speech) > 0 {
		resp["audio_base64"] = base64.StdEncoding.EncodeToString(speech)
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/chat/history", h.History)
	r.Post("/chat/message", h.PostMessage)
	r.Post("/chat/view", h.SwitchView)
	r.Delete("/chat/history", h.Clear)
	r.Post("/chat/voice", h.Voice)
}
