package scheduling

import (
	"errors"
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

type startRequest struct {
	Mode Mode `json:"mode"`
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Mode == "" {
		req.Mode = ModeScripted
	}
	if req.Mode != ModeScripted && req.Mode != ModeAssistant {
		http.Error(w, "Unknown mode", http.StatusBadRequest)
		return
	}

	session := h.svc.Start(req.Mode)
	writeJSON(w, map[string]interface{}{
		"session_id": session.ID,
		"message":    session.Messages[len(session.Messages)-1].Content,
	})
}

type submitRequest struct {
	Text string `json:"text"`
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "Empty message", http.StatusBadRequest)
		return
	}

	reply, err := h.svc.Submit(r.Context(), req.Text)
	switch {
	case errors.Is(err, ErrNoSession):
		http.Error(w, "No active scheduling session", http.StatusConflict)
		return
	case errors.Is(err, ErrBusy):
		http.Error(w, "A reply is still being generated", http.StatusTooManyRequests)
		return
	case err != nil:
		h.logger.Error("scheduling turn failed", zap.Error(err))
		http.Error(w, "Processing failed", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"message": reply.Message,
		"done":    reply.Done,
	}
	if len(reply.Directives) > 0 {
		resp["directives"] = reply.Directives
	}
	if reply.Appointment != nil {
		resp["appointment"] = reply.Appointment
	}
	writeJSON(w, resp)
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.svc.Cancel()
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/schedule/start", h.Start)
	r.Post("/schedule/message", h.Submit)
	r.Post("/schedule/cancel", h.Cancel)
}
