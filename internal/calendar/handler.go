package calendar

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

type Handler struct {
	svc      *Service
	logger   *zap.Logger
	validate *validator.Validate
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger, validate: validator.New()}
}

func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	if date := r.URL.Query().Get("date"); date != "" {
		writeJSON(w, h.svc.EventsOn(date))
		return
	}
	writeJSON(w, h.svc.Events())
}

type createEventRequest struct {
	Title string `json:"title" validate:"required"`
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Time  string `json:"time" validate:"required,datetime=15:04"`
	Type  string `json:"type" validate:"omitempty,oneof=appointment medication exercise"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	event, err := h.svc.Add(Event{
		Title: req.Title,
		Date:  req.Date,
		Time:  req.Time,
		Type:  EventType(req.Type),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, event)
}

func (h *Handler) Alerts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.Alerts())
}

func (h *Handler) ToggleAlert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	alert, err := h.svc.ToggleAlert(id)
	if err != nil {
		http.Error(w, "Unknown alert", http.StatusNotFound)
		return
	}
	writeJSON(w, alert)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/calendar/events", h.Events)
	r.Post("/calendar/events", h.Create)
	r.Get("/calendar/alerts", h.Alerts)
	r.Post("/calendar/alerts/{id}/toggle", h.ToggleAlert)
}
