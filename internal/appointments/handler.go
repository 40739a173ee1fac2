package appointments

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

type Handler struct {
	svc      *Service
	validate *validator.Validate
	logger   *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, validate: validator.New(), logger: logger}
}

// appointmentView adds the human-readable date/time the list page shows.
type appointmentView struct {
	Appointment
	DisplayDate string `json:"display_date"`
	DisplayTime string `json:"display_time"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.svc.List(r.Context())
	if err != nil {
		h.logger.Error("listing appointments failed", zap.Error(err))
		http.Error(w, "Failed to list appointments", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	views := make([]appointmentView, 0, len(appointments))
	for _, a := range appointments {
		views = append(views, appointmentView{
			Appointment: a,
			DisplayDate: FormatDate(a.Date, now),
			DisplayTime: FormatClock(a.Time),
		})
	}
	writeJSON(w, views)
}

type createRequest struct {
	Doctor    string `json:"doctor" validate:"required"`
	Specialty string `json:"specialty" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
	Location  string `json:"location"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.svc.Add(r.Context(), Appointment{
		Doctor:    req.Doctor,
		Specialty: req.Specialty,
		Date:      req.Date,
		Time:      req.Time,
		Location:  req.Location,
	})
	if err != nil {
		h.logger.Error("creating appointment failed", zap.Error(err))
		http.Error(w, "Failed to create appointment", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, created)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/appointments", h.List)
	r.Post("/appointments", h.Create)
}
