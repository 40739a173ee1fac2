package risk

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ReportGenerator renders a downloadable summary of a computed profile.
type ReportGenerator interface {
	RiskReport(profile Profile, smoking, activity Option) ([]byte, error)
}

type Handler struct {
	reports ReportGenerator
	logger  *zap.Logger
}

func NewHandler(reports ReportGenerator, logger *zap.Logger) *Handler {
	return &Handler{reports: reports, logger: logger}
}

func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"smoking":          SmokingOptions,
		"activity":         ActivityOptions,
		"default_smoking":  DefaultSmoking(),
		"default_activity": DefaultActivity(),
	})
}

type scoreRequest struct {
	Smoking  string `json:"smoking"`
	Activity string `json:"activity"`
}

type scoreResponse struct {
	Profile     Profile `json:"profile"`
	FilledCells int     `json:"filled_cells"`
	GridCells   int     `json:"grid_cells"`
}

func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	smoking, ok := FindSmoking(req.Smoking)
	if !ok {
		http.Error(w, "Unknown smoking option", http.StatusBadRequest)
		return
	}
	activity, ok := FindActivity(req.Activity)
	if !ok {
		http.Error(w, "Unknown activity option", http.StatusBadRequest)
		return
	}

	profile := Compute(smoking, activity)
	writeJSON(w, scoreResponse{
		Profile:     profile,
		FilledCells: FilledCells(profile.Total),
		GridCells:   GridCells,
	})
}

func (h *Handler) Trend(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, MonthlyTrend())
}

// Report renders the profile for the given option labels as a PDF. Labels
// default to the preselected bands when omitted.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	smoking := DefaultSmoking()
	if label := r.URL.Query().Get("smoking"); label != "" {
		var ok bool
		if smoking, ok = FindSmoking(label); !ok {
			http.Error(w, "Unknown smoking option", http.StatusBadRequest)
			return
		}
	}
	activity := DefaultActivity()
	if label := r.URL.Query().Get("activity"); label != "" {
		var ok bool
		if activity, ok = FindActivity(label); !ok {
			http.Error(w, "Unknown activity option", http.StatusBadRequest)
			return
		}
	}

	pdf, err := h.reports.RiskReport(Compute(smoking, activity), smoking, activity)
	if err != nil {
		h.logger.Error("risk report generation failed", zap.Error(err))
		http.Error(w, "Report generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Write(pdf)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/risk/options", h.Options)
	r.Post("/risk/score", h.Score)
	r.Get("/risk/trend", h.Trend)
	r.Get("/risk/report", h.Report)
}
