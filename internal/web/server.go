package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/statuspage/internal/render"
	"github.com/hamed0406/statuspage/internal/summary"
)

type Server struct {
	Logger     *zap.Logger
	InputPath  string
	OutputPath string
	Thresholds render.Thresholds
	Hub        *Hub
}

func NewServer(l *zap.Logger, inputPath, outputPath string, th render.Thresholds, hub *Hub) *Server {
	return &Server{
		Logger:     l,
		InputPath:  inputPath,
		OutputPath: outputPath,
		Thresholds: th,
		Hub:        hub,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/", s.handlePage)
	r.Get("/index.html", s.handlePage)
	r.Get("/api/services", s.handleServices)
	if s.Hub != nil {
		r.Get("/ws", s.Hub.Handle)
	}

	return r
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, s.OutputPath)
}

type serviceRow struct {
	Name        string  `json:"name"`
	URL         string  `json:"url"`
	StatusText  string  `json:"status_text"`
	Severity    string  `json:"severity"`
	UptimeDay   float64 `json:"uptime_day"`
	UptimeWeek  float64 `json:"uptime_week"`
	UptimeMonth float64 `json:"uptime_month"`
	UptimeYear  float64 `json:"uptime_year"`
	Uptime      string  `json:"uptime,omitempty"`
}

func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	records, err := summary.Load(s.InputPath)
	if err != nil {
		s.Logger.Warn("services_load_error", zap.Error(err))
		http.Error(w, "summary unavailable", http.StatusServiceUnavailable)
		return
	}

	rows := make([]serviceRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, serviceRow{
			Name:        rec.Name,
			URL:         rec.URL,
			StatusText:  render.StatusLabel(rec.Status),
			Severity:    s.Thresholds.Classify(rec.UptimeDay.Float()).String(),
			UptimeDay:   rec.UptimeDay.Float(),
			UptimeWeek:  rec.UptimeWeek.Float(),
			UptimeMonth: rec.UptimeMonth.Float(),
			UptimeYear:  rec.UptimeYear.Float(),
			Uptime:      string(rec.Uptime),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}
