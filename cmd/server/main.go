package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"cardio-twin-agent/internal/agent"
	"cardio-twin-agent/internal/appointments"
	"cardio-twin-agent/internal/calendar"
	"cardio-twin-agent/internal/chat"
	"cardio-twin-agent/internal/config"
	"cardio-twin-agent/internal/logger"
	"cardio-twin-agent/internal/report"
	"cardio-twin-agent/internal/risk"
	"cardio-twin-agent/internal/scheduling"
)

func main() {
	// 1. Infrastructure
	cfg := config.New()
	log := logger.NewZapLogger(cfg.LogLevel, cfg.Env)
	defer log.Sync()

	var db *sql.DB
	var err error
	if cfg.DatabaseURL != "" {
		for i := 0; i < cfg.DBConnAttempts; i++ {
			db, err = sql.Open("postgres", cfg.DatabaseURL)
			if err == nil {
				err = db.Ping()
			}
			if err == nil {
				break
			}
			log.Info("waiting for database", zap.Int("attempt", i+1), zap.Int("max", cfg.DBConnAttempts))
			time.Sleep(2 * time.Second)
		}
	}
	if db != nil && err == nil {
		log.Info("connected to database")
		runMigrations(cfg.DatabaseURL, log)
	} else {
		if cfg.DatabaseURL != "" {
			log.Warn("could not connect to database, falling back to in-memory storage", zap.Error(err))
		}
		db = nil
	}

	// 2. Clients
	llmClient := agent.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	sttClient := agent.NewTranscriber(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	ttsClient := agent.NewSpeech(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	if cfg.OpenAIAPIKey == "" {
		log.Warn("OPENAI_API_KEY is not set, assistant scheduling and voice mode are disabled")
	}

	// 3. Services
	var apptRepo appointments.Repository
	if db != nil {
		apptRepo = appointments.NewPostgresRepository(db)
	} else {
		apptRepo = appointments.NewMemoryRepository()
	}
	apptSvc := appointments.NewService(apptRepo, log)
	if err := apptSvc.Seed(context.Background()); err != nil {
		log.Warn("seeding appointments failed", zap.Error(err))
	}

	chatStore, err := chat.NewFileStore(cfg.DataDir, log)
	if err != nil {
		log.Warn("chat store unavailable, history will not survive restarts", zap.Error(err))
		chatStore = chat.NewMemoryStore()
	}
	chatSvc := chat.NewService(chatStore, llmClient, sttClient, ttsClient, log)

	schedSvc := scheduling.NewService(apptSvc, llmClient, log)
	calendarSvc := calendar.NewService(log)
	reportSvc := report.NewService(log)

	chatHandler := chat.NewHandler(chatSvc, log)
	apptHandler := appointments.NewHandler(apptSvc, log)
	schedHandler := scheduling.NewHandler(schedSvc, log)
	calendarHandler := calendar.NewHandler(calendarSvc, log)
	riskHandler := risk.NewHandler(reportSvc, log)

	// 4. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS for frontend
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
			if r.Method == "OPTIONS" {
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		chat.RegisterRoutes(r, chatHandler)
		appointments.RegisterRoutes(r, apptHandler)
		scheduling.RegisterRoutes(r, schedHandler)
		calendar.RegisterRoutes(r, calendarHandler)
		risk.RegisterRoutes(r, riskHandler)
	})

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func runMigrations(databaseURL string, log *zap.Logger) {
	m, err := migrate.New("file://migrations", databaseURL)
	if err != nil {
		log.Warn("migration init failed", zap.Error(err))
		return
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		log.Warn("migration up failed", zap.Error(err))
		return
	}
	log.Info("migrations applied")
}
