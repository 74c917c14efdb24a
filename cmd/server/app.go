package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/triage-api/internal/config"
	"github.com/phrazzld/triage-api/internal/platform/gemini"
	"github.com/phrazzld/triage-api/internal/platform/postgres"
	"github.com/phrazzld/triage-api/internal/scoring"
	"github.com/phrazzld/triage-api/internal/service"
	"github.com/phrazzld/triage-api/internal/service/auth"
	"github.com/phrazzld/triage-api/internal/store"
)

// application holds the assembled dependencies of the server process.
// Everything is wired once at startup; handlers only see the services they
// need.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore   store.UserStore
	jwtService  auth.JWTService
	authService *service.AuthService
	taskService *service.TaskService
}

// newApplication wires the full dependency graph: database and migrations,
// stores, auth services, the scoring engine, and the task service. The
// Gemini scorer is optional; without an API key the scoring engine runs on
// the local fallback heuristic alone.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, logger); err != nil {
		closeDatabase(db, logger)
		return nil, err
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	taskStore := postgres.NewPostgresTaskStore(db, logger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeDatabase(db, logger)
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	authService := service.NewAuthService(
		userStore,
		jwtService,
		auth.NewBcryptHasher(),
		auth.NewBcryptVerifier(),
	)

	engine := scoring.NewEngine(setupScorer(cfg, logger), logger)
	taskService := service.NewTaskService(taskStore, engine)

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		userStore:   userStore,
		jwtService:  jwtService,
		authService: authService,
		taskService: taskService,
	}, nil
}

// setupScorer builds the Gemini scorer when an API key is configured.
// Returns nil when no key is present or client creation fails; a nil scorer
// means the engine scores every task with the fallback heuristic.
func setupScorer(cfg *config.Config, logger *slog.Logger) scoring.Scorer {
	if cfg.LLM.GeminiAPIKey == "" {
		logger.Warn("No Gemini API key configured, priority scoring will use fallback heuristic")
		return nil
	}

	scorer, err := gemini.NewGeminiScorer(context.Background(), logger, cfg.LLM)
	if err != nil {
		logger.Error("Failed to create Gemini scorer, falling back to heuristic scoring",
			"error", err)
		return nil
	}

	logger.Info("Gemini scorer configured", "model", cfg.LLM.ModelName)
	return scorer
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	closeDatabase(app.db, app.logger)
}

func closeDatabase(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("Failed to close database connection", "error", err)
	}
}
