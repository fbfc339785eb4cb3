package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/notemaster/backend/internal/api"
	"github.com/notemaster/backend/internal/infrastructure/config"
	"github.com/notemaster/backend/internal/llm"
	"github.com/notemaster/backend/internal/service"
	"github.com/notemaster/backend/internal/store"

	_ "github.com/notemaster/backend/docs" // generated swagger docs
)

// @title           NoteMaster API
// @version         1.0
// @description     Note-taking and self-quizzing backend — write notes, let an LLM generate questions and grade your answers, and track your scores.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.Open(cfg.DataDir)
	if err != nil {
		logger.Error("failed to open data directory", "error", err)
		os.Exit(1)
	}

	if cfg.WatchData {
		watcher, err := store.NewWatcher(logger, db.Dirs()...)
		if err != nil {
			logger.Error("failed to watch data directories", "error", err)
			os.Exit(1)
		}
		defer watcher.Close()
	}

	model := llm.NewOpenAIClient(cfg.LLMURL, cfg.LLMModel, cfg.LLMAPIKey, cfg.LLMTimeout)
	quiz := service.NewQuizCoordinator(db, model, logger)
	handler := api.NewHandler(db, quiz, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// No write deadline: grading a session is a serial chain of model
		// calls, each bounded by LLM_TIMEOUT instead.
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "data_dir", cfg.DataDir)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
