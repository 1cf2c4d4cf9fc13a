// Inquira server — provides the research session HTTP API, manages queue
// workers, and orchestrates refinement, parallel research, and report delivery.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/inquira/inquira/pkg/api"
	"github.com/inquira/inquira/pkg/cleanup"
	"github.com/inquira/inquira/pkg/config"
	"github.com/inquira/inquira/pkg/database"
	"github.com/inquira/inquira/pkg/llm"
	"github.com/inquira/inquira/pkg/mailer"
	"github.com/inquira/inquira/pkg/queue"
	"github.com/inquira/inquira/pkg/refine"
	"github.com/inquira/inquira/pkg/report"
	"github.com/inquira/inquira/pkg/services"
	"github.com/inquira/inquira/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting Inquira",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Create LLM providers
	openaiClient, err := llm.NewOpenAIClient(cfg.Providers.OpenAI)
	if err != nil {
		slog.Error("Failed to initialize OpenAI client", "error", err)
		os.Exit(1)
	}
	geminiClient, err := llm.NewGeminiClient(cfg.Providers.Gemini)
	if err != nil {
		slog.Error("Failed to initialize Gemini client", "error", err)
		os.Exit(1)
	}
	slog.Info("LLM providers initialized",
		"openai_model", cfg.Providers.OpenAI.Model,
		"gemini_model", cfg.Providers.Gemini.Model)

	// 4. Refinement planner, backed by the configured provider
	var plannerProvider llm.Provider = openaiClient
	if cfg.Providers.Refinement.Provider == "gemini" {
		plannerProvider = geminiClient
	}
	planner := refine.NewPlanner(plannerProvider, cfg.Providers.Refinement.MaxQuestions)

	// 5. Session service
	sessionService := services.NewSessionService(dbClient.Client, planner)
	slog.Info("Services initialized")

	// 6. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, sessionService, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 7. Report renderer and mail delivery
	renderer := report.NewPDFRenderer(cfg.Report)

	mailClient, err := mailer.NewClient(cfg.Mailer)
	if err != nil {
		slog.Error("Failed to initialize mail client", "error", err)
		os.Exit(1)
	}
	notifier := mailer.NewService(mailClient, cfg.DashboardURL)
	slog.Info("Mail delivery initialized", "from", cfg.Mailer.FromEmail)

	// 8. Retention loop
	cleanupService := cleanup.NewService(cfg.Retention, sessionService)
	cleanupService.Start(ctx)

	// 9. Start worker pool (before HTTP server)
	executor := queue.NewResearchExecutor(sessionService, openaiClient, geminiClient, renderer, notifier)
	workerPool := queue.NewWorkerPool(podID, sessionService, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 10. Create HTTP server
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: api.NewServer(dbClient, sessionService, workerPool, executor, podID).Router(),
	}

	// 11. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Inquira started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: wait for active research to finish
	cleanupService.Stop()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete sessions will be orphan-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
