package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"flexdeck/internal/auth"
	"flexdeck/internal/config"
	"flexdeck/internal/handler"
	"flexdeck/internal/middleware"
	"flexdeck/internal/repository/postgres"
	"flexdeck/internal/service"
	"flexdeck/internal/service/imagecheck"
	"flexdeck/internal/service/scheduler"
	"flexdeck/internal/templates"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, 7)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create JWT verifier for Supabase authentication
	jwtVerifier, err := auth.NewJWTVerifier(cfg.SupabaseJWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	docRepo := postgres.NewDocRepository(repoConfig)
	versionRepo := postgres.NewVersionRepository(repoConfig)
	shareRepo := postgres.NewShareRepository(repoConfig)
	templateRepo := postgres.NewTemplateRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Initialize template seed registry
	registry, err := templates.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to initialize template registry: %v", err)
	}
	logger.Info("template registry initialized")

	// Create services
	saves := scheduler.NewSaveScheduler(2*time.Second, logger)
	docService := service.NewDocumentService(docRepo, templateRepo, registry, saves, logger)
	publishService := service.NewPublishService(docRepo, versionRepo, shareRepo, txManager, cfg.LIFFID, cfg.ShareBaseURL, logger)
	templateService := service.NewTemplateService(templateRepo, docRepo, logger)
	imageChecker := imagecheck.NewChecker(8*time.Second, logger)

	// Create handlers
	docHandler := handler.NewDocumentHandler(docService, logger)
	publishHandler := handler.NewPublishHandler(publishService, logger)
	shareHandler := handler.NewShareHandler(publishService, logger)
	templateHandler := handler.NewTemplateHandler(templateService, logger)
	imageHandler := handler.NewImageHandler(imageChecker, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", docHandler.HealthCheck)

	// Document routes
	mux.HandleFunc("POST /api/docs", docHandler.CreateDocument)
	mux.HandleFunc("GET /api/docs", docHandler.ListDocuments)
	mux.HandleFunc("GET /api/docs/{id}", docHandler.GetDocument)
	mux.HandleFunc("PATCH /api/docs/{id}", docHandler.UpdateDocument)
	mux.HandleFunc("DELETE /api/docs/{id}", docHandler.DeleteDocument)

	// Publish and version routes
	mux.HandleFunc("POST /api/docs/{id}/publish", publishHandler.PublishDocument)
	mux.HandleFunc("GET /api/docs/{id}/versions", publishHandler.ListVersions)
	mux.HandleFunc("GET /api/versions/{id}", publishHandler.GetVersion)

	// Share routes
	mux.HandleFunc("GET /api/docs/{id}/active-share", shareHandler.GetActiveShare)
	mux.HandleFunc("GET /api/docs/{id}/share-messages", shareHandler.GetShareMessages)
	mux.HandleFunc("GET /api/share/{token}", shareHandler.ResolveShare)            // public
	mux.HandleFunc("GET /api/docs/{id}/active-token", shareHandler.GetActiveToken) // public

	// Template routes
	mux.HandleFunc("GET /api/templates", templateHandler.ListTemplates)
	mux.HandleFunc("POST /api/templates", templateHandler.CreateTemplate)
	mux.HandleFunc("DELETE /api/templates/{id}", templateHandler.DeleteTemplate)
	mux.HandleFunc("POST /api/templates/{id}/clone", templateHandler.CloneTemplate)

	// Image check route
	mux.HandleFunc("POST /api/images/check", imageHandler.CheckImage)

	// Build middleware chain
	var httpHandler http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	httpHandler = middleware.AuthMiddleware(jwtVerifier)(httpHandler)
	httpHandler = middleware.Recovery(logger)(httpHandler)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal, then drain in-flight requests and
	// flush any debounced saves before the pool closes
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
	if err := saves.Close(shutdownCtx); err != nil {
		logger.Error("save flush failed", "error", err)
	}

	logger.Info("server stopped")
}
