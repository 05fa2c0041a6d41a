package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/fireflies-bridge/internal/adapter/handler"
	"github.com/johnquangdev/fireflies-bridge/internal/adapter/repository"
	"github.com/johnquangdev/fireflies-bridge/internal/infrastructure/cache"
	"github.com/johnquangdev/fireflies-bridge/internal/infrastructure/database"
	"github.com/johnquangdev/fireflies-bridge/internal/infrastructure/external/projectbrief"
	"github.com/johnquangdev/fireflies-bridge/internal/infrastructure/http/server"
	briefUsecase "github.com/johnquangdev/fireflies-bridge/internal/usecase/brief"
	meetingUsecase "github.com/johnquangdev/fireflies-bridge/internal/usecase/meeting"
	projectUsecase "github.com/johnquangdev/fireflies-bridge/internal/usecase/project"
	pkgai "github.com/johnquangdev/fireflies-bridge/pkg/ai"
	"github.com/johnquangdev/fireflies-bridge/pkg/config"
	pkglogger "github.com/johnquangdev/fireflies-bridge/pkg/logger"
)

// @title           Fireflies Bridge API
// @version         1.0
// @description     Sends the Fireflies notetaker into meetings, stores transcripts and validates project briefs
// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg.Server.LogLevel, cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	e := server.New(cfg, logger)

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if cfg.Database.AutoMigrate {
		log.Println("🔄 Applying embedded migrations...")
		if _, err := database.Migrate(db, cfg.Database.Driver); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; run cmd/migrate to manage the schema")
	}

	// Initialize cache store (Redis when REDIS_ADDR is set, in-process otherwise)
	log.Println("📦 Connecting to cache store...")
	store, err := cache.New(context.Background(), cfg.Redis, "fireflies:")
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer store.Close()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	// Initialize external clients
	log.Println("🤖 Initializing external clients...")
	firefliesClient := pkgai.NewFirefliesClient(&cfg.Fireflies)
	if cfg.Fireflies.APIKey == "" {
		log.Println("⚠️  FIREFLIES_API_KEY not set, bot invites and transcript fetches will fail")
	}
	completionClient := pkgai.NewCompletionClient(&cfg.OpenAI)
	if !completionClient.Configured() {
		log.Println("⚠️  OPENAI_API_KEY not set, brief validation is unavailable")
	}
	briefClient := projectbrief.NewClient(&cfg.ProjectBrief)
	verifier := pkgai.NewVerifier(cfg.VerifySignature(), cfg.Fireflies.WebhookSecret, logger)

	// Initialize services
	log.Println("✨ Initializing services...")
	meetingService := meetingUsecase.NewMeetingService(meetingRepo, firefliesClient, store, cfg.Cache.LazyPullCooldown, logger)
	projectService := projectUsecase.NewProjectService(projectRepo, briefClient, cfg.ProjectBrief.CacheTTL, logger)
	validatorService := briefUsecase.NewValidatorService(projectRepo, completionClient, briefUsecase.Options{
		Enabled:  cfg.OpenAI.ValidationEnabled,
		CacheTTL: cfg.OpenAI.CacheTTL,
	}, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	meetingHandler := handler.NewMeetingHandler(meetingService, logger)
	webhookHandler := handler.NewWebhookHandler(meetingService, verifier, logger)
	projectHandler := handler.NewProjectHandler(projectService, validatorService, logger)
	adminHandler := handler.NewAdminHandler(meetingService, func() error {
		return database.Reset(db, cfg.Database.Driver)
	}, logger)
	if cfg.IsDevelopment() {
		log.Println("⚠️  Test utility routes enabled under /test-utils")
	}

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler, webhookHandler, projectHandler, adminHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
