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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	pkgvalidator "github.com/johnquangdev/interview-practice/pkg/validator"

	"github.com/johnquangdev/interview-practice/internal/adapter/handler"
	"github.com/johnquangdev/interview-practice/internal/adapter/repository"
	"github.com/johnquangdev/interview-practice/internal/domain/repositories"
	"github.com/johnquangdev/interview-practice/internal/infrastructure/cache"
	"github.com/johnquangdev/interview-practice/internal/infrastructure/database"
	"github.com/johnquangdev/interview-practice/internal/infrastructure/events"
	httpmw "github.com/johnquangdev/interview-practice/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/interview-practice/internal/infrastructure/metrics"
	"github.com/johnquangdev/interview-practice/internal/infrastructure/storage"
	"github.com/johnquangdev/interview-practice/internal/usecase/question"
	"github.com/johnquangdev/interview-practice/internal/usecase/scoring"
	"github.com/johnquangdev/interview-practice/internal/usecase/session"
	"github.com/johnquangdev/interview-practice/internal/usecase/voice"
	pkgai "github.com/johnquangdev/interview-practice/pkg/ai"
	"github.com/johnquangdev/interview-practice/pkg/config"
	"github.com/johnquangdev/interview-practice/pkg/random"
)

// @title           Interview Practice API
// @version         1.0
// @description     Mock interview sessions with question selection, answer scoring and progress dashboards

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, httpmw.UserIDHeader, pkgai.SignatureHeader},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")
	ctx := context.Background()

	metrics.Register(prometheus.DefaultRegisterer)

	// Question bank
	bank := question.NewDefaultBank()
	if cfg.Session.QuestionBankPath != "" {
		log.Printf("📚 Loading question bank from %s...", cfg.Session.QuestionBankPath)
		bank, err = question.LoadBank(cfg.Session.QuestionBankPath)
		if err != nil {
			log.Fatalf("Failed to load question bank: %v", err)
		}
	}
	log.Printf("📚 Question bank ready with %d questions", bank.Size())

	rng := random.New(cfg.Scoring.Seed)
	selector := question.NewSelector(bank, rng)

	// Scoring provider
	log.Println("🤖 Initializing scoring provider...")
	mockScorer := scoring.NewMockScorer(rng, cfg.Scoring.MockLatency)
	var inner scoring.Provider = mockScorer
	if cfg.Scoring.Provider == config.ScoringRemote {
		inner = scoring.NewRemoteScorer(pkgai.NewAnalyzeClient(&cfg.Scoring), cfg.Scoring.MaxRetries, logger)
		log.Printf("✅ Remote scoring via %s", cfg.Scoring.RemoteURL)
	} else {
		log.Println("⚠️  Scoring running in MOCK mode")
	}
	scorer := scoring.NewGuard(inner, cfg.Scoring.Provider, cfg.Scoring.Timeout, logger)

	// Session repository
	sessionRepo, closeRepo := newSessionRepository(ctx, cfg)
	defer closeRepo()

	// Events
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.Events.Enabled {
		log.Println("📨 Connecting to message broker...")
		amqpPublisher, err := events.NewAMQPPublisher(cfg.Events.URL, cfg.Events.Exchange, logger)
		if err != nil {
			log.Fatalf("Failed to connect to message broker: %v", err)
		}
		publisher = amqpPublisher
	}
	defer publisher.Close()

	// Object storage
	var archive *storage.Archive
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		minioClient, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}
		archive = storage.NewArchive(minioClient)
	}

	// Services
	log.Println("⚙️  Initializing services...")
	sessionCfg := session.Config{
		MinQuestions: cfg.Session.MinQuestions,
		MaxQuestions: cfg.Session.MaxQuestions,
		Events:       publisher,
		Logger:       logger,
	}
	var audioArchiver voice.AudioArchiver
	var reportArchive handler.ReportArchive
	if archive != nil {
		sessionCfg.Archiver = archive
		audioArchiver = archive
		reportArchive = archive
	}
	sessionService := session.NewSessionService(sessionRepo, selector, scorer, sessionCfg)
	voiceService := voice.NewService(voice.NewSimulatedTranscriber(voice.DefaultDelay), audioArchiver, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg,
		handler.NewSessionHandler(sessionService, voiceService, logger),
		handler.NewCatalogHandler(bank, logger),
		handler.NewAnalysisHandler(mockScorer, cfg.Scoring.Secret, logger),
		handler.NewReportHandler(reportArchive, cfg.Storage.URLExpiry, logger),
		prometheus.DefaultGatherer,
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// newSessionRepository connects the configured session store and returns its close func
func newSessionRepository(ctx context.Context, cfg *config.Config) (repositories.SessionRepository, func()) {
	switch cfg.Session.Store {
	case config.StoreRedis:
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		return repository.NewRedisSessionRepository(redisClient, cfg.Session.TTL, "interview"), func() {
			redisClient.Close()
		}

	case config.StorePostgres:
		log.Println("📦 Connecting to database...")
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		// Production deployments should manage schema with cmd/migrate
		if cfg.Database.AutoMigrate {
			if cfg.Server.Environment == "production" {
				log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or run cmd/migrate.")
			}
			if err := database.AutoMigrate(db); err != nil {
				log.Fatalf("Failed to run migrations: %v", err)
			}
		} else {
			log.Println("🔄 Skipping migrations; run cmd/migrate to manage the schema")
		}
		return repository.NewSessionRepository(db), func() {
			database.CloseDB(db)
		}

	default:
		log.Println("📦 Using in-memory session store")
		store := cache.NewMemoryStore(time.Minute)
		return repository.NewMemorySessionRepository(store, cfg.Session.TTL), store.Close
	}
}
