package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"study-assistant/internal/adapter"
	"study-assistant/internal/adapter/extractor"
	"study-assistant/internal/adapter/filestore"
	"study-assistant/internal/adapter/gateway"
	"study-assistant/internal/cache"
	"study-assistant/internal/config"
	"study-assistant/internal/database"
	"study-assistant/internal/domain"
	"study-assistant/internal/handler"
	"study-assistant/internal/logger"
	"study-assistant/internal/middleware"
	"study-assistant/internal/repository"
	"study-assistant/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// multipartOverhead leaves room for form fields around the uploaded file.
const multipartOverhead = 1 << 20

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Redis is optional; without it extracted text is not cached.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis")
	} else {
		appLogger.Warn("Redis cache is not configured. Running without cache.")
	}

	gw, err := gateway.New(context.Background(), cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create generative gateway", zap.Error(err))
	}
	appLogger.Info("Generative gateway initialized", zap.String("provider", cfg.LLM.Provider), zap.String("model", cfg.LLM.Model))

	files, err := filestore.NewLocalFileStore(cfg.Storage.UploadDir)
	if err != nil {
		appLogger.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	// Repositories
	documentRepo := repository.NewDocumentDatabaseAdapter(db)
	flashcardRepo := repository.NewFlashcardDatabaseAdapter(db)
	quizRepo := repository.NewQuizDatabaseAdapter(db)
	activityRepo := repository.NewActivityDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Services
	texts := service.NewDocumentTextService(extractor.NewPDFExtractor(files), cacheAdapter, cfg.Cache.TextTTL)
	documentService := service.NewDocumentService(service.DocumentServiceDeps{
		Documents:      documentRepo,
		Flashcards:     flashcardRepo,
		Quizzes:        quizRepo,
		Files:          files,
		Texts:          texts,
		Summarizer:     service.NewSummarizer(gw),
		Chat:           service.NewChatAnswerer(gw),
		MaxUploadBytes: cfg.Storage.MaxUploadBytes,
	})
	flashcardService := service.NewFlashcardService(flashcardRepo, documentRepo, texts, service.NewFlashcardGenerator(gw), txManager)
	quizService := service.NewQuizService(quizRepo, documentRepo, texts, service.NewQuizGenerator(gw), txManager)
	activityService := service.NewActivityService(activityRepo)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    int(cfg.Storage.MaxUploadBytes) + multipartOverhead,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	handler.RegisterRoutes(app, handler.Handlers{
		Documents:  handler.NewDocumentHandler(documentService),
		Flashcards: handler.NewFlashcardHandler(flashcardService),
		Quizzes:    handler.NewQuizHandler(quizService, activityService),
		Activity:   handler.NewActivityHandler(activityService),
		Health:     handler.NewHealthHandler(db, cacheAdapter),
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
