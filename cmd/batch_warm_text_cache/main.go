package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"study-assistant/internal/adapter"
	"study-assistant/internal/adapter/extractor"
	"study-assistant/internal/adapter/filestore"
	"study-assistant/internal/cache"
	"study-assistant/internal/config"
	"study-assistant/internal/database"
	"study-assistant/internal/logger"
	"study-assistant/internal/repository"
	"study-assistant/internal/service"

	"go.uber.org/zap"
)

func main() {
	concurrency := flag.Int("concurrency", 4, "number of documents extracted in parallel")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		return
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		return
	}
	defer logger.Sync()
	l := logger.Get()

	// Without a cache there is nothing to warm.
	if cfg.Redis.Address == "" {
		l.Fatal("Redis cache is not configured; nothing to warm")
	}
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		l.Fatal("Failed to initialize Redis Client", zap.Error(err))
	}
	defer redisClient.Close()

	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	files, err := filestore.NewLocalFileStore(cfg.Storage.UploadDir)
	if err != nil {
		l.Fatal("Failed to open upload directory", zap.Error(err))
	}

	texts := service.NewDocumentTextService(
		extractor.NewPDFExtractor(files),
		adapter.NewRedisCacheAdapter(redisClient),
		cfg.Cache.TextTTL,
	)
	batchSvc := service.NewBatchService(repository.NewDocumentDatabaseAdapter(db), texts)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := batchSvc.WarmTextCache(ctx, *concurrency); err != nil {
		l.Fatal("Batch process failed", zap.Error(err))
	}
	l.Info("Batch process completed successfully.")
}
