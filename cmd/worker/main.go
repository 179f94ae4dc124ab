package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tour-microservice/internal/config"
	"github.com/tour-microservice/internal/infrastructure/tourapi"
	"github.com/tour-microservice/internal/pkg/logger"
	"github.com/tour-microservice/internal/repository/cache"
	"github.com/tour-microservice/internal/usecase"
	"github.com/tour-microservice/internal/worker"
	"github.com/tour-microservice/internal/worker/stats"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Stats Warmer Worker")
	log.Info("Configuration loaded",
		zap.Duration("refresh_interval", cfg.Worker.StatsRefreshInterval),
		zap.String("tour_api_base_url", cfg.TourAPI.BaseURL))

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize repositories
	callRecorder := tourapi.NewCallRecorder(cfg.TourAPI.CallLogSize)
	tourRepo := tourapi.NewClient(&cfg.TourAPI, callRecorder, log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	// 5. Initialize use cases
	statsUC := usecase.NewStatsUseCase(
		tourRepo,
		cacheRepo,
		log,
		cfg.Cache.StatsCacheTTL,
	)

	// 6. Initialize workers
	statsWarmer := stats.NewWarmer(statsUC, log, cfg.Worker.StatsRefreshInterval)

	// 7. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(statsWarmer)

	// 8. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
