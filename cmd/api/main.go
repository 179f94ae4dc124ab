package main

// @title Tour Microservice API
// @version 1.0.0
// @description Микросервис-шлюз к публичному туристическому API Кореи (KorService2). Нормализует нестабильный item-or-array конверт upstream, переводит fixed-point координаты в градусы и отдает единообразный JSON.
// @description
// @description Основные возможности:
// @description - Листинг и поиск туристических объектов с фильтрами и пагинацией
// @description - Детали объекта: обзор, изображения, режим работы, pet-информация
// @description - Справочник регионов с кешированием
// @description - Статистика распределения объектов по регионам и типам контента
// @description - Закладки пользователей

// @contact.name API Support
// @contact.email support@tour-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tour-microservice/docs/swagger"
	"github.com/tour-microservice/internal/config"
	httpDelivery "github.com/tour-microservice/internal/delivery/http"
	"github.com/tour-microservice/internal/delivery/http/handler"
	"github.com/tour-microservice/internal/infrastructure/tourapi"
	"github.com/tour-microservice/internal/pkg/logger"
	"github.com/tour-microservice/internal/repository/cache"
	"github.com/tour-microservice/internal/repository/postgres"
	"github.com/tour-microservice/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Tour Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("tour_api_base_url", cfg.TourAPI.BaseURL),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	callRecorder := tourapi.NewCallRecorder(cfg.TourAPI.CallLogSize)
	tourRepo := tourapi.NewClient(&cfg.TourAPI, callRecorder, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	bookmarkRepo := postgres.NewBookmarkRepository(db, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	listingUC := usecase.NewListingUseCase(
		tourRepo,
		cacheRepo,
		bookmarkRepo,
		log,
		cfg.Cache.ListingsCacheTTL,
		cfg.Cache.RegionsCacheTTL,
		10,
	)

	statsUC := usecase.NewStatsUseCase(
		tourRepo,
		cacheRepo,
		log,
		cfg.Cache.StatsCacheTTL,
	)

	bookmarkUC := usecase.NewBookmarkUseCase(bookmarkRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	healthHandler := handler.NewHealthHandler(log, map[string]handler.HealthChecker{
		"postgres": db,
		"redis":    redisClient,
	})
	listingHandler := handler.NewListingHandler(listingUC, log)
	regionHandler := handler.NewRegionHandler(listingUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkUC, log)
	debugHandler := handler.NewDebugHandler(callRecorder, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		healthHandler,
		listingHandler,
		regionHandler,
		statsHandler,
		bookmarkHandler,
		debugHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
