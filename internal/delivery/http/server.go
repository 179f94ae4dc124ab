package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/tour-microservice/internal/config"
	"github.com/tour-microservice/internal/delivery/http/handler"
	"github.com/tour-microservice/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	healthHandler   *handler.HealthHandler
	listingHandler  *handler.ListingHandler
	regionHandler   *handler.RegionHandler
	statsHandler    *handler.StatsHandler
	bookmarkHandler *handler.BookmarkHandler
	debugHandler    *handler.DebugHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	healthHandler *handler.HealthHandler,
	listingHandler *handler.ListingHandler,
	regionHandler *handler.RegionHandler,
	statsHandler *handler.StatsHandler,
	bookmarkHandler *handler.BookmarkHandler,
	debugHandler *handler.DebugHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Tour Microservice",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		healthHandler:   healthHandler,
		listingHandler:  listingHandler,
		regionHandler:   regionHandler,
		statsHandler:    statsHandler,
		bookmarkHandler: bookmarkHandler,
		debugHandler:    debugHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(middleware.Identity())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.healthHandler.GetHealth)

	// Region directory
	api.Get("/regions", s.regionHandler.ListRegions)

	// Listings and search
	api.Get("/listings", s.listingHandler.ListListings)
	api.Get("/search", s.listingHandler.SearchListings)
	api.Get("/listings/:id", s.listingHandler.GetListing)
	api.Get("/listings/:id/images", s.listingHandler.GetImages)
	api.Get("/listings/:id/intro", s.listingHandler.GetIntro)
	api.Get("/listings/:id/pet", s.listingHandler.GetPetInfo)
	api.Get("/listings/:id/nearby", s.listingHandler.GetNearby)

	// Stats
	api.Get("/stats", s.statsHandler.GetSummary)
	api.Get("/stats/regions", s.statsHandler.GetRegionStats)
	api.Get("/stats/types", s.statsHandler.GetTypeStats)

	// Bookmarks - требуют идентифицированного пользователя
	bookmarks := api.Group("/bookmarks", middleware.RequireIdentity())
	bookmarks.Get("/", s.bookmarkHandler.ListBookmarks)
	bookmarks.Post("/", s.bookmarkHandler.AddBookmark)
	bookmarks.Get("/:contentId/status", s.bookmarkHandler.GetBookmarkStatus)
	bookmarks.Delete("/:contentId", s.bookmarkHandler.RemoveBookmark)

	// Debug
	debug := api.Group("/debug")
	debug.Get("/tourapi/calls", s.debugHandler.GetTourAPICalls)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
