package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthChecker - одна проверяемая зависимость сервиса
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler отвечает на health-пробы, опрашивая зависимости
type HealthHandler struct {
	checkers map[string]HealthChecker
	logger   *zap.Logger
}

// NewHealthHandler создает новый экземпляр HealthHandler
func NewHealthHandler(logger *zap.Logger, checkers map[string]HealthChecker) *HealthHandler {
	return &HealthHandler{
		checkers: checkers,
		logger:   logger,
	}
}

// GetHealth godoc
// @Summary Health check
// @Description Проверяет доступность сервиса и его зависимостей
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	status := "healthy"
	deps := fiber.Map{}

	for name, checker := range h.checkers {
		if err := checker.Health(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			deps[name] = "unhealthy"
			status = "degraded"
			continue
		}
		deps[name] = "healthy"
	}

	code := fiber.StatusOK
	if status != "healthy" {
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":       status,
		"dependencies": deps,
		"time":         time.Now().UTC(),
	})
}
