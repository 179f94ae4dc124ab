package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tour-microservice/internal/pkg/utils"
	"github.com/tour-microservice/internal/usecase"
	"github.com/tour-microservice/internal/usecase/dto"
)

// StatsHandler обрабатывает запросы статистики
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetSummary godoc
// @Summary Get stats summary
// @Description Возвращает сводную статистику: топ регионов, топ типов, общее количество
// @Tags Statistics
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.StatsSummary}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.statsUC.Summary(c.Context())
	if err != nil {
		h.logger.Error("Failed to get stats summary", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, summary, nil)
}

// GetRegionStats godoc
// @Summary Get per-region counts
// @Description Возвращает количество объектов по регионам, по убыванию; недоступные регионы отброшены
// @Tags Statistics
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.RegionStatsResponse}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/stats/regions [get]
func (h *StatsHandler) GetRegionStats(c *fiber.Ctx) error {
	counts, err := h.statsUC.RegionCounts(c.Context())
	if err != nil {
		h.logger.Error("Failed to get region stats", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.RegionStatsResponse{Regions: counts}, &utils.Meta{Total: len(counts)})
}

// GetTypeStats godoc
// @Summary Get per-type counts
// @Description Возвращает количество объектов по типам контента, по убыванию
// @Tags Statistics
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.TypeStatsResponse}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/stats/types [get]
func (h *StatsHandler) GetTypeStats(c *fiber.Ctx) error {
	counts, err := h.statsUC.TypeCounts(c.Context())
	if err != nil {
		h.logger.Error("Failed to get type stats", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.TypeStatsResponse{Types: counts}, &utils.Meta{Total: len(counts)})
}
