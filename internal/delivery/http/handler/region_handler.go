package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tour-microservice/internal/pkg/utils"
	"github.com/tour-microservice/internal/usecase"
)

// RegionHandler обрабатывает запросы справочника регионов
type RegionHandler struct {
	listingUC *usecase.ListingUseCase
	logger    *zap.Logger
}

// NewRegionHandler создает новый экземпляр RegionHandler
func NewRegionHandler(listingUC *usecase.ListingUseCase, logger *zap.Logger) *RegionHandler {
	return &RegionHandler{
		listingUC: listingUC,
		logger:    logger,
	}
}

// ListRegions godoc
// @Summary List regions
// @Description Возвращает справочник регионов; parent непустой - районы внутри региона
// @Tags Regions
// @Accept json
// @Produce json
// @Param parent query string false "Код родительского региона"
// @Success 200 {object} utils.SuccessResponse{data=dto.RegionsResponse}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/regions [get]
func (h *RegionHandler) ListRegions(c *fiber.Ctx) error {
	parentCode := c.Query("parent")

	resp, err := h.listingUC.ListRegions(c.Context(), parentCode)
	if err != nil {
		h.logger.Error("Failed to list regions", zap.String("parent_code", parentCode), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}
