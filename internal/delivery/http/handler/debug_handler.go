package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tour-microservice/internal/infrastructure/tourapi"
	"github.com/tour-microservice/internal/pkg/utils"
)

// DebugHandler отдает диагностическую информацию о вызовах upstream API
type DebugHandler struct {
	recorder *tourapi.CallRecorder
	logger   *zap.Logger
}

// NewDebugHandler создает новый экземпляр DebugHandler
func NewDebugHandler(recorder *tourapi.CallRecorder, logger *zap.Logger) *DebugHandler {
	return &DebugHandler{
		recorder: recorder,
		logger:   logger,
	}
}

// GetTourAPICalls godoc
// @Summary Recent upstream API calls
// @Description Возвращает последние вызовы upstream API, новые первыми: endpoint, попытки, длительность, исход
// @Tags Debug
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]tourapi.CallRecord}
// @Router /api/v1/debug/tourapi/calls [get]
func (h *DebugHandler) GetTourAPICalls(c *fiber.Ctx) error {
	calls := h.recorder.Snapshot()
	return utils.SendSuccess(c, calls, &utils.Meta{Total: len(calls)})
}
