package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tour-microservice/internal/delivery/http/middleware"
	"github.com/tour-microservice/internal/pkg/errors"
	"github.com/tour-microservice/internal/pkg/utils"
	"github.com/tour-microservice/internal/pkg/validator"
	"github.com/tour-microservice/internal/usecase"
	"github.com/tour-microservice/internal/usecase/dto"
)

// BookmarkHandler обрабатывает запросы закладок
type BookmarkHandler struct {
	bookmarkUC *usecase.BookmarkUseCase
	logger     *zap.Logger
}

// NewBookmarkHandler создает новый экземпляр BookmarkHandler
func NewBookmarkHandler(bookmarkUC *usecase.BookmarkUseCase, logger *zap.Logger) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkUC: bookmarkUC,
		logger:     logger,
	}
}

// ListBookmarks godoc
// @Summary List bookmarks
// @Description Возвращает закладки пользователя, новые первыми
// @Tags Bookmarks
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Идентификатор пользователя"
// @Success 200 {object} utils.SuccessResponse{data=dto.BookmarksResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/bookmarks [get]
func (h *BookmarkHandler) ListBookmarks(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	resp, err := h.bookmarkUC.ListBookmarks(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list bookmarks", zap.String("user_id", userID), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}

// AddBookmark godoc
// @Summary Add bookmark
// @Description Добавляет закладку; повторное добавление той же закладки - не ошибка
// @Tags Bookmarks
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Идентификатор пользователя"
// @Param request body dto.BookmarkRequest true "Закладка"
// @Success 200 {object} utils.SuccessResponse{data=dto.BookmarkStatusResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/bookmarks [post]
func (h *BookmarkHandler) AddBookmark(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req dto.BookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	if err := h.bookmarkUC.AddBookmark(c.Context(), userID, req.ContentID); err != nil {
		h.logger.Error("Failed to add bookmark",
			zap.String("user_id", userID),
			zap.String("content_id", req.ContentID),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.BookmarkStatusResponse{
		ContentID:  req.ContentID,
		Bookmarked: true,
	}, nil)
}

// RemoveBookmark godoc
// @Summary Remove bookmark
// @Description Удаляет закладку; удаление несуществующей - не ошибка
// @Tags Bookmarks
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Идентификатор пользователя"
// @Param contentId path string true "contentId объекта"
// @Success 200 {object} utils.SuccessResponse{data=dto.BookmarkStatusResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/bookmarks/{contentId} [delete]
func (h *BookmarkHandler) RemoveBookmark(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	contentID := c.Params("contentId")

	if err := h.bookmarkUC.RemoveBookmark(c.Context(), userID, contentID); err != nil {
		h.logger.Error("Failed to remove bookmark",
			zap.String("user_id", userID),
			zap.String("content_id", contentID),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.BookmarkStatusResponse{
		ContentID:  contentID,
		Bookmarked: false,
	}, nil)
}

// GetBookmarkStatus godoc
// @Summary Get bookmark status
// @Description Возвращает статус закладки для одного объекта
// @Tags Bookmarks
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Идентификатор пользователя"
// @Param contentId path string true "contentId объекта"
// @Success 200 {object} utils.SuccessResponse{data=dto.BookmarkStatusResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/bookmarks/{contentId}/status [get]
func (h *BookmarkHandler) GetBookmarkStatus(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	contentID := c.Params("contentId")

	resp, err := h.bookmarkUC.IsBookmarked(c.Context(), userID, contentID)
	if err != nil {
		h.logger.Error("Failed to get bookmark status",
			zap.String("user_id", userID),
			zap.String("content_id", contentID),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}
