package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tour-microservice/internal/delivery/http/middleware"
	"github.com/tour-microservice/internal/domain"
	"github.com/tour-microservice/internal/pkg/errors"
	"github.com/tour-microservice/internal/pkg/filter"
	"github.com/tour-microservice/internal/pkg/utils"
	"github.com/tour-microservice/internal/usecase"
)

// ListingHandler обрабатывает запросы листинга и деталей объектов
type ListingHandler struct {
	listingUC *usecase.ListingUseCase
	logger    *zap.Logger
}

// NewListingHandler создает новый экземпляр ListingHandler
func NewListingHandler(listingUC *usecase.ListingUseCase, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{
		listingUC: listingUC,
		logger:    logger,
	}
}

// ListListings godoc
// @Summary List tourism listings
// @Description Возвращает страницу листинга по фильтрам: регион, категории, ключевое слово, сортировка
// @Tags Listings
// @Accept json
// @Produce json
// @Param keyword query string false "Ключевое слово поиска"
// @Param region query string false "Код региона"
// @Param categories query string false "Типы контента через запятую"
// @Param sort query string false "Сортировка: latest или name"
// @Param page query int false "Номер страницы, с 1"
// @Success 200 {object} utils.SuccessResponse{data=dto.ListingPageResponse}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/listings [get]
func (h *ListingHandler) ListListings(c *fiber.Ctx) error {
	state := filter.Parse(queryValues(c))

	resp, err := h.listingUC.ListListings(c.Context(), state, middleware.UserID(c))
	if err != nil {
		h.logger.Error("Failed to list listings", zap.String("filter", state.Encode()), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{
		Total: resp.TotalCount,
		Page:  resp.Page,
		Limit: resp.PageSize,
	})
}

// SearchListings godoc
// @Summary Search listings by keyword
// @Description Поиск объектов по ключевому слову; пустое слово отклоняется без обращения к upstream
// @Tags Listings
// @Accept json
// @Produce json
// @Param keyword query string true "Ключевое слово"
// @Param region query string false "Код региона"
// @Param page query int false "Номер страницы, с 1"
// @Success 200 {object} utils.SuccessResponse{data=dto.ListingPageResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/search [get]
func (h *ListingHandler) SearchListings(c *fiber.Ctx) error {
	state := filter.Parse(queryValues(c))
	if state.Keyword == "" {
		return utils.SendError(c, errors.ErrBlankKeyword)
	}

	resp, err := h.listingUC.ListListings(c.Context(), state, middleware.UserID(c))
	if err != nil {
		h.logger.Error("Failed to search listings", zap.String("keyword", state.Keyword), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{
		Total: resp.TotalCount,
		Page:  resp.Page,
		Limit: resp.PageSize,
	})
}

// GetListing godoc
// @Summary Get listing detail
// @Description Возвращает детали объекта с обзором и флагом закладки; с contentTypeId детали дополняются режимом работы
// @Tags Listings
// @Accept json
// @Produce json
// @Param id path string true "contentId объекта"
// @Param contentTypeId query string false "Тип контента для подгрузки режима работы"
// @Success 200 {object} utils.SuccessResponse{data=dto.ListingDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/listings/{id} [get]
func (h *ListingHandler) GetListing(c *fiber.Ctx) error {
	contentID := c.Params("id")

	resp, err := h.listingUC.GetListing(c.Context(), contentID, c.Query("contentTypeId"), middleware.UserID(c))
	if err != nil {
		h.logger.Error("Failed to get listing", zap.String("content_id", contentID), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// GetNearby godoc
// @Summary Get listings near a reference listing
// @Description Возвращает объекты вокруг опорного объекта, отсортированные по расстоянию
// @Tags Listings
// @Accept json
// @Produce json
// @Param id path string true "contentId опорного объекта"
// @Param radius query int false "Радиус поиска в метрах, по умолчанию 1000"
// @Success 200 {object} utils.SuccessResponse{data=dto.NearbyResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/listings/{id}/nearby [get]
func (h *ListingHandler) GetNearby(c *fiber.Ctx) error {
	contentID := c.Params("id")
	radius := c.QueryInt("radius")

	resp, err := h.listingUC.GetNearby(c.Context(), contentID, radius)
	if err != nil {
		h.logger.Error("Failed to get nearby listings", zap.String("content_id", contentID), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}

// GetImages godoc
// @Summary Get listing images
// @Description Возвращает изображения объекта; пустой список - норма
// @Tags Listings
// @Accept json
// @Produce json
// @Param id path string true "contentId объекта"
// @Success 200 {object} utils.SuccessResponse{data=dto.ImagesResponse}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/listings/{id}/images [get]
func (h *ListingHandler) GetImages(c *fiber.Ctx) error {
	contentID := c.Params("id")

	resp, err := h.listingUC.GetImages(c.Context(), contentID)
	if err != nil {
		h.logger.Error("Failed to get images", zap.String("content_id", contentID), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}

// GetIntro godoc
// @Summary Get listing operating info
// @Description Возвращает режим работы / парковку; имена полей зависят от типа контента
// @Tags Listings
// @Accept json
// @Produce json
// @Param id path string true "contentId объекта"
// @Param contentTypeId query string true "Тип контента объекта"
// @Success 200 {object} utils.SuccessResponse{data=domain.OperatingInfo}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/listings/{id}/intro [get]
func (h *ListingHandler) GetIntro(c *fiber.Ctx) error {
	contentID := c.Params("id")
	contentTypeID := c.Query("contentTypeId")

	if !domain.IsValidContentType(contentTypeID) {
		return utils.SendError(c, errors.ErrInvalidParameter.WithDetails(map[string]interface{}{
			"parameter": "contentTypeId",
			"value":     contentTypeID,
		}))
	}

	info, err := h.listingUC.GetIntro(c.Context(), contentID, contentTypeID)
	if err != nil {
		h.logger.Error("Failed to get intro", zap.String("content_id", contentID), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, info, nil)
}

// GetPetInfo godoc
// @Summary Get pet tour info
// @Description Возвращает информацию о посещении с питомцами; отсутствие данных отдается как null
// @Tags Listings
// @Accept json
// @Produce json
// @Param id path string true "contentId объекта"
// @Success 200 {object} utils.SuccessResponse{data=domain.PetInfo}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/listings/{id}/pet [get]
func (h *ListingHandler) GetPetInfo(c *fiber.Ctx) error {
	contentID := c.Params("id")

	info, err := h.listingUC.GetPetInfo(c.Context(), contentID)
	if err != nil {
		h.logger.Error("Failed to get pet info", zap.String("content_id", contentID), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, info, nil)
}

// queryValues переводит query-параметры fiber в url.Values для кодека фильтров
func queryValues(c *fiber.Ctx) url.Values {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})
	return values
}
