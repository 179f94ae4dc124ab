package usecase

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/tour-microservice/internal/domain"
	"github.com/tour-microservice/internal/domain/repository"
	"github.com/tour-microservice/internal/pkg/errors"
	"github.com/tour-microservice/internal/pkg/filter"
	"github.com/tour-microservice/internal/pkg/utils"
	"github.com/tour-microservice/internal/usecase/dto"
)

// ListingUseCase обрабатывает бизнес-логику листинга и поиска объектов
type ListingUseCase struct {
	tourRepo     repository.TourAPIRepository
	cacheRepo    repository.CacheRepository
	bookmarkRepo repository.BookmarkRepository
	logger       *zap.Logger
	listingsTTL  time.Duration
	regionsTTL   time.Duration
	pageSize     int
}

// NewListingUseCase создает новый экземпляр ListingUseCase
func NewListingUseCase(
	tourRepo repository.TourAPIRepository,
	cacheRepo repository.CacheRepository,
	bookmarkRepo repository.BookmarkRepository,
	logger *zap.Logger,
	listingsTTL time.Duration,
	regionsTTL time.Duration,
	pageSize int,
) *ListingUseCase {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &ListingUseCase{
		tourRepo:     tourRepo,
		cacheRepo:    cacheRepo,
		bookmarkRepo: bookmarkRepo,
		logger:       logger,
		listingsTTL:  listingsTTL,
		regionsTTL:   regionsTTL,
		pageSize:     pageSize,
	}
}

// ListRegions возвращает справочник регионов, используя кеш когда возможно
func (uc *ListingUseCase) ListRegions(ctx context.Context, parentCode string) (*dto.RegionsResponse, error) {
	cached, err := uc.cacheRepo.GetRegions(ctx, parentCode)
	if err != nil {
		uc.logger.Warn("Failed to get regions from cache", zap.Error(err))
	}
	if cached != nil {
		uc.logger.Debug("Regions fetched from cache", zap.String("parent_code", parentCode))
		return &dto.RegionsResponse{Regions: cached, Total: len(cached)}, nil
	}

	regions, err := uc.tourRepo.ListRegions(ctx, parentCode)
	if err != nil {
		uc.logger.Error("Failed to list regions", zap.String("parent_code", parentCode), zap.Error(err))
		return nil, err
	}

	if err := uc.cacheRepo.SetRegions(ctx, parentCode, regions, uc.regionsTTL); err != nil {
		uc.logger.Warn("Failed to cache regions", zap.Error(err))
	}

	return &dto.RegionsResponse{Regions: regions, Total: len(regions)}, nil
}

// ListListings возвращает страницу листинга по состоянию фильтров.
// Страница кешируется по каноническому ключу фильтра; флаги закладок
// накладываются после кеша, т.к. они привязаны к пользователю.
func (uc *ListingUseCase) ListListings(ctx context.Context, state filter.State, userID string) (*dto.ListingPageResponse, error) {
	key := cacheKeyFor(state)

	page, err := uc.cacheRepo.GetListingPage(ctx, key)
	if err != nil {
		uc.logger.Warn("Failed to get listing page from cache", zap.String("key", key), zap.Error(err))
	}

	if page == nil {
		page, err = uc.fetchPage(ctx, state)
		if err != nil {
			return nil, err
		}

		if err := uc.cacheRepo.SetListingPage(ctx, key, page, uc.listingsTTL); err != nil {
			uc.logger.Warn("Failed to cache listing page", zap.String("key", key), zap.Error(err))
		}
	} else {
		uc.logger.Debug("Listing page fetched from cache", zap.String("key", key))
	}

	items, err := uc.decorate(ctx, userID, page.Items)
	if err != nil {
		return nil, err
	}

	return &dto.ListingPageResponse{
		Items:      items,
		TotalCount: page.TotalCount,
		Page:       state.Page,
		PageSize:   uc.pageSize,
		Filter:     state.Encode(),
	}, nil
}

// GetListing возвращает детали объекта с флагом закладки.
// При непустом contentTypeID детали дополняются режимом работы;
// недоступный intro не валит страницу деталей.
func (uc *ListingUseCase) GetListing(ctx context.Context, contentID, contentTypeID, userID string) (*dto.ListingDetailResponse, error) {
	detail, err := uc.tourRepo.GetDetail(ctx, contentID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListingDetailResponse{ListingDetail: *detail}

	if domain.IsValidContentType(contentTypeID) {
		intro, err := uc.tourRepo.GetIntro(ctx, contentID, contentTypeID)
		if err != nil {
			uc.logger.Warn("Failed to merge intro into detail",
				zap.String("content_id", contentID),
				zap.Error(err))
		} else {
			resp.Intro = intro
		}
	}

	if userID != "" {
		bookmarked, err := uc.bookmarkRepo.IsBookmarked(ctx, userID, contentID)
		if err != nil {
			uc.logger.Warn("Failed to check bookmark", zap.String("content_id", contentID), zap.Error(err))
		} else {
			resp.IsBookmarked = bookmarked
		}
	}

	return resp, nil
}

// GetNearby возвращает объекты вокруг опорного объекта, отсортированные
// по расстоянию. Опорный объект без валидных координат - ошибка координат.
func (uc *ListingUseCase) GetNearby(ctx context.Context, contentID string, radiusMeters int) (*dto.NearbyResponse, error) {
	detail, err := uc.tourRepo.GetDetail(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if !detail.HasCoordinates || !utils.ValidateCoordinates(detail.Coordinate.Lat, detail.Coordinate.Lon) {
		return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"content_id": contentID,
		})
	}

	page, err := uc.tourRepo.ListNearby(ctx, domain.NearbyQuery{
		Lon:          detail.Coordinate.Lon,
		Lat:          detail.Coordinate.Lat,
		RadiusMeters: radiusMeters,
		PageSize:     uc.pageSize,
		PageNo:       1,
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.NearbyItemDTO, 0, len(page.Items))
	for _, item := range page.Items {
		// Сам опорный объект в выдачу не попадает
		if item.ContentID == contentID {
			continue
		}

		nearby := dto.NearbyItemDTO{ListingItem: item}
		if item.HasCoordinates {
			nearby.DistanceKm = utils.HaversineDistance(
				detail.Coordinate.Lat, detail.Coordinate.Lon,
				item.Coordinate.Lat, item.Coordinate.Lon,
			)
		}
		items = append(items, nearby)
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].DistanceKm < items[b].DistanceKm
	})

	return &dto.NearbyResponse{
		Origin: contentID,
		Items:  items,
		Total:  len(items),
	}, nil
}

// GetImages возвращает изображения объекта
func (uc *ListingUseCase) GetImages(ctx context.Context, contentID string) (*dto.ImagesResponse, error) {
	images, err := uc.tourRepo.GetImages(ctx, contentID, uc.pageSize)
	if err != nil {
		return nil, err
	}
	return &dto.ImagesResponse{Images: images, Total: len(images)}, nil
}

// GetIntro возвращает режим работы объекта
func (uc *ListingUseCase) GetIntro(ctx context.Context, contentID, contentTypeID string) (*domain.OperatingInfo, error) {
	return uc.tourRepo.GetIntro(ctx, contentID, contentTypeID)
}

// GetPetInfo возвращает pet-информацию; (nil, nil) - данных нет
func (uc *ListingUseCase) GetPetInfo(ctx context.Context, contentID string) (*domain.PetInfo, error) {
	return uc.tourRepo.GetPetInfo(ctx, contentID)
}

// fetchPage выбирает между поиском и листингом по наличию ключевого слова
func (uc *ListingUseCase) fetchPage(ctx context.Context, state filter.State) (*domain.ListingPage, error) {
	// Upstream принимает только один тип контента на запрос;
	// несколько категорий трактуем как "без фильтра по типу".
	contentTypeID := ""
	if len(state.CategoryIDs) == 1 {
		contentTypeID = state.CategoryIDs[0]
	}

	if state.Keyword != "" {
		return uc.tourRepo.SearchByKeyword(ctx, domain.SearchQuery{
			Keyword:       state.Keyword,
			AreaCode:      state.RegionCode,
			ContentTypeID: contentTypeID,
			Arrange:       state.Arrange(),
			PageSize:      uc.pageSize,
			PageNo:        state.Page,
		})
	}

	return uc.tourRepo.ListByArea(ctx, domain.ListQuery{
		AreaCode:      state.RegionCode,
		ContentTypeID: contentTypeID,
		Arrange:       state.Arrange(),
		PageSize:      uc.pageSize,
		PageNo:        state.Page,
	})
}

// decorate накладывает флаги закладок на элементы страницы.
// Ошибка закладок не валит листинг: флаги остаются false.
func (uc *ListingUseCase) decorate(ctx context.Context, userID string, items []domain.ListingItem) ([]dto.ListingItemDTO, error) {
	result := make([]dto.ListingItemDTO, len(items))
	for i, item := range items {
		result[i] = dto.ListingItemDTO{ListingItem: item}
	}

	if userID == "" || len(items) == 0 {
		return result, nil
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ContentID
	}

	set, err := uc.bookmarkRepo.BookmarkedSet(ctx, userID, ids)
	if err != nil {
		uc.logger.Warn("Failed to load bookmarked set", zap.String("user_id", userID), zap.Error(err))
		return result, nil
	}

	for i := range result {
		result[i].IsBookmarked = set[result[i].ContentID]
	}

	return result, nil
}

func cacheKeyFor(state filter.State) string {
	if key := state.Encode(); key != "" {
		return key
	}
	return "default"
}
