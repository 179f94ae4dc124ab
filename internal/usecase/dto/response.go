package dto

import (
	"time"

	"github.com/tour-microservice/internal/domain"
)

// ListingItemDTO - элемент листинга с флагом закладки текущего пользователя
type ListingItemDTO struct {
	domain.ListingItem
	IsBookmarked bool `json:"is_bookmarked"`
}

// ListingPageResponse - страница листинга с метаданными пагинации.
// Filter - каноническая query-строка фильтров, пригодная для шаринга.
type ListingPageResponse struct {
	Items      []ListingItemDTO `json:"items"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Filter     string           `json:"filter,omitempty"`
}

// ListingDetailResponse - страница деталей объекта.
// Intro присутствует, если детали запрошены с contentTypeId.
type ListingDetailResponse struct {
	domain.ListingDetail
	Intro        *domain.OperatingInfo `json:"intro,omitempty"`
	IsBookmarked bool                  `json:"is_bookmarked"`
}

// NearbyItemDTO - объект рядом с опорной точкой
type NearbyItemDTO struct {
	domain.ListingItem
	DistanceKm float64 `json:"distance_km"`
}

// NearbyResponse - объекты вокруг опорного объекта, ближние первыми
type NearbyResponse struct {
	Origin string          `json:"origin"`
	Items  []NearbyItemDTO `json:"items"`
	Total  int             `json:"total"`
}

// RegionsResponse - справочник регионов
type RegionsResponse struct {
	Regions []domain.RegionDescriptor `json:"regions"`
	Total   int                       `json:"total"`
}

// ImagesResponse - изображения объекта
type ImagesResponse struct {
	Images []domain.ListingImage `json:"images"`
	Total  int                   `json:"total"`
}

// RegionStatsResponse - распределение объектов по регионам
type RegionStatsResponse struct {
	Regions     []domain.RegionCount `json:"regions"`
	GeneratedAt time.Time            `json:"generated_at"`
}

// TypeStatsResponse - распределение объектов по типам контента
type TypeStatsResponse struct {
	Types       []domain.CategoryCount `json:"types"`
	GeneratedAt time.Time              `json:"generated_at"`
}

// BookmarksResponse - закладки пользователя, новые первыми
type BookmarksResponse struct {
	Bookmarks []domain.Bookmark `json:"bookmarks"`
	Total     int               `json:"total"`
}

// BookmarkStatusResponse - статус одной закладки
type BookmarkStatusResponse struct {
	ContentID  string `json:"content_id"`
	Bookmarked bool   `json:"bookmarked"`
}
