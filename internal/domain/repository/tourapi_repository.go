package repository

import (
	"context"

	"github.com/tour-microservice/internal/domain"
)

// TourAPIRepository - шлюз к публичному туристическому API.
// Все операции - чтение без побочных эффектов; ошибки типизированы
// (pkg/errors), неоднозначный item-or-array конверт upstream
// нормализуется внутри и наружу не выходит.
type TourAPIRepository interface {
	// ListRegions возвращает справочник регионов; parentCode непустой -
	// список районов внутри региона.
	ListRegions(ctx context.Context, parentCode string) ([]domain.RegionDescriptor, error)

	// ListByArea возвращает страницу листинга по региону и/или типу контента.
	ListByArea(ctx context.Context, q domain.ListQuery) (*domain.ListingPage, error)

	// ListNearby возвращает страницу объектов вокруг точки.
	ListNearby(ctx context.Context, q domain.NearbyQuery) (*domain.ListingPage, error)

	// SearchByKeyword ищет по ключевому слову. Пустое слово отклоняется
	// локально, без сетевого вызова.
	SearchByKeyword(ctx context.Context, q domain.SearchQuery) (*domain.ListingPage, error)

	// GetDetail возвращает детали объекта; ноль записей - ErrListingNotFound.
	GetDetail(ctx context.Context, contentID string) (*domain.ListingDetail, error)

	// GetIntro возвращает режим работы/парковку; ноль записей - ErrListingNotFound.
	GetIntro(ctx context.Context, contentID, contentTypeID string) (*domain.OperatingInfo, error)

	// GetImages возвращает изображения объекта (возможно, пустой список).
	GetImages(ctx context.Context, contentID string, pageSize int) ([]domain.ListingImage, error)

	// GetPetInfo возвращает pet-информацию или (nil, nil), если её нет:
	// отсутствие данных - норма, а не ошибка.
	GetPetInfo(ctx context.Context, contentID string) (*domain.PetInfo, error)
}
