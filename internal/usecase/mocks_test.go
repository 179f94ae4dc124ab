package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tour-microservice/internal/domain"
)

// MockTourAPIRepository is a mock of TourAPIRepository
type MockTourAPIRepository struct {
	mock.Mock
}

func (m *MockTourAPIRepository) ListRegions(ctx context.Context, parentCode string) ([]domain.RegionDescriptor, error) {
	args := m.Called(ctx, parentCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegionDescriptor), args.Error(1)
}

func (m *MockTourAPIRepository) ListByArea(ctx context.Context, q domain.ListQuery) (*domain.ListingPage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ListingPage), args.Error(1)
}

func (m *MockTourAPIRepository) ListNearby(ctx context.Context, q domain.NearbyQuery) (*domain.ListingPage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ListingPage), args.Error(1)
}

func (m *MockTourAPIRepository) SearchByKeyword(ctx context.Context, q domain.SearchQuery) (*domain.ListingPage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ListingPage), args.Error(1)
}

func (m *MockTourAPIRepository) GetDetail(ctx context.Context, contentID string) (*domain.ListingDetail, error) {
	args := m.Called(ctx, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ListingDetail), args.Error(1)
}

func (m *MockTourAPIRepository) GetIntro(ctx context.Context, contentID, contentTypeID string) (*domain.OperatingInfo, error) {
	args := m.Called(ctx, contentID, contentTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OperatingInfo), args.Error(1)
}

func (m *MockTourAPIRepository) GetImages(ctx context.Context, contentID string, pageSize int) ([]domain.ListingImage, error) {
	args := m.Called(ctx, contentID, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ListingImage), args.Error(1)
}

func (m *MockTourAPIRepository) GetPetInfo(ctx context.Context, contentID string) (*domain.PetInfo, error) {
	args := m.Called(ctx, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PetInfo), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetStats(ctx context.Context) (*domain.StatsSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsSummary), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, stats *domain.StatsSummary, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetRegions(ctx context.Context, parentCode string) ([]domain.RegionDescriptor, error) {
	args := m.Called(ctx, parentCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegionDescriptor), args.Error(1)
}

func (m *MockCacheRepository) SetRegions(ctx context.Context, parentCode string, regions []domain.RegionDescriptor, ttl time.Duration) error {
	args := m.Called(ctx, parentCode, regions, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetListingPage(ctx context.Context, key string) (*domain.ListingPage, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ListingPage), args.Error(1)
}

func (m *MockCacheRepository) SetListingPage(ctx context.Context, key string, page *domain.ListingPage, ttl time.Duration) error {
	args := m.Called(ctx, key, page, ttl)
	return args.Error(0)
}

// MockBookmarkRepository is a mock of BookmarkRepository
type MockBookmarkRepository struct {
	mock.Mock
}

func (m *MockBookmarkRepository) UpsertUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockBookmarkRepository) IsBookmarked(ctx context.Context, userID, contentID string) (bool, error) {
	args := m.Called(ctx, userID, contentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookmarkRepository) AddBookmark(ctx context.Context, userID, contentID string) error {
	args := m.Called(ctx, userID, contentID)
	return args.Error(0)
}

func (m *MockBookmarkRepository) RemoveBookmark(ctx context.Context, userID, contentID string) error {
	args := m.Called(ctx, userID, contentID)
	return args.Error(0)
}

func (m *MockBookmarkRepository) ListBookmarks(ctx context.Context, userID string) ([]domain.Bookmark, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) BookmarkedSet(ctx context.Context, userID string, contentIDs []string) (map[string]bool, error) {
	args := m.Called(ctx, userID, contentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}
