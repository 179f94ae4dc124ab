package repository

import (
	"context"
	"time"

	"github.com/tour-microservice/internal/domain"
)

// CacheRepository определяет интерфейс для кеширования
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Типизированные helpers поверх Get/Set

	GetStats(ctx context.Context) (*domain.StatsSummary, error)
	SetStats(ctx context.Context, stats *domain.StatsSummary, ttl time.Duration) error

	GetRegions(ctx context.Context, parentCode string) ([]domain.RegionDescriptor, error)
	SetRegions(ctx context.Context, parentCode string, regions []domain.RegionDescriptor, ttl time.Duration) error

	GetListingPage(ctx context.Context, key string) (*domain.ListingPage, error)
	SetListingPage(ctx context.Context, key string, page *domain.ListingPage, ttl time.Duration) error
}
