package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tour-microservice/internal/domain"
	"github.com/tour-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetStats получает сводную статистику из кеша
func (r *cacheRepository) GetStats(ctx context.Context) (*domain.StatsSummary, error) {
	data, err := r.Get(ctx, "stats:summary")
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var stats domain.StatsSummary
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Error("Failed to unmarshal stats from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}

	return &stats, nil
}

// SetStats сохраняет сводную статистику в кеше
func (r *cacheRepository) SetStats(ctx context.Context, stats *domain.StatsSummary, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		r.logger.Error("Failed to marshal stats", zap.Error(err))
		return fmt.Errorf("marshal stats: %w", err)
	}

	return r.Set(ctx, "stats:summary", data, ttl)
}

// GetRegions получает справочник регионов из кеша
func (r *cacheRepository) GetRegions(ctx context.Context, parentCode string) ([]domain.RegionDescriptor, error) {
	data, err := r.Get(ctx, regionsKey(parentCode))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var regions []domain.RegionDescriptor
	if err := json.Unmarshal(data, &regions); err != nil {
		r.logger.Error("Failed to unmarshal regions from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal regions: %w", err)
	}

	return regions, nil
}

// SetRegions сохраняет справочник регионов в кеше
func (r *cacheRepository) SetRegions(ctx context.Context, parentCode string, regions []domain.RegionDescriptor, ttl time.Duration) error {
	data, err := json.Marshal(regions)
	if err != nil {
		r.logger.Error("Failed to marshal regions", zap.Error(err))
		return fmt.Errorf("marshal regions: %w", err)
	}

	return r.Set(ctx, regionsKey(parentCode), data, ttl)
}

// GetListingPage получает страницу листинга из кеша по каноническому ключу фильтра
func (r *cacheRepository) GetListingPage(ctx context.Context, key string) (*domain.ListingPage, error) {
	data, err := r.Get(ctx, "listings:"+key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var page domain.ListingPage
	if err := json.Unmarshal(data, &page); err != nil {
		r.logger.Error("Failed to unmarshal listing page from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal listing page: %w", err)
	}

	return &page, nil
}

// SetListingPage сохраняет страницу листинга в кеше
func (r *cacheRepository) SetListingPage(ctx context.Context, key string, page *domain.ListingPage, ttl time.Duration) error {
	data, err := json.Marshal(page)
	if err != nil {
		r.logger.Error("Failed to marshal listing page", zap.Error(err))
		return fmt.Errorf("marshal listing page: %w", err)
	}

	return r.Set(ctx, "listings:"+key, data, ttl)
}

func regionsKey(parentCode string) string {
	if parentCode == "" {
		return "regions:root"
	}
	return "regions:" + parentCode
}
